package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
)

type (
	config struct {
		Debug      bool
		Database   string
		Bot        bot
		Channels   channels
		Colors     map[string]int
		StaleAfter int
		Logger     logger
	}

	bot struct {
		Token   string
		AppID   string
		GuildID string
	}

	channels struct {
		Intake    string
		Moderator string
	}

	logger struct {
		Enabled    bool
		Filename   string
		MaxSize    int
		MaxAge     int
		MaxBackups int
		LocalTime  bool
		Compress   bool
	}
)

var k = koanf.New(".")
var Config config

func init() {
	defaults := config{
		Colors: map[string]int{
			"pending":     0xFEE75C,
			"accepted":    0x57F287,
			"rejected":    0xED4245,
			"in_progress": 0x3498DB,
		},
		// Hours a report may sit pending before the sweep pings moderators.
		StaleAfter: 24,
		Logger: logger{
			Filename:   "logs/bot.log",
			MaxSize:    100,
			MaxBackups: 3,
		},
	}

	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		panic(fmt.Errorf("error loading default config: %w", err))
	}

	// A missing config file just means defaults; anything else is fatal.
	if err := k.Load(file.Provider("config.json"), json.Parser()); err != nil && !errors.Is(err, os.ErrNotExist) {
		panic(fmt.Errorf("error loading config: %w", err))
	}

	if err := k.Unmarshal("", &Config); err != nil {
		panic(fmt.Errorf("error unmarshaling config: %w", err))
	}
}

// ColorFor returns the configured embed color for a status name,
// falling back to the pending color for unknown names.
func ColorFor(status string) int {
	if color, ok := Config.Colors[status]; ok {
		return color
	}
	return Config.Colors["pending"]
}
