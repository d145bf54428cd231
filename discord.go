package reportbot

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-co-op/gocron"
	"github.com/olegmokeev23-byte/Report-Bot-Discord/config"
	"github.com/olegmokeev23-byte/Report-Bot-Discord/store"
)

type handler struct {
	f    interface{}
	once bool
}

var (
	session   *discordgo.Session
	scheduler = gocron.NewScheduler(time.UTC)

	handlers []handler

	// reports is the single source of truth for lifecycle state.
	reports store.Store
)

func StartBot() {
	if config.Config.Database != "" {
		database, err := store.NewDatabase(config.Config.Database)
		if err != nil {
			config.Logger.Fatalw("failed to open report database",
				"error", err,
			)
		}
		reports = database
	} else {
		reports = store.NewMemory()
	}

	discordgo.Logger = func(msgL, caller int, format string, a ...interface{}) {
		switch msgL {
		case discordgo.LogError:
			config.Logger.Errorf(format, a...)
		case discordgo.LogWarning:
			config.Logger.Warnf(format, a...)
		case discordgo.LogInformational:
			config.Logger.Infof(format, a...)
		case discordgo.LogDebug:
			config.Logger.Debugf(format, a...)
		}
	}

	dg, err := discordgo.New("Bot " + config.Config.Bot.Token)
	if err != nil {
		config.Logger.Fatalw("error creating discord session",
			"error", err,
		)
	}

	session = dg
	session.Identify.Intents = discordgo.MakeIntent(discordgo.IntentsGuilds)

	session.AddHandler(ready)
	for _, h := range handlers {
		if h.once {
			session.AddHandlerOnce(h.f)
		} else {
			session.AddHandler(h.f)
		}
	}

	if err := session.Open(); err != nil {
		config.Logger.Fatalw("error opening discord connection",
			"error", err,
		)
	}

	scheduler.StartAsync()
}

func ShutdownBot() {
	scheduler.Stop()

	if err := session.Close(); err != nil {
		config.Logger.Errorw("failed to safely close discord connection",
			"error", err,
		)
	}
}

func ready(s *discordgo.Session, _ *discordgo.Ready) {
	if err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: "online",
		Activities: []*discordgo.Activity{{
			Name: "for reports | /report",
			Type: discordgo.ActivityTypeWatching,
		}},
	}); err != nil {
		config.Logger.Errorw("failed to update bot status",
			"error", err,
		)
	}
}
