package reportbot

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/olegmokeev23-byte/Report-Bot-Discord/config"
	"github.com/olegmokeev23-byte/Report-Bot-Discord/store"
)

// The hourly sweep reminds moderators about reports left pending for too
// long. It never transitions a report; triage stays a moderator decision.
func init() {
	handlers = append(handlers, handler{f: func(s *discordgo.Session, _ *discordgo.Ready) {
		if _, err := scheduler.Cron("0 * * * *").SingletonMode().Do(func() {
			cutoff := time.Now().Add(-time.Duration(config.Config.StaleAfter) * time.Hour)
			stale, err := reports.Pending(cutoff)
			if err != nil {
				config.Logger.Errorw("failed to query pending reports",
					"error", err,
				)
				return
			}
			if len(stale) == 0 {
				return
			}

			config.Logger.Infow("reminding moderators of stale reports",
				"count", len(stale),
			)

			if _, err := s.ChannelMessageSendEmbed(config.Config.Channels.Moderator, getStaleReportsEmbed(stale, time.Now())); err != nil {
				config.Logger.Errorw("failed to send stale reports reminder",
					"channel", config.Config.Channels.Moderator,
					"error", err,
				)
			}
		}); err != nil {
			config.Logger.Errorw("failed to create stale reports job",
				"error", err,
			)
		}
	}, once: true})
}

func getStaleReportsEmbed(stale []store.Report, now time.Time) *discordgo.MessageEmbed {
	var lines []string
	for _, report := range stale {
		age := now.Sub(report.CreatedAt).Round(time.Hour)
		lines = append(lines, fmt.Sprintf("`%s` — %s, pending for %s", report.ID, report.Category, age))
	}

	return &discordgo.MessageEmbed{
		Color:       config.ColorFor(string(store.StatusPending)),
		Title:       "⏰ Reports awaiting triage",
		Description: strings.Join(lines, "\n"),
		Timestamp:   now.Format(timestampLayout),
	}
}
