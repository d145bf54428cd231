package reportbot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/olegmokeev23-byte/Report-Bot-Discord/config"
	"github.com/olegmokeev23-byte/Report-Bot-Discord/store"
)

type DeliveryOutcome int

const (
	Delivered DeliveryOutcome = iota
	// RecipientUnreachable means the user disallows direct messages.
	RecipientUnreachable
	DeliveryFailed
)

// DeliveryResult reports what happened to a direct-message attempt, letting
// callers decide whether to swallow the failure or surface it.
type DeliveryResult struct {
	Outcome DeliveryOutcome
	Err     error
}

func classifyDeliveryError(err error) DeliveryResult {
	if restErr, ok := err.(*discordgo.RESTError); ok && restErr.Message != nil {
		if restErr.Message.Code == discordgo.ErrCodeCannotSendMessagesToThisUser {
			return DeliveryResult{Outcome: RecipientUnreachable, Err: err}
		}
	}
	return DeliveryResult{Outcome: DeliveryFailed, Err: err}
}

func deliverDM(s *discordgo.Session, userID string, embed *discordgo.MessageEmbed) DeliveryResult {
	channel, err := userChannel(s, userID)
	if err != nil {
		return classifyDeliveryError(err)
	}

	if _, err := s.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		return classifyDeliveryError(err)
	}
	return DeliveryResult{Outcome: Delivered}
}

// notifyStatusChange tells the submitter their report changed status.
// Best effort: failures are logged, never surfaced to the moderator.
func notifyStatusChange(s *discordgo.Session, report store.Report) {
	result := deliverDM(s, report.SubmitterID, getStatusNoticeEmbed(report))
	if result.Outcome != Delivered {
		config.Logger.Debugw("failed to notify submitter of status change",
			"report", report.ID,
			"submitter", report.SubmitterID,
			"error", result.Err,
		)
	}
}

// notifyModeratorReply delivers an authored moderator reply to the
// submitter. The result is always returned so the acting moderator can be
// told whether their reply arrived.
func notifyModeratorReply(s *discordgo.Session, report store.Report, moderatorID, text string) DeliveryResult {
	return deliverDM(s, report.SubmitterID, getReplyEmbed(report, moderatorID, text))
}

func getStatusNoticeEmbed(report store.Report) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       config.ColorFor(string(report.Status)),
		Title:       "📋 Your report status was updated",
		Description: fmt.Sprintf("Report `%s` changed status to: **%s**", report.ID, report.Status),
		Timestamp:   report.UpdatedAt.Format(timestampLayout),
	}
}

func getReplyEmbed(report store.Report, moderatorID, text string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       config.ColorFor(string(store.StatusAccepted)),
		Title:       "📬 Reply to your report",
		Description: text,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Report ID", Value: fmt.Sprintf("`%s`", report.ID), Inline: true},
			{Name: "Moderator", Value: fmt.Sprintf("<@%s>", moderatorID), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Thank you for reaching out!",
		},
	}
}
