package reportbot

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/olegmokeev23-byte/Report-Bot-Discord/config"
	"github.com/olegmokeev23-byte/Report-Bot-Discord/store"
)

const (
	timestampLayout = time.RFC3339

	statusFieldName  = "Status"
	handledFieldName = "Handled by"

	maxDescriptionLength = 1000
	maxReplyLength       = 1000
)

func init() {
	commands["report"] = command{
		command: &discordgo.ApplicationCommand{
			Type:        discordgo.ChatApplicationCommand,
			Description: "Submit a report to the moderators",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "Type of the report",
					Required:    true,
					Choices:     getCategoryChoices(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "description",
					Description: "Detailed description of the problem",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "accused",
					Description: "User the report is about (optional)",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "evidence",
					Description: "Link to a screenshot/video (optional)",
					Required:    false,
				},
			},
		},
		handler: handleSubmission,
	}

	regexComponents[regexp.MustCompile("^report_(accept|reject|progress)_(.+)$")] = handleStatusAction
	regexComponents[regexp.MustCompile("^report_respond_(.+)$")] = handleRespondButton
	regexComponents[regexp.MustCompile("^report_reply_(.+)$")] = handleReplySubmit
}

func handleSubmission(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.ChannelID != config.Config.Channels.Intake {
		respondEphemeral(s, i, fmt.Sprintf("❌ This command can only be used in <#%s>!", config.Config.Channels.Intake))
		return
	}

	options := map[string]*discordgo.ApplicationCommandInteractionDataOption{}
	for _, option := range i.ApplicationCommandData().Options {
		options[option.Name] = option
	}

	description := options["description"].StringValue()
	if len(description) > maxDescriptionLength {
		description = description[:maxDescriptionLength]
	}

	now := time.Now()
	report := store.Report{
		ID:          store.NewReportID(i.Member.User.ID, now),
		SubmitterID: i.Member.User.ID,
		Category:    store.Category(options["type"].StringValue()),
		Description: description,
		Status:      store.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if option, ok := options["accused"]; ok {
		report.AccusedID = option.UserValue(s).ID
	}
	if option, ok := options["evidence"]; ok {
		report.Evidence = option.StringValue()
	}

	if config.Config.Channels.Moderator == "" {
		respondEphemeral(s, i, "❌ Error: the moderator channel is not configured!")
		return
	}

	msg, err := s.ChannelMessageSendComplex(config.Config.Channels.Moderator, &discordgo.MessageSend{
		Embed: getReportEmbed(report, i.Member.User),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: getReportButtons(report.ID),
			},
		},
	})
	if err != nil {
		config.Logger.Errorw("failed to send report to moderator channel",
			"report", report.ID,
			"channel", config.Config.Channels.Moderator,
			"error", err,
		)
		respondEphemeral(s, i, "❌ Error: the moderator channel could not be reached!")
		return
	}

	report.ChannelID = msg.ChannelID
	report.MessageID = msg.ID
	if err := reports.Put(report); err != nil {
		// Should not happen under correct sequencing; roll the message back
		// so the store and the moderator channel stay in sync.
		_ = s.ChannelMessageDelete(msg.ChannelID, msg.ID)
		config.Logger.Errorw("failed to store report",
			"report", report.ID,
			"error", err,
		)
		respondEphemeral(s, i, "❌ Error: your report could not be saved, please try again.")
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{getConfirmationEmbed(report)},
			Flags:  1 << 6,
		},
	}); err != nil {
		config.Logger.Errorw("failed to respond to interaction",
			"error", err,
		)
	}
}

func handleStatusAction(s *discordgo.Session, i *discordgo.InteractionCreate, match []string) {
	action := Action{Kind: ActionKind(match[1])}

	report, err := applyAction(reports, match[2], action, i.Member.User.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondEphemeral(s, i, "Report does not exist.")
		} else {
			config.Logger.Errorw("failed to update report status",
				"report", match[2],
				"error", err,
			)
			respondEphemeral(s, i, "❌ Error: the report could not be updated.")
		}
		return
	}

	// Full-replace render of the message the button lives on. The store was
	// already updated and its lock released; only sends happen from here on.
	embed := getReportEmbed(report, nil)
	if len(i.Message.Embeds) > 0 {
		embed = i.Message.Embeds[0]
	}
	applyStatusFields(embed, report)

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: getReportButtons(report.ID),
				},
			},
		},
	}); err != nil {
		config.Logger.Errorw("failed to update report message",
			"report", report.ID,
			"error", err,
		)
	}

	notifyStatusChange(s, report)
}

func handleRespondButton(s *discordgo.Session, i *discordgo.InteractionCreate, match []string) {
	report, err := reports.Get(match[1])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondEphemeral(s, i, "Report does not exist.")
		} else {
			config.Logger.Errorw("failed to query report",
				"report", match[1],
				"error", err,
			)
		}
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: fmt.Sprintf("report_reply_%s", report.ID),
			Title:    "Reply to the report",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "reply",
							Label:       "Your reply to the user",
							Style:       discordgo.TextInputParagraph,
							Placeholder: "Write a reply to the report...",
							Required:    true,
							MaxLength:   maxReplyLength,
						},
					},
				},
			},
		},
	}); err != nil {
		config.Logger.Errorw("failed to respond to interaction",
			"error", err,
		)
	}
}

func handleReplySubmit(s *discordgo.Session, i *discordgo.InteractionCreate, match []string) {
	report, err := reports.Get(match[1])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondEphemeral(s, i, "Report does not exist.")
		} else {
			config.Logger.Errorw("failed to query report",
				"report", match[1],
				"error", err,
			)
		}
		return
	}

	text := i.ModalSubmitData().Components[0].(*discordgo.ActionsRow).Components[0].(*discordgo.TextInput).Value

	// Authored replies are high value: the moderator always learns whether
	// their message arrived, unlike best-effort status pings.
	switch result := notifyModeratorReply(s, report, i.Member.User.ID, text); result.Outcome {
	case Delivered:
		respondEphemeral(s, i, fmt.Sprintf("✅ Reply delivered to <@%s>!", report.SubmitterID))
	case RecipientUnreachable:
		respondEphemeral(s, i, "❌ Could not message the user (their DMs are closed)")
	default:
		respondEphemeral(s, i, fmt.Sprintf("❌ Error: %s", result.Err))
	}
}

func getReportEmbed(report store.Report, submitter *discordgo.User) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Color:       config.ColorFor(string(report.Status)),
		Title:       "📩 New report",
		Description: fmt.Sprintf("```%s```", report.Description),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🆔 Report ID", Value: fmt.Sprintf("`%s`", report.ID), Inline: true},
			{Name: "📁 Type", Value: report.Category.String(), Inline: true},
			{Name: statusFieldName, Value: report.Status.String(), Inline: true},
			{Name: "👤 Submitter", Value: fmt.Sprintf("<@%s>\n`%s`", report.SubmitterID, report.SubmitterID), Inline: true},
		},
		Timestamp: report.CreatedAt.Format(timestampLayout),
	}

	if report.AccusedID != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "🎯 Accused", Value: fmt.Sprintf("<@%s>\n`%s`", report.AccusedID, report.AccusedID), Inline: true,
		})
	}
	if report.Evidence != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "🔗 Evidence", Value: report.Evidence, Inline: false,
		})
	}

	if submitter != nil {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{
			URL: submitter.AvatarURL(""),
		}
	}

	return embed
}

// applyStatusFields refreshes the triage state on an already rendered embed.
// It scans the field list, replacing the status and handled-by fields or
// appending them when absent, so re-rendering any number of times leaves
// exactly one of each.
func applyStatusFields(embed *discordgo.MessageEmbed, report store.Report) {
	embed.Color = config.ColorFor(string(report.Status))
	embed.Timestamp = report.UpdatedAt.Format(timestampLayout)

	setField(embed, statusFieldName, report.Status.String())
	if report.HandledBy != "" {
		setField(embed, handledFieldName, fmt.Sprintf("<@%s>", report.HandledBy))
	}
}

func setField(embed *discordgo.MessageEmbed, name, value string) {
	for _, field := range embed.Fields {
		if field.Name == name {
			field.Value = value
			return
		}
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: name, Value: value, Inline: true,
	})
}

func getConfirmationEmbed(report store.Report) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       config.ColorFor(string(store.StatusAccepted)),
		Title:       "✅ Report submitted!",
		Description: "Your report was successfully sent to the moderators.",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Report ID", Value: fmt.Sprintf("`%s`", report.ID), Inline: false},
			{Name: "Type", Value: report.Category.String(), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Expect a reply in your direct messages",
		},
	}
}

func getCategoryChoices() []*discordgo.ApplicationCommandOptionChoice {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, category := range store.Categories() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  category.String(),
			Value: string(category),
		})
	}
	return choices
}

func getReportButtons(reportID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			CustomID: fmt.Sprintf("report_accept_%s", reportID),
			Label:    "✅ Accept",
			Style:    discordgo.SuccessButton,
		},
		discordgo.Button{
			CustomID: fmt.Sprintf("report_reject_%s", reportID),
			Label:    "❌ Reject",
			Style:    discordgo.DangerButton,
		},
		discordgo.Button{
			CustomID: fmt.Sprintf("report_progress_%s", reportID),
			Label:    "🔄 In Progress",
			Style:    discordgo.PrimaryButton,
		},
		discordgo.Button{
			CustomID: fmt.Sprintf("report_respond_%s", reportID),
			Label:    "💬 Respond",
			Style:    discordgo.SecondaryButton,
		},
	}
}
