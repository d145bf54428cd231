package reportbot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/olegmokeev23-byte/Report-Bot-Discord/config"
)

// respondEphemeral answers an interaction with a message only the acting
// user can see.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   1 << 6,
		},
	}); err != nil {
		config.Logger.Errorw("failed to respond to interaction",
			"error", err,
		)
	}
}
