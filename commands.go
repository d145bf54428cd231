package reportbot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/olegmokeev23-byte/Report-Bot-Discord/config"
	"regexp"
)

type command struct {
	command *discordgo.ApplicationCommand
	handler func(s *discordgo.Session, i *discordgo.InteractionCreate)
}

var (
	commands        = map[string]command{}
	components      = map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){}
	regexComponents = map[*regexp.Regexp]func(s *discordgo.Session, i *discordgo.InteractionCreate, match []string){}
)

func init() {
	handlers = append(handlers, handler{f: func(s *discordgo.Session, _ *discordgo.Ready) {
		appID, guildID := config.Config.Bot.AppID, config.Config.Bot.GuildID

		if cmds, err := s.ApplicationCommands(appID, guildID); err == nil {
			for _, cmd := range cmds {
				if _, ok := commands[cmd.Name]; !ok {
					if err := s.ApplicationCommandDelete(appID, guildID, cmd.ID); err != nil {
						config.Logger.Errorw("failed to delete application command",
							"command", cmd.Name,
							"error", err,
						)
					}
				}
			}
		} else {
			config.Logger.Errorw("failed to list application commands",
				"error", err,
			)
		}

		for name, cmd := range commands {
			cmd.command.Name = name
			if _, err := s.ApplicationCommandCreate(appID, guildID, cmd.command); err != nil {
				config.Logger.Errorw("failed to create application command",
					"command", cmd.command.Name,
					"error", err,
				)
			}
		}
	}, once: true})

	handlers = append(handlers, handler{f: func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand, discordgo.InteractionApplicationCommandAutocomplete:
			if command, ok := commands[i.ApplicationCommandData().Name]; ok {
				command.handler(s, i)
			}
		case discordgo.InteractionMessageComponent:
			dispatchComponent(s, i, i.MessageComponentData().CustomID)
		case discordgo.InteractionModalSubmit:
			dispatchComponent(s, i, i.ModalSubmitData().CustomID)
		}
	}})
}

func dispatchComponent(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	if component, ok := components[customID]; ok {
		component(s, i)
		return
	}

	for regex, handler := range regexComponents {
		match := regex.FindStringSubmatch(customID)
		if len(match) > 0 {
			handler(s, i, match)
			return
		}
	}
}
