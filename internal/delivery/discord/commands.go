package discord

import (
	"fcclubs/internal/models"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) addCommands(commands ...*discordgo.ApplicationCommand) {
	b.commands = append(b.commands, commands...)
}

func clubOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        optionClub,
		Description: "Club name",
		Required:    true,
		MaxLength:   32,
	}
}

func platformOption() *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: platformLabel(p), Value: string(p)})
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        optionPlatform,
		Description: "Platform",
		Required:    false,
		Choices:     choices,
	}
}

func (b *Bot) newMatchesCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        commandMatches,
		Description: "Latest matches of a club",
		Options:     []*discordgo.ApplicationCommandOption{clubOption(), platformOption()},
	}
}

func (b *Bot) newExportCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        commandExport,
		Description: "Export latest matches to Excel",
		Options:     []*discordgo.ApplicationCommandOption{clubOption(), platformOption()},
	}
}

func (b *Bot) newSyncSheetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        commandSyncSheet,
		Description: "Sync latest matches to Google Sheet (admins only)",
		Options:     []*discordgo.ApplicationCommandOption{clubOption(), platformOption()},
	}
}

func platformLabel(p models.Platform) string {
	switch p {
	case models.PlatformGen5:
		return "PS5 / Xbox Series"
	case models.PlatformGen4:
		return "PS4 / Xbox One"
	case models.PlatformSwitch:
		return "Switch"
	}
	return string(p)
}
