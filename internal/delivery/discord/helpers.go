package discord

import (
	"errors"
	"strings"

	"fcclubs/internal/application"
	"fcclubs/internal/models"

	"github.com/bwmarrin/discordgo"
)

// interactionUserID works for guild commands (Member) and DMs (User).
func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// clubArgs reads the club and optional platform options of a command.
func clubArgs(i *discordgo.Interaction) (string, models.Platform, error) {
	var club string
	var platform models.Platform
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case optionClub:
			club = strings.TrimSpace(opt.StringValue())
		case optionPlatform:
			p, err := models.ParsePlatform(opt.StringValue())
			if err != nil {
				return "", "", err
			}
			platform = p
		}
	}
	return club, platform, nil
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, application.ErrInvalidClubName):
		return invalidNameMsg
	case errors.Is(err, application.ErrNotFound):
		return notFoundMessage
	default:
		return fetchErrorMessage
	}
}

func ptr[T any](v T) *T {
	return &v
}
