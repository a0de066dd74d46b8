package discord

import (
	"bytes"
	"errors"
	"fmt"

	"fcclubs/internal/application"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) deferResponse(i *discordgo.Interaction) bool {
	err := b.api.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		b.logger.Error("failed to defer interaction: %v", err)
		return false
	}
	return true
}

func (b *Bot) editResponse(i *discordgo.Interaction, msg string) {
	if _, err := b.api.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: ptr(msg)}); err != nil {
		b.logger.Error("failed to edit interaction response: %v", err)
	}
}

func (b *Bot) handleMatches(i *discordgo.Interaction) {
	club, platform, err := clubArgs(i)
	if err != nil {
		b.respondMessage(i, unknownPlatformMsg, true)
		return
	}

	if !b.deferResponse(i) {
		return
	}

	ctx, cancel := b.requestContext()
	defer cancel()

	report, err := b.services.Reports.BuildReport(ctx, club, platform)
	if err != nil {
		b.logger.Error("report for %q: %v", club, err)
		b.editResponse(i, errorMessage(err))
		return
	}

	if err := b.selector.Deliver(ctx, i, report); err != nil {
		b.logger.Error("deliver report for %q: %v", club, err)
		b.editResponse(i, sendErrorMessage)
	}
}

func (b *Bot) handleExport(i *discordgo.Interaction) {
	club, platform, err := clubArgs(i)
	if err != nil {
		b.respondMessage(i, unknownPlatformMsg, true)
		return
	}

	if !b.deferResponse(i) {
		return
	}

	ctx, cancel := b.requestContext()
	defer cancel()

	data, err := b.services.Export.GetExcelReport(ctx, club, platform)
	if err != nil {
		b.logger.Error("export %q: %v", club, err)
		b.editResponse(i, errorMessage(err))
		return
	}

	_, err = b.api.InteractionResponseEdit(i, &discordgo.WebhookEdit{
		Content: ptr(exportReadyMessage),
		Files: []*discordgo.File{
			{Name: application.ExportFileName(club), Reader: bytes.NewReader(data)},
		},
	})
	if err != nil {
		b.logger.Error("send export for %q: %v", club, err)
	}
}

func (b *Bot) handleSyncSheet(i *discordgo.Interaction) {
	club, platform, err := clubArgs(i)
	if err != nil {
		b.respondMessage(i, unknownPlatformMsg, true)
		return
	}

	if !b.deferResponse(i) {
		return
	}

	ctx, cancel := b.requestContext()
	defer cancel()

	url, err := b.services.Export.SyncToGoogleSheet(ctx, club, platform)
	if err != nil {
		b.logger.Error("sync sheet for %q: %v", club, err)
		msg := sheetErrorMessage
		if errors.Is(err, application.ErrNotFound) || errors.Is(err, application.ErrInvalidClubName) {
			msg = errorMessage(err)
		}
		b.editResponse(i, msg)
		return
	}

	b.editResponse(i, fmt.Sprintf(sheetSyncedMessage, url))
}
