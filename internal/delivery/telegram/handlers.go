package telegram

import (
	"context"
	"fmt"
	"html"
	"strings"

	"fcclubs/internal/application"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if !msg.IsCommand() {
		b.handleClubRequest(ctx, chatID, msg.Text)
		return
	}

	args := strings.TrimSpace(msg.CommandArguments())

	switch msg.Command() {
	case "start":
		if err := b.services.Subscriptions.Subscribe(ctx, chatID); err != nil {
			b.logger.Error("subscribe %d: %v", chatID, err)
		}
		b.reply(chatID, welcomeMessage)
	case "help":
		b.reply(chatID, helpMessage)
	case "stop":
		if err := b.services.Subscriptions.Unsubscribe(ctx, chatID); err != nil {
			b.logger.Error("unsubscribe %d: %v", chatID, err)
		}
		b.reply(chatID, farewellMessage)
	case "export":
		b.handleExport(ctx, chatID, args)
	case "notify":
		b.handleNotify(ctx, msg.From, chatID, args)
	default:
		b.reply(chatID, helpMessage)
	}
}

func (b *Bot) handleClubRequest(ctx context.Context, chatID int64, text string) {
	name := strings.TrimSpace(text)
	if name == "" {
		b.reply(chatID, invalidNameMsg)
		return
	}

	b.reply(chatID, fmt.Sprintf(fetchingMessage, html.EscapeString(name)))

	report, err := b.services.Reports.BuildReport(ctx, name, "")
	if err != nil {
		b.logger.Error("report for %q: %v", name, err)
		b.reply(chatID, errorMessage(err))
		return
	}

	if err := b.selector.Deliver(ctx, chatID, report); err != nil {
		b.logger.Error("deliver report to %d: %v", chatID, err)
		b.reply(chatID, sendErrorMessage)
	}
}

func (b *Bot) handleExport(ctx context.Context, chatID int64, club string) {
	if club == "" {
		b.reply(chatID, usageExport)
		return
	}

	data, err := b.services.Export.GetExcelReport(ctx, club, "")
	if err != nil {
		b.logger.Error("export %q: %v", club, err)
		b.reply(chatID, errorMessage(err))
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: application.ExportFileName(club), Bytes: data})
	if _, err := b.api.Send(doc); err != nil {
		b.logger.Error("send export to %d: %v", chatID, err)
		b.reply(chatID, sendErrorMessage)
	}
}

func (b *Bot) handleNotify(ctx context.Context, from *tgbotapi.User, chatID int64, club string) {
	if from == nil || !b.isAdmin(from.ID) {
		b.reply(chatID, forbiddenMessage)
		return
	}
	if club == "" {
		b.reply(chatID, usageNotify)
		return
	}

	b.mu.RLock()
	notifier := b.notifier
	b.mu.RUnlock()
	if notifier == nil {
		b.reply(chatID, fetchErrorMessage)
		return
	}

	res, err := notifier.Notify(ctx, club)
	if err != nil {
		b.reply(chatID, errorMessage(err))
		return
	}
	b.reply(chatID, res.Message())
}
