package telegram

import (
	"errors"

	"fcclubs/internal/application"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	welcomeMessage = "👋 Hello! I'm the FC Clubs Bot.\n\n" +
		"Send me the name of a club (e.g., <b>Metallist</b>) and I'll provide you with the latest match information."
	helpMessage = "📖 <b>Help</b>\n\n" +
		"To get match information for a club, simply send the club's name. For example:\n" +
		"<code>Metallist</code>\n\n" +
		"Ensure that the club name is spelled correctly.\n\n" +
		"/export &lt;club&gt; - matches as an Excel file\n" +
		"/stop - unsubscribe from notifications"
	farewellMessage = "👋 You've been unsubscribed from FC Clubs Bot notifications."

	fetchingMessage   = "🔍 Fetching match information for <b>%s</b>..."
	invalidNameMsg    = "❌ Please provide a valid club name."
	notFoundMessage   = "⚠️ No matches found for the specified club."
	fetchErrorMessage = "❌ An error occurred while fetching match information. Please try again later."
	sendErrorMessage  = "❌ An error occurred while sending the message. Please try again later."
	forbiddenMessage  = "⛔ This command is for admins only."
	usageExport       = "Usage: /export &lt;club&gt;"
	usageNotify       = "Usage: /notify &lt;club&gt;"
)

func (b *Bot) isAdmin(id int64) bool {
	_, ok := b.adminIDs[id]
	return ok
}

// errorMessage maps a report error to the reply the user sees.
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

func (b *Bot) reply(chatID int64, text string) {
	if text == "" {
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message to %d: %v", chatID, err)
	}
}
