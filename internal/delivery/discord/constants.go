package discord

import "time"

const (
	commandMatches   = "matches"
	commandExport    = "export"
	commandSyncSheet = "sync_sheet"

	optionClub     = "club"
	optionPlatform = "platform"

	// Discord invalidates interaction tokens after fifteen minutes.
	interactionTimeout = 10 * time.Minute

	invalidNameMsg     = "❌ Please provide a valid club name."
	notFoundMessage    = "⚠️ No matches found for the specified club."
	fetchErrorMessage  = "❌ An error occurred while fetching match information. Please try again later."
	sendErrorMessage   = "❌ An error occurred while sending the message. Please try again later."
	forbiddenMessage   = "⛔ This command is for admins only."
	wrongChannelMsg    = "This command is not available in this channel."
	unknownPlatformMsg = "❌ Unknown platform."
	exportReadyMessage = "📊 Your report is ready!"
	sheetSyncedMessage = "✅ Sheet updated!\nLink: %s"
	sheetErrorMessage  = "❌ Failed to sync the Google Sheet."
)
