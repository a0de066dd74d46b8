package application

const (
	maxClubNameLength = 32

	// Source sentinel for boolean-ish flags (mom, winnerByDnf).
	truthySentinel = "1"

	streakLength = 5
	glyphWin     = "🟩"
	glyphLoss    = "🟥"
	glyphDraw    = "⬜"

	blockSeparator   = "\n_____________________\n"
	degradedLine     = "Incomplete team information."
	noStandoutLine   = "MOTM: None"
	disconnectLine   = "Disconnect"
	timestampLayout  = "2006-01-02 15:04:05"
	tabularCellWidth = 12

	defaultOpponentConcurrency = 4

	// Export
	excelSheetName    = "Matches"
	defaultSheetTitle = "FC Clubs Matches"
	defaultClearRange = "A1:Z1000"
	defaultStartCell  = "A1"

	spreadsheetSettingKey = "spreadsheet_id"
)
