package models

// Raw shapes are what the stats provider boundary hands to the pipeline.
// Numeric fields stay textual; the pipeline parses them defensively.

type RawMatch struct {
	MatchID   string
	Timestamp int64
	Clubs     []RawMatchClub
	Players   []RawClubPlayers
}

type RawMatchClub struct {
	ClubID      string
	Name        string
	Goals       string
	WinnerByDNF string
}

type RawClubPlayers struct {
	ClubID  string
	Players []RawMatchPlayer
}

type RawMatchPlayer struct {
	PlayerID      string
	PlayerName    string
	Rating        string
	ManOfTheMatch string
}

type RawSeasonStats struct {
	ClubID       string
	Wins         string
	Ties         string
	Losses       string
	GamesPlayed  string
	Goals        string
	GoalsAgainst string
	SkillRating  string
}
