package models

import "time"

type Outcome string

const (
	OutcomeWin     Outcome = "win"
	OutcomeLoss    Outcome = "loss"
	OutcomeDraw    Outcome = "draw"
	OutcomeUnknown Outcome = "unknown"
)

type TeamScore struct {
	ClubID      string `json:"club_id"`
	DisplayName string `json:"display_name"`
	Goals       int    `json:"goals"`
}

type StandoutPlayer struct {
	PlayerName string  `json:"player_name"`
	Rating     float64 `json:"rating"`
	TeamClubID string  `json:"team_club_id"`
}

// MatchResult is one normalized match as seen from the primary club.
// RecencyLabel is relative to the moment of normalization and is not stable
// across renders.
type MatchResult struct {
	MatchID          string           `json:"match_id"`
	PlayedAt         time.Time        `json:"played_at"`
	RecencyLabel     string           `json:"-"`
	Teams            []TeamScore      `json:"teams"`
	Outcome          Outcome          `json:"outcome"`
	StandoutPlayers  []StandoutPlayer `json:"standout_players"`
	DisconnectWinner *bool            `json:"disconnect_winner"`
}

// Degraded reports whether the source delivered fewer than two teams.
func (m MatchResult) Degraded() bool {
	return len(m.Teams) < 2
}

// TeamIndex returns the position of clubID in Teams or -1.
func (m MatchResult) TeamIndex(clubID string) int {
	for i, t := range m.Teams {
		if t.ClubID == clubID {
			return i
		}
	}
	return -1
}

type ClubMatches struct {
	Club    ClubRef
	Matches []MatchResult
}
