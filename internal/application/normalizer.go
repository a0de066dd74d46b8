package application

import (
	"strings"
	"time"

	"fcclubs/internal/models"
)

type Normalizer struct {
	now func() time.Time
}

func NewNormalizer(now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{now: now}
}

// Normalize turns one raw record into a MatchResult seen from primaryClubID.
// Malformed numbers degrade to zero; only the recency label depends on the clock.
func (n *Normalizer) Normalize(raw models.RawMatch, primaryClubID string) models.MatchResult {
	playedAt := time.Unix(raw.Timestamp, 0).UTC()
	result := models.MatchResult{
		MatchID:         raw.MatchID,
		PlayedAt:        playedAt,
		RecencyLabel:    recencyLabel(n.now(), playedAt),
		Outcome:         models.OutcomeUnknown,
		StandoutPlayers: []models.StandoutPlayer{},
	}

	clubs := raw.Clubs
	if len(clubs) > 2 {
		clubs = clubs[:2]
	}
	for _, c := range clubs {
		result.Teams = append(result.Teams, models.TeamScore{
			ClubID:      c.ClubID,
			DisplayName: c.Name,
			Goals:       parseIntOrZero(c.Goals),
		})
	}

	if result.Degraded() {
		return result
	}

	result.StandoutPlayers = collectStandouts(raw.Players)

	idx := result.TeamIndex(primaryClubID)
	if idx < 0 {
		return result
	}

	own := result.Teams[idx].Goals
	opp := result.Teams[1-idx].Goals
	switch {
	case own > opp:
		result.Outcome = models.OutcomeWin
	case own < opp:
		result.Outcome = models.OutcomeLoss
	default:
		result.Outcome = models.OutcomeDraw
	}

	dnf := strings.TrimSpace(clubs[idx].WinnerByDNF) == truthySentinel
	result.DisconnectWinner = &dnf

	return result
}

func (n *Normalizer) NormalizeAll(raws []models.RawMatch, primaryClubID string) []models.MatchResult {
	out := make([]models.MatchResult, 0, len(raws))
	for _, raw := range raws {
		out = append(out, n.Normalize(raw, primaryClubID))
	}
	return out
}

func collectStandouts(groups []models.RawClubPlayers) []models.StandoutPlayer {
	standouts := []models.StandoutPlayer{}
	for _, g := range groups {
		for _, p := range g.Players {
			if strings.TrimSpace(p.ManOfTheMatch) != truthySentinel {
				continue
			}
			standouts = append(standouts, models.StandoutPlayer{
				PlayerName: p.PlayerName,
				Rating:     parseFloatOrZero(p.Rating),
				TeamClubID: g.ClubID,
			})
		}
	}
	return standouts
}
