package integration

import (
	"errors"
	"fmt"

	"fcclubs/internal/models"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid json payload")

// The provider keys clubs and players by id inside JSON objects. gjson walks
// objects in source order, which keeps "first listed team" meaningful.

func decodeMatches(body []byte) ([]models.RawMatch, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidJSON
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("matches: expected array, got %s", root.Type)
	}

	var matches []models.RawMatch
	root.ForEach(func(_, m gjson.Result) bool {
		raw := models.RawMatch{
			MatchID:   m.Get("matchId").String(),
			Timestamp: m.Get("timestamp").Int(),
		}

		m.Get("clubs").ForEach(func(id, c gjson.Result) bool {
			raw.Clubs = append(raw.Clubs, models.RawMatchClub{
				ClubID:      id.String(),
				Name:        c.Get("details.name").String(),
				Goals:       c.Get("goals").String(),
				WinnerByDNF: c.Get("winnerByDnf").String(),
			})
			return true
		})

		m.Get("players").ForEach(func(clubID, roster gjson.Result) bool {
			group := models.RawClubPlayers{ClubID: clubID.String()}
			roster.ForEach(func(playerID, p gjson.Result) bool {
				group.Players = append(group.Players, models.RawMatchPlayer{
					PlayerID:      playerID.String(),
					PlayerName:    p.Get("playername").String(),
					Rating:        p.Get("rating").String(),
					ManOfTheMatch: p.Get("mom").String(),
				})
				return true
			})
			raw.Players = append(raw.Players, group)
			return true
		})

		matches = append(matches, raw)
		return true
	})

	return matches, nil
}

func decodeClubSearch(body []byte) ([]models.ClubRef, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidJSON
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("club search: expected array, got %s", root.Type)
	}

	var clubs []models.ClubRef
	root.ForEach(func(_, c gjson.Result) bool {
		name := c.Get("clubInfo.name").String()
		if name == "" {
			name = c.Get("clubName").String()
		}
		clubs = append(clubs, models.ClubRef{
			ClubID:   c.Get("clubId").String(),
			Name:     name,
			Platform: models.Platform(c.Get("platform").String()),
		})
		return true
	})

	return clubs, nil
}

func decodeSeasonStats(body []byte) ([]models.RawSeasonStats, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidJSON
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("overall stats: expected array, got %s", root.Type)
	}

	var stats []models.RawSeasonStats
	root.ForEach(func(_, s gjson.Result) bool {
		stats = append(stats, models.RawSeasonStats{
			ClubID:       s.Get("clubId").String(),
			Wins:         s.Get("wins").String(),
			Ties:         s.Get("ties").String(),
			Losses:       s.Get("losses").String(),
			GamesPlayed:  s.Get("gamesPlayed").String(),
			Goals:        s.Get("goals").String(),
			GoalsAgainst: s.Get("goalsAgainst").String(),
			SkillRating:  s.Get("skillRating").String(),
		})
		return true
	})

	return stats, nil
}
