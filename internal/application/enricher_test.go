package application

import (
	"context"
	"testing"

	"fcclubs/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchAgainst(opponentID string) models.MatchResult {
	return models.MatchResult{
		Teams: []models.TeamScore{
			{ClubID: "100", DisplayName: "Metallist", Goals: 1},
			{ClubID: opponentID, DisplayName: "Opp " + opponentID, Goals: 0},
		},
		Outcome: models.OutcomeWin,
	}
}

func statsFor(rating string) []models.RawSeasonStats {
	return []models.RawSeasonStats{{Wins: "10", Ties: "2", Losses: "3", SkillRating: rating}}
}

func TestEnrichFetchesEachOpponentOnce(t *testing.T) {
	provider := &fakeProvider{
		FetchSeasonStatsFn: func(_ context.Context, clubID string, _ models.Platform) ([]models.RawSeasonStats, error) {
			return statsFor("1500"), nil
		},
	}

	opponents := []string{"200", "300", "400"}
	var matches []models.MatchResult
	for i := 0; i < 10; i++ {
		matches = append(matches, matchAgainst(opponents[i%len(opponents)]))
	}

	e := NewEnricher(provider, 2, testLogger)
	stats, rc, err := e.Enrich(context.Background(), matches, "100", models.PlatformGen5)
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, 1, provider.calls("100"))
	for _, id := range opponents {
		assert.Equal(t, 1, provider.calls(id), "opponent %s", id)
	}
	assert.Equal(t, 4, provider.totalCalls())
	assert.Len(t, rc, 3)
}

func TestEnrichPartialFailure(t *testing.T) {
	provider := &fakeProvider{
		FetchSeasonStatsFn: func(_ context.Context, clubID string, _ models.Platform) ([]models.RawSeasonStats, error) {
			switch clubID {
			case "300":
				return nil, errBoom
			case "400":
				return statsFor("n/a"), nil
			case "500":
				return nil, nil
			}
			return statsFor("1450"), nil
		},
	}

	matches := []models.MatchResult{matchAgainst("200"), matchAgainst("300"), matchAgainst("400"), matchAgainst("500")}

	e := NewEnricher(provider, 4, testLogger)
	stats, rc, err := e.Enrich(context.Background(), matches, "100", models.PlatformGen5)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, models.Available(1450), stats.SkillRating)

	v, ok := rc.Lookup("200")
	assert.True(t, ok)
	assert.Equal(t, 1450, v)

	for _, id := range []string{"300", "400", "500"} {
		_, ok := rc.Lookup(id)
		assert.False(t, ok, "opponent %s", id)
		assert.Contains(t, rc, id)
	}
}

func TestEnrichPrimaryStats(t *testing.T) {
	t.Run("provider error is upstream failure", func(t *testing.T) {
		provider := &fakeProvider{
			FetchSeasonStatsFn: func(_ context.Context, clubID string, _ models.Platform) ([]models.RawSeasonStats, error) {
				return nil, errBoom
			},
		}
		_, _, err := NewEnricher(provider, 0, testLogger).Enrich(context.Background(), []models.MatchResult{matchAgainst("200")}, "100", models.PlatformGen5)
		assert.ErrorIs(t, err, ErrUpstream)
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("empty aggregate means compact mode", func(t *testing.T) {
		provider := &fakeProvider{
			FetchSeasonStatsFn: func(_ context.Context, clubID string, _ models.Platform) ([]models.RawSeasonStats, error) {
				if clubID == "100" {
					return nil, nil
				}
				return statsFor("1200"), nil
			},
		}
		stats, rc, err := NewEnricher(provider, 0, testLogger).Enrich(context.Background(), []models.MatchResult{matchAgainst("200")}, "100", models.PlatformGen5)
		require.NoError(t, err)
		assert.Nil(t, stats)
		assert.Len(t, rc, 1)
	})
}

func TestEnrichSkipsDegradedAndUnknownIDs(t *testing.T) {
	provider := &fakeProvider{
		FetchSeasonStatsFn: func(_ context.Context, clubID string, _ models.Platform) ([]models.RawSeasonStats, error) {
			return statsFor("1000"), nil
		},
	}
	matches := []models.MatchResult{
		{Teams: []models.TeamScore{{ClubID: "100"}}},
		{Teams: []models.TeamScore{{ClubID: "100"}, {ClubID: ""}}},
	}

	_, rc, err := NewEnricher(provider, 1, testLogger).Enrich(context.Background(), matches, "100", models.PlatformGen5)
	require.NoError(t, err)
	assert.Empty(t, rc)
	assert.Equal(t, 1, provider.totalCalls())
}

func TestToSeasonStats(t *testing.T) {
	raw := models.RawSeasonStats{Wins: "12", Ties: "x", Losses: "4", GamesPlayed: "19", Goals: "40", GoalsAgainst: "22", SkillRating: "1523.0"}
	got := toSeasonStats("100", raw)

	assert.Equal(t, &models.ClubSeasonStats{
		ClubID: "100", Wins: 12, Ties: 0, Losses: 4, GamesPlayed: 19, Goals: 40, GoalsAgainst: 22,
		SkillRating: models.Available(1523),
	}, got)
}

func TestDistinctOpponentsKeepsFirstSeenOrder(t *testing.T) {
	var matches []models.MatchResult
	for _, id := range []string{"300", "200", "300", "400", "200"} {
		matches = append(matches, matchAgainst(id))
	}
	assert.Equal(t, []string{"300", "200", "400"}, distinctOpponents(matches, "100"))
}
