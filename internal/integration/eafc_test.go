package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fcclubs/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matchesPayload = `[
  {
    "matchId": "m1",
    "timestamp": 1700000000,
    "clubs": {
      "222": {"goals": "1", "winnerByDnf": "0", "details": {"name": "Rivals"}},
      "111": {"goals": 3, "winnerByDnf": "0", "details": {"name": "Metallist"}}
    },
    "players": {
      "222": {"9": {"playername": "Bob", "rating": "6.1", "mom": "0"}},
      "111": {
        "7": {"playername": "Ivan", "rating": "8.50", "mom": "1"},
        "8": {"playername": "Petro", "rating": "7.0", "mom": "0"}
      }
    }
  }
]`

func newTestClient(t *testing.T, h http.HandlerFunc) *EAFCClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return NewEAFCClient(&Config{BaseURL: srv.URL, Timeout: time.Second})
}

func TestFetchMatchesKeepsSourceOrder(t *testing.T) {
	var gotQuery, gotAgent, gotAccept string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clubs/matches", r.URL.Path)
		gotQuery = r.URL.RawQuery
		gotAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(matchesPayload))
	})

	matches, err := c.FetchMatches(context.Background(), "111", models.PlatformGen5, models.MatchTypeLeague)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Contains(t, gotQuery, "clubIds=111")
	assert.Contains(t, gotQuery, "matchType=leagueMatch")
	assert.Contains(t, gotQuery, "platform=common-gen5")
	assert.Equal(t, defaultUserAgent, gotAgent)
	assert.Equal(t, "application/json", gotAccept)

	m := matches[0]
	assert.Equal(t, "m1", m.MatchID)
	assert.Equal(t, int64(1700000000), m.Timestamp)

	require.Len(t, m.Clubs, 2)
	assert.Equal(t, "222", m.Clubs[0].ClubID)
	assert.Equal(t, "Rivals", m.Clubs[0].Name)
	assert.Equal(t, "111", m.Clubs[1].ClubID)
	assert.Equal(t, "3", m.Clubs[1].Goals)

	require.Len(t, m.Players, 2)
	assert.Equal(t, "111", m.Players[1].ClubID)
	require.Len(t, m.Players[1].Players, 2)
	assert.Equal(t, "Ivan", m.Players[1].Players[0].PlayerName)
	assert.Equal(t, "8.50", m.Players[1].Players[0].Rating)
	assert.Equal(t, "1", m.Players[1].Players[0].ManOfTheMatch)
}

func TestSearchClub(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/allTimeLeaderboard/search", r.URL.Path)
		assert.Equal(t, "Metallist", r.URL.Query().Get("clubName"))
		_, _ = w.Write([]byte(`[
			{"clubId": "111", "clubName": "metallist", "platform": "common-gen5", "clubInfo": {"name": "Metallist"}},
			{"clubId": 333, "clubName": "Metallist 2", "platform": "common-gen5"}
		]`))
	})

	clubs, err := c.SearchClub(context.Background(), "Metallist", models.PlatformGen5)
	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, models.ClubRef{ClubID: "111", Name: "Metallist", Platform: models.PlatformGen5}, clubs[0])
	assert.Equal(t, "333", clubs[1].ClubID)
	assert.Equal(t, "Metallist 2", clubs[1].Name)
}

func TestFetchSeasonStats(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clubs/overallStats", r.URL.Path)
		_, _ = w.Write([]byte(`[{"clubId":"111","wins":"10","ties":"2","losses":"3","gamesPlayed":"15","goals":"40","goalsAgainst":"20","skillRating":"1420"}]`))
	})

	stats, err := c.FetchSeasonStats(context.Background(), "111", models.PlatformGen5)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "1420", stats[0].SkillRating)
	assert.Equal(t, "10", stats[0].Wins)
	assert.Equal(t, "20", stats[0].GoalsAgainst)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `oops`},
		{name: "forbidden", status: http.StatusForbidden, body: `denied`},
		{name: "not json", status: http.StatusOK, body: `<html>`},
		{name: "object instead of array", status: http.StatusOK, body: `{"error":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.FetchMatches(context.Background(), "111", models.PlatformGen5, models.MatchTypeLeague)
			assert.Error(t, err)
		})
	}
}

func TestCanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.SearchClub(ctx, "x", models.PlatformGen5)
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate([]byte("abc"), 5))
	assert.Equal(t, "ab...", truncate([]byte("abcdef"), 2))
}
