package application

import (
	"context"
	"errors"
	"sync"

	"fcclubs/internal/models"
	"fcclubs/pkg/logger"
)

var errBoom = errors.New("boom")

var testLogger = logger.Discard()

type fakeProvider struct {
	SearchClubFn       func(ctx context.Context, name string, platform models.Platform) ([]models.ClubRef, error)
	FetchMatchesFn     func(ctx context.Context, clubID string, platform models.Platform, matchType models.MatchType) ([]models.RawMatch, error)
	FetchSeasonStatsFn func(ctx context.Context, clubID string, platform models.Platform) ([]models.RawSeasonStats, error)

	mu         sync.Mutex
	statsCalls map[string]int
}

func (f *fakeProvider) SearchClub(ctx context.Context, name string, platform models.Platform) ([]models.ClubRef, error) {
	if f.SearchClubFn == nil {
		return nil, nil
	}
	return f.SearchClubFn(ctx, name, platform)
}

func (f *fakeProvider) FetchMatches(ctx context.Context, clubID string, platform models.Platform, matchType models.MatchType) ([]models.RawMatch, error) {
	if f.FetchMatchesFn == nil {
		return nil, nil
	}
	return f.FetchMatchesFn(ctx, clubID, platform, matchType)
}

func (f *fakeProvider) FetchSeasonStats(ctx context.Context, clubID string, platform models.Platform) ([]models.RawSeasonStats, error) {
	f.mu.Lock()
	if f.statsCalls == nil {
		f.statsCalls = make(map[string]int)
	}
	f.statsCalls[clubID]++
	f.mu.Unlock()

	if f.FetchSeasonStatsFn == nil {
		return nil, nil
	}
	return f.FetchSeasonStatsFn(ctx, clubID, platform)
}

func (f *fakeProvider) calls(clubID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statsCalls[clubID]
}

func (f *fakeProvider) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.statsCalls {
		n += c
	}
	return n
}

type fakeStore struct {
	mu      sync.Mutex
	ids     []int64
	listErr error
}

func (f *fakeStore) Add(_ context.Context, chatID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.ids {
		if id == chatID {
			return nil
		}
	}
	f.ids = append(f.ids, chatID)
	return nil
}

func (f *fakeStore) Remove(_ context.Context, chatID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, id := range f.ids {
		if id == chatID {
			f.ids = append(f.ids[:i], f.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeStore) List(_ context.Context) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]int64(nil), f.ids...), nil
}

type fakeBroadcaster struct {
	failFor  map[int64]bool
	reports  []Report
	received []int64
}

func (f *fakeBroadcaster) Broadcast(_ context.Context, chatIDs []int64, report Report) (int, int) {
	f.reports = append(f.reports, report)
	sent, failed := 0, 0
	for _, id := range chatIDs {
		if f.failFor[id] {
			failed++
			continue
		}
		f.received = append(f.received, id)
		sent++
	}
	return sent, failed
}

type fakeSheets struct {
	created  int
	cleared  []string
	updated  [][]interface{}
	perms    []string
	public   bool
	createFn func(title string) (string, string, error)
}

func (f *fakeSheets) CreateSpreadsheet(_ context.Context, title string) (string, string, error) {
	f.created++
	if f.createFn != nil {
		return f.createFn(title)
	}
	return "sheet-1", "https://docs.google.com/spreadsheets/d/sheet-1", nil
}

func (f *fakeSheets) AddPermission(_ context.Context, _, email, role string) error {
	f.perms = append(f.perms, email+":"+role)
	return nil
}

func (f *fakeSheets) MakePublic(context.Context, string) error {
	f.public = true
	return nil
}

func (f *fakeSheets) ClearRange(_ context.Context, _, rangeStr string) error {
	f.cleared = append(f.cleared, rangeStr)
	return nil
}

func (f *fakeSheets) UpdateValues(_ context.Context, _, _ string, values [][]interface{}) error {
	f.updated = values
	return nil
}

func rawMatch(id string, ts int64, home, away models.RawMatchClub, players ...models.RawClubPlayers) models.RawMatch {
	return models.RawMatch{
		MatchID:   id,
		Timestamp: ts,
		Clubs:     []models.RawMatchClub{home, away},
		Players:   players,
	}
}

func club(id, name, goals string) models.RawMatchClub {
	return models.RawMatchClub{ClubID: id, Name: name, Goals: goals, WinnerByDNF: "0"}
}

func standout(name, rating string) models.RawMatchPlayer {
	return models.RawMatchPlayer{PlayerID: name, PlayerName: name, Rating: rating, ManOfTheMatch: "1"}
}

func regular(name, rating string) models.RawMatchPlayer {
	return models.RawMatchPlayer{PlayerID: name, PlayerName: name, Rating: rating, ManOfTheMatch: "0"}
}
