package application

import (
	"context"
	"fmt"

	"fcclubs/internal/models"

	"golang.org/x/sync/errgroup"
)

type Enricher struct {
	provider    StatsProvider
	concurrency int
	logger      Logger
}

func NewEnricher(provider StatsProvider, concurrency int, logger Logger) *Enricher {
	if concurrency <= 0 {
		concurrency = defaultOpponentConcurrency
	}
	return &Enricher{provider: provider, concurrency: concurrency, logger: logger}
}

// SeasonStats returns nil stats when the provider has no aggregate for clubID.
func (e *Enricher) SeasonStats(ctx context.Context, clubID string, platform models.Platform) (*models.ClubSeasonStats, error) {
	raws, err := e.provider.FetchSeasonStats(ctx, clubID, platform)
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, nil
	}
	return toSeasonStats(clubID, raws[0]), nil
}

// Enrich loads the primary club aggregate and one rating per distinct opponent.
// Opponent failures never fail the call; they become unavailable entries.
func (e *Enricher) Enrich(ctx context.Context, matches []models.MatchResult, primaryClubID string, platform models.Platform) (*models.ClubSeasonStats, models.RatingContext, error) {
	stats, err := e.SeasonStats(ctx, primaryClubID, platform)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: season stats for %s: %w", ErrUpstream, primaryClubID, err)
	}

	opponents := distinctOpponents(matches, primaryClubID)
	ratings := make([]models.Rating, len(opponents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, id := range opponents {
		i, id := i, id
		g.Go(func() error {
			ratings[i] = e.opponentRating(gctx, id, platform)
			return nil
		})
	}
	_ = g.Wait()

	rc := make(models.RatingContext, len(opponents))
	for i, id := range opponents {
		rc[id] = ratings[i]
	}

	return stats, rc, nil
}

func (e *Enricher) opponentRating(ctx context.Context, clubID string, platform models.Platform) models.Rating {
	raws, err := e.provider.FetchSeasonStats(ctx, clubID, platform)
	if err != nil {
		e.logger.Warn("opponent %s rating unavailable: %v", clubID, err)
		return models.Unavailable()
	}
	if len(raws) == 0 {
		e.logger.Warn("opponent %s rating unavailable: empty stats", clubID)
		return models.Unavailable()
	}
	v, ok := parseRating(raws[0].SkillRating)
	if !ok {
		e.logger.Warn("opponent %s rating unavailable: bad value %q", clubID, raws[0].SkillRating)
		return models.Unavailable()
	}
	return models.Available(v)
}

func distinctOpponents(matches []models.MatchResult, primaryClubID string) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, m := range matches {
		for _, t := range m.Teams {
			if t.ClubID == "" || t.ClubID == primaryClubID {
				continue
			}
			if _, ok := seen[t.ClubID]; ok {
				continue
			}
			seen[t.ClubID] = struct{}{}
			ids = append(ids, t.ClubID)
		}
	}
	return ids
}

func toSeasonStats(clubID string, raw models.RawSeasonStats) *models.ClubSeasonStats {
	stats := &models.ClubSeasonStats{
		ClubID:       clubID,
		Wins:         parseIntOrZero(raw.Wins),
		Ties:         parseIntOrZero(raw.Ties),
		Losses:       parseIntOrZero(raw.Losses),
		GamesPlayed:  parseIntOrZero(raw.GamesPlayed),
		Goals:        parseIntOrZero(raw.Goals),
		GoalsAgainst: parseIntOrZero(raw.GoalsAgainst),
		SkillRating:  models.Unavailable(),
	}
	if v, ok := parseRating(raw.SkillRating); ok {
		stats.SkillRating = models.Available(v)
	}
	return stats
}
