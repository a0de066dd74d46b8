package application

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"fcclubs/internal/models"
)

type ClubResolver struct {
	provider StatsProvider
	logger   Logger
}

func NewClubResolver(provider StatsProvider, logger Logger) *ClubResolver {
	return &ClubResolver{provider: provider, logger: logger}
}

// Resolve picks the first candidate the provider returns for name. No fuzzy
// scoring is applied, so clubs sharing a name resolve to the provider's first.
func (r *ClubResolver) Resolve(ctx context.Context, name string, platform models.Platform) (models.ClubRef, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxClubNameLength {
		return models.ClubRef{}, fmt.Errorf("%w: %q", ErrInvalidClubName, name)
	}

	candidates, err := r.provider.SearchClub(ctx, name, platform)
	if err != nil {
		return models.ClubRef{}, fmt.Errorf("%w: search club %q: %w", ErrUpstream, name, err)
	}
	if len(candidates) == 0 {
		return models.ClubRef{}, fmt.Errorf("%w: club %q on %s", ErrNotFound, name, platform)
	}

	club := candidates[0]
	if club.Platform == "" {
		club.Platform = platform
	}
	if club.Name == "" {
		club.Name = name
	}
	if len(candidates) > 1 {
		r.logger.Debug("club search %q returned %d candidates, using %s", name, len(candidates), club.ClubID)
	}

	return club, nil
}
