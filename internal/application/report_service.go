package application

import (
	"context"
	"fmt"
	"time"

	"fcclubs/internal/models"
)

type ReportConfig struct {
	Platform            string `env:"PLATFORM" envDefault:"common-gen5"`
	MatchType           string `env:"MATCH_TYPE" envDefault:"leagueMatch"`
	WithRatings         bool   `env:"WITH_RATINGS" envDefault:"true"`
	OpponentConcurrency int    `env:"OPPONENT_CONCURRENCY" envDefault:"4"`
	MaxMatches          int    `env:"MAX_MATCHES" envDefault:"0"`
	Timezone            string `env:"TIMEZONE" envDefault:"UTC"`
}

// Report holds one rendering per markup so each channel can pick its own.
type Report struct {
	Club     models.ClubRef
	HTML     string
	Markdown string
	Plain    string
}

// Text returns the rendering for markup.
func (r Report) Text(markup Markup) string {
	switch markup {
	case MarkupHTML:
		return r.HTML
	case MarkupMarkdown:
		return r.Markdown
	}
	return r.Plain
}

type ReportService struct {
	cfg        ReportConfig
	provider   StatsProvider
	resolver   *ClubResolver
	normalizer *Normalizer
	enricher   *Enricher
	renderer   *Renderer
	logger     Logger
}

func NewReportService(cfg ReportConfig, provider StatsProvider, logger Logger) *ReportService {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone %q, using UTC: %v", cfg.Timezone, err)
		loc = time.UTC
	}

	return &ReportService{
		cfg:        cfg,
		provider:   provider,
		resolver:   NewClubResolver(provider, logger),
		normalizer: NewNormalizer(time.Now),
		enricher:   NewEnricher(provider, cfg.OpponentConcurrency, logger),
		renderer:   NewRenderer(loc, cfg.MaxMatches),
		logger:     logger,
	}
}

// DefaultPlatform is used when a request does not name one.
func (s *ReportService) DefaultPlatform() models.Platform {
	if p, err := models.ParsePlatform(s.cfg.Platform); err == nil {
		return p
	}
	return models.PlatformGen5
}

func (s *ReportService) matchType() models.MatchType {
	if s.cfg.MatchType == "" {
		return models.MatchTypeLeague
	}
	return models.MatchType(s.cfg.MatchType)
}

// GetMatchesInfo resolves the club and returns its normalized recent matches.
func (s *ReportService) GetMatchesInfo(ctx context.Context, name string, platform models.Platform) (*models.ClubMatches, error) {
	if platform == "" {
		platform = s.DefaultPlatform()
	}

	club, err := s.resolver.Resolve(ctx, name, platform)
	if err != nil {
		return nil, err
	}

	raws, err := s.provider.FetchMatches(ctx, club.ClubID, club.Platform, s.matchType())
	if err != nil {
		return nil, fmt.Errorf("%w: matches for %s: %w", ErrUpstream, club.ClubID, err)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("%w: no matches for club %q", ErrNotFound, club.Name)
	}

	s.logger.Debug("fetched %d matches for %s (%s)", len(raws), club.Name, club.ClubID)

	return &models.ClubMatches{
		Club:    club,
		Matches: s.normalizer.NormalizeAll(raws, club.ClubID),
	}, nil
}

func (s *ReportService) GetSeasonStats(ctx context.Context, clubID string, platform models.Platform) (*models.ClubSeasonStats, error) {
	if platform == "" {
		platform = s.DefaultPlatform()
	}
	stats, err := s.enricher.SeasonStats(ctx, clubID, platform)
	if err != nil {
		return nil, fmt.Errorf("%w: season stats for %s: %w", ErrUpstream, clubID, err)
	}
	return stats, nil
}

func (s *ReportService) BuildReport(ctx context.Context, name string, platform models.Platform) (Report, error) {
	info, err := s.GetMatchesInfo(ctx, name, platform)
	if err != nil {
		return Report{}, err
	}

	in := ReportInput{Club: info.Club, Matches: info.Matches}
	if s.cfg.WithRatings {
		in.Stats, in.Ratings, err = s.enricher.Enrich(ctx, info.Matches, info.Club.ClubID, info.Club.Platform)
		if err != nil {
			return Report{}, err
		}
	}

	return Report{
		Club:     info.Club,
		HTML:     s.renderer.Render(in, MarkupHTML),
		Markdown: s.renderer.Render(in, MarkupMarkdown),
		Plain:    s.renderer.Render(in, MarkupPlain),
	}, nil
}
