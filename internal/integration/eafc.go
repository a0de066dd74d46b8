package integration

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fcclubs/internal/models"

	"golang.org/x/time/rate"
)

const (
	routeClubSearch   = "allTimeLeaderboard/search"
	routeOverallStats = "clubs/overallStats"
	routeMatches      = "clubs/matches"

	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:109.0) Gecko/20100101 Firefox/112.0"
	maxBodySize      = 8 * 1024 * 1024
)

type Config struct {
	BaseURL           string        `env:"BASE_URL" envDefault:"https://proclubs.ea.com/api/fc/"`
	Timeout           time.Duration `env:"TIMEOUT" envDefault:"10s"`
	RequestsPerMinute int           `env:"REQUESTS_PER_MINUTE" envDefault:"120"`
	UserAgent         string        `env:"USER_AGENT" envDefault:""`
}

// EAFCClient talks to the EA Pro Clubs stats API.
type EAFCClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

func NewEAFCClient(cfg *Config) *EAFCClient {
	baseURL := cfg.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(cfg.RequestsPerMinute) / 60.0)
	}

	return &EAFCClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    baseURL,
		userAgent:  userAgent,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

func (c *EAFCClient) SearchClub(ctx context.Context, name string, platform models.Platform) ([]models.ClubRef, error) {
	body, err := c.get(ctx, routeClubSearch, url.Values{
		"clubName": {name},
		"platform": {string(platform)},
	})
	if err != nil {
		return nil, err
	}
	return decodeClubSearch(body)
}

func (c *EAFCClient) FetchMatches(ctx context.Context, clubID string, platform models.Platform, matchType models.MatchType) ([]models.RawMatch, error) {
	body, err := c.get(ctx, routeMatches, url.Values{
		"clubIds":   {clubID},
		"platform":  {string(platform)},
		"matchType": {string(matchType)},
	})
	if err != nil {
		return nil, err
	}
	return decodeMatches(body)
}

func (c *EAFCClient) FetchSeasonStats(ctx context.Context, clubID string, platform models.Platform) ([]models.RawSeasonStats, error) {
	body, err := c.get(ctx, routeOverallStats, url.Values{
		"clubIds":  {clubID},
		"platform": {string(platform)},
	})
	if err != nil {
		return nil, err
	}
	return decodeSeasonStats(body)
}

func (c *EAFCClient) get(ctx context.Context, route string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + route
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", route, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("eafc %s returned %d: %s", route, resp.StatusCode, truncate(body, 200))
	}

	return body, nil
}

func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
