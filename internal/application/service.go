package application

import (
	"context"

	"fcclubs/internal/models"
	"fcclubs/pkg/sheets"
)

type Logger interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// StatsProvider is the read-only boundary to the club statistics source.
type StatsProvider interface {
	SearchClub(ctx context.Context, name string, platform models.Platform) ([]models.ClubRef, error)
	FetchMatches(ctx context.Context, clubID string, platform models.Platform, matchType models.MatchType) ([]models.RawMatch, error)
	FetchSeasonStats(ctx context.Context, clubID string, platform models.Platform) ([]models.RawSeasonStats, error)
}

type SubscriberStore interface {
	Add(ctx context.Context, chatID int64) error
	Remove(ctx context.Context, chatID int64) error
	List(ctx context.Context) ([]int64, error)
}

// SettingsStore keeps small bits of state across restarts.
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Broadcaster delivers one report to many chats and reports the counts.
type Broadcaster interface {
	Broadcast(ctx context.Context, chatIDs []int64, report Report) (sent, failed int)
}

type Service struct {
	Reports       *ReportService
	Subscriptions *SubscriptionService
	Export        *ExportService
}

func NewService(cfg ReportConfig, provider StatsProvider, store SubscriberStore, settings SettingsStore, sheetsClient sheets.Client, ownerEmail string, logger Logger) *Service {
	reports := NewReportService(cfg, provider, logger)
	return &Service{
		Reports:       reports,
		Subscriptions: NewSubscriptionService(store, logger),
		Export:        NewExportService(reports, sheetsClient, settings, ownerEmail, logger),
	}
}
