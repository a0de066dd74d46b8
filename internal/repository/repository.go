package repository

import (
	"context"
	"database/sql"
)

type Subscriber interface {
	Add(ctx context.Context, chatID int64) error
	Remove(ctx context.Context, chatID int64) error
	List(ctx context.Context) ([]int64, error)
}

type Settings interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

type Repository struct {
	Subscriber
	Settings
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Subscriber: NewSubscriberPostgres(db),
		Settings:   NewSettingsPostgres(db),
		db:         db,
	}
}
