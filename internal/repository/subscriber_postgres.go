package repository

import (
	"context"
	"database/sql"
)

type SubscriberPostgres struct {
	db *sql.DB
}

func NewSubscriberPostgres(db *sql.DB) *SubscriberPostgres {
	return &SubscriberPostgres{db: db}
}

func (r *SubscriberPostgres) Add(ctx context.Context, chatID int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscribers (chat_id) VALUES ($1)
		ON CONFLICT (chat_id) DO NOTHING
	`, chatID)
	return err
}

func (r *SubscriberPostgres) Remove(ctx context.Context, chatID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM subscribers WHERE chat_id = $1`, chatID)
	return err
}

func (r *SubscriberPostgres) List(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT chat_id FROM subscribers ORDER BY subscribed_at, chat_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
