package application

import (
	"context"
	"fmt"
)

type SubscriptionService struct {
	store  SubscriberStore
	logger Logger
}

func NewSubscriptionService(store SubscriberStore, logger Logger) *SubscriptionService {
	return &SubscriptionService{store: store, logger: logger}
}

// Subscribe is idempotent: subscribing twice keeps a single row.
func (s *SubscriptionService) Subscribe(ctx context.Context, chatID int64) error {
	if err := s.store.Add(ctx, chatID); err != nil {
		return fmt.Errorf("subscribe %d: %w", chatID, err)
	}
	s.logger.Info("chat %d subscribed", chatID)
	return nil
}

func (s *SubscriptionService) Unsubscribe(ctx context.Context, chatID int64) error {
	if err := s.store.Remove(ctx, chatID); err != nil {
		return fmt.Errorf("unsubscribe %d: %w", chatID, err)
	}
	s.logger.Info("chat %d unsubscribed", chatID)
	return nil
}

func (s *SubscriptionService) Recipients(ctx context.Context) ([]int64, error) {
	ids, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return ids, nil
}
