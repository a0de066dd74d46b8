package telegram

import (
	"context"
	"fmt"
	"os"
	"sync"

	"fcclubs/internal/application"
	"fcclubs/internal/delivery"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Bot struct {
	token    string
	api      botAPI
	services *application.Service
	selector *delivery.Selector[int64]
	logger   application.Logger
	adminIDs map[int64]struct{}

	mu       sync.RWMutex
	notifier *application.NotifyService
}

func NewBot(token string, adminIDs []int64, services *application.Service, logger application.Logger) *Bot {
	admins := make(map[int64]struct{})
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	b := &Bot{
		token:    token,
		services: services,
		logger:   logger,
		adminIDs: admins,
	}
	b.selector = delivery.NewSelector[int64](b, delivery.TelegramCeiling, application.MarkupHTML, logger)
	return b
}

// SetNotifier enables the admin /notify command.
func (b *Bot) SetNotifier(n *application.NotifyService) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notifier = n
}

func (b *Bot) Name() string {
	return "telegram bot"
}

func (b *Bot) Init() error {
	if b.api != nil {
		return nil
	}
	api, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("failed to create telegram bot: %w", err)
	}
	b.logger.Info("Telegram bot authorized on account %s", api.Self.UserName)
	b.api = api
	return nil
}

func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) Stop() {
	if b.api != nil {
		b.api.StopReceivingUpdates()
	}
}

func (b *Bot) SendText(_ context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendDocument(_ context.Context, chatID int64, path, name, caption string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileReader{Name: name, Reader: f})
	doc.Caption = caption
	_, err = b.api.Send(doc)
	return err
}

// Broadcast implements application.Broadcaster.
func (b *Bot) Broadcast(ctx context.Context, chatIDs []int64, report application.Report) (int, int) {
	res := b.selector.FanOut(ctx, chatIDs, report)
	return res.Sent, res.Failed
}
