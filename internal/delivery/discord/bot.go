package discord

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"fcclubs/internal/application"
	"fcclubs/internal/delivery"
	"fcclubs/pkg/config"

	"github.com/bwmarrin/discordgo"
)

// interactionAPI is the part of *discordgo.Session the handlers talk to.
type interactionAPI interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Bot struct {
	session  *discordgo.Session
	api      interactionAPI
	services *application.Service
	selector *delivery.Selector[*discordgo.Interaction]
	logger   application.Logger
	commands []*discordgo.ApplicationCommand

	guildID          string
	adminIDs         map[string]struct{}
	allowedChannelID string

	mu  sync.RWMutex
	ctx context.Context
}

func NewBot(cfg *config.Config, services *application.Service, logger application.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	admins := make(map[string]struct{})
	for _, id := range cfg.AdminUserIDs {
		cleanID := strings.TrimSpace(id)
		if cleanID != "" {
			admins[cleanID] = struct{}{}
		}
	}

	b := &Bot{
		session:          s,
		api:              s,
		services:         services,
		logger:           logger,
		guildID:          cfg.DiscordGuildID,
		adminIDs:         admins,
		allowedChannelID: cfg.AllowedChannelID,
		ctx:              context.Background(),
	}
	b.selector = delivery.NewSelector[*discordgo.Interaction](b, delivery.DiscordCeiling, application.MarkupMarkdown, logger)
	b.addCommands(
		b.newMatchesCommand(),
		b.newExportCommand(),
		b.newSyncSheetCommand(),
	)
	return b, nil
}

func (b *Bot) Name() string {
	return "discord bot"
}

func (b *Bot) Init() error {
	b.session.AddHandler(b.onInteraction)
	return nil
}

func (b *Bot) Run(ctx context.Context) {
	b.mu.Lock()
	b.ctx = ctx
	b.mu.Unlock()

	if err := b.session.Open(); err != nil {
		b.logger.Error("failed to open discord session: %v", err)
		return
	}

	b.logger.Info("Discord bot started, registering %d slash commands", len(b.commands))

	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.guildID, b.commands)
	if err != nil {
		b.logger.Error("failed to register commands: %v", err)
		return
	}
	b.logger.Info("slash commands registered")
}

func (b *Bot) Stop() {
	if err := b.session.Close(); err != nil {
		b.logger.Warn("failed to close discord session: %v", err)
	}
}

func (b *Bot) onInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	b.dispatch(i.Interaction)
}

func (b *Bot) dispatch(i *discordgo.Interaction) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case commandMatches:
		b.ensureChannel(i, b.handleMatches)
	case commandExport:
		b.ensureChannel(i, b.handleExport)
	case commandSyncSheet:
		b.ensureAdmin(i, b.handleSyncSheet)
	}
}

func (b *Bot) requestContext() (context.Context, context.CancelFunc) {
	b.mu.RLock()
	parent := b.ctx
	b.mu.RUnlock()
	return context.WithTimeout(parent, interactionTimeout)
}

// SendText replaces the deferred reply with text.
func (b *Bot) SendText(_ context.Context, i *discordgo.Interaction, text string) error {
	_, err := b.api.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: ptr(text)})
	return err
}

// SendDocument replaces the deferred reply with caption and the file at path.
func (b *Bot) SendDocument(_ context.Context, i *discordgo.Interaction, path, name, caption string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = b.api.InteractionResponseEdit(i, &discordgo.WebhookEdit{
		Content: ptr(caption),
		Files:   []*discordgo.File{{Name: name, ContentType: "text/plain", Reader: f}},
	})
	return err
}
