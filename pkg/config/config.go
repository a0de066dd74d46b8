package config

import (
	"fcclubs/internal/application"
	"fcclubs/internal/integration"
	"fcclubs/internal/repository"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Repo     repository.Config        `envPrefix:"REPO_"`
	EAFC     integration.Config       `envPrefix:"EAFC_"`
	Report   application.ReportConfig `envPrefix:"REPORT_"`
	LogLevel string                   `env:"LOGGER_LEVEL" envDefault:"debug"`

	TelegramToken    string  `env:"TELEGRAM_BOT_TOKEN" envDefault:""`
	AdminTelegramIDs []int64 `env:"ADMIN_TELEGRAM_IDS" envSeparator:","`

	DiscordToken     string   `env:"DISCORD_TOKEN" envDefault:""`
	DiscordGuildID   string   `env:"DISCORD_GUILD_ID" envDefault:""`
	AllowedChannelID string   `env:"ALLOWED_CHANNEL_ID" envDefault:""`
	AdminUserIDs     []string `env:"ADMIN_USER_IDS" envSeparator:","`

	NotifyAddr string `env:"NOTIFY_ADDR" envDefault:":5001"`

	GoogleCredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" envDefault:""`
	SpreadsheetID         string `env:"GOOGLE_SPREADSHEET_ID" envDefault:""`
	GoogleOwnerEmail      string `env:"GOOGLE_OWNER_EMAIL" envDefault:""`
}

func ReadEnvConfig(cfg *Config) error {
	return env.Parse(cfg)
}
