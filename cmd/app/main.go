// Command fcclubs serves FC Clubs match reports over Telegram, Discord and a
// notify endpoint, or prints a single report.
//
// Usage:
//
//	fcclubs serve
//	fcclubs report Metallist --platform gen5
package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fcclubs/internal/application"
	"fcclubs/internal/delivery/discord"
	"fcclubs/internal/delivery/httpapi"
	"fcclubs/internal/delivery/telegram"
	"fcclubs/internal/integration"
	"fcclubs/internal/models"
	"fcclubs/internal/repository"
	"fcclubs/pkg/config"
	"fcclubs/pkg/logger"
	service "fcclubs/pkg/services"
	"fcclubs/pkg/sheets"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "fcclubs",
		Short:         "FC Clubs match reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCmd())
	root.AddCommand(reportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if err := config.ReadEnvConfig(cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot, Discord bot and notify endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	log := logger.NewLogger(&logger.Config{Level: cfg.LogLevel})

	if cfg.TelegramToken == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is required")
	}

	db, err := repository.NewPostgresDB(&cfg.Repo)
	if err != nil {
		return fmt.Errorf("failed to init db: %w", err)
	}
	defer db.Close()

	log.Info("Running migrations...")
	if err := repository.RunMigrations(db, migrationFS); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Migrations applied successfully")

	repos := repository.NewRepository(db)
	provider := integration.NewEAFCClient(&cfg.EAFC)

	var sheetsClient sheets.Client
	if cfg.GoogleCredentialsFile != "" {
		client, err := sheets.NewGoogleSheetsClient(ctx, cfg.GoogleCredentialsFile)
		if err != nil {
			return fmt.Errorf("failed to init google sheets: %w", err)
		}
		sheetsClient = client
	} else {
		log.Warn("GOOGLE_CREDENTIALS_FILE is not set, sheet sync is disabled")
	}

	services := application.NewService(cfg.Report, provider, repos, repos, sheetsClient, cfg.GoogleOwnerEmail, log)
	if cfg.SpreadsheetID != "" {
		services.Export.SetSpreadsheetID(cfg.SpreadsheetID)
	}

	manager := service.NewManager(log)

	tg := telegram.NewBot(cfg.TelegramToken, cfg.AdminTelegramIDs, services, log)
	notifier := application.NewNotifyService(services.Reports, services.Subscriptions, tg, log)
	tg.SetNotifier(notifier)
	manager.AddService(tg)

	if cfg.DiscordToken != "" {
		dc, err := discord.NewBot(cfg, services, log)
		if err != nil {
			return err
		}
		manager.AddService(dc)
	}

	manager.AddService(httpapi.NewServer(cfg.NotifyAddr, notifier, log))

	return manager.Run(ctx)
}

func reportCmd() *cobra.Command {
	var platform, out string
	var plain bool
	cmd := &cobra.Command{
		Use:   "report <club>",
		Short: "Print the latest matches of a club",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var p models.Platform
			if platform != "" {
				if p, err = models.ParsePlatform(platform); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reports := application.NewReportService(cfg.Report, integration.NewEAFCClient(&cfg.EAFC), logger.Discard())
			report, err := reports.BuildReport(ctx, args[0], p)
			if err != nil {
				return err
			}

			text := report.Plain
			if !plain {
				text = report.HTML
			}

			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			}
			return os.WriteFile(out, []byte(text+"\n"), 0o644)
		},
	}
	cmd.Flags().StringVar(&platform, "platform", "", "Platform (gen5, gen4, switch)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&plain, "plain", true, "Print without HTML markup")
	return cmd
}
