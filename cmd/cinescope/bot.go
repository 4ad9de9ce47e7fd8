package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mlegrand/cinescope/internal/config"
	"github.com/mlegrand/cinescope/internal/frontend/telegram"
)

// newBotCmd returns the "bot" subcommand: the Telegram frontend.
func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Start the Telegram bot",
		Long:  "Start the Telegram frontend for browsing the catalogue in chat.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBot()
		},
	}
}

func runBot() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cfg.Telegram == nil {
		return fmt.Errorf("telegram is not configured (set telegram.bot_token or CINESCOPE_TELEGRAM_BOT_TOKEN)")
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	cat, _ := initCatalogue(cfg, logger)

	bot, err := telegram.New(
		cfg.Telegram.BotToken,
		cfg.Telegram.AllowedUserIDs,
		cat,
		cfg.Rails.Size,
		logger,
	)
	if err != nil {
		return fmt.Errorf("create telegram bot: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return bot.Start(ctx)
}
