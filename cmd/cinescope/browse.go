package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mlegrand/cinescope/internal/browse"
	"github.com/mlegrand/cinescope/internal/config"
)

// newBrowseCmd returns the "browse" subcommand: the interactive catalogue UI.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalogue interactively",
		Long: "Open the interactive catalogue browser: best film, ranked rails,\n" +
			"a genre selector, and a film detail overlay.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBrowse()
		},
	}
}

func runBrowse() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	cat, posters := initCatalogue(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	model := browse.New(ctx, browse.Options{
		Catalogue:   cat,
		Posters:     posters,
		RailSize:    cfg.Rails.Size,
		FixedGenres: cfg.Rails.Genres,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Bridge OS signal cancellation into the Bubble Tea event loop.
	go func() {
		<-ctx.Done()
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
