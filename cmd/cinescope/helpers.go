package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/mlegrand/cinescope/internal/catalogue"
	"github.com/mlegrand/cinescope/internal/config"
	"github.com/mlegrand/cinescope/internal/core"
	"github.com/mlegrand/cinescope/internal/poster"
)

// The catalogue client is the concrete Catalogue every frontend browses.
var _ core.Catalogue = (*catalogue.Client)(nil)

// Lipgloss styles used across commands.
var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
	styleScore   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("5")).
			MarginBottom(1)
)

// loadConfig loads and validates the configuration file.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// initCatalogue creates the catalogue client and poster prober.
func initCatalogue(cfg *config.Config, logger *slog.Logger) (*catalogue.Client, *poster.Prober) {
	logger.Info("catalogue client initialized", slog.String("base_url", cfg.API.BaseURL))
	return catalogue.New(cfg.API.BaseURL, cfg.API.PageSize, logger),
		poster.New(cfg.Poster.Fallback, logger)
}
