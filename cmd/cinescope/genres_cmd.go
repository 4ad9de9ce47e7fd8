package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mlegrand/cinescope/internal/catalogue/genres"
	"github.com/mlegrand/cinescope/internal/config"
)

func newGenresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List all catalogue genres",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGenres()
		},
	}
}

func runGenres() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	cat, _ := initCatalogue(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	names := cat.AllGenres(ctx)
	if len(names) == 0 {
		fmt.Println(styleDim.Render("No genres found. The catalogue may be unreachable."))
		return nil
	}

	fmt.Println(styleHeader.Render("Genres"))
	for _, n := range names {
		fr := genres.Translate(n)
		if fr == n {
			fmt.Println(n)
		} else {
			fmt.Printf("%s %s\n", fr, styleDim.Render("("+n+")"))
		}
	}
	return nil
}
