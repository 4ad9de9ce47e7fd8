package main

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mlegrand/cinescope/internal/config"
	"github.com/mlegrand/cinescope/internal/render"
)

func newMovieCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "movie <id>",
		Short: "Show full details for one film",
		Example: `  cinescope movie 1508669`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid film id %q", args[0])
			}
			return runMovie(id)
		},
	}
}

func runMovie(id int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	cat, posters := initCatalogue(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	details, err := cat.GetTitle(ctx, id)
	if err != nil {
		// The failure is already logged; render the placeholder card.
		details = nil
	}

	var modal render.ModalTarget
	modal.Fill(details)
	modal.ImageSrc = posters.Resolve(ctx, modal.ImageSrc)

	fmt.Println(render.ModalView(modal, 78))
	return nil
}
