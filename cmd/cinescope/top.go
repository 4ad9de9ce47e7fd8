package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mlegrand/cinescope/internal/catalogue"
	"github.com/mlegrand/cinescope/internal/catalogue/genres"
	"github.com/mlegrand/cinescope/internal/config"
)

func newTopCmd() *cobra.Command {
	var genre string
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the best-rated films",
		Long:  "Print the catalogue's best-rated films, optionally scoped to one genre.",
		Example: `  cinescope top
  cinescope top --genre Mystery -n 10`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTop(genre, limit)
		},
	}

	cmd.Flags().StringVarP(&genre, "genre", "g", "", "scope the ranking to one genre")
	cmd.Flags().IntVarP(&limit, "limit", "n", 7, "number of films to show")
	return cmd
}

func runTop(genre string, limit int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	cat, _ := initCatalogue(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	titles := cat.TopTitles(ctx, genre, limit)
	if len(titles) == 0 {
		fmt.Println(styleDim.Render("No films found. The catalogue may be unreachable."))
		return nil
	}

	heading := "Films les mieux notés"
	if genre != "" {
		heading = "Top " + genres.Translate(genre)
	}
	fmt.Println(styleHeader.Render(heading))
	fmt.Print(formatTitleListing(titles))
	return nil
}

// formatTitleListing renders a ranked listing, one film per line.
func formatTitleListing(titles []catalogue.Title) string {
	var b strings.Builder
	for i, t := range titles {
		line := fmt.Sprintf("%s %s",
			styleDim.Render(fmt.Sprintf("%2d.", i+1)),
			t.Title,
		)
		if t.Year > 0 {
			line += styleDim.Render(fmt.Sprintf(" (%d)", t.Year))
		}
		if t.IMDbScore > 0 {
			line += "  " + styleScore.Render(fmt.Sprintf("%.1f", t.IMDbScore))
		}
		line += styleDim.Render(fmt.Sprintf("  #%d", t.ID))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
