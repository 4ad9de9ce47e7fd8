package core

import (
	"context"

	"github.com/mlegrand/cinescope/internal/catalogue"
)

// Catalogue is the read-only port every frontend (TUI, CLI, Telegram,
// MCP) browses the film catalogue through. Listing operations are lossy
// by contract: upstream failures truncate the result instead of
// surfacing an error.
type Catalogue interface {
	// TopTitles returns up to limit titles ordered best-first by IMDb
	// score, optionally scoped to one genre.
	TopTitles(ctx context.Context, genre string, limit int) []catalogue.Title

	// AllGenres returns every known genre name in API order.
	AllGenres(ctx context.Context) []string

	// GetTitle retrieves the full record for one title. An error means
	// "no data"; callers degrade, they do not crash.
	GetTitle(ctx context.Context, id int) (*catalogue.TitleDetails, error)
}

// PosterResolver resolves a poster URL to a usable image source,
// substituting a fallback for unreachable images.
type PosterResolver interface {
	Resolve(ctx context.Context, candidate string) string
}
