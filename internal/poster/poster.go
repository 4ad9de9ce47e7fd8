// Package poster resolves film poster URLs, substituting a local
// fallback when the remote image does not exist.
package poster

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mlegrand/cinescope/internal/httpclient"
)

// Prober checks poster URLs for existence before they are handed to a view.
type Prober struct {
	http     *httpclient.Client
	fallback string
	logger   *slog.Logger
}

// New creates a Prober that substitutes fallback for unreachable posters.
func New(fallback string, logger *slog.Logger) *Prober {
	return &Prober{
		http:     httpclient.New(httpclient.DefaultConfig(), logger),
		fallback: fallback,
		logger:   logger,
	}
}

// Fallback returns the configured fallback path.
func (p *Prober) Fallback() string {
	return p.fallback
}

// Resolve probes candidate with a HEAD request and returns it when the
// image exists, or the fallback path otherwise. The caller gets a usable
// source either way and can sequence the probe deterministically.
func (p *Prober) Resolve(ctx context.Context, candidate string) string {
	if candidate == "" {
		return p.fallback
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, candidate, http.NoBody)
	if err != nil {
		p.logger.Debug("invalid poster URL", slog.String("url", candidate))
		return p.fallback
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return p.fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.logger.Debug("poster not reachable",
			slog.String("url", candidate),
			slog.Int("status", resp.StatusCode),
		)
		return p.fallback
	}
	return candidate
}

// ResolveAll resolves a batch of candidates in input order.
func (p *Prober) ResolveAll(ctx context.Context, candidates []string) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = p.Resolve(ctx, c)
	}
	return out
}
