package httpclient

import (
	"log/slog"
	"net/http"
	"time"
)

// Config holds timeout configuration.
type Config struct {
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout: 15 * time.Second,
	}
}

// Client wraps http.Client with request logging.
// The catalogue API is read-only and failures are accepted as lossy, so
// there is deliberately no retry loop here: a failed request surfaces
// once and the caller degrades.
type Client struct {
	http   *http.Client
	logger *slog.Logger
}

// New creates a new Client with a default http.Client.
func New(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// NewWithHTTPClient creates a Client with a custom http.Client.
func NewWithHTTPClient(httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// Do executes an HTTP request, logging the outcome.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// Debug, not warn: the owning client logs the failure once at
		// its own boundary.
		c.logger.Debug("request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Debug("request completed",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Int("status", resp.StatusCode),
		slog.String("elapsed", time.Since(start).String()),
	)
	return resp, nil
}
