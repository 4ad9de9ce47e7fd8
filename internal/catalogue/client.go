package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mlegrand/cinescope/internal/httpclient"
)

const (
	titlesPath = "/titles/"
	genresPath = "/genres/"

	// sortByScore orders listings best-first by IMDb score.
	sortByScore = "-imdb_score"

	// genrePageCeiling bounds the genre listing walk (exclusive).
	genrePageCeiling = 30
)

// Client is an OCMovies catalogue API client.
type Client struct {
	baseURL  string
	pageSize int
	http     *httpclient.Client
	logger   *slog.Logger
}

// New creates a new catalogue client.
func New(baseURL string, pageSize int, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		pageSize: pageSize,
		http:     httpclient.New(httpclient.DefaultConfig(), logger),
		logger:   logger,
	}
}

// NewForTest creates a catalogue client with a custom base URL for testing.
func NewForTest(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		pageSize: 7,
		http:     httpclient.New(httpclient.DefaultConfig(), logger),
		logger:   logger,
	}
}

// TopTitles returns up to limit titles ordered best-first by IMDb score,
// optionally scoped to a single genre. Missing pages truncate the result,
// they never fail it.
func (c *Client) TopTitles(ctx context.Context, genre string, limit int) []Title {
	params := url.Values{
		"sort_by":   {sortByScore},
		"page_size": {strconv.Itoa(c.pageSize)},
	}
	if genre != "" {
		params.Set("genre", genre)
	}

	// Exclusive ceiling: enough pages to cover limit, one spare for
	// short pages at the tail.
	ceiling := limit/c.pageSize + 2

	titles := fetchPages[Title](ctx, c, titlesPath, params, ceiling)
	if len(titles) > limit {
		titles = titles[:limit]
	}
	return titles
}

// AllGenres walks the genre listing and returns every genre name in API order.
func (c *Client) AllGenres(ctx context.Context) []string {
	genres := fetchPages[Genre](ctx, c, genresPath, nil, genrePageCeiling)

	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

// GetTitle retrieves the full record for one title.
// Both HTTP error statuses and transport failures collapse into a single
// returned error, logged exactly once here; callers treat it as "no data".
func (c *Client) GetTitle(ctx context.Context, id int) (*TitleDetails, error) {
	var details TitleDetails
	if err := c.get(ctx, fmt.Sprintf("%s%d", titlesPath, id), nil, &details); err != nil {
		c.logger.Warn("title fetch failed",
			slog.Int("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("get title %d: %w", id, err)
	}
	return &details, nil
}

// fetchPages sequentially fetches listing pages starting at page 1 and
// concatenates their results. It stops on a failed or malformed page
// (returning the accumulated prefix), when the envelope has no next page,
// or when pageNumber reaches pageCeiling. The ceiling is exclusive: at
// most pageCeiling-1 pages are fetched.
func fetchPages[T any](ctx context.Context, c *Client, path string, params url.Values, pageCeiling int) []T {
	var acc []T

	for pageNumber := 1; pageNumber < pageCeiling; pageNumber++ {
		p := url.Values{}
		for k, vs := range params {
			for _, v := range vs {
				p.Set(k, v)
			}
		}
		p.Set("page", strconv.Itoa(pageNumber))

		var env page[T]
		if err := c.get(ctx, path, p, &env); err != nil {
			c.logger.Warn("page fetch failed, returning partial results",
				slog.String("path", path),
				slog.Int("page", pageNumber),
				slog.Int("accumulated", len(acc)),
				slog.String("error", err.Error()),
			)
			return acc
		}

		// Absent results field means a malformed envelope.
		if env.Results == nil {
			c.logger.Warn("malformed page envelope, returning partial results",
				slog.String("path", path),
				slog.Int("page", pageNumber),
			)
			return acc
		}

		acc = append(acc, env.Results...)

		if env.Next == nil {
			break
		}
	}
	return acc
}

// get performs a GET request against the catalogue API and decodes the
// JSON response.
func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("catalogue API error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
