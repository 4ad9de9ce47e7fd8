// Package mcp exposes the film catalogue as MCP tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mlegrand/cinescope/internal/catalogue/genres"
	"github.com/mlegrand/cinescope/internal/core"
)

const defaultListLimit = 7

// Server wraps an MCP SDK server with catalogue tool handlers.
type Server struct {
	server    *mcpsdk.Server
	catalogue core.Catalogue
	logger    *slog.Logger
}

// NewServer creates an MCP server with all catalogue tools registered.
func NewServer(cat core.Catalogue, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "cinescope",
			Version: version,
		},
		&mcpsdk.ServerOptions{Logger: logger},
	)

	srv := &Server{server: s, catalogue: cat, logger: logger}
	srv.registerTools()
	return srv
}

// ServeStdio runs the MCP server over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.server.Run(ctx, &mcpsdk.StdioTransport{})
}

// MCPServer returns the underlying MCP SDK server (for testing).
func (s *Server) MCPServer() *mcpsdk.Server {
	return s.server
}

func (s *Server) registerTools() {
	s.server.AddTool(topTitlesTool(), s.handleTopTitles)
	s.server.AddTool(listGenresTool(), s.handleListGenres)
	s.server.AddTool(titleDetailsTool(), s.handleTitleDetails)
}

// Tool definitions.

func topTitlesTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name: "top_titles",
		Description: "List the best-rated films in the catalogue, ordered by IMDb score. " +
			"Optionally scoped to a single genre. A truncated or empty list means part of the catalogue was unreachable.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"genre": map[string]any{
					"type":        "string",
					"description": "Optional genre name (API English form, see list_genres)",
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of films to return (default 7)",
				},
			},
		},
	}
}

func listGenresTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "list_genres",
		Description: "List every genre in the catalogue with its French display name.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}

func titleDetailsTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "get_title_details",
		Description: "Get the full record for one film: synopsis, genres, duration, countries, score, directors, and actors.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title_id": map[string]any{
					"type":        "integer",
					"description": "The catalogue ID of the film",
				},
			},
			"required": []any{"title_id"},
		},
	}
}

// Tool handlers.

func (s *Server) handleTopTitles(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	var args struct {
		Genre string `json:"genre"`
		Limit int    `json:"limit"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.Limit <= 0 {
		args.Limit = defaultListLimit
	}

	return toolJSON(s.catalogue.TopTitles(ctx, args.Genre, args.Limit))
}

func (s *Server) handleListGenres(ctx context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	names := s.catalogue.AllGenres(ctx)

	type genreEntry struct {
		Name        string `json:"name"`
		DisplayName string `json:"display_name"`
	}
	entries := make([]genreEntry, 0, len(names))
	for _, n := range names {
		entries = append(entries, genreEntry{Name: n, DisplayName: genres.Translate(n)})
	}
	return toolJSON(entries)
}

func (s *Server) handleTitleDetails(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	id, err := extractIntFromArgs(req.Params.Arguments, "title_id")
	if err != nil {
		return toolError(err.Error()), nil
	}

	details, err := s.catalogue.GetTitle(ctx, id)
	if err != nil {
		return toolError(fmt.Sprintf("title %d unavailable: %v", id, err)), nil
	}
	return toolJSON(details)
}

// Helper functions.

// toolJSON marshals v to JSON and returns it as text content.
func toolJSON(v any) (*mcpsdk.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil
}

// toolError returns a tool result indicating an error.
func toolError(msg string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
		IsError: true,
	}
}

// extractIntFromArgs extracts an integer argument from raw JSON arguments.
func extractIntFromArgs(raw json.RawMessage, key string) (int, error) {
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return 0, fmt.Errorf("invalid arguments: %w", err)
	}

	val, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}

	switch v := val.(type) {
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s must be a number: %w", key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s must be a number, got %T", key, val)
	}
}
