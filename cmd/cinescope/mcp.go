package main

import (
	"github.com/spf13/cobra"

	"github.com/mlegrand/cinescope/internal/config"
	mcpserver "github.com/mlegrand/cinescope/internal/mcp"
)

// newMCPServeCmd returns the hidden "mcp-serve" subcommand.
// It exposes the catalogue browse tools over stdin/stdout for MCP hosts.
func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "mcp-serve",
		Short:  "Start MCP server over stdio (internal)",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			logger := config.SetupLogger(cfg.App.LogLevel)
			cat, _ := initCatalogue(cfg, logger)

			srv := mcpserver.NewServer(cat, version, logger)
			return srv.ServeStdio(cmd.Context())
		},
	}
}
