package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mlegrand/cinescope/internal/config"
)

// newConfigCmd returns the "config" subcommand group for configuration management.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	cmd.AddCommand(newConfigValidateCmd(), newConfigShowCmd())
	return cmd
}

// newConfigValidateCmd returns the "config validate" subcommand that checks config file validity.
func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			fmt.Println(styleSuccess.Render("✓ Configuration is valid"))
			return nil
		},
	}
}

// newConfigShowCmd returns the "config show" subcommand that prints the
// effective configuration after env overrides and defaults.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			out, err := formatConfig(cfg)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

// formatConfig renders the effective configuration as YAML with the bot
// token redacted.
func formatConfig(cfg *config.Config) (string, error) {
	shown := *cfg
	if cfg.Telegram != nil {
		tg := *cfg.Telegram
		tg.BotToken = "***"
		shown.Telegram = &tg
	}

	data, err := yaml.Marshal(&shown)
	if err != nil {
		return "", fmt.Errorf("render configuration: %w", err)
	}
	return string(data), nil
}
