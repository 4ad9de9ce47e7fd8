package main

import (
	"strings"
	"testing"

	"github.com/mlegrand/cinescope/internal/config"
)

func TestFormatConfig(t *testing.T) {
	cfg := &config.Config{
		API:    config.APIConfig{BaseURL: "http://localhost:8000/api/v1", PageSize: 7},
		Rails:  config.RailsConfig{Size: 6, Genres: []string{"Mystery"}},
		Poster: config.PosterConfig{Fallback: "assets/no_poster.png"},
		Telegram: &config.TelegramConfig{
			BotToken:       "123456:secret",
			AllowedUserIDs: []int64{100},
		},
		App: config.AppConfig{LogLevel: "info"},
	}

	out, err := formatConfig(cfg)
	if err != nil {
		t.Fatalf("formatConfig() error: %v", err)
	}

	if !strings.Contains(out, "base_url: http://localhost:8000/api/v1") {
		t.Errorf("missing base_url in output:\n%s", out)
	}
	if strings.Contains(out, "secret") {
		t.Errorf("bot token leaked in output:\n%s", out)
	}
	if !strings.Contains(out, "***") {
		t.Errorf("expected redacted bot token in output:\n%s", out)
	}

	// Redaction must not mutate the caller's config.
	if cfg.Telegram.BotToken != "123456:secret" {
		t.Error("formatConfig mutated the original configuration")
	}
}

func TestFormatConfigNoTelegram(t *testing.T) {
	out, err := formatConfig(&config.Config{
		API: config.APIConfig{BaseURL: "http://localhost:8000/api/v1"},
	})
	if err != nil {
		t.Fatalf("formatConfig() error: %v", err)
	}
	if strings.Contains(out, "telegram") {
		t.Errorf("unexpected telegram section in output:\n%s", out)
	}
}
