package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults applied by Validate when the corresponding field is unset.
const (
	DefaultBaseURL  = "http://localhost:8000/api/v1"
	DefaultPageSize = 7
	DefaultRailSize = 6
	DefaultFallback = "assets/no_poster.png"
)

// Config represents the main application configuration
type Config struct {
	// Catalogue API
	API APIConfig `yaml:"api"`

	// Film rails shown by the browse UI
	Rails RailsConfig `yaml:"rails"`

	// Poster resolution
	Poster PosterConfig `yaml:"poster"`

	// Frontends
	Telegram *TelegramConfig `yaml:"telegram,omitempty"`

	// Application settings
	App AppConfig `yaml:"app"`
}

// APIConfig holds the OCMovies catalogue API configuration
type APIConfig struct {
	BaseURL  string `yaml:"base_url"`
	PageSize int    `yaml:"page_size,omitempty"`
}

// RailsConfig controls which genre rails are rendered and how many cards each holds
type RailsConfig struct {
	Size   int      `yaml:"size,omitempty"`
	Genres []string `yaml:"genres,omitempty"`
}

// PosterConfig holds poster probing settings
type PosterConfig struct {
	Fallback string `yaml:"fallback,omitempty"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken       string  `yaml:"bot_token"`
	AllowedUserIDs []int64 `yaml:"allowed_user_ids,omitempty"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	LogLevel string `yaml:"log_level"` // "debug", "info", "warn", "error"
}

// Load loads configuration from a YAML file with environment variable overrides.
// A missing file is not an error: the catalogue API needs no credentials, so
// defaults plus the environment are enough to run.
func Load(path string) (*Config, error) {
	// Best-effort .env loading for local development.
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// fall through to env + defaults
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides overrides config values with environment variables
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CINESCOPE_API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("CINESCOPE_API_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.API.PageSize = n
		}
	}
	if v := os.Getenv("CINESCOPE_POSTER_FALLBACK"); v != "" {
		c.Poster.Fallback = v
	}
	if v := os.Getenv("CINESCOPE_TELEGRAM_BOT_TOKEN"); v != "" {
		if c.Telegram == nil {
			c.Telegram = &TelegramConfig{}
		}
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("CINESCOPE_LOG_LEVEL"); v != "" {
		c.App.LogLevel = v
	}
}

// Validate validates the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url must use http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("api.base_url is missing host")
	}

	if c.API.PageSize < 0 {
		return fmt.Errorf("api.page_size must be positive")
	}
	if c.API.PageSize == 0 {
		c.API.PageSize = DefaultPageSize
	}

	if c.Rails.Size < 0 {
		return fmt.Errorf("rails.size must be positive")
	}
	if c.Rails.Size == 0 {
		c.Rails.Size = DefaultRailSize
	}
	if len(c.Rails.Genres) == 0 {
		c.Rails.Genres = []string{"Mystery", "Action"}
	}

	if c.Poster.Fallback == "" {
		c.Poster.Fallback = DefaultFallback
	}

	if c.Telegram != nil && c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required when telegram is configured")
	}

	switch c.App.LogLevel {
	case "":
		c.App.LogLevel = "info"
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("app.log_level must be one of debug, info, warn, error")
	}

	return nil
}
