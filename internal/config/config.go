package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all gateway settings
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Market    MarketConfig    `yaml:"market"`
	Session   SessionConfig   `yaml:"session"`
	Auth      AuthConfig      `yaml:"auth"`
	Directory DirectoryConfig `yaml:"directory"`
	Feed      FeedConfig      `yaml:"feed"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Port string `yaml:"port"`
}

// MarketConfig points at the marketplace REST API
type MarketConfig struct {
	BaseURL            string `yaml:"base_url"`
	Timeout            string `yaml:"timeout"`
	MaxParallelFetches int    `yaml:"max_parallel_fetches"`
}

// SessionConfig configures the persisted session store
type SessionConfig struct {
	DBPath     string `yaml:"db_path"`
	TTL        string `yaml:"ttl"`
	CookieName string `yaml:"cookie_name"`
}

// Account is an operator allowed to log in to the admin gateway.
// PasswordHash is a bcrypt hash.
type Account struct {
	Email        string `yaml:"email"`
	PasswordHash string `yaml:"password_hash"`
	Role         string `yaml:"role"`
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	UserID       int    `yaml:"user_id"`
}

// AuthConfig lists operator accounts
type AuthConfig struct {
	Accounts []Account `yaml:"accounts"`
}

// DirectoryConfig configures the dealer directory
type DirectoryConfig struct {
	PageSize     int    `yaml:"page_size"`
	StatusSource string `yaml:"status_source"` // "none" or "random"
	Seed         int64  `yaml:"seed"`          // 0 means time-based
}

// FeedConfig configures story uploads
type FeedConfig struct {
	MaxImageBytes int64 `yaml:"max_image_bytes"`
}

// LogConfig configures logrus
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the settings used when nothing else is given
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: ":8080"},
		Market: MarketConfig{
			BaseURL:            "http://localhost:8081",
			Timeout:            "10s",
			MaxParallelFetches: 4,
		},
		Session: SessionConfig{
			DBPath:     "data/sessions.db",
			TTL:        "24h",
			CookieName: "fx_session",
		},
		Directory: DirectoryConfig{
			PageSize:     8,
			StatusSource: "none",
		},
		Feed: FeedConfig{MaxImageBytes: 5 << 20},
		Log:  LogConfig{Level: "info"},
	}
}

// Load reads a YAML config file on top of the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if p := os.Getenv("PORT"); p != "" {
		c.Server.Port = fmt.Sprintf(":%s", strings.TrimPrefix(p, ":"))
	}
	if url := os.Getenv("MARKET_API_BASE_URL"); url != "" {
		c.Market.BaseURL = url
	}
	if path := os.Getenv("SESSION_DB_PATH"); path != "" {
		c.Session.DBPath = path
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// Validate rejects settings the gateway cannot run with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Market.BaseURL) == "" {
		return errors.New("config: market.base_url is required")
	}
	if _, err := c.MarketTimeout(); err != nil {
		return err
	}
	if _, err := c.SessionTTL(); err != nil {
		return err
	}
	if c.Market.MaxParallelFetches <= 0 {
		return errors.New("config: market.max_parallel_fetches must be positive")
	}
	if c.Directory.PageSize <= 0 {
		return errors.New("config: directory.page_size must be positive")
	}
	switch c.Directory.StatusSource {
	case "none", "random":
	default:
		return fmt.Errorf("config: unknown directory.status_source %q", c.Directory.StatusSource)
	}
	if c.Feed.MaxImageBytes <= 0 {
		return errors.New("config: feed.max_image_bytes must be positive")
	}
	for i, acc := range c.Auth.Accounts {
		if acc.Email == "" || acc.PasswordHash == "" {
			return fmt.Errorf("config: auth.accounts[%d] needs email and password_hash", i)
		}
	}
	return nil
}

// MarketTimeout parses market.timeout
func (c *Config) MarketTimeout() (time.Duration, error) {
	return positiveDuration("market.timeout", c.Market.Timeout)
}

// SessionTTL parses session.ttl
func (c *Config) SessionTTL() (time.Duration, error) {
	return positiveDuration("session.ttl", c.Session.TTL)
}

func positiveDuration(key, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s must be positive", key)
	}
	return d, nil
}
