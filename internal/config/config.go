// Package config loads the service configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// SourceCSV and SourceSQLite are the supported dataset source kinds.
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Config represents the application configuration.
type Config struct {
	// Server configuration
	Server ServerConfig `toml:"server"`

	// Data source configuration
	Data DataConfig `toml:"data"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port           int      `toml:"port"`            // Listen port
	RequestTimeout string   `toml:"request_timeout"` // Per-request timeout (e.g. "30s")
	CORSOrigins    []string `toml:"cors_origins"`    // Allowed CORS origins
	RateLimit      float64  `toml:"rate_limit"`      // Requests per second per server (0 = unlimited)
	RateBurst      int      `toml:"rate_burst"`      // Rate limiter burst size
}

// DataConfig contains dataset source settings.
type DataConfig struct {
	Source      string `toml:"source"`       // "csv" or "sqlite"
	MatchesCSV  string `toml:"matches_csv"`  // Path to the match history CSV
	RankingsCSV string `toml:"rankings_csv"` // Path to the ranking CSV (optional)
	ArchivePath string `toml:"archive_path"` // Path to the SQLite archive
	Watch       bool   `toml:"watch"`        // Reload the CSV on file change
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			RequestTimeout: "30s",
			CORSOrigins:    []string{"http://localhost:*", "http://127.0.0.1:*"},
			RateLimit:      50,
			RateBurst:      100,
		},
		Data: DataConfig{
			Source:     SourceCSV,
			MatchesCSV: "international_matches.csv",
			Watch:      false,
		},
	}
}

// Load loads the configuration from the given path. A missing file
// yields the default configuration.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return config, nil
}

// Save writes the configuration to the given path.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	if _, err := time.ParseDuration(c.Server.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request timeout %q: %w", c.Server.RequestTimeout, err)
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("rate limit cannot be negative: %f", c.Server.RateLimit)
	}
	if c.Server.RateBurst < 0 {
		return fmt.Errorf("rate burst cannot be negative: %d", c.Server.RateBurst)
	}

	switch c.Data.Source {
	case SourceCSV:
		if c.Data.MatchesCSV == "" {
			return fmt.Errorf("matches_csv is required for the csv source")
		}
	case SourceSQLite:
		if c.Data.ArchivePath == "" {
			return fmt.Errorf("archive_path is required for the sqlite source")
		}
	default:
		return fmt.Errorf("unknown data source %q", c.Data.Source)
	}

	return nil
}

// GetRequestTimeout returns the request timeout as a duration.
func (c *Config) GetRequestTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Server.RequestTimeout)
}
