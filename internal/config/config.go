// Package config loads the tally configuration from the environment.
// Command line flags override the environment, see Config.Override.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
)

// Config holds the settings shared by the tally binaries.
type Config struct {
	// DBPath путь к локальному кэшу клиента (bbolt)
	DBPath string `env:"TALLY_DB" envDefault:"tally.db"`

	// ServerDBPath путь к авторитетной базе (sqlite)
	ServerDBPath string `env:"TALLY_SERVER_DB" envDefault:"tally-server.db"`

	// Owner владелец дерева, пустая строка означает "взять из метаданных клиента"
	Owner string `env:"TALLY_OWNER"`

	// LogLevel уровень логирования: debug, info, warn, error
	LogLevel string `env:"TALLY_LOG_LEVEL" envDefault:"warn"`
}

// Overrides holds flag values; empty fields leave the config untouched.
type Overrides struct {
	DBPath       string
	ServerDBPath string
	Owner        string
	LogLevel     string
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Override applies non-empty flag values on top of the environment.
func (c *Config) Override(o Overrides) error {
	if o.DBPath != "" {
		c.DBPath = o.DBPath
	}
	if o.ServerDBPath != "" {
		c.ServerDBPath = o.ServerDBPath
	}
	if o.Owner != "" {
		c.Owner = o.Owner
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	return c.Validate()
}

// Validate checks the owner id and the log level.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if c.Owner != "" {
		if _, err := uuid.Parse(c.Owner); err != nil {
			return fmt.Errorf("invalid owner id %q: %w", c.Owner, err)
		}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// OwnerID returns the configured owner. ok is false when none is set.
func (c *Config) OwnerID() (id uuid.UUID, ok bool) {
	if c.Owner == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(c.Owner)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Level returns the slog level of the config, warn when it cannot be parsed.
func (c *Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// ParseLevel converts a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q, use debug, info, warn or error", s)
	}
}
