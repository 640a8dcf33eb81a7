// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the full server configuration.
type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:3000"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"sqlite"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"./data/bingo.db"`

	DefaultGameStatusID  int64 `env:"DEFAULT_GAME_STATUS_ID" envDefault:"2"`
	DefaultGamerStatusID int64 `env:"DEFAULT_GAMER_STATUS_ID" envDefault:"7"`
	UniqueMoves          bool  `env:"UNIQUE_MOVES" envDefault:"true"`
	ColumnAttempts       int   `env:"COLUMN_ATTEMPTS" envDefault:"15"`
	RandomSeed           int64 `env:"RANDOM_SEED" envDefault:"0"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.StoreDriver != DriverMemory && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for %s", c.StoreDriver)
	}
	// a column needs at least one draw per value
	if c.ColumnAttempts < 5 {
		return fmt.Errorf("COLUMN_ATTEMPTS must be at least 5, got %d", c.ColumnAttempts)
	}
	if c.DefaultGameStatusID <= 0 || c.DefaultGamerStatusID <= 0 {
		return fmt.Errorf("default status ids must be positive")
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}
