// Copyright (c) 2026 Advora. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/fk-solace/advora/pkg/query"
)

// # Configuration Schema

// Config holds all runtime configuration for the Advora API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL). When unset the server runs against
	// the in-memory store, which is the explicit null-object fallback for
	// local development and tests.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). Optional; only dialed when set.
	RedisURL string `env:"REDIS_URL"`

	// ListScanCacheTTL enables the Redis read-through cache of the full
	// listing scan when greater than zero. Zero preserves the contract of a
	// fresh scan per request.
	ListScanCacheTTL time.Duration `env:"LIST_SCAN_CACHE_TTL" envDefault:"0s"`

	// StrictQuery turns invalid list parameters into 400 responses instead
	// of silently coercing them to defaults.
	StrictQuery bool `env:"STRICT_QUERY" envDefault:"false"`

	// SeedOnBoot populates the sample dataset during startup (development only).
	SeedOnBoot bool `env:"SEED_ON_BOOT" envDefault:"false"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasDatabase reports whether a PostgreSQL DSN was configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// HasRedis reports whether a Redis URL was configured.
func (c *Config) HasRedis() bool {
	return c.RedisURL != ""
}

// AllowedOrigins returns the additional CORS origins parsed from EXTRA_ORIGINS.
func (c *Config) AllowedOrigins() []string {
	return query.StringSlice(c.ExtraOrigins)
}
