// Package config loads process-wide configuration from environment variables.
// The resulting Config is immutable after startup and passed by reference into
// every component constructor.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all process-wide settings. Loaded once in main and never
// mutated afterwards.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"ADDR" envDefault:":8080"`

	// DatabaseURL is the Postgres DSN. When empty the server falls back to a
	// local SQLite file (development mode).
	DatabaseURL string `env:"DATABASE_URL"`

	// RedisAddr is the Redis host:port for the user lookup cache. When empty
	// the server runs without a cache.
	RedisAddr string `env:"REDIS_ADDR"`

	// JWTSecret is the symmetric signing key for access tokens.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// TokenLifetime is how long issued tokens stay valid.
	TokenLifetime time.Duration `env:"JWT_ACCESS_TOKEN_LIFETIME" envDefault:"30m"`

	// BcryptCost is the bcrypt cost factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// RunMigrations controls whether AutoMigrate runs at startup.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"true"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
