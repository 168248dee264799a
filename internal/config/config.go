// Package config loads server configuration from the environment
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/destinyrpg/destiny-api/internal/errors"
)

// Config holds the server configuration
type Config struct {
	HTTPPort     int    `env:"HTTP_PORT" envDefault:"8080"`
	RedisAddress string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`

	// DeckSeed fixes the deck's random source for reproducible draws; zero
	// seeds from the wall clock.
	DeckSeed int64 `env:"DECK_SEED" envDefault:"0"`

	// SeedCatalog loads the default action catalog on startup when the
	// actions are not already present.
	SeedCatalog bool `env:"SEED_CATALOG" envDefault:"true"`
}

// Load reads configuration from the environment, with an optional local
// .env file for development
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return &cfg, nil
}
