package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration, parsed from the environment.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	StoreBackend string `env:"STORE_BACKEND" envDefault:"memory"`
	StorePath    string `env:"STORE_PATH" envDefault:"./data/auctions"`
	AuthSecret   string `env:"AUTH_SECRET" envDefault:"dev-only-secret"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config from env: %w", err)
	}
	if cfg.StoreBackend != "memory" && cfg.StoreBackend != "badger" {
		return Config{}, fmt.Errorf("unknown STORE_BACKEND %q (want memory or badger)", cfg.StoreBackend)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}
