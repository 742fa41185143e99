package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration from environment.
// Values are parsed once in main and passed explicitly into components at
// construction; business logic never reads the environment itself.
type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	LogFile     string `env:"TASK_LOG_FILE" envDefault:"tasks.jsonl"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
