package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment and the library API connection.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// API contains the library API connection settings
	API struct {
		// BaseURL is the root of the library API
		BaseURL string `env:"API_BASE_URL" env-default:"http://localhost:3000" yaml:"baseUrl"`
		// Timeout is the per-request deadline
		Timeout time.Duration `env:"API_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// Email is the operator account used for authentication
		Email string `env:"API_AUTH_EMAIL" env-default:"" yaml:"email"`
		// Senha is the operator account password
		Senha string `env:"API_AUTH_PASSWORD" env-default:"" yaml:"senha"`
	} `yaml:"api"`
}

// Load receives the path for yaml config file and returns a filled Config
// struct. An empty path reads from environment variables only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
