// Package config loads provider settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIKey  = "ALCHEMY_API_KEY"
	EnvBaseURL = "ALCHEMY_BASE_URL"
)

// DefaultBaseURL is the Alchemy Ethereum mainnet endpoint without the key.
const DefaultBaseURL = "https://eth-mainnet.g.alchemy.com/v2"

// ErrMissingAPIKey is returned when ALCHEMY_API_KEY is unset or empty.
var ErrMissingAPIKey = errors.New(EnvAPIKey + " is required")

// Config holds provider settings.
type Config struct {
	APIKey  string
	BaseURL string
}

// Load reads an optional env file into the process environment, then builds
// Config from it. Variables already set are not overridden. A missing file is
// not an error; an empty path skips the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds Config from the process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIKey:  strings.TrimSpace(os.Getenv(EnvAPIKey)),
		BaseURL: strings.TrimSpace(os.Getenv(EnvBaseURL)),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// Endpoint returns the JSON-RPC URL including the API key.
func (c *Config) Endpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + c.APIKey
}
