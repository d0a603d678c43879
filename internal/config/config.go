// Package config loads vault-cli configuration from the standard TOML file
// and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables recognized by Resolve. They override file values;
// command-line flags override both.
const (
	EnvAPIKey = "OBSIDIAN_API_KEY"
	EnvAPIURL = "OBSIDIAN_API_URL"
)

// DefaultAPIURL is the Local REST API plugin's default HTTPS endpoint.
const DefaultAPIURL = "https://127.0.0.1:27124"

// Config holds vault-cli configuration.
type Config struct {
	APIURL        string `toml:"api_url"`
	APIKey        string `toml:"api_key"`
	VerifyTLS     bool   `toml:"verify_tls"`
	MaxResults    int    `toml:"max_results"`
	ContextLength int    `toml:"context_length"`
}

// Load loads the config file from the standard location,
// ~/.config/vault-cli/config.toml. A missing file yields defaults.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return defaultConfig(), nil
	}
	return LoadFromFile(path)
}

// LoadFromFile loads config from a specific file. A missing file yields
// defaults; a malformed file is an error.
func LoadFromFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Resolve applies environment overrides on top of file values.
func (c *Config) Resolve() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vault-cli", "config.toml"), nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.MaxResults == 0 {
		cfg.MaxResults = 10
	}
	if cfg.ContextLength == 0 {
		cfg.ContextLength = 100
	}
}
