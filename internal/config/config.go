// Package config provides configuration loading for the vecembed CLI.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/viant/vecembed/vector"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvConfigPath = "VECEMBED_CONFIG"
	EnvWidth      = "VECEMBED_WIDTH"
	EnvDatabase   = "VECEMBED_DATABASE"
	EnvDebug      = "VECEMBED_DEBUG"
)

// Config holds all configuration for the CLI.
type Config struct {
	Debug bool `yaml:"debug"`
	// Width, when non-zero, is the exact number of components every input
	// vector must have.
	Width        int    `yaml:"width"`
	DatabasePath string `yaml:"database_path"`
	Human        bool   `yaml:"human"`
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that Width is usable with the compiled MaxDimension.
func (c *Config) Validate() error {
	if c.Width < 0 || c.Width > vector.MaxDimension {
		return fmt.Errorf("invalid width %d: must be between 0 and %d", c.Width, vector.MaxDimension)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWidth, v, err)
		}
		cfg.Width = n
	}
	if v := os.Getenv(EnvDatabase); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvDebug, v, err)
		}
		cfg.Debug = b
	}
	return nil
}
