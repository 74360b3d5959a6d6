// Package config loads and saves the runtime's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the runtime configuration.
type Config struct {
	// CheckNewVersion enables the startup version check.
	CheckNewVersion bool `toml:"check_new_version"`

	// APIBase is the base URL of the update and export service.
	APIBase string `toml:"api_base"`

	// UIScale is the integer window scale factor.
	UIScale int `toml:"ui_scale"`

	// CRTMonitor enables the CRT shader in the presentation layer.
	CRTMonitor bool `toml:"crt_monitor"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		CheckNewVersion: true,
		APIBase:         "https://tinycart.dev/api",
		UIScale:         1,
	}
}

// Load reads the configuration from path. A missing file is not an error;
// it yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func Save(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// Marshal renders the configuration as TOML text.
func Marshal(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return string(data), nil
}
