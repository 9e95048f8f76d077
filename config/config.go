// Package config loads the optional gofetch configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the run options. Every field has a default, so the
// file is optional and may set any subset.
type Config struct {
	// Gap is the number of spaces between the logo and the info column.
	Gap int `yaml:"gap"`

	// Logo selects the logo variant: "auto", "compact" or "none".
	Logo string `yaml:"logo"`

	// NoColor disables ANSI colors in the output.
	NoColor bool `yaml:"no_color"`

	// Placeholder is rendered for fields that could not be detected.
	Placeholder string `yaml:"placeholder"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Gap:         4,
		Logo:        "auto",
		Placeholder: "Unknown",
	}
}

// DefaultPath returns the conventional config file location
// (~/.config/gofetch/config.yaml on Linux).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gofetch", "config.yaml")
}

// Load reads a YAML configuration file. A missing file is not an error:
// the defaults are returned. A present but malformed file is an error.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if cfg.Gap < 0 {
		cfg.Gap = 0
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = "Unknown"
	}
	switch cfg.Logo {
	case "", "auto":
		cfg.Logo = "auto"
	case "compact", "none":
	default:
		return nil, fmt.Errorf("config file %s: unknown logo %q (want auto, compact or none)", filename, cfg.Logo)
	}

	return cfg, nil
}
