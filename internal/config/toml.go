// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Display DisplayConfig `toml:"display"`
	Timing  TimingConfig  `toml:"timing"`
}

// DisplayConfig maps display-related settings. Persisted preferences win over
// these values; they only apply until a toggle is saved.
type DisplayConfig struct {
	Lang       *string `toml:"lang"`
	Animations *bool   `toml:"animations"`
	Black      *bool   `toml:"black"`
	Quotes     *string `toml:"quotes"`
}

// TimingConfig maps animation cadence settings in milliseconds.
type TimingConfig struct {
	TypeMs   *int `toml:"type-ms"`
	DeleteMs *int `toml:"delete-ms"`
	HoldMs   *int `toml:"hold-ms"`
	GapMs    *int `toml:"gap-ms"`
	FadeMs   *int `toml:"fade-ms"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
