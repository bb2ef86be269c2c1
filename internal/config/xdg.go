// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "dailyquotes"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultQuotesPath returns the optional user quotes file.
func DefaultQuotesPath() string {
	return filepath.Join(XDGConfigHome(), appName, "quotes.json")
}

// DefaultDBPath returns the default path for the SQLite database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, appName+".db")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// ResolveQuotesSource picks the phrase source: an explicit value wins, then
// the user quotes file if present, then the embedded set (empty string).
func ResolveQuotesSource(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultQuotesPath()); err == nil {
		return DefaultQuotesPath()
	}
	return ""
}
