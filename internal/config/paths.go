package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "hostlog"

func ConfigDir() string {
	if v := os.Getenv("HOSTLOG_CONFIG_DIR"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

// StateDir holds per-session state such as the persisted log flags.
func StateDir() string {
	if v := os.Getenv("HOSTLOG_STATE_DIR"); v != "" {
		return v
	}
	return filepath.Join(xdg.StateHome, appName)
}

func ConfigFile() string  { return filepath.Join(ConfigDir(), "config.toml") }
func SessionFile() string { return filepath.Join(StateDir(), "session.toml") }
