package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName        = "banger"
	configFileName = "config.toml"
	dirPerm        = 0o755
	filePerm       = 0o644
)

// GetConfigDir returns $XDG_CONFIG_HOME/banger, falling back to ~/.config/banger.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// GetConfigFile returns the default config file path.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetStateDir returns $XDG_STATE_HOME/banger, falling back to ~/.local/state/banger.
func GetStateDir() (string, error) {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "state", appName), nil
}

// ResolveLogDir returns the configured log directory or the state dir.
func (c *Config) ResolveLogDir() (string, error) {
	if c.Logging.LogDir != "" {
		return c.Logging.LogDir, nil
	}
	return GetStateDir()
}
