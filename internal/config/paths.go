package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wanpc-dev/wanpc/internal/branding"
)

const fileName = "config.toml"

// Dir returns the path to the wanpc config directory (~/.wanpc/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file. The WANPC_CONFIG
// environment variable overrides the default ~/.wanpc/config.toml.
func FilePath() string {
	if v := os.Getenv(branding.EnvVar("CONFIG")); v != "" {
		return v
	}
	return filepath.Join(Dir(), fileName)
}

// EnsureDir creates the directory holding the config file if it does
// not exist yet.
func EnsureDir() error {
	dir := filepath.Dir(FilePath())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}
