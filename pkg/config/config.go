// Package config loads CLI configuration from config.toml in the .modhub/
// directory. Access tokens are deliberately not part of the config file;
// the CLI prints them and leaves storage to the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const configFile = "config.toml"

// Config is the CLI configuration. Environment variables MODHUB_HOST and
// MODHUB_API_KEY override the file values.
type Config struct {
	Host   string `toml:"host"`
	APIKey string `toml:"api_key"`
}

// Dir resolves the .modhub/ directory. If override is non-empty it is used
// directly; otherwise ~/.modhub is used and created if missing.
func Dir(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home dir: %w", err)
	}
	dir := filepath.Join(home, ".modhub")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating modhub dir: %w", err)
	}
	return dir, nil
}

// Load reads config.toml from the resolved directory and applies environment
// overrides. A missing file yields a config with only the overrides applied.
func Load(override string) (*Config, error) {
	dir, err := Dir(override)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	data, err := os.ReadFile(filepath.Join(dir, configFile))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Fall through to env overrides.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("MODHUB_HOST")); v != "" {
		cfg.Host = v
	}
	if v := strings.TrimSpace(os.Getenv("MODHUB_API_KEY")); v != "" {
		cfg.APIKey = v
	}

	return cfg, nil
}
