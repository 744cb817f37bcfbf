package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sleuren/sleurencli/internal/infra/confloader"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".sleuren", "sleuren.yaml")
}

// Load builds the session config: defaults, then the settings file at
// path (missing is fine), then SLEUREN_* environment variables, then
// overrides (typically the flags set on the command line).
func Load(path string, overrides map[string]any) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	l := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithOptionalFile(),
	)
	if err := l.LoadMap(Default().toMap()); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := l.Load(cfg); err != nil {
		return nil, err
	}

	if len(overrides) > 0 {
		if err := l.LoadMap(overrides); err != nil {
			return nil, err
		}
		if err := l.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	return cfg, nil
}

// Save saves the CLI configuration to path (0600, parent dir 0700).
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	l := confloader.NewLoader()
	if err := l.LoadMap(cfg.toMap()); err != nil {
		return err
	}
	return l.SaveFile(path)
}
