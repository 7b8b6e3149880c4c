package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfig names an environment variable holding a config path. It is
// consulted when -config is not given.
const EnvConfig = "HEXMESH_CONFIG"

// configNames are looked up in the working directory, then in ConfigDir.
var configNames = []string{"hexmesh.yaml", "hexmesh.yml"}

// Load loads configuration with priority: defaults < file < flags.
// An explicit path (flag or EnvConfig) must exist; discovered files are optional.
func Load() (*Config, error) {
	cfg := Default()

	path, explicit := ConfigPath(), true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path, explicit = findConfigFile(), false
	}

	if path != "" {
		err := loadFromFile(cfg, path)
		switch {
		case err == nil:
			cfg.source = path
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	dirs := []string{"."}
	if dir := ConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}

	for _, dir := range dirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

// ConfigDir returns the per-user hexterrain directory, or "" when the
// platform has none.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "hexterrain")
}

// loadFromFile merges a YAML file over cfg. Unknown keys are rejected so a
// misspelled setting does not silently fall back to its default.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
