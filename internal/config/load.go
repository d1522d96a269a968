package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile(searchPaths()...)
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

const (
	appDirName     = "glsamples"
	configFileName = "config.yaml"
)

// searchPaths lists config file locations in lookup order.
func searchPaths() []string {
	return []string{appDirName + ".yaml", configFileName, UserConfigPath()}
}

// findConfigFile returns the first path that is a regular file, or "".
func findConfigFile(paths ...string) string {
	for _, path := range paths {
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory of the samples. When the
// OS reports no user config directory the working directory is used.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base, _ = filepath.Abs(".")
	}
	return filepath.Join(base, appDirName)
}

// UserConfigPath is the file Save writes to.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}
