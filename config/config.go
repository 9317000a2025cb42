// Package config manages the persisted Terma configuration: the selected
// provider, its model, and the API key, stored as YAML in the user's config
// directory.
package config

import (
	"os"
	"path/filepath"

	"github.com/termacli/terma/errors"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the configuration file location when set. Used by
// tests and unusual deployments.
const EnvConfigPath = "TERMA_CONFIG"

// Config holds the three fields every provider client is constructed from.
type Config struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api-key"`
}

// Path returns the configuration file location, honoring EnvConfigPath.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "terma", "config.yaml")
}

// Load reads the configuration file. A missing file is not an error; it
// returns (nil, nil).
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config file %s", Path())
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "could not parse config file %s", Path())
	}
	return cfg, nil
}

// Save writes the configuration, creating parent directories as needed. The
// file is user-only since it carries the API key.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "could not create config directory")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrapf(err, "could not serialize configuration")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0600), "could not write config file %s", path)
}

// Exists reports whether a configuration is present and complete: all of
// provider, model, and API key must be set.
func Exists() bool {
	cfg, err := Load()
	if err != nil || cfg == nil {
		return false
	}
	return cfg.Provider != "" && cfg.Model != "" && cfg.APIKey != ""
}

// Equal reports whether two configurations match field by field.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Provider == other.Provider &&
		c.Model == other.Model &&
		c.APIKey == other.APIKey
}
