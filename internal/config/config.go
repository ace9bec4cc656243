// Package config provides configuration management for the secrets CLI:
// the YAML config file, defaults, and the file logger.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside the home directory.
const FileName = "config.yaml"

// Config represents the application configuration.
type Config struct {
	Version  int            `yaml:"version"`
	Home     string         `yaml:"home,omitempty"`
	Sharing  SharingConfig  `yaml:"sharing"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SharingConfig carries the engine defaults applied when flags are absent.
type SharingConfig struct {
	// Bits is the field exponent, 3 to 20.
	Bits int `yaml:"bits"`
	// RNG names the random source bound at startup.
	RNG string `yaml:"rng"`
	// Pad is the default zero-padding for split, 0 to 1024.
	Pad int `yaml:"pad"`
}

// OutputConfig defines output settings.
type OutputConfig struct {
	// Format is "text", "json", or "auto".
	Format string `yaml:"format"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	// Level is "off", "error", or "debug".
	Level string `yaml:"level"`
	// File is the log destination; empty disables logging.
	File string `yaml:"file,omitempty"`
}

// DefaultHome returns the default home directory (~/.secrets).
func DefaultHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".secrets"), nil
}

// Load reads the config file under dir, falling back to defaults when the
// file does not exist.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user's own config
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			cfg.Home = dir
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Home = dir
	return cfg, nil
}

// Save writes the config under dir with owner-only permissions.
func (c *Config) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
