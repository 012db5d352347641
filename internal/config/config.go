// Package config provides configuration types and defaults for the catalog CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AuditConfig holds audit trail configuration.
type AuditConfig struct {
	// Enabled controls whether the audit decorator is part of the chain.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// Path is a JSON-lines audit log file. When empty, audit entries go to
	// the structured logger instead.
	Path string `mapstructure:"path" yaml:"path"`
}

// TracingConfig holds tracing configuration.
type TracingConfig struct {
	// Enabled turns on span export to stdout for catalog operations.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Config holds all configuration options for the catalog CLI.
type Config struct {
	// Sorted controls whether listings are wrapped in the sorted view.
	Sorted bool `mapstructure:"sorted" yaml:"sorted"`

	// Debug lowers the log level to debug.
	Debug bool `mapstructure:"debug" yaml:"debug"`

	Audit   AuditConfig   `mapstructure:"audit" yaml:"audit"`
	Tracing TracingConfig `mapstructure:"tracing" yaml:"tracing"`
}

// Defaults returns the default configuration: sorted listings with auditing
// through the structured logger, no tracing.
func Defaults() Config {
	return Config{
		Sorted: true,
		Debug:  false,
		Audit: AuditConfig{
			Enabled: true,
			Path:    "",
		},
		Tracing: TracingConfig{
			Enabled: false,
		},
	}
}

// WriteDefaultConfig creates a config file at the given path with default
// settings, creating the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	serialized, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
