// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"code-entropy/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Scan contains source scanning configuration
	Scan ScanConfig `json:"scan"`

	// Patterns contains extraction pattern configuration
	Patterns PatternsConfig `json:"patterns"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, plain)
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the per-symbol probability breakdown
	ShowDetails bool `json:"show_details"`
}

// ScanConfig contains source scanning settings
type ScanConfig struct {
	// Suffixes are the filename suffixes scanned in directory mode
	Suffixes []string `json:"suffixes"`
}

// PatternsConfig contains extraction pattern settings
type PatternsConfig struct {
	// File is the path to an HCL file defining additional patterns
	File string `json:"file,omitempty"`

	// Default is the name of the pattern used when none is specified
	Default string `json:"default"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   false,
		},
		Scan: ScanConfig{
			Suffixes: []string{".rs", ".go", ".c", ".cc", ".cpp", ".py"},
		},
		Patterns: PatternsConfig{
			Default: "rust-insert",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
