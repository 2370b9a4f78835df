// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	UploadDir string `json:"upload_dir,omitempty"` // Directory for uploaded documents
	OutputDir string `json:"output_dir,omitempty"` // Directory for filled/converted artifacts

	// Behavior
	Port    int    `json:"port,omitempty"`    // HTTP listen port
	APIKey  string `json:"api_key,omitempty"` // Gemini API key (hints disabled when empty)
	AlsoPDF bool   `json:"also_pdf,omitempty"` // Default for PDF conversion on export
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		UploadDir: "uploads",
		OutputDir: "output",
		Port:      8000,
		AlsoPDF:   true,
	}
}
