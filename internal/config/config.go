// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Output formats accepted by Config.Format.
const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// Defaults applied by MergeWithDefaults when neither the file nor the caller
// sets a value.
const (
	DefaultPort           = 8080
	DefaultMaxUploadBytes = 10 << 20
	DefaultFormat         = FormatJSON
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; CLI flags override file values.
type Config struct {
	// Sources
	Input string `json:"input,omitempty"` // Path to a resume file (pdf, docx, html, txt)
	URL   string `json:"url,omitempty"`   // URL of an online resume

	// Output
	Output string `json:"output,omitempty"` // Output path; stdout when empty
	Format string `json:"format,omitempty"` // json or xlsx
	Schema string `json:"schema,omitempty"` // Record JSON Schema; built-in when empty

	// Behavior
	Enhance    bool  `json:"enhance,omitempty"`     // Apply the enhancement pass
	Seed       int64 `json:"seed,omitempty"`        // Enhancement seed
	UseBrowser bool  `json:"use_browser,omitempty"` // Render client-side pages in headless Chrome
	Verbose    bool  `json:"verbose,omitempty"`     // Print detailed debug information

	// Server and storage
	DatabaseURL    string `json:"database_url,omitempty"`     // PostgreSQL connection URL
	Port           int    `json:"port,omitempty"`             // HTTP port for serve
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty"` // Upload limit in bytes
}

// LoadConfig loads configuration from a JSON file.
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

// Validate checks that the configuration has valid values. Required inputs
// are checked by the CLI after merging with flags.
func (c *Config) Validate() error {
	if c.Input != "" && c.URL != "" {
		return fmt.Errorf("config error: 'input' and 'url' are mutually exclusive")
	}
	if c.Format != "" && c.Format != FormatJSON && c.Format != FormatXLSX {
		return fmt.Errorf("config error: 'format' must be %q or %q, got %q", FormatJSON, FormatXLSX, c.Format)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	if c.Schema != "" {
		if _, err := os.Stat(c.Schema); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.Schema)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults, then from the package defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.URL == "" {
		result.URL = defaults.URL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Schema == "" {
		result.Schema = defaults.Schema
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Format == "" {
		result.Format = DefaultFormat
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = DefaultMaxUploadBytes
	}

	// Bools cannot distinguish unset from false; CLI flags always win.

	return result
}

// ApplyEnv fills DatabaseURL and Port from DATABASE_URL and PORT when the
// config leaves them unset.
func (c *Config) ApplyEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.Port == 0 {
		c.Port = getEnvInt("PORT", 0)
	}
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
