// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultCatalogURL is the schedule API endpoint used when no override is
// configured.
const DefaultCatalogURL = "https://one.ufl.edu/apix/soc/schedule"

// DefaultThreshold is the minimum similarity score for a coursework match.
const DefaultThreshold = 60

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume     string `json:"resume,omitempty"`      // Path to extracted resume record JSON
	ResumeText string `json:"resume_text,omitempty"` // Path to raw resume text for extraction

	// Catalog
	CatalogURL string `json:"catalog_url,omitempty"` // Schedule API base URL
	Term       string `json:"term,omitempty"`        // Academic term identifier (e.g. "2251")
	Threshold  int    `json:"threshold,omitempty"`   // Minimum similarity score for a match (0-100)

	// Candidate Info
	UserID string `json:"user_id,omitempty"` // User UUID (required for DB-based runs)

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	SkipCache   bool   `json:"skip_cache,omitempty"`   // Bypass the catalog cache
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Resume != "" && c.ResumeText != "" {
		return fmt.Errorf("config error: 'resume' and 'resume_text' are mutually exclusive")
	}

	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("config error: 'threshold' must be between 0 and 100")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.ResumeText != "" {
		if _, err := os.Stat(c.ResumeText); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume text file not found: %s", c.ResumeText)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.ResumeText == "" {
		result.ResumeText = defaults.ResumeText
	}
	if result.CatalogURL == "" {
		result.CatalogURL = defaults.CatalogURL
	}
	if result.CatalogURL == "" {
		result.CatalogURL = DefaultCatalogURL
	}
	if result.Term == "" {
		result.Term = defaults.Term
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Threshold == 0 {
		if defaults.Threshold > 0 {
			result.Threshold = defaults.Threshold
		} else {
			result.Threshold = DefaultThreshold
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
