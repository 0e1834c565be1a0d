// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Offline inputs
	Requirements string `json:"requirements,omitempty"` // Path to skill requirements JSON file
	Ratings      string `json:"ratings,omitempty"`      // Path to self-ratings JSON file
	Project      string `json:"project,omitempty"`      // Path to project description JSON file
	Strategy     string `json:"strategy,omitempty"`     // Path to company strategy JSON file

	// Roadmap parameters
	Weeks         int     `json:"weeks,omitempty"`          // Available study weeks (1-52)
	CompanyName   string  `json:"company_name,omitempty"`   // Target company label for narratives
	CompanyRating float64 `json:"company_rating,omitempty"` // Company star rating (0-5)

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Narrative   bool   `json:"narrative,omitempty"`    // Request LLM narrative enrichment
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed output
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
	if c.Weeks < 0 || c.Weeks > 52 {
		return fmt.Errorf("config error: 'weeks' must be between 0 and 52")
	}
	if c.CompanyRating < 0 || c.CompanyRating > 5 {
		return fmt.Errorf("config error: 'company_rating' must be between 0 and 5")
	}

	// Validate file paths exist (if specified)
	for name, path := range map[string]string{
		"requirements": c.Requirements,
		"ratings":      c.Ratings,
		"project":      c.Project,
		"strategy":     c.Strategy,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Requirements == "" {
		result.Requirements = defaults.Requirements
	}
	if result.Ratings == "" {
		result.Ratings = defaults.Ratings
	}
	if result.Project == "" {
		result.Project = defaults.Project
	}
	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}
	if result.CompanyName == "" {
		result.CompanyName = defaults.CompanyName
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: use default if zero
	if result.Weeks == 0 {
		if defaults.Weeks > 0 {
			result.Weeks = defaults.Weeks
		} else {
			result.Weeks = 8 // Default two-month window
		}
	}
	if result.CompanyRating == 0 {
		result.CompanyRating = defaults.CompanyRating
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
