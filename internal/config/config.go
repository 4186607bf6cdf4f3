// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Output formats supported by the analyze command.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config is the CLI configuration loadable from a JSON file. All fields
// are optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Paths
	Resume string   `json:"resume,omitempty"`  // Path to resume JSON file
	Jobs   []string `json:"jobs,omitempty"`    // Paths to job posting JSON files
	JobDir string   `json:"job_dir,omitempty"` // Directory of job posting JSON files
	Output string   `json:"output,omitempty"`  // Path to write the report, defaults to stdout

	// Behavior
	Format   string `json:"format,omitempty"`    // Report format: json or text
	Verbose  bool   `json:"verbose,omitempty"`   // Print detailed debug information
	TopJobs  int    `json:"top_jobs,omitempty"`  // Limit ranked matches in the report, 0 means all
	LogLevel string `json:"log_level,omitempty"` // Logger level override
}

// Environment variable names recognized by ApplyEnv.
const (
	envResume   = "CAREER_ANALYZER_RESUME"
	envJobDir   = "CAREER_ANALYZER_JOB_DIR"
	envFormat   = "CAREER_ANALYZER_FORMAT"
	envVerbose  = "CAREER_ANALYZER_VERBOSE"
	envLogLevel = "CAREER_ANALYZER_LOG_LEVEL"
)

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

// ApplyEnv overrides empty fields from environment variables. Values
// already set in the config file win over the environment.
func (c *Config) ApplyEnv() {
	if c.Resume == "" {
		c.Resume = os.Getenv(envResume)
	}
	if c.JobDir == "" {
		c.JobDir = os.Getenv(envJobDir)
	}
	if c.Format == "" {
		c.Format = os.Getenv(envFormat)
	}
	if c.LogLevel == "" {
		c.LogLevel = os.Getenv(envLogLevel)
	}
	if !c.Verbose {
		if v, err := strconv.ParseBool(os.Getenv(envVerbose)); err == nil {
			c.Verbose = v
		}
	}
}

// Validate checks that the configuration has valid values. Required
// fields are not checked here; CLI flag validation handles those after
// merging.
func (c *Config) Validate() error {
	if c.Format != "" && c.Format != FormatJSON && c.Format != FormatText {
		return fmt.Errorf("config error: 'format' must be %q or %q", FormatJSON, FormatText)
	}
	if c.TopJobs < 0 {
		return fmt.Errorf("config error: 'top_jobs' must be non-negative")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.JobDir != "" {
		if _, err := os.Stat(c.JobDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: job directory not found: %s", c.JobDir)
		}
	}
	for _, job := range c.Jobs {
		if _, err := os.Stat(job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if len(result.Jobs) == 0 {
		result.Jobs = defaults.Jobs
	}
	if result.JobDir == "" {
		result.JobDir = defaults.JobDir
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.TopJobs == 0 {
		result.TopJobs = defaults.TopJobs
	}
	if result.Format == "" {
		if defaults.Format != "" {
			result.Format = defaults.Format
		} else {
			result.Format = FormatJSON
		}
	}

	// Bool fields cannot distinguish unset from false, so CLI flags
	// always win for those.

	return result
}
