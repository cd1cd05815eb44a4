// Package config provides unified configuration loading for bbow.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nvandessel/bbow/internal/textsource"
	"gopkg.in/yaml.v3"
)

// BbowConfig contains all bbow configuration settings.
type BbowConfig struct {
	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Report controls how word counts are presented.
	Report ReportConfig `json:"report" yaml:"report"`

	// Input controls how input files are read.
	Input InputConfig `json:"input" yaml:"input"`
}

// LoggingConfig configures bbow's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`

	// Format selects the log handler: "text" (default) or "pretty".
	Format string `json:"format" yaml:"format"`
}

// ReportConfig configures ranked word listings.
type ReportConfig struct {
	// Top is the number of entries in a ranked listing. 0 lists every word.
	Top int `json:"top" yaml:"top"`

	// MinCount hides words seen fewer times than this.
	MinCount uint `json:"min_count" yaml:"min_count"`
}

// InputConfig configures input decoding.
type InputConfig struct {
	// Format is "auto", "text", "html", or "pdf".
	Format string `json:"format" yaml:"format"`

	// MaxBytes is the largest single input accepted.
	MaxBytes int64 `json:"max_bytes" yaml:"max_bytes"`
}

// Default returns a BbowConfig with sensible defaults.
func Default() *BbowConfig {
	return &BbowConfig{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Report: ReportConfig{
			Top:      10,
			MinCount: 1,
		},
		Input: InputConfig{
			Format:   string(textsource.FormatAuto),
			MaxBytes: textsource.DefaultMaxBytes,
		},
	}
}

// DefaultPath returns ~/.bbow/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".bbow", "config.yaml"), nil
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.bbow/config.yaml -> environment variables
func Load() (*BbowConfig, error) {
	config := Default()

	// Try to load from default config file
	if configPath, err := DefaultPath(); err == nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadPath loads configuration from path, then applies environment overrides.
// An empty path behaves like Load.
func LoadPath(path string) (*BbowConfig, error) {
	if path == "" {
		return Load()
	}

	config, err := LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*BbowConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *BbowConfig) Validate() error {
	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	validFormats := map[string]bool{"text": true, "pretty": true}
	if c.Logging.Format != "" && !validFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("invalid log format: %s (valid: text, pretty, or empty for default)", c.Logging.Format)
	}

	if c.Report.Top < 0 {
		return fmt.Errorf("top must be non-negative, got %d", c.Report.Top)
	}

	if _, err := textsource.ParseFormat(c.Input.Format); err != nil {
		return err
	}

	if c.Input.MaxBytes <= 0 {
		return fmt.Errorf("max_bytes must be positive, got %d", c.Input.MaxBytes)
	}

	return nil
}

// SourceOptions converts the input settings to textsource options.
// Call Validate first; an invalid format falls back to auto detection.
func (c *BbowConfig) SourceOptions() textsource.Options {
	format, err := textsource.ParseFormat(c.Input.Format)
	if err != nil {
		format = textsource.FormatAuto
	}
	return textsource.Options{Format: format, MaxBytes: c.Input.MaxBytes}
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *BbowConfig) {
	if v := os.Getenv("BBOW_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv("BBOW_LOG_FORMAT"); v != "" {
		config.Logging.Format = v
	}

	if v := os.Getenv("BBOW_TOP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Report.Top = n
		}
	}

	if v := os.Getenv("BBOW_MIN_COUNT"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 0); err == nil {
			config.Report.MinCount = uint(n)
		}
	}

	if v := os.Getenv("BBOW_INPUT_FORMAT"); v != "" {
		config.Input.Format = v
	}

	if v := os.Getenv("BBOW_MAX_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Input.MaxBytes = n
		}
	}
}
