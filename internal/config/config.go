// =============================================================================
// CSV to XLSX Converter - Configuration Module
// =============================================================================
//
// This module is responsible for loading the optional application
// configuration file. Every setting has a default, so the converter runs
// without any configuration file at all.
//
// EXAMPLE (config.yaml):
//   input_dir: inputs
//   output_dir: outputs
//   sheet_name: Sheet1
//   infer_numbers: false
//   logging:
//     level: info
//     format: text
//
// The candidate encodings are fixed (utf-8, then euc-kr) and are not part of
// the configuration.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default directory and sheet values.
const (
	DefaultInputDir  = "inputs"
	DefaultOutputDir = "outputs"
	DefaultSheetName = "Sheet1"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is the directory scanned for CSV files.
	// Default: "inputs"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where XLSX files are written.
	// It is created, with any missing parents, before processing starts.
	// Default: "outputs"
	OutputDir string `yaml:"output_dir"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// SheetName is the worksheet name in every generated workbook.
	// Default: "Sheet1"
	SheetName string `yaml:"sheet_name"`

	// InferNumbers writes all-numeric columns as numeric cells instead of
	// text.
	// Default: false
	InferNumbers bool `yaml:"infer_numbers"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the diagnostic logger. Per-file status lines are
// always printed regardless of these settings.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is "text" or "json".
	// Default: "text"
	Format string `yaml:"format"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file. When empty, the
//     defaults are returned without touching the filesystem.
//
// RETURNS:
//   - A pointer to the Config struct with defaults applied.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = DefaultInputDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.SheetName == "" {
		cfg.SheetName = DefaultSheetName
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

// Validate checks the values that cannot be corrected by defaults.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}

	// Excel limits worksheet names to 31 characters and forbids a few symbols.
	if len([]rune(c.SheetName)) > 31 {
		return fmt.Errorf("sheet name %q is longer than 31 characters", c.SheetName)
	}
	if strings.ContainsAny(c.SheetName, `:\/?*[]`) {
		return fmt.Errorf("sheet name %q contains a character not allowed by Excel", c.SheetName)
	}

	return nil
}
