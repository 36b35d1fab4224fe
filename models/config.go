package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the vocab tool.
// Values come from an optional YAML file and are overridden by CLI flags.
type Config struct {
	Build   BuildConfig   `yaml:"build"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// BuildConfig holds the settings of a single vocabulary build.
type BuildConfig struct {
	BatchSize int `yaml:"batch_size"` // lines per batch, must be positive
	Workers   int `yaml:"workers"`    // 0 means one per CPU

	FilterStopwords bool `yaml:"stopwords"`
	Stem            bool `yaml:"stem"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format         string `yaml:"format"` // "yaml", "json" or "text"
	Sort           string `yaml:"sort"`
	Top            int    `yaml:"top"` // 0 renders every word
	DetectLanguage bool   `yaml:"detect_language"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Build: BuildConfig{
			BatchSize: 1000,
		},
		Output: OutputConfig{
			Format: "yaml",
			Sort:   string(SortFrequencyDescending),
			Top:    25,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: invalid config file %s: %v", ErrConfiguration, path, err)
	}

	return cfg, nil
}

// LoadRequiredConfig is LoadConfig for a file the user named explicitly:
// a missing file is a configuration error instead of the defaults.
func LoadRequiredConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: config file %s: %v", ErrConfiguration, path, err)
	}
	return LoadConfig(path)
}

// Validate checks the build settings. It performs no I/O.
func (c BuildConfig) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive, got %d", ErrConfiguration, c.BatchSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrConfiguration, c.Workers)
	}
	return nil
}

// Validate checks the output settings.
func (c OutputConfig) Validate() error {
	switch c.Format {
	case "yaml", "json", "text":
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrConfiguration, c.Format)
	}
	if c.Top < 0 {
		return fmt.Errorf("%w: top must not be negative, got %d", ErrConfiguration, c.Top)
	}
	if _, err := ParseSortOption(c.Sort); err != nil {
		return err
	}
	return nil
}
