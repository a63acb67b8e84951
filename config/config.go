// Package config loads pipeloop CLI settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds all pipeloop CLI configuration.
type Config struct {
	// Solver settings
	Solver SolverConfig `yaml:"solver"`

	// Output settings
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// SolverConfig configures the loop phases.
type SolverConfig struct {
	Workers int  `yaml:"workers"` // flood fan-out; 1 is sequential
	Reverse bool `yaml:"reverse"` // walk from Start's second neighbor
}

// OutputConfig configures what the CLI prints.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json
	Color  string `yaml:"color"`  // auto, always, never
	Legend bool   `yaml:"legend"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Solver: SolverConfig{
			Workers: 1,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
			Legend: true,
		},
		Logging: LoggingConfig{
			Level:    "warn",
			Encoding: "console",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks every enumerated and numeric setting.
func (c *Config) Validate() error {
	if c.Solver.Workers < 1 {
		return fmt.Errorf("%w: solver.workers must be >= 1, got %d", ErrInvalid, c.Solver.Workers)
	}
	if !oneOf(c.Output.Format, "text", "json") {
		return fmt.Errorf("%w: output.format %q", ErrInvalid, c.Output.Format)
	}
	if !oneOf(c.Output.Color, "auto", "always", "never") {
		return fmt.Errorf("%w: output.color %q", ErrInvalid, c.Output.Color)
	}
	if !oneOf(c.Logging.Level, "debug", "info", "warn", "error") {
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	if !oneOf(c.Logging.Encoding, "json", "console") {
		return fmt.Errorf("%w: logging.encoding %q", ErrInvalid, c.Logging.Encoding)
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
