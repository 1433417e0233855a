package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value is out of range.
var ErrInvalidConfig = errors.New("amphipod: invalid config")

// Config holds the solver settings. Flags override values read from file.
type Config struct {
	// Input is the layout file; empty or "-" reads stdin.
	Input string `yaml:"input"`
	// Parts selects which variants to solve: 1 is the layout as given,
	// 2 its unfolded depth-4 variant.
	Parts []int `yaml:"parts"`
	// Workers evaluating the heuristic; 1 keeps the search on one goroutine.
	Workers int `yaml:"workers"`
	// LogLevel is any level logrus understands.
	LogLevel string `yaml:"log_level"`
	// Timeout bounds each search; zero means no bound.
	Timeout time.Duration `yaml:"timeout"`
	// Trace prints every state of the solution with the cost of each move.
	Trace bool `yaml:"trace"`
	// ProgressInterval logs search progress every n expansions at debug level.
	ProgressInterval int `yaml:"progress_interval"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		Input:            "-",
		Parts:            []int{1, 2},
		Workers:          1,
		LogLevel:         "info",
		ProgressInterval: 50000,
	}
}

// LoadConfig reads path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every field is usable.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %s", ErrInvalidConfig, c.Timeout)
	}
	if c.ProgressInterval < 0 {
		return fmt.Errorf("%w: negative progress_interval %d", ErrInvalidConfig, c.ProgressInterval)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(c.Parts) == 0 {
		return fmt.Errorf("%w: no parts selected", ErrInvalidConfig)
	}
	for _, part := range c.Parts {
		if part != 1 && part != 2 {
			return fmt.Errorf("%w: unknown part %d", ErrInvalidConfig, part)
		}
	}
	return nil
}
