package life

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/randomizedcoder/axcontainers/internal/tick"
)

// Config configures a simulation.
type Config struct {
	// Rules is a B/S rulestring. Empty means the pattern's rule, or
	// Conway's if the pattern has none.
	Rules string `yaml:"rules"`
	// Pattern is a path to a plaintext or RLE pattern file.
	Pattern string `yaml:"pattern"`
	// Rate is the number of generations per second.
	Rate int `yaml:"rate"`
	// Generations stops the run after that many generations; 0 runs until
	// cancelled.
	Generations uint64 `yaml:"generations"`
	// Paused starts the run paused.
	Paused bool `yaml:"paused"`

	// MaxCells caps the number of cells alive or pooled; 0 is unlimited.
	MaxCells int `yaml:"max_cells"`
	// MaxInputs bounds the input backlog.
	MaxInputs int `yaml:"max_inputs"`
	// Poll is how long the loop sleeps when there is nothing to do.
	Poll time.Duration `yaml:"poll"`
	// Report is the interval between progress log lines; 0 disables them.
	Report time.Duration `yaml:"report"`

	MetricsAddr string `yaml:"metrics_addr"`
}

// DefaultConfig returns the settings used for anything a config file or
// flag does not set.
func DefaultConfig() Config {
	return Config{
		Rate:      tick.DefaultRate,
		MaxInputs: MaxPendingInputs,
		Poll:      time.Millisecond,
		Report:    10 * time.Second,
	}
}

// LoadConfig reads a YAML file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("life: config: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("life: config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("life: config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the configuration for values the runner cannot use.
func (c Config) Validate() error {
	if _, err := ParseRules(c.Rules); err != nil {
		return err
	}
	if c.Rate < 1 {
		return errors.New("rate must be at least 1")
	}
	if c.MaxCells < 0 {
		return errors.New("max_cells must not be negative")
	}
	if c.MaxInputs < 1 {
		return errors.New("max_inputs must be at least 1")
	}
	if c.Poll < 0 || c.Report < 0 {
		return errors.New("durations must not be negative")
	}
	return nil
}
