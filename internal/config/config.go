// Package config loads and saves run configurations.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMethod = "backward_euler"
	DefaultStep   = 0.01
	DefaultT1     = 10.0
)

// NewtonConfig tunes the inner nonlinear solve of implicit methods.
// Zero values fall back to the solver defaults.
type NewtonConfig struct {
	MaxIter int     `yaml:"max_iter"`
	Tol     float64 `yaml:"tol"`
}

type Config struct {
	Model  string             `yaml:"model"`
	Method string             `yaml:"method"`
	Step   float64            `yaml:"step"`
	T0     float64            `yaml:"t0"`
	T1     float64            `yaml:"t1"`
	Y0     []float64          `yaml:"y0,flow"`
	Params map[string]float64 `yaml:"params,omitempty"`
	Newton NewtonConfig       `yaml:"newton,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:  "decay",
		Method: DefaultMethod,
		Step:   DefaultStep,
		T0:     0,
		T1:     DefaultT1,
	}
}

// Load reads a YAML config from path, applying file values on top of
// the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the parts of the config that would otherwise fail
// deep inside a run.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("config: model is required")
	}
	if c.Step <= 0 {
		return fmt.Errorf("config: step must be positive, got %g", c.Step)
	}
	if c.T1 <= c.T0 {
		return fmt.Errorf("config: t1 (%g) must be greater than t0 (%g)", c.T1, c.T0)
	}
	return nil
}
