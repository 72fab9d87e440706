package bench

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig indicates an invalid or unreadable experiment configuration.
var ErrBadConfig = errors.New("bench: invalid config")

// Config describes one batch experiment: every preset in Algorithms is run
// Runs times, each run against a fresh scramble seeded by its run index.
type Config struct {
	// Size is the board dimension (≥ 2). Default 3.
	Size int `yaml:"size"`

	// ScrambleDepth is the random-walk length from the goal (≥ 0). Default 20.
	ScrambleDepth int `yaml:"scramble_depth"`

	// Runs is the number of seeds per preset (≥ 1). Default 10.
	Runs int `yaml:"runs"`

	// Workers caps the concurrent runs. Default: half the CPUs, minimum 1.
	Workers int `yaml:"workers"`

	// Algorithms lists catalog preset names. Default: the full catalog.
	Algorithms []string `yaml:"algorithms"`
}

// DefaultConfig returns the canonical experiment setup.
func DefaultConfig() Config {
	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}

	return Config{
		Size:          3,
		ScrambleDepth: 20,
		Runs:          10,
		Workers:       workers,
		Algorithms:    Presets(),
	}
}

// LoadConfig reads a YAML experiment file, fills unset fields with
// defaults, and validates the result.
//
// Errors: ErrBadConfig wrapped with the underlying cause.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	cfg := Config{}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	cfg.applyDefaults()
	if err = cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyDefaults replaces zero-valued fields with DefaultConfig values.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Size == 0 {
		c.Size = def.Size
	}
	if c.ScrambleDepth == 0 {
		c.ScrambleDepth = def.ScrambleDepth
	}
	if c.Runs == 0 {
		c.Runs = def.Runs
	}
	if c.Workers == 0 {
		c.Workers = def.Workers
	}
	if len(c.Algorithms) == 0 {
		c.Algorithms = def.Algorithms
	}
}

// validate rejects ranges the runner cannot honor and unknown preset names.
func (c *Config) validate() error {
	if c.Size < 2 {
		return fmt.Errorf("%w: size %d", ErrBadConfig, c.Size)
	}
	if c.ScrambleDepth < 0 {
		return fmt.Errorf("%w: scramble_depth %d", ErrBadConfig, c.ScrambleDepth)
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs %d", ErrBadConfig, c.Runs)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d", ErrBadConfig, c.Workers)
	}

	known := make(map[string]struct{}, len(Presets()))
	for _, name := range Presets() {
		known[name] = struct{}{}
	}
	for _, name := range c.Algorithms {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
		}
	}

	return nil
}
