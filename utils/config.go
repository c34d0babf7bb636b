package utils

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for settings the simulation cannot run with
var ErrInvalidConfig = errors.New("invalid config")

// Placement stamps a named pattern with its top-left corner at (Row, Column)
type Placement struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Row     uint32 `json:"row" yaml:"row"`
	Column  uint32 `json:"column" yaml:"column"`
}

// Config holds the configuration for the game
type Config struct {
	Width               uint32        `json:"width" yaml:"width"`
	Height              uint32        `json:"height" yaml:"height"`
	Seed                uint64        `json:"seed" yaml:"seed"`
	Probability         float64       `json:"probability" yaml:"probability"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel" yaml:"use_parallel"`
	Workers             int           `json:"workers" yaml:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool" yaml:"use_memory_pool"`
	MaxGenerations      uint64        `json:"max_generations" yaml:"max_generations"`
	Patterns            []Placement   `json:"patterns,omitempty" yaml:"patterns,omitempty"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		Seed:                42,
		Probability:         0.15,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseParallel:         false,
		Workers:             0, // runtime.NumCPU
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		Patterns: []Placement{
			{Pattern: "glider", Row: 1, Column: 1},
		},
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width == 0 || c.Height == 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case math.IsNaN(c.Probability) || c.Probability < 0 || c.Probability > 1:
		return errors.Wrapf(ErrInvalidConfig, "probability must be within [0, 1], got %v", c.Probability)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame rate must not be negative, got %v", c.FrameRate)
	}
	return nil
}

// YAML renders the config in the same form LoadConfig reads
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "[Config.YAML] failed to marshal")
	}
	return data, nil
}
