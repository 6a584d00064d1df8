package utils

import (
	"encoding/json"
	"os"
	"runtime"

	"github.com/pkg/errors"
)

// Config holds the configuration for a simulation run
type Config struct {
	Rows           int     `json:"rows"`
	Cols           int     `json:"cols"`
	MaxGenerations int     `json:"max_generations"` // 0 runs until stopped
	RandomDensity  float64 `json:"random_density"`
	Seed           int64   `json:"seed"` // 0 picks a random seed
	PatternFile    string  `json:"pattern_file"`
	OutputFile     string  `json:"output_file"`
	Workers        int     `json:"workers"`
	UseMemoryPool  bool    `json:"use_memory_pool"`
	StopOnStable   bool    `json:"stop_on_stable"`
	HistorySize    int     `json:"history_size"`
	ReportEvery    int     `json:"report_every"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:           30,
		Cols:           60,
		MaxGenerations: 1000,
		RandomDensity:  0.15,
		Workers:        runtime.NumCPU(),
		UseMemoryPool:  true,
		StopOnStable:   true,
		HistorySize:    5,
		ReportEvery:    100,
	}
}

// LoadConfig loads configuration from JSON file, on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings a run cannot honour
func (c Config) Validate() error {
	switch {
	case c.MaxGenerations < 0:
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	case c.HistorySize < 0:
		return errors.Errorf("history_size must not be negative, got %d", c.HistorySize)
	case c.ReportEvery < 0:
		return errors.Errorf("report_every must not be negative, got %d", c.ReportEvery)
	case c.Workers < 0:
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
