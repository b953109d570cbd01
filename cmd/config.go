package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// fileConfig is the optional YAML config file: board defaults that sit
// between the built-in defaults and the command line.
//
//	rows: 16
//	cols: 30
//	mines: 99
//	seed: 12345
type fileConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
	// Mines is a pointer because 0 is a legal value.
	Mines *int   `yaml:"mines"`
	Seed  uint64 `yaml:"seed"`
}

func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// apply overlays the file's settings onto params, leaving unset fields
// alone. The combined result still needs a valid() check, since rows
// from one layer and mines from another can disagree.
func (cfg *fileConfig) apply(params boardParams) boardParams {
	if cfg.Rows > 0 {
		params.rows = cfg.Rows
	}
	if cfg.Cols > 0 {
		params.cols = cfg.Cols
	}
	if cfg.Mines != nil && *cfg.Mines >= 0 {
		params.mines = *cfg.Mines
	}
	return params
}
