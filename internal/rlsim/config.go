package rlsim

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Config is a demo.yaml manifest as produced by the scaffold.
type Config struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Server      struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Defaults *Params `yaml:"defaults,omitempty"`
}

// LoadConfig reads and parses a demo.yaml manifest.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Type != "" && cfg.Type != "demo" {
		return nil, fmt.Errorf("config %s has type %q, expected \"demo\"", path, cfg.Type)
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8000"
	}

	return &cfg, nil
}
