package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the process configuration, loaded from YAML (teacher's
// cmd/demo/config.yaml convention). Every field has a workable zero-value
// default so a missing config file is not an error.
type Config struct {
	Engine struct {
		WorkerCount int `yaml:"worker_count"`
	} `yaml:"engine"`

	Metrics struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	} `yaml:"metrics"`
}

// defaultConfig mirrors what an empty/absent config file would produce:
// WorkerCount zero, which runSample (internal/cli/cli.go) then falls back
// to a flat 4 workers for, and metrics disabled.
func defaultConfig() *Config {
	return &Config{}
}

// loadConfig reads and parses a YAML config file. A missing file is not an
// error — the caller gets defaultConfig() back instead, since configFile
// defaults to a path that need not exist.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}
