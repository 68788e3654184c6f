package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/classfmt/go-sdk/pkg/classsupport"
)

// Config is the structure of the optional classfmt YAML file.
type Config struct {
	// Mapper selects a built-in mapper; empty means qualified names with
	// null substitution.
	Mapper    string            `yaml:"mapper"`
	Separator string            `yaml:"separator"`
	Null      string            `yaml:"null"`
	LogLevel  string            `yaml:"log_level"`
	Aliases   map[string]string `yaml:"aliases"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Separator: classsupport.DefaultSeparator,
		Null:      classsupport.NullLiteral,
		LogLevel:  "warn",
	}
}

// LoadConfig reads and parses the config file at path on top of the defaults.
// An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the mapper name.
func (c *Config) Validate() error {
	if c.Mapper == "" {
		return nil
	}
	if _, err := classsupport.MapperByName(c.Mapper); err != nil {
		return err
	}
	return nil
}
