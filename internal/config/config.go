package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	OutputDir     string `yaml:"output-dir"`
	LogLevel      string `yaml:"log-level"`
	LogFile       string `yaml:"log-file"`
	DefaultFormat string `yaml:"default-format"`
}

// DefaultPath returns <user config dir>/dpsheet/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dpsheet", "config.yaml"), nil
}

// Default returns a validated config with every field at its default.
func Default() *Config {
	cfg := &Config{}
	// Validate only fills defaults on an empty config.
	_ = Validate(cfg)
	return cfg
}

// Load reads a YAML config file and returns a validated Config.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
