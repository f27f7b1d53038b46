package config

import (
	"fmt"
	"strings"
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validFormats = map[string]bool{
	"json": true,
	"md":   true,
	"xlsx": true,
}

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = "."
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if !validLevels[cfg.LogLevel] {
		return fmt.Errorf("config: 'log-level' %q is not valid (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	cfg.DefaultFormat = strings.ToLower(cfg.DefaultFormat)
	if cfg.DefaultFormat == "markdown" {
		cfg.DefaultFormat = "md"
	}
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = "json"
	}
	if !validFormats[cfg.DefaultFormat] {
		return fmt.Errorf("config: 'default-format' %q is not valid (must be json, md, or xlsx)", cfg.DefaultFormat)
	}

	if cfg.LogFile != "" && strings.HasSuffix(cfg.LogFile, "/") {
		return fmt.Errorf("config: 'log-file' %q must be a file, not a directory", cfg.LogFile)
	}
	return nil
}
