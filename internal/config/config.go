// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mfigueiredo/tarefa/internal/models"
)

// Config holds the full configuration for tarefa.
type Config struct {
	// StoragePath is the SQLite file holding the persisted slots
	StoragePath string `toml:"storage_path"`

	// Defaults applied when add input leaves them out
	DefaultCategory string `toml:"default_category"`
	DefaultPriority string `toml:"default_priority"`
}

// Load loads configuration in priority order:
// 1. Defaults
// 2. Config file (TOML) at ~/.tarefa/config.toml
// 3. Environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := findConfigFile(); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.StoragePath = ""
	cfg.DefaultCategory = "Pessoal"
	cfg.DefaultPriority = "low"
}

// findConfigFile looks for the config file in the tarefa home directory.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".tarefa", "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TAREFA_DB"); v != "" {
		cfg.StoragePath = v
	}
	if v := os.Getenv("TAREFA_CATEGORY"); v != "" {
		cfg.DefaultCategory = v
	}
	if v := os.Getenv("TAREFA_PRIORITY"); v != "" {
		cfg.DefaultPriority = v
	}
}

// validate rejects defaults outside the fixed sets.
func validate(cfg *Config) error {
	if category, ok := models.MatchCategory(cfg.DefaultCategory); ok {
		cfg.DefaultCategory = category
	} else {
		return fmt.Errorf("invalid default_category %q, use one of: %s",
			cfg.DefaultCategory, strings.Join(models.Categories, ", "))
	}
	if _, ok := models.ParsePriority(cfg.DefaultPriority); !ok {
		return fmt.Errorf("invalid default_priority %q, use low, medium or high", cfg.DefaultPriority)
	}
	return nil
}
