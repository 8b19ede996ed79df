package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces this tool's environment variables, e.g.
// RECALL_STORE_BACKEND overrides store.backend.
const envPrefix = "RECALL"

// DataDir returns the directory holding the review state, honoring
// XDG_DATA_HOME and falling back to ~/.local/share/recall.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "recall")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "recall-data"
	}
	return filepath.Join(home, ".local", "share", "recall")
}

// Load reads configuration from defaults, an optional config file at
// ~/.config/recall/config.yaml, and environment variables, then validates
// the result. Environment variables take precedence over file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("store.backend", "sqlite")
	v.SetDefault("store.path", filepath.Join(DataDir(), "recall.db"))
	v.SetDefault("search.binary", "rg")
	v.SetDefault("search.globs", []string{"*.md", "*.txt"})
	v.SetDefault("review.retention", 0.9)
	v.SetDefault("review.grace_days", 1.0)
	v.SetDefault("review.max_passes", 100)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "recall"))
	}
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is a parse fault
		// recovered by falling back to defaults and environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: ignoring unreadable config file: %v\n", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind every key: AutomaticEnv alone does not surface unset
	// struct fields through Unmarshal.
	for _, key := range []string{
		"log.level",
		"store.backend",
		"store.path",
		"search.binary",
		"search.globs",
		"review.retention",
		"review.grace_days",
		"review.max_passes",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
