// Package config loads and validates application configuration from an
// optional YAML file and RECALL_-prefixed environment variables, with
// environment variables taking precedence.
package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Log    LogConfig    `mapstructure:"log"    validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
	Search SearchConfig `mapstructure:"search" validate:"required"`
	Review ReviewConfig `mapstructure:"review" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// StoreConfig selects and locates the review state backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=sqlite json"`
	Path    string `mapstructure:"path"    validate:"required"`
}

// SearchConfig describes the external search collaborator.
type SearchConfig struct {
	// Binary is the search tool executable.
	Binary string `mapstructure:"binary" validate:"required"`
	// Globs are the document extensions scanned when no explicit files are
	// given.
	Globs []string `mapstructure:"globs" validate:"required,min=1"`
}

// ReviewConfig tunes review sessions.
type ReviewConfig struct {
	// Retention is the default target retention; the review command's flag
	// overrides it and either value is clamped into [0, 1] downstream.
	Retention float64 `mapstructure:"retention" validate:"gte=0,lte=1"`
	GraceDays float64 `mapstructure:"grace_days" validate:"gte=0"`
	MaxPasses int     `mapstructure:"max_passes" validate:"gte=1"`
}
