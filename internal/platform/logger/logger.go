// Package logger provides structured logging setup for the application.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/recall-srs/recall/internal/config"
)

// Setup builds the application's structured JSON logger from configuration
// and installs it as the slog default. Output goes to stderr because the
// review UI owns stdout. An unknown level falls back to info with a warning
// rather than failing the run.
func Setup(cfg config.LogConfig) *slog.Logger {
	return setup(cfg, os.Stderr)
}

func setup(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level, ok := parseLevel(cfg.Level)
	if !ok {
		tmp := slog.New(slog.NewTextHandler(w, nil))
		tmp.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
