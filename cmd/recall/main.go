// Package main implements the recall CLI: spaced repetition for cards kept
// as tagged passages inside plain-text notes.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/recall-srs/recall/internal/config"
	"github.com/recall-srs/recall/internal/domain"
	"github.com/recall-srs/recall/internal/locator"
	"github.com/recall-srs/recall/internal/platform/logger"
	"github.com/recall-srs/recall/internal/store"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "recall: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "recall",
	Short: "Review study cards embedded in your notes",
	Long: `recall finds REVIEW: markers in plain-text documents, gives each card a
stable identifier embedded in the text, and schedules reviews with the FSRS
spaced-repetition model.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(cardsCmd)
}

// initializeApp loads configuration and installs the logger. Every
// subcommand starts here.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}
	log := logger.Setup(cfg.Log)
	return cfg, log, nil
}

// scanCards runs the locator over the given files, or over the configured
// globs when none are given. Identifier minting happens here as a side
// effect of the scan.
func scanCards(cmd *cobra.Command, cfg *config.Config, log *slog.Logger, files []string) ([]domain.Card, error) {
	searcher := locator.NewRipgrep(cfg.Search.Binary, cfg.Search.Globs)
	scanner := locator.NewScanner(searcher, log)
	return scanner.Scan(cmd.Context(), files)
}

// openStore opens the configured review state backend.
func openStore(cfg *config.Config) (store.ReviewStore, error) {
	s, err := store.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open review store: %w", err)
	}
	return s, nil
}
