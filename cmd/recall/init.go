package main

import (
	"github.com/spf13/cobra"
)

// initCmd embeds identifiers without starting a review. Usually unnecessary
// to run manually: every command initializes markers as part of its scan.
var initCmd = &cobra.Command{
	Use:   "init [files...]",
	Short: "Embed identifiers for any unmarked cards",
	Long: `Scan the documents for REVIEW: markers lacking an identifier, mint one
for each, and rewrite the documents in place. No cards are presented.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, log, err := initializeApp()
	if err != nil {
		return err
	}

	cards, err := scanCards(cmd, cfg, log, args)
	if err != nil {
		return err
	}

	log.Info("scan complete", "cards", len(cards))
	return nil
}
