package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/recall-srs/recall/internal/domain/fsrs"
	"github.com/recall-srs/recall/internal/domain/token"
	"github.com/recall-srs/recall/internal/tui"
)

// cardsCmd lists every located card with its scheduling state.
var cardsCmd = &cobra.Command{
	Use:   "cards [files...]",
	Short: "List all cards with their memory state",
	RunE:  runCards,
}

func runCards(cmd *cobra.Command, args []string) error {
	cfg, log, err := initializeApp()
	if err != nil {
		return err
	}

	cards, err := scanCards(cmd, cfg, log, args)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	now := time.Now()
	listings := make([]tui.CardListing, 0, len(cards))
	for _, card := range cards {
		listing := tui.CardListing{Card: card}
		rec, found, err := st.Get(cmd.Context(), token.Encode(card.ID))
		if err != nil {
			return err
		}
		if found {
			elapsed := now.Sub(rec.LastReview).Hours() / 24
			listing.Reviewed = true
			listing.State = rec.State
			listing.Recall = fsrs.RecallProbability(rec.State, elapsed)
		}
		listings = append(listings, listing)
	}

	tui.RenderCardList(os.Stdout, listings)
	return nil
}
