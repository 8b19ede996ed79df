package main

import (
	"github.com/spf13/cobra"

	"github.com/recall-srs/recall/internal/service/review"
	"github.com/recall-srs/recall/internal/tui"
)

var retentionFlag float64

// reviewCmd runs a full review session over all due cards.
var reviewCmd = &cobra.Command{
	Use:   "review [files...]",
	Short: "Review all cards due",
	Long: `Review every card whose predicted recall has dropped below the target
retention. Without file arguments the configured search globs decide which
documents are scanned.

Examples:
  # Review everything due in the current tree
  recall review

  # Review only one document, studying to a stricter target
  recall review --retention 0.95 notes/go.md`,
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().Float64VarP(&retentionFlag, "retention", "r", 0.9,
		"target retention for study, clamped between 0.0 and 1.0")
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, log, err := initializeApp()
	if err != nil {
		return err
	}

	retention := cfg.Review.Retention
	if cmd.Flags().Changed("retention") {
		retention = retentionFlag
	}

	cards, err := scanCards(cmd, cfg, log, args)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		log.Info("no cards found")
		return nil
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	svc := review.NewService(st, tui.NewPresenter(), review.Config{
		TargetRetention: retention,
		GraceDays:       cfg.Review.GraceDays,
		MaxPasses:       cfg.Review.MaxPasses,
	}, log)

	return svc.Run(cmd.Context(), cards)
}
