// Package review drives a review session: it sweeps over the located cards
// in passes, consults the store and the scheduling engine to decide which
// cards are due, collects grades through a presenter, and records every
// outcome immediately so an aborted session loses nothing already graded.
package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/recall-srs/recall/internal/domain"
	"github.com/recall-srs/recall/internal/domain/fsrs"
	"github.com/recall-srs/recall/internal/domain/token"
	"github.com/recall-srs/recall/internal/store"
)

// ErrAborted is returned by a Presenter when the user quits mid-session. The
// session ends immediately; the in-progress card is discarded and every
// previously recorded update is preserved.
var ErrAborted = errors.New("review session aborted")

// Presenter shows one card and blocks until the user grades it or aborts.
type Presenter interface {
	Present(ctx context.Context, card domain.Card) (domain.Grade, error)
}

// Config tunes a review session.
type Config struct {
	// TargetRetention is the minimum acceptable recall probability below
	// which a card becomes due. Out-of-range values are clamped into [0, 1].
	TargetRetention float64

	// GraceDays suppresses re-presentation of a card reviewed less than this
	// many days ago, which is what lets a session terminate even at
	// permissive retention targets. Zero means the default of one day.
	GraceDays float64

	// MaxPasses caps the number of full sweeps over the card list. Zero
	// means the default of 100.
	MaxPasses int
}

const (
	defaultGraceDays = 1.0
	defaultMaxPasses = 100
)

// Service runs review sessions against a store and presenter.
type Service struct {
	store     store.ReviewStore
	presenter Presenter
	cfg       Config
	log       *slog.Logger
	sessionID string

	// now is swappable for tests.
	now func() time.Time
}

// NewService builds a session runner. The configuration is normalized here:
// retention clamped, defaults filled in.
func NewService(st store.ReviewStore, presenter Presenter, cfg Config, log *slog.Logger) *Service {
	if cfg.TargetRetention < 0 {
		cfg.TargetRetention = 0
	}
	if cfg.TargetRetention > 1 {
		cfg.TargetRetention = 1
	}
	if cfg.GraceDays <= 0 {
		cfg.GraceDays = defaultGraceDays
	}
	if cfg.MaxPasses <= 0 {
		cfg.MaxPasses = defaultMaxPasses
	}
	if log == nil {
		log = slog.Default()
	}
	sessionID := uuid.NewString()
	return &Service{
		store:     st,
		presenter: presenter,
		cfg:       cfg,
		log:       log.With("session_id", sessionID),
		sessionID: sessionID,
		now:       time.Now,
	}
}

// Run sweeps over cards until a full pass records zero reviews, the pass cap
// is reached, or the presenter reports an abort. Store and presenter
// failures are fatal; an abort is a normal ending.
func (s *Service) Run(ctx context.Context, cards []domain.Card) error {
	s.log.Info("review session started",
		"cards", len(cards), "target_retention", s.cfg.TargetRetention)

	total := 0
	for pass := 1; pass <= s.cfg.MaxPasses; pass++ {
		reviewed, err := s.runPass(ctx, cards)
		if errors.Is(err, ErrAborted) {
			s.log.Info("review session aborted", "reviewed", total+reviewed)
			return nil
		}
		if err != nil {
			return err
		}
		total += reviewed
		if reviewed == 0 {
			break
		}
	}

	s.log.Info("review session finished", "reviewed", total)
	return nil
}

// runPass performs one sweep and reports how many cards were reviewed.
func (s *Service) runPass(ctx context.Context, cards []domain.Card) (int, error) {
	reviewed := 0
	for _, card := range cards {
		tok := token.Encode(card.ID)

		rec, found, err := s.store.Get(ctx, tok)
		if err != nil {
			return reviewed, fmt.Errorf("look up review state: %w", err)
		}

		elapsed := 0.0
		if found {
			elapsed = s.now().Sub(rec.LastReview).Hours() / 24
			if !s.due(rec.State, elapsed) {
				continue
			}
		}

		grade, err := s.presenter.Present(ctx, card)
		if err != nil {
			if errors.Is(err, ErrAborted) {
				return reviewed, ErrAborted
			}
			return reviewed, fmt.Errorf("present card %s: %w", tok, err)
		}

		next := s.nextRecord(rec, found, grade, elapsed)
		if err := s.store.Put(ctx, tok, next, s.sessionID); err != nil {
			return reviewed, fmt.Errorf("record review: %w", err)
		}
		reviewed++

		s.log.Debug("review recorded",
			"token", tok,
			"grade", grade.String(),
			"stability", next.State.Stability,
			"difficulty", next.State.Difficulty)
	}
	return reviewed, nil
}

// due decides whether an already-reviewed card is presented this pass.
func (s *Service) due(state domain.MemoryState, elapsedDays float64) bool {
	if elapsedDays < s.cfg.GraceDays {
		return false
	}
	return fsrs.RecallProbability(state, elapsedDays) < s.cfg.TargetRetention
}

// nextRecord computes the record written after a grade. First reviews are
// seeded from the initial-state table for every grade. For existing records
// a failing grade touches only the timestamp and never the memory state;
// passing grades go through the same-day update inside a one-day window and
// the full update otherwise.
func (s *Service) nextRecord(rec domain.ReviewRecord, found bool, grade domain.Grade, elapsedDays float64) domain.ReviewRecord {
	now := s.now()
	switch {
	case !found:
		return domain.ReviewRecord{LastReview: now, State: fsrs.Initial(grade)}
	case !grade.Passing():
		return domain.ReviewRecord{LastReview: now, State: rec.State}
	case elapsedDays < 1:
		return domain.ReviewRecord{LastReview: now, State: fsrs.SameDayReview(rec.State, grade)}
	default:
		recall := fsrs.RecallProbability(rec.State, elapsedDays)
		return domain.ReviewRecord{LastReview: now, State: fsrs.Review(rec.State, grade, recall)}
	}
}
