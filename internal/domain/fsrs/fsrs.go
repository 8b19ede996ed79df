// Package fsrs implements the Free Spaced Repetition Scheduler memory model:
// pure functions mapping a review grade and elapsed time to updated
// stability/difficulty and predicted recall probability. Nothing here
// performs I/O or holds mutable state, and every function is deterministic
// for identical floating-point inputs.
//
// See https://github.com/open-spaced-repetition/free-spaced-repetition-scheduler
package fsrs

import (
	"math"

	"github.com/recall-srs/recall/internal/domain"
)

// weights is the fitted FSRS parameter set. Indexes follow the reference
// scheduler: weights[0..3] are the initial stabilities per grade, the rest
// feed the difficulty and stability transition formulas.
var weights = [21]float64{
	0.212, 1.2931, 2.3065, 8.2956, 6.4133, 0.8334, 3.0194, 0.001, 1.8722,
	0.1666, 0.796, 1.4835, 0.0614, 0.2629, 1.6483, 0.6014, 1.8729, 0.5425,
	0.0912, 0.0658, 0.1542,
}

// Difficulty bounds. Every state produced by this package satisfies them.
const (
	MinDifficulty = 1.0
	MaxDifficulty = 10.0
)

func clampDifficulty(d float64) float64 {
	return math.Min(MaxDifficulty, math.Max(MinDifficulty, d))
}

// Initial computes the memory state seeded by a card's very first review.
// Stability comes straight from the fitted table; difficulty is derived from
// the grade ordinal and clamped into range.
func Initial(grade domain.Grade) domain.MemoryState {
	g := float64(grade)
	return domain.MemoryState{
		Stability:  weights[grade-1],
		Difficulty: clampDifficulty(weights[4] - math.Exp(weights[5]*(g-1)) + 1),
	}
}

// RecallProbability predicts the chance of successful recall after
// elapsedDays. The curve is the FSRS power forgetting curve: it equals 1 at
// zero elapsed time, decays monotonically, and passes through 0.9 exactly
// when elapsedDays equals the state's stability.
func RecallProbability(state domain.MemoryState, elapsedDays float64) float64 {
	if elapsedDays <= 0 {
		return 1
	}
	if state.Stability <= 0 {
		return 0
	}
	factor := math.Pow(0.9, -1/weights[20]) - 1
	return math.Pow(1+factor*elapsedDays/state.Stability, -weights[20])
}

// Review produces the state after a successful recall graded on a different
// day than the previous review. recall is the probability estimated at
// review time: the more surprising the success (low recall), the larger the
// stability growth. Difficulty moves toward a grade-dependent target and is
// then pulled partway back toward the initial difficulty of a maximal grade
// before re-clamping.
func Review(state domain.MemoryState, grade domain.Grade, recall float64) domain.MemoryState {
	s := state.Stability
	d := state.Difficulty
	g := float64(grade)

	growth := 1 + (11-d)*math.Pow(s, -weights[9])*math.Exp(weights[10]*(1-recall)-1)

	deltaD := -weights[6] * (g - 3)
	d1 := d + deltaD*(10-d)/9
	d2 := weights[7]*Initial(domain.GradeEasy).Difficulty + (1-weights[7])*d1

	return domain.MemoryState{
		Stability:  s * growth,
		Difficulty: clampDifficulty(d2),
	}
}

// SameDayReview produces the state for a repeat review inside one
// elapsed-day window. Stability is rescaled multiplicatively by a
// grade-and-stability-dependent factor; for passing grades of Good or better
// it is floored at its pre-review value so a same-day success can never
// weaken a card. Difficulty carries through unchanged.
func SameDayReview(state domain.MemoryState, grade domain.Grade) domain.MemoryState {
	s := state.Stability
	g := float64(grade)

	s2 := s * math.Exp(weights[17]*(g-3+weights[18])) * math.Pow(s, -weights[19])
	if grade >= domain.GradeGood && s2 < s {
		s2 = s
	}

	return domain.MemoryState{
		Stability:  s2,
		Difficulty: clampDifficulty(state.Difficulty),
	}
}
