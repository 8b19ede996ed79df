package fsrs

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/recall-srs/recall/internal/domain"
)

var allGrades = []domain.Grade{
	domain.GradeAgain,
	domain.GradeHard,
	domain.GradeGood,
	domain.GradeEasy,
}

func TestInitialStabilityMatchesTable(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		grade     domain.Grade
		stability float64
	}{
		{domain.GradeAgain, 0.212},
		{domain.GradeHard, 1.2931},
		{domain.GradeGood, 2.3065},
		{domain.GradeEasy, 8.2956},
	}

	for _, tc := range testCases {
		t.Run(tc.grade.String(), func(t *testing.T) {
			state := Initial(tc.grade)
			if state.Stability != tc.stability {
				t.Errorf("Initial(%s).Stability = %v, want %v", tc.grade, state.Stability, tc.stability)
			}
		})
	}
}

func TestDifficultyBoundHolds(t *testing.T) {
	t.Parallel()

	checkBounds := func(t *testing.T, state domain.MemoryState, context string) {
		t.Helper()
		if state.Difficulty < MinDifficulty || state.Difficulty > MaxDifficulty {
			t.Fatalf("%s: difficulty %v outside [%v, %v]", context, state.Difficulty, MinDifficulty, MaxDifficulty)
		}
	}

	for _, first := range allGrades {
		state := Initial(first)
		checkBounds(t, state, "after Initial")
	}

	// Random walks over reachable grade sequences, alternating update paths.
	rng := rand.New(rand.NewPCG(1, 2))
	for walk := 0; walk < 100; walk++ {
		state := Initial(allGrades[rng.IntN(len(allGrades))])
		for step := 0; step < 50; step++ {
			grade := allGrades[rng.IntN(len(allGrades))]
			if !grade.Passing() {
				continue
			}
			if rng.IntN(2) == 0 {
				elapsed := rng.Float64() * 365
				state = Review(state, grade, RecallProbability(state, elapsed))
			} else {
				state = SameDayReview(state, grade)
			}
			checkBounds(t, state, "after update")
		}
	}
}

func TestRecallProbabilityMonotone(t *testing.T) {
	t.Parallel()

	state := domain.MemoryState{Stability: 3.5, Difficulty: 5}

	if got := RecallProbability(state, 0); math.Abs(got-1) > 1e-9 {
		t.Errorf("RecallProbability(state, 0) = %v, want 1", got)
	}

	prev := 1.0
	for elapsed := 0.25; elapsed < 400; elapsed *= 1.5 {
		r := RecallProbability(state, elapsed)
		if r > prev {
			t.Fatalf("recall increased from %v to %v at elapsed %v", prev, r, elapsed)
		}
		if r < 0 || r > 1 {
			t.Fatalf("recall %v outside [0, 1] at elapsed %v", r, elapsed)
		}
		prev = r
	}
}

func TestRecallProbabilityIncreasesWithStability(t *testing.T) {
	t.Parallel()

	const elapsed = 10.0
	prev := 0.0
	for stability := 1.0; stability < 100; stability *= 2 {
		r := RecallProbability(domain.MemoryState{Stability: stability, Difficulty: 5}, elapsed)
		if r <= prev {
			t.Fatalf("recall did not increase with stability: %v at S=%v, previous %v", r, stability, prev)
		}
		prev = r
	}
}

func TestStabilityIsNinetyPercentInterval(t *testing.T) {
	t.Parallel()

	// By definition, recall decays to exactly 0.9 once the elapsed time
	// reaches the stability value.
	for _, grade := range allGrades {
		state := Initial(grade)
		r := RecallProbability(state, state.Stability)
		if math.Abs(r-0.9) > 0.01 {
			t.Errorf("Initial(%s): recall at t=stability is %v, want 0.9 +/- 0.01", grade, r)
		}
	}
}

func TestReviewGrowsStabilityOnSuccess(t *testing.T) {
	t.Parallel()

	for _, grade := range allGrades {
		if !grade.Passing() {
			continue
		}
		state := Initial(domain.GradeGood)
		recall := RecallProbability(state, state.Stability*2)
		next := Review(state, grade, recall)
		if next.Stability <= state.Stability {
			t.Errorf("Review(%s) did not grow stability: %v -> %v", grade, state.Stability, next.Stability)
		}
	}
}

func TestReviewDifficultyDirection(t *testing.T) {
	t.Parallel()

	state := domain.MemoryState{Stability: 5, Difficulty: 5}
	recall := 0.9

	harder := Review(state, domain.GradeHard, recall)
	easier := Review(state, domain.GradeEasy, recall)
	same := Review(state, domain.GradeGood, recall)

	if harder.Difficulty <= state.Difficulty {
		t.Errorf("Hard grade should raise difficulty: %v -> %v", state.Difficulty, harder.Difficulty)
	}
	if easier.Difficulty >= state.Difficulty {
		t.Errorf("Easy grade should lower difficulty: %v -> %v", state.Difficulty, easier.Difficulty)
	}
	// Good leaves the grade-dependent target at zero; only the mean
	// reversion step moves difficulty, and only slightly.
	if math.Abs(same.Difficulty-state.Difficulty) > 0.05 {
		t.Errorf("Good grade moved difficulty too far: %v -> %v", state.Difficulty, same.Difficulty)
	}
}

func TestSameDayReviewFloor(t *testing.T) {
	t.Parallel()

	state := domain.MemoryState{Stability: 4, Difficulty: 6}

	for _, grade := range []domain.Grade{domain.GradeGood, domain.GradeEasy} {
		next := SameDayReview(state, grade)
		if next.Stability < state.Stability {
			t.Errorf("SameDayReview(%s) dropped stability below floor: %v -> %v", grade, state.Stability, next.Stability)
		}
		if next.Difficulty != state.Difficulty {
			t.Errorf("SameDayReview(%s) changed difficulty: %v -> %v", grade, state.Difficulty, next.Difficulty)
		}
	}

	// Hard carries no floor and shrinks stability for this state.
	next := SameDayReview(state, domain.GradeHard)
	if next.Stability >= state.Stability {
		t.Errorf("SameDayReview(hard) should shrink stability here: %v -> %v", state.Stability, next.Stability)
	}
}

func TestDeterminism(t *testing.T) {
	t.Parallel()

	state := Initial(domain.GradeHard)
	recall := RecallProbability(state, 3.0)
	a := Review(state, domain.GradeGood, recall)
	b := Review(state, domain.GradeGood, recall)
	if a != b {
		t.Errorf("Review is not deterministic: %v vs %v", a, b)
	}
}
