package domain

import (
	"testing"
)

func TestNewCardID(t *testing.T) {
	t.Parallel()

	seen := make(map[CardID]bool)
	for i := 0; i < 1000; i++ {
		id := NewCardID()
		if id.IsZero() {
			t.Fatal("NewCardID returned the reserved zero identifier")
		}
		if seen[id] {
			t.Fatalf("NewCardID repeated identifier %v within 1000 draws", id)
		}
		seen[id] = true
	}
}

func TestCardValidate(t *testing.T) {
	t.Parallel()

	card := &Card{ID: NewCardID(), Title: "", Body: ""}
	if err := card.Validate(); err != nil {
		t.Errorf("card with empty title and body should be valid, got %v", err)
	}

	card = &Card{Title: "has no id"}
	if err := card.Validate(); err != ErrCardIDZero {
		t.Errorf("expected ErrCardIDZero, got %v", err)
	}
}

func TestGradeOrdering(t *testing.T) {
	t.Parallel()

	if !(GradeAgain < GradeHard && GradeHard < GradeGood && GradeGood < GradeEasy) {
		t.Error("grades must form the total order Again < Hard < Good < Easy")
	}
}

func TestGradeValidAndPassing(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		grade   Grade
		valid   bool
		passing bool
	}{
		{GradeAgain, true, false},
		{GradeHard, true, true},
		{GradeGood, true, true},
		{GradeEasy, true, true},
		{Grade(0), false, false},
		{Grade(5), false, true},
	}

	for _, tc := range testCases {
		if got := tc.grade.Valid(); got != tc.valid {
			t.Errorf("Grade(%d).Valid() = %v, want %v", tc.grade, got, tc.valid)
		}
		if got := tc.grade.Passing(); got != tc.passing {
			t.Errorf("Grade(%d).Passing() = %v, want %v", tc.grade, got, tc.passing)
		}
	}
}

func TestGradeString(t *testing.T) {
	t.Parallel()

	expected := map[Grade]string{
		GradeAgain: "again",
		GradeHard:  "hard",
		GradeGood:  "good",
		GradeEasy:  "easy",
	}
	for g, want := range expected {
		if got := g.String(); got != want {
			t.Errorf("Grade.String() = %q, want %q", got, want)
		}
	}
}
