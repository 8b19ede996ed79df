package domain

import "fmt"

// Grade is the outcome the user assigns to a card after seeing its back side.
// Grades form a total order Again < Hard < Good < Easy; the scheduling
// formulas use only the ordinal value.
type Grade int

const (
	GradeAgain Grade = iota + 1
	GradeHard
	GradeGood
	GradeEasy
)

// Valid reports whether g is one of the four defined grades.
func (g Grade) Valid() bool {
	return g >= GradeAgain && g <= GradeEasy
}

// Passing reports whether the review counts as a successful recall.
func (g Grade) Passing() bool {
	return g > GradeAgain
}

func (g Grade) String() string {
	switch g {
	case GradeAgain:
		return "again"
	case GradeHard:
		return "hard"
	case GradeGood:
		return "good"
	case GradeEasy:
		return "easy"
	default:
		return fmt.Sprintf("Grade(%d)", int(g))
	}
}
