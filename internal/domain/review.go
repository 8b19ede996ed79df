package domain

import "time"

// MemoryState is the per-card pair of FSRS memory-strength parameters.
// Stability is the number of days until predicted recall decays to 90%;
// difficulty is a bounded scalar modulating how much stability grows after a
// successful review. Every transition in the scheduling engine keeps
// difficulty inside [1, 10].
type MemoryState struct {
	Stability  float64
	Difficulty float64
}

// ReviewRecord is the persisted review state for one card, keyed in the
// store by the card's identifier token. It is replaced wholesale on every
// review, never merged.
type ReviewRecord struct {
	LastReview time.Time
	State      MemoryState
}
