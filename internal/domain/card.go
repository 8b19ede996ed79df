package domain

import (
	"errors"
	"math/rand/v2"
)

// Card-specific validation errors
var (
	// ErrCardIDZero is returned when a card carries the all-zero identifier,
	// which is reserved as "no identifier assigned yet".
	ErrCardIDZero = errors.New("card ID cannot be zero")
)

// CardIDSize is the width of a card identifier in bytes. Six bytes carry 48
// bits of entropy, which encodes to exactly eight base64 symbols.
const CardIDSize = 6

// CardID is the stable identity of a card. It is minted once, the first time
// a marker without an identifier is observed, and then embedded in the source
// document for the card's entire lifetime. It is the sole join key between
// document text and persisted review state.
type CardID [CardIDSize]byte

// NewCardID mints a fresh random identifier. The identifier only needs to be
// unique, not unguessable, so it comes from the default math/rand source.
func NewCardID() CardID {
	var id CardID
	v := rand.Uint64()
	for i := range id {
		id[i] = byte(v >> (8 * i))
	}
	return id
}

// IsZero reports whether the identifier is the reserved all-zero value.
func (id CardID) IsZero() bool {
	return id == CardID{}
}

// Card is a study card reconstructed from a source document. Cards are never
// persisted themselves; only their identifier and review state survive a run.
type Card struct {
	ID    CardID
	Title string
	Body  string
	// Path is the document the card was located in.
	Path string
}

// Validate checks that the card carries a usable identifier. An empty title
// or body is legal: a marker at end of file has a zero-length body.
func (c *Card) Validate() error {
	if c.ID.IsZero() {
		return ErrCardIDZero
	}
	return nil
}
