// Package token implements the reversible mapping between the 48-bit card
// identifier and its fixed-length printable form embedded in document text.
// Eight symbols of six bits each cover the identifier exactly, so no padding
// is ever emitted or accepted.
package token

import (
	"errors"
	"fmt"
	"strings"

	"github.com/recall-srs/recall/internal/domain"
)

// Alphabet is the 64-symbol encoding alphabet. It is deliberately light on
// punctuation so a token can sit inside a marker line without delimiter
// ambiguity.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Length is the fixed token length in symbols.
const Length = 8

// Decoding errors
var (
	// ErrLength is returned when the input is not exactly Length symbols.
	ErrLength = errors.New("token has wrong length")

	// ErrAlphabet is returned when the input contains a symbol outside
	// Alphabet.
	ErrAlphabet = errors.New("token contains invalid symbol")
)

// Encode produces the fixed-length printable token for an identifier.
func Encode(id domain.CardID) string {
	var v uint64
	for _, b := range id {
		v = v<<8 | uint64(b)
	}
	var out [Length]byte
	for i := range out {
		out[i] = Alphabet[(v>>(6*(Length-1-i)))&0x3f]
	}
	return string(out[:])
}

// Decode is the exact inverse of Encode. It fails for input of the wrong
// length or containing a symbol outside the alphabet; it never guesses at
// truncated or padded input.
func Decode(s string) (domain.CardID, error) {
	if len(s) != Length {
		return domain.CardID{}, fmt.Errorf("%w: got %d symbols, want %d", ErrLength, len(s), Length)
	}
	var v uint64
	for i := 0; i < Length; i++ {
		pos := strings.IndexByte(Alphabet, s[i])
		if pos < 0 {
			return domain.CardID{}, fmt.Errorf("%w: %q at position %d", ErrAlphabet, s[i], i)
		}
		v = v<<6 | uint64(pos)
	}
	var id domain.CardID
	for i := range id {
		id[i] = byte(v >> (8 * (domain.CardIDSize - 1 - i)))
	}
	return id, nil
}
