package token

import (
	"testing"

	"github.com/recall-srs/recall/internal/domain"
)

func TestEncodeKnownValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		id       domain.CardID
		expected string
	}{
		{
			name:     "all zero bytes",
			id:       domain.CardID{0, 0, 0, 0, 0, 0},
			expected: "AAAAAAAA",
		},
		{
			name:     "all ones",
			id:       domain.CardID{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			expected: "////////",
		},
		{
			name:     "ascending bytes",
			id:       domain.CardID{0x00, 0x01, 0x02, 0x03, 0x04, 0x05},
			expected: "AAECAwQF",
		},
		{
			name:     "single high bit",
			id:       domain.CardID{0x80, 0, 0, 0, 0, 0},
			expected: "gAAAAAAA",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Encode(tc.id)
			if got != tc.expected {
				t.Errorf("Encode(%v) = %q, want %q", tc.id, got, tc.expected)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	// Fixed identifiers that exercise every bit position, plus a batch of
	// random ones.
	ids := []domain.CardID{
		{0, 0, 0, 0, 0, 0},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02},
		{0x01, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0x01},
	}
	for i := 0; i < 1000; i++ {
		ids = append(ids, domain.NewCardID())
	}

	for _, id := range ids {
		tok := Encode(id)
		if len(tok) != Length {
			t.Fatalf("Encode(%v) produced token of length %d, want %d", id, len(tok), Length)
		}
		decoded, err := Decode(tok)
		if err != nil {
			t.Fatalf("Decode(%q) returned unexpected error: %v", tok, err)
		}
		if decoded != id {
			t.Errorf("round trip failed: %v -> %q -> %v", id, tok, decoded)
		}
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "too short", input: "AAAA"},
		{name: "too long", input: "AAAAAAAAA"},
		{name: "underscore substituted", input: "9_gn0vVK"},
		{name: "bang substituted", input: "9!gn0vVK"},
		{name: "space inside", input: "AAA AAAA"},
		{name: "hyphen inside", input: "ab-defgh"},
		{name: "multibyte rune", input: "abcdefgé"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.input); err == nil {
				t.Errorf("Decode(%q) succeeded, want error", tc.input)
			}
		})
	}
}
