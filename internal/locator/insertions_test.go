package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyInsertions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		offsets    []int64
		insertions []Insertion
		expected   []int64
	}{
		{
			name:       "no insertions",
			offsets:    []int64{0, 10, 20},
			insertions: nil,
			expected:   []int64{0, 10, 20},
		},
		{
			name:       "insertion before all offsets shifts all",
			offsets:    []int64{10, 20},
			insertions: []Insertion{{Offset: 5, Length: 11}},
			expected:   []int64{21, 31},
		},
		{
			name:       "insertion after all offsets shifts none",
			offsets:    []int64{10, 20},
			insertions: []Insertion{{Offset: 25, Length: 11}},
			expected:   []int64{10, 20},
		},
		{
			name:       "insertion between offsets shifts only later ones",
			offsets:    []int64{10, 20, 30},
			insertions: []Insertion{{Offset: 15, Length: 4}},
			expected:   []int64{10, 24, 34},
		},
		{
			name:    "cumulative drift across several insertions",
			offsets: []int64{0, 8, 16, 24},
			insertions: []Insertion{
				{Offset: 7, Length: 11},
				{Offset: 15, Length: 11},
				{Offset: 23, Length: 11},
			},
			expected: []int64{0, 19, 38, 57},
		},
		{
			name:       "insertion exactly at offset shifts it",
			offsets:    []int64{10},
			insertions: []Insertion{{Offset: 10, Length: 3}},
			expected:   []int64{13},
		},
		{
			name:       "negative length models a shrinking replacement",
			offsets:    []int64{10, 30},
			insertions: []Insertion{{Offset: 12, Length: -5}},
			expected:   []int64{10, 25},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyInsertions(tc.offsets, tc.insertions)
			assert.Equal(t, tc.expected, got)
		})
	}
}
