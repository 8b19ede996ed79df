// Package tui renders the review interaction in the terminal: a full-screen
// bubbletea program per card that shows the title (with cloze spans hidden),
// reveals the body on a key press, and collects a grade or an abort.
package tui

import "strings"

// HideCloze masks every span delimited by underscores. The delimiters
// themselves are dropped and each hidden rune becomes an underscore, so
// "the _answer_ here" renders as "the ______ here".
func HideCloze(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	hidden := false
	for _, r := range s {
		switch {
		case r == '_':
			hidden = !hidden
		case hidden:
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
