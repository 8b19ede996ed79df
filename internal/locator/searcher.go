// Package locator finds card markers in text documents, extracts each card's
// title and body, and embeds freshly minted identifiers into documents whose
// markers lack one. Marker positions come from an external search
// collaborator hidden behind the Searcher interface so the scanning and
// patching logic is testable with synthetic matches.
package locator

import "context"

// Match is one marker occurrence reported by the search collaborator.
type Match struct {
	// Path is the file containing the match.
	Path string
	// Offset is the byte offset of the match start within the file.
	Offset int64
}

// Searcher locates occurrences of a marker pattern across a corpus of text
// documents. Implementations must return matches grouped by document, with
// offsets ascending within each document. An empty corpus yields an empty
// slice and no error; a failing search is a fatal error for the run.
type Searcher interface {
	Search(ctx context.Context, pattern string, paths []string) ([]Match, error)
}
