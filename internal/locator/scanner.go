package locator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/recall-srs/recall/internal/domain"
	"github.com/recall-srs/recall/internal/domain/token"
)

const (
	// MarkerTag opens a card marker line.
	MarkerTag = "REVIEW:"
	// MarkerPattern is the pattern handed to the search collaborator.
	MarkerPattern = "^REVIEW:"
	// Sigil prefixes an embedded identifier token on a marker line.
	Sigil = "__"
	// Separator terminates a card body when it appears alone on a line.
	Separator = "---"
)

// Scanner turns marker matches into cards, minting identifiers for markers
// that lack one and rewriting the affected documents in place.
type Scanner struct {
	searcher Searcher
	log      *slog.Logger
}

// NewScanner builds a scanner over the given search collaborator.
func NewScanner(searcher Searcher, log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{searcher: searcher, log: log}
}

// Scan locates every card in the corpus, in document-then-offset order. Any
// document containing a marker without a (valid) identifier is patched and
// written back before Scan returns. With an empty paths slice the search
// collaborator discovers documents itself.
func (s *Scanner) Scan(ctx context.Context, paths []string) ([]domain.Card, error) {
	matches, err := s.searcher.Search(ctx, MarkerPattern, paths)
	if err != nil {
		return nil, err
	}

	var cards []domain.Card
	for start := 0; start < len(matches); {
		end := start
		for end < len(matches) && matches[end].Path == matches[start].Path {
			end++
		}
		offsets := make([]int64, 0, end-start)
		for _, m := range matches[start:end] {
			offsets = append(offsets, m.Offset)
		}
		docCards, err := s.scanDocument(matches[start].Path, offsets)
		if err != nil {
			return nil, err
		}
		cards = append(cards, docCards...)
		start = end
	}
	return cards, nil
}

// patch is one planned edit: remove deleted bytes at offset, insert text
// there. Offsets are relative to the document as read, before any edits.
type patch struct {
	offset  int64
	text    string
	deleted int64
}

// scanDocument parses all markers of one document against a single read of
// its contents, then applies any planned identifier insertions in one write.
// The document stays open across all its matches.
func (s *Scanner) scanDocument(path string, offsets []int64) ([]domain.Card, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}

	var cards []domain.Card
	var patches []patch
	for _, off := range offsets {
		if off < 0 || off >= int64(len(data)) {
			return nil, fmt.Errorf("document %s: match offset %d outside document of %d bytes", path, off, len(data))
		}
		card, p := s.parseCard(path, data, off)
		cards = append(cards, card)
		if p != nil {
			patches = append(patches, *p)
		}
	}

	if len(patches) > 0 {
		patched := applyPatches(data, patches)
		if _, err := f.WriteAt(patched, 0); err != nil {
			return nil, fmt.Errorf("patch document %s: %w", path, err)
		}
		if err := f.Truncate(int64(len(patched))); err != nil {
			return nil, fmt.Errorf("truncate document %s: %w", path, err)
		}
	}
	return cards, nil
}

// parseCard reads the marker line at off plus the body below it. If the
// marker carries no decodable token a new identifier is minted and a patch
// embedding it is returned; a malformed token is replaced outright, the
// destructive but self-healing correction.
func (s *Scanner) parseCard(path string, data []byte, off int64) (domain.Card, *patch) {
	lineEnd := int64(len(data))
	if i := bytes.IndexByte(data[off:], '\n'); i >= 0 {
		lineEnd = off + int64(i)
	}
	line := strings.TrimRight(string(data[off:lineEnd]), "\r")
	body := extractBody(data, lineEnd)

	rest := strings.TrimPrefix(line, MarkerTag)
	trimmed := strings.TrimLeft(rest, " \t")
	lead := int64(len(rest) - len(trimmed))

	if strings.HasPrefix(trimmed, Sigil) {
		word := trimmed[len(Sigil):]
		if i := strings.IndexAny(word, " \t"); i >= 0 {
			word = word[:i]
		}
		if id, err := token.Decode(word); err == nil {
			title := strings.TrimSpace(trimmed[len(Sigil)+len(word):])
			return domain.Card{ID: id, Title: title, Body: body, Path: path}, nil
		}
		// Malformed token: mint a replacement over its exact span.
		id := domain.NewCardID()
		s.log.Warn("replacing malformed card identifier",
			"path", path, "found", word, "token", token.Encode(id))
		return domain.Card{
				ID:    id,
				Title: strings.TrimSpace(trimmed[len(Sigil)+len(word):]),
				Body:  body,
				Path:  path,
			}, &patch{
				offset:  off + int64(len(MarkerTag)) + lead,
				text:    Sigil + token.Encode(id),
				deleted: int64(len(Sigil) + len(word)),
			}
	}

	// No token at all: mint one and splice it in directly after the tag.
	id := domain.NewCardID()
	s.log.Info("initialized new card", "path", path, "token", token.Encode(id))
	text := " " + Sigil + token.Encode(id)
	if lead == 0 && trimmed != "" {
		// The title abuts the tag; keep the token a separate word.
		text += " "
	}
	return domain.Card{
			ID:    id,
			Title: strings.TrimSpace(trimmed),
			Body:  body,
			Path:  path,
		}, &patch{
			offset: off + int64(len(MarkerTag)),
			text:   text,
		}
}

// extractBody collects the lines after a marker line up to the next marker,
// a separator line, or end of file. A marker at end of file has a
// zero-length body.
func extractBody(data []byte, lineEnd int64) string {
	if lineEnd >= int64(len(data)) {
		return ""
	}
	var b strings.Builder
	pos := lineEnd + 1
	for pos < int64(len(data)) {
		next := int64(len(data))
		if i := bytes.IndexByte(data[pos:], '\n'); i >= 0 {
			next = pos + int64(i)
		}
		line := string(data[pos:next])
		if strings.HasPrefix(line, MarkerTag) || strings.TrimRight(line, "\r") == Separator {
			break
		}
		b.WriteString(line)
		if next < int64(len(data)) {
			b.WriteByte('\n')
		}
		pos = next + 1
	}
	return b.String()
}

// applyPatches rewrites data with every planned edit applied. Patch offsets
// are positions in the unedited document; each edit's position in the
// rewritten document is found by correcting for the cumulative length drift
// of the edits before it.
func applyPatches(data []byte, patches []patch) []byte {
	out := append([]byte(nil), data...)
	var applied []Insertion
	for _, p := range patches {
		at := ApplyInsertions([]int64{p.offset}, applied)[0]
		tail := out[at+p.deleted:]
		patched := make([]byte, 0, int64(len(out))+int64(len(p.text))-p.deleted)
		patched = append(patched, out[:at]...)
		patched = append(patched, p.text...)
		patched = append(patched, tail...)
		out = patched
		applied = append(applied, Insertion{Offset: p.offset, Length: int64(len(p.text)) - p.deleted})
	}
	return out
}
