// Package store persists review state between invocations. It defines the
// narrow keyed contract the orchestrator relies on and provides two
// interchangeable backends: an embedded SQLite database (the default) and a
// single JSON file. Records are keyed by the identifier's textual token, not
// its binary form, keeping the stored representation stable and
// human-inspectable.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/recall-srs/recall/internal/domain"
)

// Common store errors.
var (
	// ErrUnknownBackend is returned by Open for a backend name it does not
	// recognize.
	ErrUnknownBackend = errors.New("unknown store backend")
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// ReviewStore is the mapping from identifier token to review record. It is
// the single source of truth for whether a card has been reviewed and when.
// Put replaces any existing record for the token and persists the change
// before returning, so partial session progress survives an abort.
type ReviewStore interface {
	// Get returns the current record for a token. The boolean reports
	// whether a record exists; its absence is not an error.
	Get(ctx context.Context, token string) (domain.ReviewRecord, bool, error)

	// Put records a review. sessionID groups the records written by one
	// review session.
	Put(ctx context.Context, token string, rec domain.ReviewRecord, sessionID string) error

	Close() error
}

// Open constructs the configured backend at the given path.
func Open(backend, path string) (ReviewStore, error) {
	switch backend {
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendJSON:
		return NewJSONStore(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
