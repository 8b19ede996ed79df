package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/recall-srs/recall/internal/domain"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLiteStore keeps review records in an embedded SQLite database. Every
// review inserts a new row, so the full review history is preserved; reads
// take the newest row per card.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) the database at path and
// brings its schema up to date.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate review store: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get implements ReviewStore.
func (s *SQLiteStore) Get(ctx context.Context, token string) (domain.ReviewRecord, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT last_reviewed, stability, difficulty
		   FROM review
		  WHERE card = ?
		  ORDER BY last_reviewed DESC, rowid DESC
		  LIMIT 1`, token)

	var lastReviewed int64
	var rec domain.ReviewRecord
	err := row.Scan(&lastReviewed, &rec.State.Stability, &rec.State.Difficulty)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ReviewRecord{}, false, nil
	}
	if err != nil {
		return domain.ReviewRecord{}, false, fmt.Errorf("load review record for %s: %w", token, err)
	}
	rec.LastReview = time.Unix(lastReviewed, 0)
	return rec, true, nil
}

// Put implements ReviewStore.
func (s *SQLiteStore) Put(ctx context.Context, token string, rec domain.ReviewRecord, sessionID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO review (card, session, last_reviewed, stability, difficulty)
		 VALUES (?, ?, ?, ?, ?)`,
		token, sessionID, rec.LastReview.Unix(), rec.State.Stability, rec.State.Difficulty)
	if err != nil {
		return fmt.Errorf("record review for %s: %w", token, err)
	}
	return nil
}

// Close implements ReviewStore.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
