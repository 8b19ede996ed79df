package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/recall-srs/recall/internal/domain"
)

// jsonRecord is the on-disk shape of one review record. Timestamps are
// seconds since the Unix epoch.
type jsonRecord struct {
	LastReview int64   `json:"last_review"`
	Stability  float64 `json:"stability"`
	Difficulty float64 `json:"difficulty"`
}

// JSONStore keeps the whole token-to-record mapping in a single JSON file.
// A missing or corrupt file loads as an empty mapping, never a fatal error.
// Every Put rewrites the file through a temp-file rename so a crash cannot
// leave a truncated store behind.
type JSONStore struct {
	mu      sync.Mutex
	path    string
	records map[string]jsonRecord
}

// NewJSONStore loads the mapping at path, defaulting to empty.
func NewJSONStore(path string) (*JSONStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	s := &JSONStore{path: path, records: make(map[string]jsonRecord)}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.records); err != nil || s.records == nil {
		s.records = make(map[string]jsonRecord)
	}
	return s, nil
}

// Get implements ReviewStore.
func (s *JSONStore) Get(_ context.Context, token string) (domain.ReviewRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[token]
	if !ok {
		return domain.ReviewRecord{}, false, nil
	}
	return domain.ReviewRecord{
		LastReview: time.Unix(r.LastReview, 0),
		State: domain.MemoryState{
			Stability:  r.Stability,
			Difficulty: r.Difficulty,
		},
	}, true, nil
}

// Put implements ReviewStore. The session id is not represented in the JSON
// format; the mapping holds only the latest record per card.
func (s *JSONStore) Put(_ context.Context, token string, rec domain.ReviewRecord, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[token] = jsonRecord{
		LastReview: rec.LastReview.Unix(),
		Stability:  rec.State.Stability,
		Difficulty: rec.State.Difficulty,
	}
	return s.save()
}

func (s *JSONStore) save() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("encode review store: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".recall-store-*")
	if err != nil {
		return fmt.Errorf("write review store: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write review store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write review store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace review store: %w", err)
	}
	return nil
}

// Close implements ReviewStore.
func (s *JSONStore) Close() error {
	return nil
}
