package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cognicore/nlp100/pkg/nlp100/internalerr"
	"github.com/cognicore/nlp100/pkg/nlp100/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu     sync.RWMutex
	ids    *store.IDs
	runs   map[string]store.Run
	counts map[string]map[string]int64
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		ids:    store.NewIDs(),
		runs:   make(map[string]store.Run),
		counts: make(map[string]map[string]int64),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// NewRun registers a run under a fresh ID.
func (s *Store) NewRun(ctx context.Context, label string) (store.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	run := store.Run{ID: s.ids.Next(now), Label: label, CreatedAt: now}
	s.runs[run.ID] = run
	s.counts[run.ID] = make(map[string]int64)
	return run, nil
}

// Runs lists runs oldest first.
func (s *Store) Runs(ctx context.Context) ([]store.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Run, 0, len(s.runs))
	for _, r := range s.runs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// AddCounts merges counts into the run.
func (s *Store) AddCounts(ctx context.Context, runID string, counts map[string]int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.counts[runID]
	if !ok {
		return fmt.Errorf("%w: run %s", internalerr.ErrNotFound, runID)
	}
	for term, n := range counts {
		run[term] += n
	}
	return nil
}

// Count returns one term's count; unknown terms count zero.
func (s *Store) Count(ctx context.Context, runID, term string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.counts[runID]
	if !ok {
		return 0, fmt.Errorf("%w: run %s", internalerr.ErrNotFound, runID)
	}
	return run[term], nil
}

// Top returns the k most frequent terms of the run.
func (s *Store) Top(ctx context.Context, runID string, k int) ([]store.TermCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.counts[runID]
	if !ok {
		return nil, fmt.Errorf("%w: run %s", internalerr.ErrNotFound, runID)
	}
	out := make([]store.TermCount, 0, len(run))
	for term, n := range run {
		out = append(out, store.TermCount{Term: term, Count: n})
	}
	return store.SortTermCounts(out, k), nil
}
