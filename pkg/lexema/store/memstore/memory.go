// Package memstore provides an in-memory store.Store for tests and
// short-lived runs.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tundralab/lexema/pkg/lexema/internalerr"
	"github.com/tundralab/lexema/pkg/lexema/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu   sync.RWMutex
	runs map[string]store.Run
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		runs: make(map[string]store.Run),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveRun inserts or replaces a run, keyed by ID.
func (s *Store) SaveRun(ctx context.Context, r store.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		return fmt.Errorf("save run: empty run ID")
	}
	s.runs[r.ID] = copyRun(r)
	return nil
}

// GetRun returns a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.runs[id]; ok {
		return copyRun(r), true, nil
	}
	return store.Run{}, false, nil
}

// ListRuns returns run summaries, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]store.RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]store.RunSummary, 0, len(s.runs))
	for _, r := range s.runs {
		summaries = append(summaries, summarize(r))
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
		}
		return summaries[i].ID > summaries[j].ID
	})
	return summaries, nil
}

// TopTerms returns the run's highest combined term counts.
func (s *Store) TopTerms(ctx context.Context, runID string, limit int) ([]store.TermCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[runID]
	if !ok {
		return nil, fmt.Errorf("run %q: %w", runID, internalerr.ErrNotFound)
	}
	if limit <= 0 {
		limit = 20
	}

	totals := make(map[string]int)
	for _, tc := range r.TermCounts {
		totals[tc.Term] += tc.Count
	}

	counts := make([]store.TermCount, 0, len(totals))
	for term, count := range totals {
		counts = append(counts, store.TermCount{Term: term, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Term < counts[j].Term
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts, nil
}

func summarize(r store.Run) store.RunSummary {
	terms := make(map[string]struct{}, len(r.TermCounts))
	for _, tc := range r.TermCounts {
		terms[tc.Term] = struct{}{}
	}
	return store.RunSummary{
		ID:        r.ID,
		Label:     r.Label,
		InputPath: r.InputPath,
		CreatedAt: r.CreatedAt,
		Docs:      len(r.Docs),
		Terms:     len(terms),
	}
}

func copyRun(r store.Run) store.Run {
	out := r
	out.Docs = append([]store.DocStats(nil), r.Docs...)
	out.TermCounts = append([]store.TermDocCount(nil), r.TermCounts...)
	return out
}
