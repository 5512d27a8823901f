// Package store defines persistence for analysis runs so results can
// be archived and compared across invocations.
package store

import (
	"context"
	"time"
)

// Store persists and queries archived analysis runs.
type Store interface {
	Close() error

	// SaveRun inserts or replaces a run, keyed by its run ID.
	SaveRun(ctx context.Context, r Run) error

	// GetRun returns a run by ID. The second return value reports
	// whether the run exists.
	GetRun(ctx context.Context, id string) (Run, bool, error)

	// ListRuns returns summaries of all runs, newest first.
	ListRuns(ctx context.Context) ([]RunSummary, error)

	// TopTerms returns the run's highest combined term counts,
	// ordered by descending count with ties broken by term. It
	// fails with ErrNotFound when the run does not exist.
	TopTerms(ctx context.Context, runID string, limit int) ([]TermCount, error)
}

// Run is one archived analysis run.
type Run struct {
	ID        string
	Label     string
	InputPath string
	CreatedAt time.Time
	Docs      []DocStats
	// TermCounts holds the nonzero cells of the frequency table.
	TermCounts []TermDocCount
}

// DocStats summarizes one document of a run.
type DocStats struct {
	DocID      string
	Tokens     int
	Distinct   int
	Hapaxes    int
	TTR        float64
	HapaxRatio float64
}

// TermDocCount is one nonzero cell of a run's frequency table.
type TermDocCount struct {
	Term  string
	DocID string
	Count int
}

// TermCount pairs a term with its combined count across a run.
type TermCount struct {
	Term  string
	Count int
}

// RunSummary is the listing view of a run.
type RunSummary struct {
	ID        string
	Label     string
	InputPath string
	CreatedAt time.Time
	Docs      int
	Terms     int
}
