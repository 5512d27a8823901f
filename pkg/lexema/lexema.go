// Package lexema is the corpus analysis facade. It loads documents,
// normalizes their text, builds the term frequency table, and derives
// the lexical statistics, with optional archiving of finished runs.
package lexema

import (
	"context"
	"fmt"
	"time"

	"github.com/tundralab/lexema/pkg/lexema/corpus"
	"github.com/tundralab/lexema/pkg/lexema/freq"
	"github.com/tundralab/lexema/pkg/lexema/internalerr"
	"github.com/tundralab/lexema/pkg/lexema/normalize"
	"github.com/tundralab/lexema/pkg/lexema/stats"
	"github.com/tundralab/lexema/pkg/lexema/store"
)

// Engine runs corpus analyses.
type Engine struct {
	normalizer normalize.Normalizer
	store      store.Store
}

// Options configures an Engine.
type Options struct {
	// Normalizer replaces the default normalization chain.
	Normalizer normalize.Normalizer

	// Store receives archived runs. A nil store disables archiving.
	Store store.Store
}

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	n := opts.Normalizer
	if n == nil {
		n = normalize.Default()
	}
	return &Engine{
		normalizer: n,
		store:      opts.Store,
	}
}

// Close shuts down the engine's store, when one is attached.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// Result holds the frequency table and derived statistics of one
// analysis.
type Result struct {
	Table      *freq.Table
	Complexity []stats.ComplexityRecord
}

// Analyze normalizes and counts the given documents in order.
func (e *Engine) Analyze(docs []corpus.Document) (*Result, error) {
	b := freq.NewBuilder()
	for _, doc := range docs {
		if err := b.Add(doc.ID, normalize.Terms(e.normalizer, doc.Text)); err != nil {
			return nil, err
		}
	}

	table := b.Build()
	return &Result{
		Table:      table,
		Complexity: stats.Complexity(table),
	}, nil
}

// AnalyzeDir loads every document under dir and analyzes the corpus.
func (e *Engine) AnalyzeDir(dir string) (*Result, error) {
	docs, err := corpus.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return e.Analyze(docs)
}

// TopTerms returns the n highest-count terms of one document.
func (r *Result) TopTerms(docID string, n int) ([]stats.TermCount, error) {
	doc, ok := r.Table.Doc(docID)
	if !ok {
		return nil, fmt.Errorf("document %q: %w", docID, internalerr.ErrNotFound)
	}
	return stats.TopFrequent(doc, n), nil
}

// CombinedTopTerms returns the n highest combined counts across the
// whole corpus.
func (r *Result) CombinedTopTerms(n int) []stats.TermCount {
	return stats.TopFrequent(r.Table.CombinedDoc(), n)
}

// FrequentTerms returns the terms whose combined count is strictly
// greater than threshold, in lexicographic order.
func (r *Result) FrequentTerms(threshold int) []string {
	return stats.TermsAboveThreshold(r.Table, threshold)
}

// Archive persists the result under the given run ID. It fails with
// ErrStoreUnavailable when the engine has no store.
func (e *Engine) Archive(ctx context.Context, res *Result, runID, label, inputPath string) error {
	if e.store == nil {
		return fmt.Errorf("archive run %q: %w", runID, internalerr.ErrStoreUnavailable)
	}

	run := store.Run{
		ID:        runID,
		Label:     label,
		InputPath: inputPath,
		CreatedAt: time.Now().UTC(),
	}

	for _, rec := range res.Complexity {
		if rec.Document == freq.CombinedLabel {
			continue
		}
		run.Docs = append(run.Docs, store.DocStats{
			DocID:      rec.Document,
			Tokens:     rec.Tokens,
			Distinct:   rec.Distinct,
			Hapaxes:    rec.Hapaxes,
			TTR:        rec.TTR,
			HapaxRatio: rec.HapaxRatio,
		})
	}

	docIDs := res.Table.DocIDs()
	for _, term := range res.Table.Terms() {
		for _, docID := range docIDs {
			if count := res.Table.Count(term, docID); count > 0 {
				run.TermCounts = append(run.TermCounts, store.TermDocCount{
					Term:  term,
					DocID: docID,
					Count: count,
				})
			}
		}
	}

	return e.store.SaveRun(ctx, run)
}
