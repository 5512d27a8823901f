// Package report renders analysis results into a serializable report:
// the full frequency table, complexity records, top terms, threshold
// listings, metric triples, and a word cloud. Each report carries a
// ULID run identifier so archived runs stay distinguishable.
package report

import (
	"crypto/rand"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tundralab/lexema/pkg/lexema/freq"
	"github.com/tundralab/lexema/pkg/lexema/stats"
)

// Builder constructs reports with monotonic run identifiers.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a report builder.
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Report is the complete output of one analysis run.
type Report struct {
	RunID         string          `json:"run_id"`
	GeneratedAt   time.Time       `json:"generated_at"`
	InputPath     string          `json:"input_path,omitempty"`
	Documents     []string        `json:"documents"`
	Terms         []TableRow      `json:"terms"`
	Complexity    []ComplexityRow `json:"complexity"`
	TopTerms      []DocTopTerms   `json:"top_terms"`
	FrequentTerms FrequentTerms   `json:"frequent_terms"`
	Metrics       []MetricRow     `json:"metrics"`
	WordCloud     []CloudEntry    `json:"word_cloud"`
}

// TableRow is one term's counts across all documents. Counts follow
// the order of the report's Documents field.
type TableRow struct {
	Term     string `json:"term"`
	Counts   []int  `json:"counts"`
	Combined int    `json:"combined"`
}

// ComplexityRow holds the lexical-complexity metrics of one document.
type ComplexityRow struct {
	Document   string  `json:"document"`
	Tokens     int     `json:"tokens"`
	Distinct   int     `json:"distinct_terms"`
	Hapaxes    int     `json:"hapax_terms"`
	TTR        float64 `json:"ttr"`
	HapaxRatio float64 `json:"hapax_ratio"`
}

// DocTopTerms lists the highest-count terms of one document.
type DocTopTerms struct {
	Document string      `json:"document"`
	Terms    []TermEntry `json:"terms"`
}

// TermEntry pairs a term with its count.
type TermEntry struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// FrequentTerms lists the terms whose combined count exceeds the
// configured threshold.
type FrequentTerms struct {
	Threshold int      `json:"threshold"`
	Terms     []string `json:"terms"`
}

// MetricRow is a single (document, metric, value) triple.
type MetricRow struct {
	Document string  `json:"document"`
	Metric   string  `json:"metric"`
	Value    float64 `json:"value"`
}

// CloudEntry weights a term for word-cloud rendering.
type CloudEntry struct {
	Term   string `json:"term"`
	Weight int    `json:"weight"`
}

// Build assembles a report from a frequency table. topN bounds the
// per-document top-term listings and threshold selects the frequent
// terms. inputPath is recorded verbatim and may be empty.
func (b *Builder) Build(t *freq.Table, topN, threshold int, inputPath string) Report {
	r := Report{
		RunID:       ulid.MustNew(ulid.Now(), b.entropy).String(),
		GeneratedAt: time.Now().UTC(),
		InputPath:   inputPath,
		Documents:   t.DocIDs(),
		FrequentTerms: FrequentTerms{
			Threshold: threshold,
			Terms:     stats.TermsAboveThreshold(t, threshold),
		},
		WordCloud: WordCloud(t),
	}

	terms := t.Terms()
	r.Terms = make([]TableRow, 0, len(terms))
	for _, term := range terms {
		r.Terms = append(r.Terms, TableRow{
			Term:     term,
			Counts:   t.Row(term),
			Combined: t.Combined(term),
		})
	}

	for _, rec := range stats.Complexity(t) {
		r.Complexity = append(r.Complexity, ComplexityRow{
			Document:   rec.Document,
			Tokens:     rec.Tokens,
			Distinct:   rec.Distinct,
			Hapaxes:    rec.Hapaxes,
			TTR:        rec.TTR,
			HapaxRatio: rec.HapaxRatio,
		})
		r.Metrics = append(r.Metrics,
			MetricRow{Document: rec.Document, Metric: "tokens", Value: float64(rec.Tokens)},
			MetricRow{Document: rec.Document, Metric: "ttr", Value: rec.TTR},
			MetricRow{Document: rec.Document, Metric: "hapax_ratio", Value: rec.HapaxRatio},
		)
	}

	for _, id := range r.Documents {
		doc, ok := t.Doc(id)
		if !ok {
			continue
		}
		r.TopTerms = append(r.TopTerms, DocTopTerms{
			Document: id,
			Terms:    termEntries(stats.TopFrequent(doc, topN)),
		})
	}
	if len(r.Documents) > 0 {
		r.TopTerms = append(r.TopTerms, DocTopTerms{
			Document: freq.CombinedLabel,
			Terms:    termEntries(stats.TopFrequent(t.CombinedDoc(), topN)),
		})
	}

	return r
}

func termEntries(counts []stats.TermCount) []TermEntry {
	entries := make([]TermEntry, 0, len(counts))
	for _, tc := range counts {
		entries = append(entries, TermEntry{Term: tc.Term, Count: tc.Count})
	}
	return entries
}

// WordCloud selects the terms whose combined count is at least the
// mean combined count across all terms, weighted by that count and
// ordered by descending weight with ties broken by ascending term.
func WordCloud(t *freq.Table) []CloudEntry {
	terms := t.Terms()
	if len(terms) == 0 {
		return nil
	}

	total := 0
	for _, term := range terms {
		total += t.Combined(term)
	}
	mean := float64(total) / float64(len(terms))

	var entries []CloudEntry
	for _, term := range terms {
		if count := t.Combined(term); float64(count) >= mean {
			entries = append(entries, CloudEntry{Term: term, Weight: count})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Weight != entries[j].Weight {
			return entries[i].Weight > entries[j].Weight
		}
		return entries[i].Term < entries[j].Term
	})
	return entries
}
