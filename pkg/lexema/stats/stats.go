// Package stats derives lexical statistics from a frequency table:
// top-frequent terms, threshold listings, type-token ratio, and
// hapax-legomena ratio, per document and for the combined corpus.
package stats

import (
	"sort"

	"github.com/tundralab/lexema/pkg/lexema/freq"
)

// TermCount pairs a term with its count in some document.
type TermCount struct {
	Term  string
	Count int
}

// TopFrequent returns the n highest-count terms of a document, ordered
// by descending count with ties broken by ascending term. Terms with a
// zero count never appear, so fewer than n entries may be returned.
func TopFrequent(doc freq.DocCounts, n int) []TermCount {
	if n <= 0 {
		return nil
	}

	var entries []TermCount
	for _, term := range doc.Terms() {
		if count := doc.Count(term); count > 0 {
			entries = append(entries, TermCount{Term: term, Count: count})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Term < entries[j].Term
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// TermsAboveThreshold returns the terms whose combined corpus count is
// strictly greater than threshold, in lexicographic order.
func TermsAboveThreshold(t *freq.Table, threshold int) []string {
	var terms []string
	for _, term := range t.Terms() {
		if t.Combined(term) > threshold {
			terms = append(terms, term)
		}
	}
	return terms
}

// DistinctTerms counts the terms with a nonzero count in the document.
func DistinctTerms(doc freq.DocCounts) int {
	n := 0
	for _, term := range doc.Terms() {
		if doc.Count(term) > 0 {
			n++
		}
	}
	return n
}

// HapaxCount counts the terms occurring exactly once in the document.
func HapaxCount(doc freq.DocCounts) int {
	n := 0
	for _, term := range doc.Terms() {
		if doc.Count(term) == 1 {
			n++
		}
	}
	return n
}

// TypeTokenRatio returns distinct terms over total tokens for the
// document, 0 for an empty document.
func TypeTokenRatio(doc freq.DocCounts) float64 {
	total := doc.TotalTokens()
	if total == 0 {
		return 0
	}
	return float64(DistinctTerms(doc)) / float64(total)
}

// HapaxRatio returns the share of tokens held by terms occurring
// exactly once in the document, 0 for an empty document.
func HapaxRatio(doc freq.DocCounts) float64 {
	total := doc.TotalTokens()
	if total == 0 {
		return 0
	}
	return float64(HapaxCount(doc)) / float64(total)
}

// ComplexityRecord holds the lexical-complexity metrics of one
// document.
type ComplexityRecord struct {
	Document   string
	Tokens     int
	Distinct   int
	Hapaxes    int
	TTR        float64
	HapaxRatio float64
}

// Complexity computes one record per document in load order, followed
// by a record for the combined pseudo-document. An empty table yields
// no records.
func Complexity(t *freq.Table) []ComplexityRecord {
	docIDs := t.DocIDs()
	if len(docIDs) == 0 {
		return nil
	}

	records := make([]ComplexityRecord, 0, len(docIDs)+1)
	for _, id := range docIDs {
		doc, ok := t.Doc(id)
		if !ok {
			continue
		}
		records = append(records, record(doc))
	}
	records = append(records, record(t.CombinedDoc()))
	return records
}

func record(doc freq.DocCounts) ComplexityRecord {
	return ComplexityRecord{
		Document:   doc.Label(),
		Tokens:     doc.TotalTokens(),
		Distinct:   DistinctTerms(doc),
		Hapaxes:    HapaxCount(doc),
		TTR:        TypeTokenRatio(doc),
		HapaxRatio: HapaxRatio(doc),
	}
}
