// Package freq builds term-by-document frequency tables.
package freq

import (
	"fmt"
	"sort"

	"github.com/tundralab/lexema/pkg/lexema/internalerr"
)

// Builder accumulates normalized documents and produces a Table.
type Builder struct {
	docIDs []string
	counts []map[string]int
	index  map[string]int
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// Add records the term occurrences of one document. Document ids must
// be unique; adding the same id twice fails with
// internalerr.ErrDuplicate. A document with no terms is valid.
func (b *Builder) Add(docID string, terms []string) error {
	if _, ok := b.index[docID]; ok {
		return fmt.Errorf("document %q: %w", docID, internalerr.ErrDuplicate)
	}

	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term]++
	}

	b.index[docID] = len(b.docIDs)
	b.docIDs = append(b.docIDs, docID)
	b.counts = append(b.counts, counts)
	return nil
}

// Build snapshots the accumulated documents into a Table. The term set
// is the union of distinct terms across all documents, ordered
// lexicographically; a term absent from a document counts zero. An
// empty builder yields an empty table.
func (b *Builder) Build() *Table {
	termSet := make(map[string]struct{})
	for _, counts := range b.counts {
		for term := range counts {
			termSet[term] = struct{}{}
		}
	}

	terms := make([]string, 0, len(termSet))
	for term := range termSet {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	t := &Table{
		docIDs:    append([]string(nil), b.docIDs...),
		docIndex:  make(map[string]int, len(b.docIDs)),
		terms:     terms,
		rows:      make(map[string][]int, len(terms)),
		combined:  make(map[string]int, len(terms)),
		docTotals: make([]int, len(b.docIDs)),
	}
	for i, id := range t.docIDs {
		t.docIndex[id] = i
	}

	for _, term := range terms {
		row := make([]int, len(b.docIDs))
		total := 0
		for i, counts := range b.counts {
			row[i] = counts[term]
			total += counts[term]
			t.docTotals[i] += counts[term]
		}
		t.rows[term] = row
		t.combined[term] = total
		t.combinedTotal += total
	}

	return t
}

// Table is an immutable term-by-document count table plus the combined
// pseudo-document whose count per term is the sum across documents.
type Table struct {
	docIDs        []string
	docIndex      map[string]int
	terms         []string
	rows          map[string][]int
	combined      map[string]int
	docTotals     []int
	combinedTotal int
}

// Terms returns the table's term set in lexicographic order.
func (t *Table) Terms() []string {
	return append([]string(nil), t.terms...)
}

// DocIDs returns the document ids in load order.
func (t *Table) DocIDs() []string {
	return append([]string(nil), t.docIDs...)
}

// Count returns the count for a term in a document, zero when either
// is unknown.
func (t *Table) Count(term, docID string) int {
	row, ok := t.rows[term]
	if !ok {
		return 0
	}
	i, ok := t.docIndex[docID]
	if !ok {
		return 0
	}
	return row[i]
}

// Row returns the per-document counts for a term, aligned with DocIDs.
// Unknown terms yield an all-zero row.
func (t *Table) Row(term string) []int {
	if row, ok := t.rows[term]; ok {
		return append([]int(nil), row...)
	}
	return make([]int, len(t.docIDs))
}

// Combined returns the summed count of a term across all documents.
func (t *Table) Combined(term string) int {
	return t.combined[term]
}

// Doc returns the count view of one document.
func (t *Table) Doc(docID string) (DocCounts, bool) {
	i, ok := t.docIndex[docID]
	if !ok {
		return DocCounts{}, false
	}
	return DocCounts{label: docID, table: t, col: i}, true
}

// CombinedDoc returns the combined pseudo-document as an ordinary count
// view; its counts are the per-term sums.
func (t *Table) CombinedDoc() DocCounts {
	return DocCounts{label: CombinedLabel, table: t, col: combinedCol}
}

// CombinedLabel names the combined pseudo-document in reports.
const CombinedLabel = "combined"

const combinedCol = -1

// DocCounts is a read-only view of one document's term counts. The
// zero value is an empty document.
type DocCounts struct {
	label string
	table *Table
	col   int
}

// Label returns the document id, or CombinedLabel for the combined
// view.
func (d DocCounts) Label() string { return d.label }

// Count returns the document's count for a term, zero when the term is
// unknown.
func (d DocCounts) Count(term string) int {
	if d.table == nil {
		return 0
	}
	if d.col == combinedCol {
		return d.table.combined[term]
	}
	row, ok := d.table.rows[term]
	if !ok {
		return 0
	}
	return row[d.col]
}

// TotalTokens returns the document's token count, the sum over all
// term counts.
func (d DocCounts) TotalTokens() int {
	if d.table == nil {
		return 0
	}
	if d.col == combinedCol {
		return d.table.combinedTotal
	}
	return d.table.docTotals[d.col]
}

// Terms returns the table's full term set in lexicographic order;
// every term has a defined (possibly zero) count in this document.
func (d DocCounts) Terms() []string {
	if d.table == nil {
		return nil
	}
	return d.table.Terms()
}
