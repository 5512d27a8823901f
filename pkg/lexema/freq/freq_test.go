package freq

import (
	"errors"
	"strings"
	"testing"

	"github.com/tundralab/lexema/pkg/lexema/internalerr"
)

func buildTable(t *testing.T, docs map[string]string, order []string) *Table {
	t.Helper()
	b := NewBuilder()
	for _, id := range order {
		if err := b.Add(id, strings.Fields(docs[id])); err != nil {
			t.Fatalf("Add(%q): %v", id, err)
		}
	}
	return b.Build()
}

func TestBuildTwoDocs(t *testing.T) {
	table := buildTable(t, map[string]string{
		"a": "cat dog cat",
		"b": "dog dog fish",
	}, []string{"a", "b"})

	wantTerms := []string{"cat", "dog", "fish"}
	gotTerms := table.Terms()
	if len(gotTerms) != len(wantTerms) {
		t.Fatalf("Terms = %v, want %v", gotTerms, wantTerms)
	}
	for i := range wantTerms {
		if gotTerms[i] != wantTerms[i] {
			t.Fatalf("Terms = %v, want %v", gotTerms, wantTerms)
		}
	}

	wantRows := map[string][]int{
		"cat":  {2, 0},
		"dog":  {1, 2},
		"fish": {0, 1},
	}
	for term, want := range wantRows {
		got := table.Row(term)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Row(%q) = %v, want %v", term, got, want)
			}
		}
	}

	wantCombined := map[string]int{"cat": 2, "dog": 3, "fish": 1}
	for term, want := range wantCombined {
		if got := table.Combined(term); got != want {
			t.Errorf("Combined(%q) = %d, want %d", term, got, want)
		}
	}
}

func TestZeroFilledCounts(t *testing.T) {
	table := buildTable(t, map[string]string{
		"a": "alpha",
		"b": "beta",
	}, []string{"a", "b"})

	// A term missing from a document counts zero, it is not absent.
	if got := table.Count("alpha", "b"); got != 0 {
		t.Errorf("Count(alpha, b) = %d, want 0", got)
	}
	if got := table.Count("beta", "a"); got != 0 {
		t.Errorf("Count(beta, a) = %d, want 0", got)
	}

	doc, ok := table.Doc("b")
	if !ok {
		t.Fatal("Doc(b) not found")
	}
	if got := doc.Count("alpha"); got != 0 {
		t.Errorf("doc b Count(alpha) = %d, want 0", got)
	}
	if len(doc.Terms()) != 2 {
		t.Errorf("doc view should expose the full term set, got %v", doc.Terms())
	}
}

func TestUnknownTermAndDoc(t *testing.T) {
	table := buildTable(t, map[string]string{"a": "alpha"}, []string{"a"})

	if got := table.Count("missing", "a"); got != 0 {
		t.Errorf("Count(missing, a) = %d, want 0", got)
	}
	if got := table.Count("alpha", "missing"); got != 0 {
		t.Errorf("Count(alpha, missing) = %d, want 0", got)
	}
	if _, ok := table.Doc("missing"); ok {
		t.Error("Doc(missing) should report not found")
	}

	row := table.Row("missing")
	if len(row) != 1 || row[0] != 0 {
		t.Errorf("Row(missing) = %v, want all-zero row", row)
	}
}

func TestTermsSorted(t *testing.T) {
	table := buildTable(t, map[string]string{
		"a": "zebra apple mango",
		"b": "banana zebra",
	}, []string{"a", "b"})

	want := []string{"apple", "banana", "mango", "zebra"}
	got := table.Terms()
	if len(got) != len(want) {
		t.Fatalf("Terms = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Terms[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDocIDsKeepLoadOrder(t *testing.T) {
	table := buildTable(t, map[string]string{
		"z": "one",
		"a": "two",
		"m": "three",
	}, []string{"z", "a", "m"})

	want := []string{"z", "a", "m"}
	got := table.DocIDs()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DocIDs = %v, want %v", got, want)
		}
	}
}

func TestDuplicateDocID(t *testing.T) {
	b := NewBuilder()
	if err := b.Add("a", []string{"x"}); err != nil {
		t.Fatalf("first Add: %v", err)
	}

	err := b.Add("a", []string{"y"})
	if err == nil {
		t.Fatal("expected duplicate id to fail")
	}
	if !errors.Is(err, internalerr.ErrDuplicate) {
		t.Errorf("error %v should wrap internalerr.ErrDuplicate", err)
	}
}

func TestEmptyBuilder(t *testing.T) {
	table := NewBuilder().Build()

	if len(table.Terms()) != 0 {
		t.Errorf("empty build should have no terms, got %v", table.Terms())
	}
	if len(table.DocIDs()) != 0 {
		t.Errorf("empty build should have no docs, got %v", table.DocIDs())
	}

	combined := table.CombinedDoc()
	if combined.TotalTokens() != 0 {
		t.Errorf("combined TotalTokens = %d, want 0", combined.TotalTokens())
	}
}

func TestEmptyDocument(t *testing.T) {
	b := NewBuilder()
	if err := b.Add("empty", nil); err != nil {
		t.Fatalf("Add: %v", err)
	}
	table := b.Build()

	doc, ok := table.Doc("empty")
	if !ok {
		t.Fatal("Doc(empty) not found")
	}
	if doc.TotalTokens() != 0 {
		t.Errorf("TotalTokens = %d, want 0", doc.TotalTokens())
	}
	if len(table.DocIDs()) != 1 {
		t.Errorf("empty document should still occupy a column")
	}
}

func TestCombinedEqualsSumOfDocs(t *testing.T) {
	corpora := []map[string]string{
		{"a": "cat dog cat", "b": "dog dog fish"},
		{"x": "to be or not to be", "y": "be quick", "z": ""},
		{"solo": "one one one two"},
		{"p": "alpha beta", "q": "beta gamma", "r": "gamma alpha alpha"},
	}

	for _, docs := range corpora {
		order := make([]string, 0, len(docs))
		for id := range docs {
			order = append(order, id)
		}
		// Map iteration order varies; the invariant must hold anyway.
		table := buildTable(t, docs, order)

		for _, term := range table.Terms() {
			sum := 0
			for _, id := range table.DocIDs() {
				sum += table.Count(term, id)
			}
			if got := table.Combined(term); got != sum {
				t.Errorf("Combined(%q) = %d, want sum %d", term, got, sum)
			}
		}

		combined := table.CombinedDoc()
		totalSum := 0
		for _, id := range table.DocIDs() {
			doc, _ := table.Doc(id)
			totalSum += doc.TotalTokens()
		}
		if combined.TotalTokens() != totalSum {
			t.Errorf("combined TotalTokens = %d, want %d", combined.TotalTokens(), totalSum)
		}
	}
}

func TestCombinedDocView(t *testing.T) {
	table := buildTable(t, map[string]string{
		"a": "cat dog cat",
		"b": "dog dog fish",
	}, []string{"a", "b"})

	combined := table.CombinedDoc()
	if combined.Label() != CombinedLabel {
		t.Errorf("Label = %q, want %q", combined.Label(), CombinedLabel)
	}
	if got := combined.Count("dog"); got != 3 {
		t.Errorf("combined Count(dog) = %d, want 3", got)
	}
	if got := combined.TotalTokens(); got != 6 {
		t.Errorf("combined TotalTokens = %d, want 6", got)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	b := NewBuilder()
	if err := b.Add("a", []string{"cat"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	first := b.Build()

	if err := b.Add("b", []string{"dog"}); err != nil {
		t.Fatalf("Add after Build: %v", err)
	}
	second := b.Build()

	if len(first.DocIDs()) != 1 {
		t.Errorf("first snapshot grew: %v", first.DocIDs())
	}
	if len(second.DocIDs()) != 2 {
		t.Errorf("second snapshot = %v, want two docs", second.DocIDs())
	}
}
