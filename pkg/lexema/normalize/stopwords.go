package normalize

import (
	"strings"
	"unicode/utf8"
)

// defaultStopwords survive the default stemmer unchanged, so filtering
// after stemming still removes them.
var defaultStopwords = []string{
	"a", "an", "and", "are", "as", "at",
	"be", "but", "by", "can", "do", "each",
	"for", "from", "had", "has", "have", "he",
	"if", "in", "is", "it", "its", "no",
	"not", "of", "on", "or", "so", "that",
	"the", "their", "they", "this", "to", "was",
	"were", "what", "when", "where", "which", "who",
	"will", "with",
}

// DefaultStopwords returns a copy of the built-in English stopword list.
func DefaultStopwords() []string {
	out := make([]string, len(defaultStopwords))
	copy(out, defaultStopwords)
	return out
}

// StopwordFilter removes stopwords and very short terms from normalized
// text.
type StopwordFilter struct {
	stopwords map[string]struct{}
	minLen    int
}

// NewStopwordFilter creates a filter for the given stopword list.
// Matching is case-insensitive; terms shorter than two runes are also
// dropped.
func NewStopwordFilter(words []string) *StopwordFilter {
	f := &StopwordFilter{
		stopwords: make(map[string]struct{}, len(words)),
		minLen:    2,
	}
	for _, w := range words {
		f.AddStopword(w)
	}
	return f
}

// AddStopword adds a word to the filter.
func (f *StopwordFilter) AddStopword(word string) {
	f.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the filter.
func (f *StopwordFilter) RemoveStopword(word string) {
	delete(f.stopwords, strings.ToLower(word))
}

// IsStopword reports whether the filter would drop the word as a
// stopword.
func (f *StopwordFilter) IsStopword(word string) bool {
	_, ok := f.stopwords[strings.ToLower(word)]
	return ok
}

// SetMinTermLength sets the minimum term length in runes; shorter terms
// are dropped. Values below one are ignored.
func (f *StopwordFilter) SetMinTermLength(n int) {
	if n < 1 {
		return
	}
	f.minLen = n
}

// Normalize implements Normalizer.
func (f *StopwordFilter) Normalize(text string) string {
	fields := strings.Fields(text)
	kept := fields[:0]
	for _, term := range fields {
		if utf8.RuneCountInString(term) < f.minLen {
			continue
		}
		if f.IsStopword(term) {
			continue
		}
		kept = append(kept, term)
	}
	return strings.Join(kept, " ")
}
