package normalize

import "strings"

// stemRule rewrites a suffix. A rule whose replacement equals its suffix
// is protective: matching it stops stemming so the word is not mangled
// further ("glass" must not lose its final s).
type stemRule struct {
	suffix      string
	replacement string
	minLen      int
}

// defaultRules are scanned in order; the first applicable rule wins.
// Longer suffixes come first so "studies" hits "ies" before "es".
var defaultRules = []stemRule{
	{"ational", "ate", 4},
	{"tional", "tion", 4},
	{"encies", "ence", 4},
	{"ancies", "ance", 4},
	{"ments", "ment", 4},
	{"izing", "ize", 5},
	{"ating", "ate", 5},
	{"iness", "y", 3},
	{"ously", "ous", 4},
	{"ively", "ive", 4},
	{"ying", "y", 3},
	{"ies", "y", 3},
	{"ing", "", 3},
	{"ers", "er", 4},
	{"est", "", 4},
	{"ed", "", 4},
	{"ly", "", 4},
	{"es", "", 4},
	{"ss", "ss", 2},
	{"us", "us", 2},
	{"is", "is", 2},
	{"s", "", 3},
}

// Stemmer reduces inflected terms to a common stem with an ordered
// suffix-rule table. Rules are reapplied until none fires, so a stemmed
// word is always a fixed point: Stem(Stem(w)) == Stem(w).
type Stemmer struct {
	rules []stemRule
}

// NewStemmer creates a stemmer with the default English rule table.
func NewStemmer() *Stemmer {
	return &Stemmer{rules: defaultRules}
}

// Stem reduces a single word to its stem.
func (s *Stemmer) Stem(word string) string {
	for {
		next, changed := s.applyOnce(word)
		if !changed {
			return word
		}
		word = next
	}
}

// Normalize implements Normalizer by stemming each whitespace-separated
// term.
func (s *Stemmer) Normalize(text string) string {
	terms := strings.Fields(text)
	for i, term := range terms {
		terms[i] = s.Stem(term)
	}
	return strings.Join(terms, " ")
}

func (s *Stemmer) applyOnce(word string) (string, bool) {
	for _, rule := range s.rules {
		if !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		if rule.replacement == rule.suffix {
			return word, false
		}
		stemmed := word[:len(word)-len(rule.suffix)] + rule.replacement
		if len(stemmed) < rule.minLen {
			continue
		}
		return stemmed, true
	}
	return word, false
}
