package normalize

import (
	"strings"
	"testing"
)

func TestDefaultChainBasic(t *testing.T) {
	text := "The Quick-Brown Fox!! 123 jumps..."
	got := Default().Normalize(text)

	// "the" is a stopword, hyphens and punctuation are deleted in
	// place, digits vanish, "jumps" is stemmed.
	want := "quickbrown fox jump"
	if got != want {
		t.Errorf("Normalize(%q) = %q, want %q", text, got, want)
	}
}

func TestDefaultChainStopwordsAndStemming(t *testing.T) {
	text := "Cats and dogs, cats!"
	got := Default().Normalize(text)

	want := "cat dog cat"
	if got != want {
		t.Errorf("Normalize(%q) = %q, want %q", text, got, want)
	}
}

func TestDefaultChainIdempotent(t *testing.T) {
	inputs := []string{
		"The Quick-Brown Fox!! 123 jumps...",
		"Cats and dogs, cats!",
		"",
		"   \t\n   ",
		"Repeated repeated REPEATED repetition",
		"Studies of glasses and viruses, happily created in 2023.",
		"already normalized text stays put",
	}

	chain := Default()
	for _, input := range inputs {
		once := chain.Normalize(input)
		twice := chain.Normalize(once)
		if once != twice {
			t.Errorf("chain not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestLowercase(t *testing.T) {
	got := Lowercase().Normalize("MiXeD Case")
	if got != "mixed case" {
		t.Errorf("Lowercase = %q, want %q", got, "mixed case")
	}
}

func TestStripPunctuationDeletesInPlace(t *testing.T) {
	got := StripPunctuation().Normalize("don't stop-me now!")
	want := "dont stopme now"
	if got != want {
		t.Errorf("StripPunctuation = %q, want %q", got, want)
	}
}

func TestStripDigits(t *testing.T) {
	got := StripDigits().Normalize("version 2 of gpt4 in 2023")
	want := "version  of gpt in "
	if got != want {
		t.Errorf("StripDigits = %q, want %q", got, want)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	got := CollapseWhitespace().Normalize("  a\t\tb \n c  ")
	want := "a b c"
	if got != want {
		t.Errorf("CollapseWhitespace = %q, want %q", got, want)
	}
}

func TestFoldDiacritics(t *testing.T) {
	got := FoldDiacritics().Normalize("café naïve résumé")
	want := "cafe naive resume"
	if got != want {
		t.Errorf("FoldDiacritics = %q, want %q", got, want)
	}
}

func TestFoldDiacriticsDisabledByDefault(t *testing.T) {
	got := Default().Normalize("café")
	if got != "café" {
		t.Errorf("default chain should keep diacritics, got %q", got)
	}

	folded := NewChain(Options{FoldDiacritics: true}).Normalize("café")
	if folded != "cafe" {
		t.Errorf("folding chain should strip diacritics, got %q", folded)
	}
}

func TestStemmerTable(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"glasses", "glass"},
		{"classes", "class"},
		{"studies", "study"},
		{"cities", "city"},
		{"flies", "fly"},
		{"running", "runn"},
		{"learning", "learn"},
		{"workers", "worker"},
		{"quickly", "quick"},
		{"happiness", "happy"},
		{"viruses", "virus"},
		{"organizing", "organize"},
		{"dogs", "dog"},
		{"cats", "cat"},
		{"created", "creat"},
		{"largest", "larg"},
		// Protected suffixes stop stemming.
		{"this", "this"},
		{"analysis", "analysis"},
		{"thus", "thus"},
		{"glass", "glass"},
		{"is", "is"},
		// Too short for any rule.
		{"as", "as"},
		{"sing", "sing"},
		{"cat", "cat"},
	}

	stemmer := NewStemmer()
	for _, tc := range cases {
		if got := stemmer.Stem(tc.word); got != tc.want {
			t.Errorf("Stem(%q) = %q, want %q", tc.word, got, tc.want)
		}
	}
}

func TestStemmerFixedPoint(t *testing.T) {
	words := []string{
		"glasses", "studies", "families", "businesses", "running",
		"organizations", "singings", "happiness", "viruses", "dresses",
	}

	stemmer := NewStemmer()
	for _, word := range words {
		once := stemmer.Stem(word)
		twice := stemmer.Stem(once)
		if once != twice {
			t.Errorf("Stem(%q) not a fixed point: first %q, second %q", word, once, twice)
		}
	}
}

func TestStopwordFilterBasic(t *testing.T) {
	filter := NewStopwordFilter([]string{"the", "a", "and"})

	got := filter.Normalize("the cat and the dog")
	want := "cat dog"
	if got != want {
		t.Errorf("filter = %q, want %q", got, want)
	}
}

func TestStopwordFilterShortTerms(t *testing.T) {
	filter := NewStopwordFilter(nil)

	// Single-rune terms are dropped regardless of the stopword list.
	got := filter.Normalize("a b c machine learning")
	want := "machine learning"
	if got != want {
		t.Errorf("filter = %q, want %q", got, want)
	}
}

func TestStopwordFilterMinTermLength(t *testing.T) {
	filter := NewStopwordFilter(nil)
	filter.SetMinTermLength(4)

	got := filter.Normalize("ox wolf bear owl")
	want := "wolf bear"
	if got != want {
		t.Errorf("filter = %q, want %q", got, want)
	}
}

func TestAddRemoveStopword(t *testing.T) {
	filter := NewStopwordFilter([]string{"the"})

	if got := filter.Normalize("the cat"); got != "cat" {
		t.Errorf("expected 'the' filtered, got %q", got)
	}

	filter.RemoveStopword("the")
	if got := filter.Normalize("the cat"); got != "the cat" {
		t.Errorf("expected 'the' kept after removal, got %q", got)
	}

	filter.AddStopword("the")
	if got := filter.Normalize("the cat"); got != "cat" {
		t.Errorf("expected 'the' filtered after re-adding, got %q", got)
	}
}

func TestStopwordFilterCaseInsensitive(t *testing.T) {
	filter := NewStopwordFilter([]string{"THE"})

	if !filter.IsStopword("the") {
		t.Error("stopword match should ignore case")
	}
	if got := filter.Normalize("the cat"); got != "cat" {
		t.Errorf("expected 'the' filtered, got %q", got)
	}
}

func TestDefaultStopwordsSurviveStemming(t *testing.T) {
	// The chain stems before filtering, so every default stopword must
	// come out of the stemmer unchanged or it would slip through.
	stemmer := NewStemmer()
	for _, word := range DefaultStopwords() {
		if got := stemmer.Stem(word); got != word {
			t.Errorf("default stopword %q stems to %q", word, got)
		}
	}
}

func TestChainOptions(t *testing.T) {
	chain := NewChain(Options{
		Stopwords:      []string{"lorem"},
		ExtraStopwords: []string{"ipsum"},
	})

	got := chain.Normalize("Lorem ipsum dolor the sit")
	// "the" survives because the custom list replaced the default one.
	want := "dolor the sit"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestDisableStemming(t *testing.T) {
	chain := NewChain(Options{DisableStemming: true})

	got := chain.Normalize("cats dogs")
	want := "cats dogs"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestFuncAdapter(t *testing.T) {
	var n Normalizer = Func(strings.ToUpper)

	if got := n.Normalize("abc"); got != "ABC" {
		t.Errorf("Func adapter = %q, want %q", got, "ABC")
	}
}

func TestCustomChainOrder(t *testing.T) {
	chain := Chain{
		Func(func(s string) string { return s + " beta" }),
		Func(strings.ToUpper),
	}

	if got := chain.Normalize("alpha"); got != "ALPHA BETA" {
		t.Errorf("chain order wrong: got %q", got)
	}
}

func TestTerms(t *testing.T) {
	terms := Terms(Default(), "Cats and dogs, cats!")
	want := []string{"cat", "dog", "cat"}
	if !equalTerms(terms, want) {
		t.Errorf("Terms = %v, want %v", terms, want)
	}

	if terms := Terms(Default(), ""); len(terms) != 0 {
		t.Errorf("Terms on empty input = %v, want none", terms)
	}
}

func equalTerms(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
