// Package normalize turns raw document text into clean, analysis-ready
// terms. The default chain lower-cases, strips punctuation and digits,
// collapses whitespace, stems, and removes stopwords, in that order.
// Every normalizer in this package is idempotent: running one over its
// own output changes nothing.
package normalize

import "strings"

// Normalizer is the capability the pipeline expects from any text
// normalization implementation.
type Normalizer interface {
	Normalize(text string) string
}

// Func adapts a plain function to the Normalizer interface.
type Func func(string) string

// Normalize implements Normalizer.
func (f Func) Normalize(text string) string { return f(text) }

// Chain applies a sequence of normalizers in order.
type Chain []Normalizer

// Normalize implements Normalizer.
func (c Chain) Normalize(text string) string {
	for _, n := range c {
		text = n.Normalize(text)
	}
	return text
}

// Options configures the chain built by NewChain.
type Options struct {
	// Stopwords replaces the default stopword list when non-nil.
	Stopwords []string

	// ExtraStopwords are added on top of the stopword list.
	ExtraStopwords []string

	// MinTermLength drops terms shorter than this many runes.
	// Zero means the default of 2.
	MinTermLength int

	// FoldDiacritics inserts a diacritic-folding step before
	// case-folding (café → cafe).
	FoldDiacritics bool

	// DisableStemming omits the stemming step.
	DisableStemming bool
}

// NewChain builds the standard normalization chain with the given options.
func NewChain(opts Options) Chain {
	stopwords := opts.Stopwords
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}
	words := make([]string, 0, len(stopwords)+len(opts.ExtraStopwords))
	words = append(words, stopwords...)
	words = append(words, opts.ExtraStopwords...)

	filter := NewStopwordFilter(words)
	if opts.MinTermLength > 0 {
		filter.SetMinTermLength(opts.MinTermLength)
	}

	var chain Chain
	if opts.FoldDiacritics {
		chain = append(chain, FoldDiacritics())
	}
	chain = append(chain,
		Lowercase(),
		StripPunctuation(),
		StripDigits(),
		CollapseWhitespace(),
	)
	if !opts.DisableStemming {
		chain = append(chain, NewStemmer())
	}
	chain = append(chain, filter)
	return chain
}

// Default returns the standard chain with default options.
func Default() Chain {
	return NewChain(Options{})
}

// Terms normalizes text and splits it into its term sequence.
func Terms(n Normalizer, text string) []string {
	return strings.Fields(n.Normalize(text))
}
