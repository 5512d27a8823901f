package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Lowercase returns a normalizer that case-folds text to lower case.
func Lowercase() Normalizer {
	return Func(strings.ToLower)
}

// StripPunctuation returns a normalizer that deletes every rune that is
// not a letter, digit, or whitespace. Characters are removed in place,
// so "don't" becomes "dont"; word boundaries are provided by the
// surrounding whitespace, not synthesized.
func StripPunctuation() Normalizer {
	return Func(func(text string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
				return r
			}
			return -1
		}, text)
	})
}

// StripDigits returns a normalizer that deletes decimal digits in place,
// so "2nd" becomes "nd" and "version 2" becomes "version".
func StripDigits() Normalizer {
	return Func(func(text string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsDigit(r) {
				return -1
			}
			return r
		}, text)
	})
}

// CollapseWhitespace returns a normalizer that trims the text and
// collapses every whitespace run to a single space.
func CollapseWhitespace() Normalizer {
	return Func(func(text string) string {
		return strings.Join(strings.Fields(text), " ")
	})
}

type diacriticFolder struct {
	t transform.Transformer
}

// FoldDiacritics returns a normalizer that strips combining marks after
// canonical decomposition, mapping "café" to "cafe" and "naïve" to
// "naive". Characters that do not decompose are left untouched.
func FoldDiacritics() Normalizer {
	return &diacriticFolder{
		t: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
	}
}

func (f *diacriticFolder) Normalize(text string) string {
	out, _, err := transform.String(f.t, text)
	if err != nil {
		return text
	}
	return out
}
