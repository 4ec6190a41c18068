package text

import (
	"strings"
	"unicode"

	"github.com/blevesearch/go-porterstemmer"
)

// Clean collapses all whitespace runs into single spaces and trims the result.
// CSV cells and resume files routinely contain newlines and tab padding.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Tokenize splits text into lowercased runs of letters and digits.
func Tokenize(s string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(unicode.ToLower(r))
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// Terms returns lowercased tokens with english stopwords removed.
func Terms(s string) []string {
	tokens := Tokenize(s)
	terms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if IsStopword(token) {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

// Stems returns Terms reduced to their root form.
func Stems(s string) []string {
	terms := Terms(s)
	stems := make([]string, 0, len(terms))
	for _, term := range terms {
		stems = append(stems, porterstemmer.StemString(term))
	}
	return stems
}

// IsStopword reports whether the lowercased token carries no topical meaning.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
