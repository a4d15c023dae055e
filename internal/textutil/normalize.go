// Package textutil provides text normalization and tokenization shared by
// keyword extraction and semantic mapping.
package textutil

import (
	"strings"
	"unicode"
)

// NormalizeText lowercases text, replaces any character outside [a-z0-9-]
// with a space, and collapses runs of whitespace.
func NormalizeText(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			sb.WriteRune(r)
		case unicode.IsSpace(r):
			sb.WriteRune(' ')
		default:
			sb.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

// Tokenize splits normalized text into tokens, dropping stopwords.
func Tokenize(text string) []string {
	fields := strings.Fields(NormalizeText(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if Stopwords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Bigrams returns adjacent token pairs joined by a space.
func Bigrams(tokens []string) []string {
	if len(tokens) < 2 {
		return nil
	}
	grams := make([]string, 0, len(tokens)-1)
	for i := 0; i+1 < len(tokens); i++ {
		grams = append(grams, tokens[i]+" "+tokens[i+1])
	}
	return grams
}
