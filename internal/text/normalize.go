// Package text turns raw input into the tokens and sentences the
// classifier works on.
package text

import (
	"strings"
	"unicode"
)

// Normalize lower-cases s, drops every rune that is neither a word
// character (letter, number, underscore) nor whitespace, and splits the
// result on whitespace runs. It returns nil when nothing is left.
func Normalize(s string) []string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isWordRune(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	tokens := strings.Fields(b.String())
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
