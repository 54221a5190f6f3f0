// Package tokeniser provides the text normalisation primitives behind rule
// search: lower-casing and splitting free text into tokens, filtering
// stopwords, and expanding tokens into singular/plural variants.
//
// All functions are pure and total. Anything outside ASCII letters and
// digits is treated as a token separator, which is deliberate: the rule
// catalog and the queries it serves are plain English.
package tokeniser

import "strings"

// Normalise lower-cases the input, replaces every character that is not an
// ASCII letter or digit with a space, and splits the result into tokens.
// Empty input yields an empty slice.
func Normalise(input string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, strings.ToLower(input))
	return strings.Fields(cleaned)
}

// TokenSet collects tokens into a set. Duplicates collapse.
func TokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
