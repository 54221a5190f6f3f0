package tokeniser

// stopwords is the closed set of low-information English words dropped from
// queries. Index tokens are never stopword-filtered, so a tag that happens
// to contain one of these words stays matchable.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "can": {},
	"do": {}, "does": {}, "how": {}, "i": {}, "is": {},
	"it": {}, "may": {}, "me": {}, "my": {}, "of": {},
	"on": {}, "or": {}, "should": {}, "take": {}, "that": {},
	"the": {}, "this": {}, "to": {}, "we": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "with": {}, "you": {},
}

// IsStopword reports whether the token is in the stopword set.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// RemoveStopwords drops stopwords from the token slice, preserving order.
// Returns an empty slice if every token was a stopword; that is a valid
// outcome, not an error.
func RemoveStopwords(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !IsStopword(tok) {
			kept = append(kept, tok)
		}
	}
	return kept
}
