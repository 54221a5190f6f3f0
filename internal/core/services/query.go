package services

import "github.com/yourtravelguide/tripcheck-cli/internal/tokeniser"

// queryTokens holds the two token lists derived from a raw query. The
// primary list has stopwords removed; the fallback keeps them so that an
// all-stopword query ("what should i do") still drives matching instead of
// degenerating into "no query".
type queryTokens struct {
	primary  []string
	fallback []string
}

func processQuery(raw string) queryTokens {
	fallback := tokeniser.Normalise(raw)
	return queryTokens{
		primary:  tokeniser.RemoveStopwords(fallback),
		fallback: fallback,
	}
}

// active returns the token list that should drive matching: the primary
// list when it is non-empty, otherwise the fallback. Both empty means the
// raw query was blank and there is no active search.
func (q queryTokens) active() []string {
	if len(q.primary) > 0 {
		return q.primary
	}
	return q.fallback
}
