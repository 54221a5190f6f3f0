// Package memory provides the in-memory token-set index used for rule
// search. It is the only RuleIndex implementation; the catalog is small
// enough that the whole index lives comfortably in memory.
package memory

import (
	"sync"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driven"
	"github.com/yourtravelguide/tripcheck-cli/internal/logger"
	"github.com/yourtravelguide/tripcheck-cli/internal/tokeniser"
)

// Ensure Index implements the interface.
var _ driven.RuleIndex = (*Index)(nil)

// Index maps each rule slug to the token set derived from its searchable
// text. Content tokens are stored together with their singular/plural
// expansions so that a query for "battery" finds a rule that only ever
// says "batteries", and vice versa. Stopwords are never removed at index
// time: a tag that literally contains "with" stays matchable.
type Index struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

// NewIndex creates an empty index. Call Build before matching.
func NewIndex() *Index {
	return &Index{sets: make(map[string]map[string]struct{})}
}

// Build implements driven.RuleIndex. The new index replaces the old one in
// a single swap; concurrent readers see either the complete old index or
// the complete new one.
func (i *Index) Build(rules []domain.Rule) {
	sets := make(map[string]map[string]struct{}, len(rules))
	for _, rule := range rules {
		tokens := tokeniser.Normalise(rule.SearchText())
		set := make(map[string]struct{}, len(tokens)*2)
		for _, tok := range tokens {
			for _, form := range tokeniser.Expand(tok) {
				set[form] = struct{}{}
			}
		}
		sets[rule.Slug] = set
	}

	i.mu.Lock()
	i.sets = sets
	i.mu.Unlock()

	logger.Debug("Indexed %d rules", len(sets))
}

// Matches implements driven.RuleIndex. Matching is conjunctive: every
// query token must be present, directly or via one of its expansions.
func (i *Index) Matches(slug string, queryTokens []string) bool {
	// Empty query is "no filter" and vacuously matches, even for slugs the
	// index has never seen.
	if len(queryTokens) == 0 {
		return true
	}

	i.mu.RLock()
	set := i.sets[slug]
	i.mu.RUnlock()

	if set == nil {
		return false
	}

	for _, tok := range queryTokens {
		if !anyFormPresent(tok, set) {
			return false
		}
	}
	return true
}

func anyFormPresent(token string, set map[string]struct{}) bool {
	for _, form := range tokeniser.Expand(token) {
		if _, ok := set[form]; ok {
			return true
		}
	}
	return false
}
