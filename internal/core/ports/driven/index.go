package driven

import "github.com/yourtravelguide/tripcheck-cli/internal/core/domain"

// RuleIndex holds the precomputed token sets over which free-text matching
// runs. Implementations are pure in-memory structures: Build runs once per
// catalog load, and a rebuild must be atomic from a reader's point of view,
// the readers see either the fully-old or the fully-new index.
type RuleIndex interface {
	// Build derives one token set per rule from its searchable text,
	// replacing any previous index in a single swap.
	Build(rules []domain.Rule)

	// Matches reports whether the rule identified by slug matches every
	// query token, tolerating singular/plural variation. An empty token
	// list vacuously matches; an unknown slug matches nothing.
	Matches(slug string, queryTokens []string) bool
}
