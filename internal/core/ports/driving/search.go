package driving

import (
	"context"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
)

// RuleSearchService performs free-text search over the rule catalog,
// composed with verdict and category filters.
type RuleSearchService interface {
	// Search returns the rules matching every token of the query, narrowed
	// by the filters in opts, in catalog order. A blank query means "no
	// active search": the whole (filtered) catalog is returned. A query
	// matching nothing returns an empty, non-nil slice.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Rule, error)
}
