package services

import (
	"context"
	"fmt"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driven"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
	"github.com/yourtravelguide/tripcheck-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.RuleSearchService = (*SearchService)(nil)

// SearchService filters the rule catalog by verdict, category, and
// free-text query. Attribute filters are applied before the token matcher;
// the two predicates are independent, so the order is a cheap-first
// optimisation with identical results either way. Catalog order is
// preserved throughout.
type SearchService struct {
	catalog driven.RuleCatalog
	index   driven.RuleIndex
}

// NewSearchService creates a new search service.
func NewSearchService(catalog driven.RuleCatalog, index driven.RuleIndex) *SearchService {
	return &SearchService{
		catalog: catalog,
		index:   index,
	}
}

// Search implements driving.RuleSearchService.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.Rule, error) {
	if s.catalog == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	if s.index == nil {
		return nil, domain.ErrIndexUnavailable
	}

	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	rules, err := s.catalog.Rules(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	tokens := processQuery(query).active()
	logger.Debug("Active tokens: %v", tokens)

	results := make([]domain.Rule, 0, len(rules))
	for _, rule := range rules {
		if !matchesAttributes(rule, opts) {
			continue
		}
		if len(tokens) > 0 && !s.index.Matches(rule.Slug, tokens) {
			continue
		}
		results = append(results, rule)
		if opts.Limit > 0 && len(results) >= opts.Limit {
			break
		}
	}

	logger.Info("Matched %d of %d rules", len(results), len(rules))
	return results, nil
}

// matchesAttributes applies the exact-match verdict and category filters.
// An unrecognised filter value matches nothing, keeping the pipeline total
// instead of erroring at runtime.
func matchesAttributes(rule domain.Rule, opts domain.SearchOptions) bool {
	if opts.HasVerdict() {
		if !opts.Verdict.Valid() || rule.Verdict.Status != opts.Verdict {
			return false
		}
	}
	if opts.HasCategory() {
		if !opts.Category.Valid() || rule.Category != opts.Category {
			return false
		}
	}
	return true
}
