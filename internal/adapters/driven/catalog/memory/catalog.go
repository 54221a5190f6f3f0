// Package memory provides in-memory catalog adapters. They back the
// embedded seed catalog, file-loaded catalogs, and test fixtures.
package memory

import (
	"context"
	"fmt"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driven"
)

// Ensure the catalogs implement their interfaces.
var (
	_ driven.RuleCatalog    = (*RuleCatalog)(nil)
	_ driven.AirportCatalog = (*AirportCatalog)(nil)
)

// RuleCatalog is an immutable in-memory rule catalog. Construction
// validates every rule and rejects duplicate slugs; after that the catalog
// never changes.
type RuleCatalog struct {
	rules  []domain.Rule
	bySlug map[string]int
}

// NewRuleCatalog validates the rules and builds the catalog. Authored
// order is preserved.
func NewRuleCatalog(rules []domain.Rule) (*RuleCatalog, error) {
	bySlug := make(map[string]int, len(rules))
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i, r.Slug, err)
		}
		if _, dup := bySlug[r.Slug]; dup {
			return nil, fmt.Errorf("duplicate slug %q: %w", r.Slug, domain.ErrInvalidInput)
		}
		bySlug[r.Slug] = i
	}

	return &RuleCatalog{rules: rules, bySlug: bySlug}, nil
}

// Rules implements driven.RuleCatalog.
func (c *RuleCatalog) Rules(_ context.Context) ([]domain.Rule, error) {
	return c.rules, nil
}

// Rule implements driven.RuleCatalog.
func (c *RuleCatalog) Rule(_ context.Context, slug string) (*domain.Rule, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rule := c.rules[i]
	return &rule, nil
}

// Len returns the number of rules.
func (c *RuleCatalog) Len() int {
	return len(c.rules)
}

// AirportCatalog is an immutable in-memory airport catalog.
type AirportCatalog struct {
	airports []domain.Airport
}

// NewAirportCatalog builds the catalog, rejecting duplicate codes and
// invalid coordinates.
func NewAirportCatalog(airports []domain.Airport) (*AirportCatalog, error) {
	seen := make(map[string]struct{}, len(airports))
	for i, ap := range airports {
		if ap.Code == "" {
			return nil, fmt.Errorf("airport %d: missing code: %w", i, domain.ErrInvalidInput)
		}
		if _, dup := seen[ap.Code]; dup {
			return nil, fmt.Errorf("duplicate airport code %q: %w", ap.Code, domain.ErrInvalidInput)
		}
		if !domain.ValidCoordinate(ap.Latitude, ap.Longitude) {
			return nil, fmt.Errorf("airport %q: %w", ap.Code, domain.ErrInvalidCoordinate)
		}
		seen[ap.Code] = struct{}{}
	}

	return &AirportCatalog{airports: airports}, nil
}

// Airports implements driven.AirportCatalog.
func (c *AirportCatalog) Airports(_ context.Context) ([]domain.Airport, error) {
	return c.airports, nil
}
