package driven

import (
	"context"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
)

// RuleCatalog supplies the authored rule catalog. Implementations guarantee
// the catalog is validated and immutable between loads; rules are returned
// in authored order.
type RuleCatalog interface {
	// Rules returns every rule in catalog order.
	Rules(ctx context.Context) ([]domain.Rule, error)

	// Rule returns the rule with the given slug, or domain.ErrNotFound.
	Rule(ctx context.Context, slug string) (*domain.Rule, error)
}

// AirportCatalog supplies the static airport list.
type AirportCatalog interface {
	// Airports returns every airport in authored order.
	Airports(ctx context.Context) ([]domain.Airport, error)
}
