package driving

import (
	"context"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
)

// Section is a curated grouping of rules for browsing, e.g. "Packing Tips".
type Section struct {
	// ID is a stable identifier, e.g. "documents", "packing".
	ID string

	// Title is the display heading.
	Title string

	// Rules are the member rules in display order.
	Rules []domain.Rule
}

// CatalogService provides browse access to the rule catalog.
type CatalogService interface {
	// List returns all rules in catalog order.
	List(ctx context.Context) ([]domain.Rule, error)

	// Get returns the rule with the given slug, or domain.ErrNotFound.
	Get(ctx context.Context, slug string) (*domain.Rule, error)

	// Sections groups the catalog into the curated browse sections:
	// documents (fixed ordering), flights, packing, customs, and family.
	Sections(ctx context.Context) ([]Section, error)
}
