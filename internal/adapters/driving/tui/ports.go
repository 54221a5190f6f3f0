// Package tui provides the interactive terminal interface for tripcheck.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides the debounced rule search.
	Search driving.RuleSearchService

	// Catalog provides browse access to the rule catalog.
	Catalog driving.CatalogService

	// Nearby finds airports close to a coordinate.
	Nearby driving.NearbyService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.RuleSearchService,
	catalog driving.CatalogService,
	nearby driving.NearbyService,
) *Ports {
	return &Ports{
		Search:  search,
		Catalog: catalog,
		Nearby:  nearby,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Nearby == nil {
		return ErrMissingNearbyService
	}
	return nil
}
