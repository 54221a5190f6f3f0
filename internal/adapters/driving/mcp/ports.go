package mcp

import (
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides the rule search.
	Search driving.RuleSearchService

	// Catalog provides rule listing and lookup for resources.
	Catalog driving.CatalogService

	// Nearby finds airports close to a coordinate. Optional; the
	// nearby_airports tool is only registered when present.
	Nearby driving.NearbyService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
