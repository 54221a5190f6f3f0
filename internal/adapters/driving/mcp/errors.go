// Package mcp provides an MCP (Model Context Protocol) server adapter for
// tripcheck. It lets AI assistants query travel rules and airport lookups.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
