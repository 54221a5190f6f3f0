package search

import "errors"

// ErrNoSearchService is returned when no search service was injected.
var ErrNoSearchService = errors.New("search view: search service is required")
