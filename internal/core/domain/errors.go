package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCoordinate indicates a NaN or out-of-range latitude or
	// longitude was passed to the nearby lookup. This is a caller bug, not
	// a user-facing condition; the geolocation layer handles user failures.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrCatalogUnavailable indicates no rule catalog is configured.
	ErrCatalogUnavailable = errors.New("rule catalog unavailable")

	// ErrIndexUnavailable indicates the search index is not configured.
	// Free-text search is disabled without it.
	ErrIndexUnavailable = errors.New("search index unavailable")
)
