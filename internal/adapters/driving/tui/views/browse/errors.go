package browse

import "errors"

// ErrNoCatalogService is returned when no catalog service was injected.
var ErrNoCatalogService = errors.New("browse view: catalog service is required")
