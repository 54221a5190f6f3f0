// Package file loads rule and airport catalogs from TOML files on disk and
// keeps them fresh with a filesystem watcher. The loaded catalog replaces
// the embedded seed when catalog.path is configured.
package file

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driven/catalog/memory"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driven"
)

// Ensure Catalog implements the interfaces.
var (
	_ driven.RuleCatalog    = (*Catalog)(nil)
	_ driven.AirportCatalog = (*Catalog)(nil)
)

// catalogDocument is the on-disk TOML shape: rules and airports may live in
// the same file or the airports table may be omitted.
type catalogDocument struct {
	Rules    []domain.Rule    `toml:"rules"`
	Airports []domain.Airport `toml:"airports"`
}

// Catalog is a reloadable file-backed catalog. Reload swaps the validated
// inner catalogs in one step, so readers always see a complete snapshot,
// never a half-loaded one. A failed reload keeps the previous snapshot.
type Catalog struct {
	path string

	mu       sync.RWMutex
	rules    *memory.RuleCatalog
	airports *memory.AirportCatalog
}

// Load reads, validates, and indexes the catalog file at path.
func Load(path string) (*Catalog, error) {
	c := &Catalog{path: path}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the catalog file. On any error the catalog keeps serving
// the previous snapshot and the error is returned for logging.
func (c *Catalog) Reload() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", c.path, err)
	}

	var doc catalogDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse catalog %s: %w", c.path, err)
	}

	rules, err := memory.NewRuleCatalog(doc.Rules)
	if err != nil {
		return fmt.Errorf("validate catalog %s: %w", c.path, err)
	}

	var airports *memory.AirportCatalog
	if len(doc.Airports) > 0 {
		airports, err = memory.NewAirportCatalog(doc.Airports)
		if err != nil {
			return fmt.Errorf("validate catalog %s: %w", c.path, err)
		}
	}

	c.mu.Lock()
	c.rules = rules
	if airports != nil {
		c.airports = airports
	}
	c.mu.Unlock()

	return nil
}

// Path returns the catalog file path.
func (c *Catalog) Path() string {
	return c.path
}

// Rules implements driven.RuleCatalog.
func (c *Catalog) Rules(ctx context.Context) ([]domain.Rule, error) {
	c.mu.RLock()
	rules := c.rules
	c.mu.RUnlock()

	if rules == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return rules.Rules(ctx)
}

// Rule implements driven.RuleCatalog.
func (c *Catalog) Rule(ctx context.Context, slug string) (*domain.Rule, error) {
	c.mu.RLock()
	rules := c.rules
	c.mu.RUnlock()

	if rules == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return rules.Rule(ctx, slug)
}

// Airports implements driven.AirportCatalog. Catalog files without an
// airports table return domain.ErrCatalogUnavailable; callers fall back to
// the embedded airport seed.
func (c *Catalog) Airports(ctx context.Context) ([]domain.Airport, error) {
	c.mu.RLock()
	airports := c.airports
	c.mu.RUnlock()

	if airports == nil {
		return nil, domain.ErrCatalogUnavailable
	}
	return airports.Airports(ctx)
}
