// Command tripcheck is an offline guide to Indian air travel rules: search,
// browse, nearby airports, and quick baggage checks, from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driven/catalog/embedded"
	catalogfile "github.com/yourtravelguide/tripcheck-cli/internal/adapters/driven/catalog/file"
	configfile "github.com/yourtravelguide/tripcheck-cli/internal/adapters/driven/config/file"
	indexmem "github.com/yourtravelguide/tripcheck-cli/internal/adapters/driven/index/memory"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/cli"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driven"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/services"
	"github.com/yourtravelguide/tripcheck-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = ""

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		cfg = nil
	}

	rules, airports, fileCatalog, err := buildCatalogs(ctx, cfg)
	if err != nil {
		return err
	}

	index := indexmem.NewIndex()
	if all, err := rules.Rules(ctx); err == nil {
		index.Build(all)
	} else {
		return fmt.Errorf("building search index: %w", err)
	}

	// Live reload only applies when the catalog comes from a file.
	if fileCatalog != nil {
		watcher, err := catalogfile.NewWatcher(fileCatalog, index)
		if err != nil {
			logger.Warn("catalog watcher unavailable: %v", err)
		} else {
			go func() {
				if err := watcher.Run(ctx); err != nil {
					logger.Warn("catalog watcher stopped: %v", err)
				}
			}()
		}
	}

	cli.SetSearchService(services.NewSearchService(rules, index))
	cli.SetCatalogService(services.NewCatalogService(rules))
	cli.SetNearbyService(services.NewNearbyService(airports))
	cli.SetToolsService(services.NewTools())
	cli.SetVersion(version)

	if cfg != nil {
		if ms := cfg.GetInt(configfile.KeySearchDebounceMs); ms > 0 {
			cli.SetTUISettleDelay(time.Duration(ms) * time.Millisecond)
		}
		cli.SetNearbyDefaults(
			cfg.GetFloat(configfile.KeyNearbyRadiusKm),
			cfg.GetInt(configfile.KeyNearbyMaxResults),
		)
	}

	return cli.ExecuteContext(ctx)
}

// buildCatalogs loads the rule and airport catalogs, preferring a configured
// catalog file over the embedded seed data. A file catalog without an
// airports table falls back to the embedded airports.
func buildCatalogs(
	ctx context.Context,
	cfg *configfile.ConfigStore,
) (driven.RuleCatalog, driven.AirportCatalog, *catalogfile.Catalog, error) {
	if cfg != nil {
		if path := cfg.GetString(configfile.KeyCatalogPath); path != "" {
			fc, err := catalogfile.Load(path)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("loading catalog %s: %w", path, err)
			}
			airports := driven.AirportCatalog(fc)
			if _, err := fc.Airports(ctx); err != nil {
				seed, err := embedded.NewAirportCatalog()
				if err != nil {
					return nil, nil, nil, fmt.Errorf("loading embedded airports: %w", err)
				}
				airports = seed
			}
			return fc, airports, fc, nil
		}
	}

	rules, err := embedded.NewRuleCatalog()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading embedded rules: %w", err)
	}
	airports, err := embedded.NewAirportCatalog()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading embedded airports: %w", err)
	}
	return rules, airports, nil, nil
}
