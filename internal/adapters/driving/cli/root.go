// Package cli implements the cobra command tree for tripcheck.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
	"github.com/yourtravelguide/tripcheck-cli/internal/logger"
)

// version is the tripcheck release version, overridable at build time.
var version = "0.1.0"

var verbose bool

// Services injected by main before Execute runs.
var (
	searchService  driving.RuleSearchService
	catalogService driving.CatalogService
	nearbyService  driving.NearbyService
	toolsService   driving.ToolsService
)

var rootCmd = &cobra.Command{
	Use:   "tripcheck",
	Short: "Indian air travel rules, offline",
	Long: `TripCheck answers "can I take this?" questions about Indian air travel.

Search the rule catalog, browse curated sections, find your nearest
airport, and run quick baggage, liquids, and passport checks. All data
ships with the binary and works offline.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetSearchService injects the rule search service.
func SetSearchService(s driving.RuleSearchService) {
	searchService = s
}

// SetCatalogService injects the catalog browse service.
func SetCatalogService(s driving.CatalogService) {
	catalogService = s
}

// SetNearbyService injects the nearby airport service.
func SetNearbyService(s driving.NearbyService) {
	nearbyService = s
}

// SetToolsService injects the threshold calculators.
func SetToolsService(s driving.ToolsService) {
	toolsService = s
}

// SetVersion overrides the reported version (set from ldflags by main).
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context, so commands
// stop cleanly on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
