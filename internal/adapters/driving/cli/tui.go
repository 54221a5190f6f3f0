package cli

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui"
)

// tuiSettleDelay is the search-as-you-type settle delay, injected by main
// from configuration. Zero means the TUI default.
var tuiSettleDelay time.Duration

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for TripCheck.

The TUI provides search-as-you-type over the rule catalog, curated
section browsing, rule detail pages, and a nearby airport lookup.

Controls:
  ↑/k, ↓/j - Navigate results
  Enter    - Select
  Esc      - Back / Cancel
  ctrl+v   - Cycle verdict filter
  ctrl+f   - Cycle category filter
  ?        - Toggle help
  ctrl+c   - Quit`,
	RunE: runTUI,
}

// SetTUISettleDelay sets the search settle delay used by the TUI command.
func SetTUISettleDelay(d time.Duration) {
	tuiSettleDelay = d
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery so terminal state problems come with a stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(searchService, catalogService, nearbyService)

	app, err := tui.NewApp(ports, tuiSettleDelay)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	return app.Run()
}
