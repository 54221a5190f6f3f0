package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	nearbyRadius float64
	nearbyMax    int
	nearbyJSON   bool
)

var nearbyCmd = &cobra.Command{
	Use:   "nearby [latitude] [longitude]",
	Short: "Find the closest airports",
	Long: `Finds the closest Indian airports to a coordinate, with the
great-circle distance and an estimated drive time for each.

Example:
  tripcheck nearby 28.6139 77.2090`,
	Args: cobra.ExactArgs(2),
	RunE: runNearby,
}

func init() {
	nearbyCmd.Flags().Float64Var(&nearbyRadius, "radius", 0, "search radius in km (default 300)")
	nearbyCmd.Flags().IntVarP(&nearbyMax, "max", "n", 0, "maximum number of airports (default 3)")
	nearbyCmd.Flags().BoolVar(&nearbyJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(nearbyCmd)
}

// SetNearbyDefaults overrides the default radius and result cap from
// configuration. Explicit flags still win.
func SetNearbyDefaults(radiusKm float64, maxResults int) {
	if radiusKm > 0 {
		nearbyRadius = radiusKm
	}
	if maxResults > 0 {
		nearbyMax = maxResults
	}
}

func runNearby(cmd *cobra.Command, args []string) error {
	if nearbyService == nil {
		return errors.New("nearby service not configured")
	}

	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q", args[0])
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q", args[1])
	}

	airports, err := nearbyService.Nearby(cmd.Context(), lat, lon, nearbyRadius, nearbyMax)
	if err != nil {
		return fmt.Errorf("nearby lookup failed: %w", err)
	}

	if nearbyJSON {
		data, err := json.MarshalIndent(airports, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal airports: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(airports) == 0 {
		cmd.Println("No airports within range.")
		return nil
	}

	for i := range airports {
		cmd.Printf("  [%s] %s, %s\n", airports[i].Code, airports[i].Name, airports[i].City)
		cmd.Printf("      %.1f km away, %s\n", airports[i].DistanceKm, airports[i].DriveTime)
	}

	return nil
}
