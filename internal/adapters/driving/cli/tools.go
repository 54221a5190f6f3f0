package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
)

var baggageKind string

var toolsCmd = &cobra.Command{
	Use:   "check",
	Short: "Quick travel checkers",
	Long:  `Small calculators for baggage dimensions, liquids volume, and passport validity.`,
}

var checkBaggageCmd = &cobra.Command{
	Use:   "baggage [length] [width] [height]",
	Short: "Check bag dimensions in centimetres",
	Long: `Checks a bag's dimensions against the standard airline limits:
cabin bags must fit 55x35x25 cm (115 cm total), checked bags must
stay under 158 cm total.

Example:
  tripcheck check baggage 55 35 25
  tripcheck check baggage --kind checked 78 50 30`,
	Args: cobra.ExactArgs(3),
	RunE: runCheckBaggage,
}

var checkLiquidsCmd = &cobra.Command{
	Use:   "liquids [volumes...]",
	Short: "Check liquid volumes in millilitres",
	Long: `Sums the given bottle volumes against the 1000 ml security-bag limit.

Example:
  tripcheck check liquids 100 250 90`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheckLiquids,
}

var checkPassportCmd = &cobra.Command{
	Use:   "passport [expiry]",
	Short: "Check passport validity (expiry as YYYY-MM-DD)",
	Long: `Checks a passport expiry date against the six-month international
validity rule.

Example:
  tripcheck check passport 2027-03-15`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckPassport,
}

func init() {
	checkBaggageCmd.Flags().StringVar(&baggageKind, "kind", "cabin", "bag kind (cabin or checked)")
	toolsCmd.AddCommand(checkBaggageCmd)
	toolsCmd.AddCommand(checkLiquidsCmd)
	toolsCmd.AddCommand(checkPassportCmd)
	rootCmd.AddCommand(toolsCmd)
}

func runCheckBaggage(cmd *cobra.Command, args []string) error {
	if toolsService == nil {
		return errors.New("tools service not configured")
	}

	dims := make([]float64, 3)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid dimension %q", arg)
		}
		dims[i] = v
	}

	kind := driving.BagKind(baggageKind)
	if kind != driving.BagCabin && kind != driving.BagChecked {
		return fmt.Errorf("unknown bag kind %q", baggageKind)
	}

	result := toolsService.CheckBaggage(kind, dims[0], dims[1], dims[2])
	printCheckResult(cmd, result)
	return nil
}

func runCheckLiquids(cmd *cobra.Command, args []string) error {
	if toolsService == nil {
		return errors.New("tools service not configured")
	}

	volumes := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid volume %q", arg)
		}
		volumes[i] = v
	}

	result := toolsService.CheckLiquids(volumes...)
	printCheckResult(cmd, result)
	return nil
}

func runCheckPassport(cmd *cobra.Command, args []string) error {
	if toolsService == nil {
		return errors.New("tools service not configured")
	}

	expiry, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		return fmt.Errorf("invalid expiry date %q, expected YYYY-MM-DD", args[0])
	}

	result := toolsService.CheckPassport(expiry, time.Now())
	printCheckResult(cmd, result)
	return nil
}

func printCheckResult(cmd *cobra.Command, result driving.CheckResult) {
	status := "OK"
	if !result.OK {
		status = "FAIL"
	}
	cmd.Printf("%s: %s\n", status, result.Message)
}
