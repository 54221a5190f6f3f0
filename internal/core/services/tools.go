package services

import (
	"fmt"
	"time"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
)

// Baggage and liquid limits enforced by the large Indian carriers.
const (
	cabinMaxLengthCm = 55
	cabinMaxWidthCm  = 35
	cabinMaxHeightCm = 25
	cabinMaxSumCm    = 115
	checkedMaxSumCm  = 158

	liquidsBagLimitMl = 1000

	// passportMinValidity is the six-month rule for international travel.
	passportMinValidity = 180 * 24 * time.Hour
)

// Ensure Tools implements the interface.
var _ driving.ToolsService = (*Tools)(nil)

// Tools implements the mini calculators. All checks are pure threshold
// comparisons; they hold no state.
type Tools struct{}

// NewTools creates the tools service.
func NewTools() *Tools {
	return &Tools{}
}

// CheckBaggage implements driving.ToolsService.
func (t *Tools) CheckBaggage(kind driving.BagKind, lengthCm, widthCm, heightCm float64) driving.CheckResult {
	if lengthCm <= 0 || widthCm <= 0 || heightCm <= 0 {
		return driving.CheckResult{
			Message: "Enter length, width, and height to check against airline allowances.",
		}
	}

	sum := lengthCm + widthCm + heightCm

	if kind == driving.BagCabin {
		withinEach := lengthCm <= cabinMaxLengthCm && widthCm <= cabinMaxWidthCm && heightCm <= cabinMaxHeightCm
		if withinEach && sum <= cabinMaxSumCm {
			return driving.CheckResult{
				OK:      true,
				Message: "Fits most Indian cabin bag sizers (55 x 35 x 25 cm, 115 cm sum).",
			}
		}
		return driving.CheckResult{
			Message: "Too large for standard cabin limits. Move it to checked baggage.",
		}
	}

	if sum <= checkedMaxSumCm {
		return driving.CheckResult{
			OK:      true,
			Message: "Within the 158 cm checked baggage sum used by the major Indian airlines.",
		}
	}
	return driving.CheckResult{
		Message: "Oversize bag. Expect excess or oversize fees at the counter.",
	}
}

// CheckLiquids implements driving.ToolsService.
func (t *Tools) CheckLiquids(volumesMl ...float64) driving.CheckResult {
	var total float64
	var counted int
	for _, v := range volumesMl {
		if v > 0 {
			total += v
			counted++
		}
	}

	if counted == 0 {
		return driving.CheckResult{
			Message: "Enter bottle volumes in millilitres.",
		}
	}

	if total <= liquidsBagLimitMl {
		return driving.CheckResult{
			OK:      true,
			Message: fmt.Sprintf("Total %.0f ml, within the 1 L (1000 ml) liquids bag limit.", total),
		}
	}
	return driving.CheckResult{
		Message: fmt.Sprintf("Total %.0f ml, over 1 L. Move some bottles to checked baggage.", total),
	}
}

// CheckPassport implements driving.ToolsService.
func (t *Tools) CheckPassport(expiry, today time.Time) driving.CheckResult {
	remaining := expiry.Sub(today)

	if remaining < 0 {
		return driving.CheckResult{
			Message: "Passport already expired. Renew immediately.",
		}
	}
	if remaining < passportMinValidity {
		return driving.CheckResult{
			Message: "Less than 6 months validity. Renew before booking international tickets.",
		}
	}
	return driving.CheckResult{
		OK:      true,
		Message: "Safe to travel internationally (6+ months validity).",
	}
}
