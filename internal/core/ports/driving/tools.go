package driving

import "time"

// CheckResult is the outcome of a mini calculator: a pass/fail style
// verdict plus a human-readable explanation.
type CheckResult struct {
	OK      bool
	Message string
}

// BagKind selects which baggage limit to check against.
type BagKind string

const (
	BagCabin   BagKind = "cabin"
	BagChecked BagKind = "checked"
)

// ToolsService bundles the small threshold calculators: baggage dimensions,
// liquids volume, and passport validity.
type ToolsService interface {
	// CheckBaggage compares a bag's dimensions in centimetres against the
	// standard cabin (55×35×25, sum 115) or checked (sum 158) limits.
	CheckBaggage(kind BagKind, lengthCm, widthCm, heightCm float64) CheckResult

	// CheckLiquids sums bottle volumes in millilitres against the 1000 ml
	// security-bag limit. Non-positive volumes are ignored.
	CheckLiquids(volumesMl ...float64) CheckResult

	// CheckPassport evaluates a passport expiry date against the six-month
	// international validity rule, relative to today.
	CheckPassport(expiry, today time.Time) CheckResult
}
