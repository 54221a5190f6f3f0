package domain

// SearchOptions narrows a rule search. Zero values mean "no filter".
type SearchOptions struct {
	// Verdict filters to rules with this verdict status. An unrecognised
	// value matches nothing rather than erroring.
	Verdict VerdictStatus

	// Category filters to rules in this category. Same semantics as Verdict.
	Category Category

	// Limit caps the number of results. Zero or negative means unlimited.
	Limit int
}

// HasVerdict reports whether a verdict filter is set.
func (o SearchOptions) HasVerdict() bool { return o.Verdict != "" }

// HasCategory reports whether a category filter is set.
func (o SearchOptions) HasCategory() bool { return o.Category != "" }
