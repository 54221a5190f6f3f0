package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{CategoryFlight, CategoryTrain, CategoryBus, CategoryGeneralTravel, CategoryDocuments} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("boat").Valid())
	assert.False(t, Category("").Valid())
}

func TestVerdictStatusValid(t *testing.T) {
	for _, s := range []VerdictStatus{VerdictAllowed, VerdictNotAllowed, VerdictLimited} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, VerdictStatus("maybe").Valid())
	assert.False(t, VerdictStatus("").Valid())
}

func TestRuleValidate(t *testing.T) {
	valid := Rule{
		Slug:     "power-bank-in-flight",
		Category: CategoryFlight,
		Verdict:  Verdict{Status: VerdictAllowed, Summary: "Cabin only."},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Rule)
	}{
		{"blank slug", func(r *Rule) { r.Slug = "  " }},
		{"bad category", func(r *Rule) { r.Category = "boat" }},
		{"bad verdict", func(r *Rule) { r.Verdict.Status = "maybe" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.ErrorIs(t, r.Validate(), ErrInvalidInput)
		})
	}
}

func TestSearchTextLegacyFields(t *testing.T) {
	r := Rule{
		Slug:        "scissors-in-cabin",
		Title:       "Scissors in Cabin Baggage",
		ShortTitle:  "Scissors in cabin",
		Category:    CategoryFlight,
		Tags:        []string{"scissors", "sharp objects"},
		Verdict:     Verdict{Status: VerdictLimited, Summary: "Blades under 6 cm only."},
		HowToComply: []string{"Pack longer blades in checked baggage."},
		ExtraNotes:  []string{"CISF measures from the pivot."},
	}

	text := r.SearchText()
	assert.Contains(t, text, "Scissors in Cabin Baggage")
	assert.Contains(t, text, "Blades under 6 cm only.")
	assert.Contains(t, text, "flight")
	assert.Contains(t, text, "sharp objects")
	assert.Contains(t, text, "Pack longer blades in checked baggage.")
	assert.Contains(t, text, "CISF measures from the pivot.")
}

func TestSearchTextRichContent(t *testing.T) {
	r := Rule{
		Slug:    "power-bank-in-flight",
		Verdict: Verdict{Status: VerdictAllowed},
		RichContent: &RichContent{
			QuickAnswer: "Carry power banks only in cabin baggage.",
			Overview:    []string{"Lithium cells belong in the cabin."},
			Tips:        []string{"Photograph the watt-hour label."},
			Checklists: []Checklist{
				{Title: "Before the airport", Items: []string{"Confirm capacity under 100Wh."}},
			},
			// FAQs and dos/donts are presentation-only, never indexed.
			FAQs: []FAQ{{Question: "zzznotindexed", Answer: "zzznotindexed"}},
			Dos:  []string{"yyynotindexed"},
		},
	}

	text := r.SearchText()
	assert.Contains(t, text, "Carry power banks only in cabin baggage.")
	assert.Contains(t, text, "Lithium cells belong in the cabin.")
	assert.Contains(t, text, "Photograph the watt-hour label.")
	assert.Contains(t, text, "Before the airport")
	assert.Contains(t, text, "Confirm capacity under 100Wh.")
	assert.NotContains(t, text, "zzznotindexed")
	assert.NotContains(t, text, "yyynotindexed")
}

// A rule with only mandatory fields never panics and still contributes text.
func TestSearchTextMissingOptionalFields(t *testing.T) {
	r := Rule{Slug: "bare", Title: "Bare Rule", Category: CategoryDocuments,
		Verdict: Verdict{Status: VerdictAllowed}}
	assert.Contains(t, r.SearchText(), "Bare Rule")
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(28.6139, 77.2090))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.False(t, ValidCoordinate(91, 0))
	assert.False(t, ValidCoordinate(0, -181))

	assert.False(t, ValidCoordinate(math.NaN(), 77))
	assert.False(t, ValidCoordinate(28, math.NaN()))
}
