package embedded

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
)

func TestEmbeddedRules(t *testing.T) {
	rules, err := Rules()
	require.NoError(t, err)
	require.NotEmpty(t, rules)

	// Every seed rule must pass the same validation a loaded catalog gets.
	for _, r := range rules {
		assert.NoError(t, r.Validate(), "rule %q", r.Slug)
		assert.NotEmpty(t, r.Verdict.Summary, "rule %q", r.Slug)
	}
}

func TestEmbeddedRichContent(t *testing.T) {
	rules, err := Rules()
	require.NoError(t, err)

	var powerBank *domain.Rule
	for i := range rules {
		if rules[i].Slug == "power-bank-in-flight" {
			powerBank = &rules[i]
			break
		}
	}
	require.NotNil(t, powerBank)

	rc := powerBank.RichContent
	require.NotNil(t, rc)
	assert.NotEmpty(t, rc.QuickAnswer)
	assert.NotEmpty(t, rc.Overview)
	assert.Len(t, rc.Checklists, 2)
	require.NotNil(t, rc.Table)
	assert.Len(t, rc.Table.Headers, 3)
}

func TestEmbeddedAirports(t *testing.T) {
	airports, err := Airports()
	require.NoError(t, err)
	assert.Len(t, airports, 28)

	for _, ap := range airports {
		assert.True(t, domain.ValidCoordinate(ap.Latitude, ap.Longitude), "airport %q", ap.Code)
		assert.Len(t, ap.Code, 3, "airport %q", ap.Code)
	}
}

func TestEmbeddedCatalogs(t *testing.T) {
	rules, err := NewRuleCatalog()
	require.NoError(t, err)

	rule, err := rules.Rule(context.Background(), "passport-expiry-validity")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryDocuments, rule.Category)

	airports, err := NewAirportCatalog()
	require.NoError(t, err)

	all, err := airports.Airports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "DEL", all[0].Code)
}
