package cli

import (
	"context"
	"time"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
)

// mockSearchService returns canned rules for any query.
type mockSearchService struct {
	rules    []domain.Rule
	err      error
	lastOpts domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) ([]domain.Rule, error) {
	m.lastOpts = opts
	return m.rules, m.err
}

// mockCatalogService returns canned catalog data.
type mockCatalogService struct {
	rules    []domain.Rule
	rule     *domain.Rule
	sections []driving.Section
	err      error
}

func (m *mockCatalogService) List(_ context.Context) ([]domain.Rule, error) {
	return m.rules, m.err
}

func (m *mockCatalogService) Get(_ context.Context, _ string) (*domain.Rule, error) {
	return m.rule, m.err
}

func (m *mockCatalogService) Sections(_ context.Context) ([]driving.Section, error) {
	return m.sections, m.err
}

// mockNearbyService returns canned airports.
type mockNearbyService struct {
	airports []domain.NearbyAirport
	err      error
}

func (m *mockNearbyService) Nearby(
	_ context.Context,
	_, _ float64,
	_ float64,
	_ int,
) ([]domain.NearbyAirport, error) {
	return m.airports, m.err
}

// mockToolsService returns a fixed check result.
type mockToolsService struct {
	result driving.CheckResult
}

func (m *mockToolsService) CheckBaggage(_ driving.BagKind, _, _, _ float64) driving.CheckResult {
	return m.result
}

func (m *mockToolsService) CheckLiquids(_ ...float64) driving.CheckResult {
	return m.result
}

func (m *mockToolsService) CheckPassport(_, _ time.Time) driving.CheckResult {
	return m.result
}

var testRule = domain.Rule{
	Slug:     "power-bank-in-flight",
	Title:    "Can I take a power bank on a flight?",
	Category: domain.CategoryFlight,
	Tags:     []string{"battery", "electronics"},
	Verdict: domain.Verdict{
		Status:  domain.VerdictAllowed,
		Summary: "Power banks go in cabin baggage only.",
	},
}

// setupTestServices injects mock services for every command and returns a
// cleanup function restoring whatever was there before.
func setupTestServices() func() {
	oldSearch := searchService
	oldCatalog := catalogService
	oldNearby := nearbyService
	oldTools := toolsService

	searchService = &mockSearchService{rules: []domain.Rule{testRule}}
	catalogService = &mockCatalogService{
		rules: []domain.Rule{testRule},
		rule:  &testRule,
		sections: []driving.Section{
			{ID: "flights", Title: "Flight Rules", Rules: []domain.Rule{testRule}},
		},
	}
	nearbyService = &mockNearbyService{
		airports: []domain.NearbyAirport{
			{
				Airport: domain.Airport{
					Code: "DEL",
					Name: "Indira Gandhi International Airport",
					City: "Delhi",
				},
				DistanceKm: 12.4,
				DriveTime:  "≈17 min drive",
			},
		},
	}
	toolsService = &mockToolsService{
		result: driving.CheckResult{OK: true, Message: "Within limits."},
	}

	return func() {
		searchService = oldSearch
		catalogService = oldCatalog
		nearbyService = oldNearby
		toolsService = oldTools
	}
}
