package mcp

import (
	"context"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.RuleSearchService.
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

// mockCatalogService is a mock implementation of driving.CatalogService.
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

// mockNearbyService is a mock implementation of driving.NearbyService.
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
