package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
)

type stubSearch struct{}

func (stubSearch) Search(context.Context, string, domain.SearchOptions) ([]domain.Rule, error) {
	return nil, nil
}

type stubCatalog struct{}

func (stubCatalog) List(context.Context) ([]domain.Rule, error)         { return nil, nil }
func (stubCatalog) Get(context.Context, string) (*domain.Rule, error)   { return nil, domain.ErrNotFound }
func (stubCatalog) Sections(context.Context) ([]driving.Section, error) { return nil, nil }

type stubNearby struct{}

func (stubNearby) Nearby(context.Context, float64, float64, float64, int) ([]domain.NearbyAirport, error) {
	return nil, nil
}

func fullPorts() *Ports {
	return NewPorts(stubSearch{}, stubCatalog{}, stubNearby{})
}

func TestNewApp_ValidatesPorts(t *testing.T) {
	_, err := NewApp(&Ports{}, 0)
	assert.ErrorIs(t, err, ErrMissingSearchService)

	_, err = NewApp(&Ports{Search: stubSearch{}}, 0)
	assert.ErrorIs(t, err, ErrMissingCatalogService)

	_, err = NewApp(&Ports{Search: stubSearch{}, Catalog: stubCatalog{}}, 0)
	assert.ErrorIs(t, err, ErrMissingNearbyService)

	app, err := NewApp(fullPorts(), 0)
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestApp_StartsOnMenu(t *testing.T) {
	app, err := NewApp(fullPorts(), 0)
	require.NoError(t, err)

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_ViewChangedSwitchesView(t *testing.T) {
	app, err := NewApp(fullPorts(), 0)
	require.NoError(t, err)
	app.SetDimensions(80, 24)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewSearch})
	app = model.(*App)
	assert.Equal(t, messages.ViewSearch, app.CurrentView())

	model, _ = app.Update(messages.ViewChanged{View: messages.ViewNearby})
	app = model.(*App)
	assert.Equal(t, messages.ViewNearby, app.CurrentView())
}

func TestApp_RuleSelectedOpensDetailAndEscReturns(t *testing.T) {
	app, err := NewApp(fullPorts(), 0)
	require.NoError(t, err)
	app.SetDimensions(80, 24)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewSearch})
	app = model.(*App)

	rule := domain.Rule{Slug: "pets-in-flight", Title: "Flying with pets"}
	model, _ = app.Update(messages.RuleSelected{Rule: rule})
	app = model.(*App)
	assert.Equal(t, messages.ViewDetail, app.CurrentView())

	// Esc returns to the view the rule was opened from.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app, err := NewApp(fullPorts(), 0)
	require.NoError(t, err)
	app.SetDimensions(80, 24)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_RendersMenuByDefault(t *testing.T) {
	app, err := NewApp(fullPorts(), 0)
	require.NoError(t, err)
	app.SetDimensions(80, 24)

	out := app.View()
	assert.Contains(t, out, "TripCheck")
	assert.Contains(t, out, "Search rules")
	assert.Contains(t, out, "Nearby airports")
}
