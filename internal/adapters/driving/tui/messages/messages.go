// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/google/uuid"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
)

// QueryChanged is sent when the search query input changes.
type QueryChanged struct {
	Query string
}

// SettleTimerFired is sent when a debounce settle timer expires. The token
// identifies which input edit scheduled the timer; stale tokens are ignored.
type SettleTimerFired struct {
	Token uuid.UUID
}

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Query string
	Rules []domain.Rule
	Err   error
}

// SectionsLoaded carries the browse sections.
type SectionsLoaded struct {
	Sections []driving.Section
	Err      error
}

// RuleSelected is sent when a rule is chosen for detail view.
type RuleSelected struct {
	Rule domain.Rule
}

// NearbyCompleted carries nearby airport results.
type NearbyCompleted struct {
	Airports []domain.NearbyAirport
	Err      error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the live search view.
	ViewSearch
	// ViewBrowse is the sectioned catalog browser.
	ViewBrowse
	// ViewDetail shows a single rule.
	ViewDetail
	// ViewNearby is the nearby airport lookup.
	ViewNearby
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewBrowse:
		return "browse"
	case ViewDetail:
		return "detail"
	case ViewNearby:
		return "nearby"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
