// Package nearby provides the nearby airport lookup view: two coordinate
// inputs and a ranked result table.
package nearby

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/styles"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
)

// ErrNoNearbyService is returned when no nearby service was injected.
var ErrNoNearbyService = errors.New("nearby view: nearby service is required")

// errBadCoordinate reports unparseable input before the service is called.
var errBadCoordinate = errors.New("enter latitude and longitude as decimal degrees")

// View is the nearby airport lookup.
type View struct {
	styles *styles.Styles
	nearby driving.NearbyService
	ctx    context.Context

	latInput textinput.Model
	lonInput textinput.Model
	focusLat bool

	results []domain.NearbyAirport
	err     error
	width   int
	height  int
	ready   bool
}

// NewView creates a new nearby view.
func NewView(s *styles.Styles, nearby driving.NearbyService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	lat := textinput.New()
	lat.Placeholder = "28.6139"
	lat.CharLimit = 12
	lat.Width = 12
	lat.Focus()

	lon := textinput.New()
	lon.Placeholder = "77.2090"
	lon.CharLimit = 12
	lon.Width = 12

	return &View{
		styles:   s,
		nearby:   nearby,
		ctx:      context.Background(),
		latInput: lat,
		lonInput: lon,
		focusLat: true,
		width:    80,
		height:   24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the nearby view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.NearbyCompleted:
		v.err = msg.Err
		v.results = msg.Airports
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "tab":
			v.toggleFocus()
			return v, nil
		case "enter":
			return v, v.lookup()
		}
	}

	var cmd tea.Cmd
	if v.focusLat {
		v.latInput, cmd = v.latInput.Update(msg)
	} else {
		v.lonInput, cmd = v.lonInput.Update(msg)
	}
	return v, cmd
}

func (v *View) toggleFocus() {
	v.focusLat = !v.focusLat
	if v.focusLat {
		v.latInput.Focus()
		v.lonInput.Blur()
	} else {
		v.lonInput.Focus()
		v.latInput.Blur()
	}
}

// lookup parses the inputs and queries the service.
func (v *View) lookup() tea.Cmd {
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(v.latInput.Value()), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(v.lonInput.Value()), 64)
	if latErr != nil || lonErr != nil {
		return func() tea.Msg {
			return messages.NearbyCompleted{Err: errBadCoordinate}
		}
	}

	return func() tea.Msg {
		if v.nearby == nil {
			return messages.NearbyCompleted{Err: ErrNoNearbyService}
		}
		airports, err := v.nearby.Nearby(v.ctx, lat, lon, 0, 0)
		return messages.NearbyCompleted{Airports: airports, Err: err}
	}
}

// View renders the nearby lookup.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Nearby Airports"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Normal.Render("Latitude:  "))
	b.WriteString(v.latInput.View())
	b.WriteString("\n")
	b.WriteString(v.styles.Normal.Render("Longitude: "))
	b.WriteString(v.lonInput.View())
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n")
	case len(v.results) > 0:
		for _, ap := range v.results {
			b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%s  %s", ap.Code, ap.Name)))
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render(
				fmt.Sprintf("  %s, %.1f km, %s", ap.City, ap.DistanceKm, ap.DriveTime)))
			b.WriteString("\n")
		}
	default:
		b.WriteString(v.styles.Muted.Render("No airports found within range"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] Switch field  [Enter] Look up  [esc] Back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Results returns the last lookup results.
func (v *View) Results() []domain.NearbyAirport {
	return v.results
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
