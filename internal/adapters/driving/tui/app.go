package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/session"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/styles"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/views/browse"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/views/detail"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/views/menu"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/views/nearby"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/views/search"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	menuView   *menu.View
	searchView *search.View
	browseView *browse.View
	detailView *detail.View
	nearbyView *nearby.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// detailReturn is the view Esc from detail goes back to.
	detailReturn messages.ViewType

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports. A non-positive
// settleDelay uses the default debounce.
func NewApp(ports *Ports, settleDelay time.Duration) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	sess := session.NewController(settleDelay)

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s),
		searchView:   search.NewView(s, nil, ports.Search, sess),
		browseView:   browse.NewView(s, ports.Catalog),
		detailView:   detail.NewView(s),
		nearbyView:   nearby.NewView(s, ports.Nearby),
		currentView:  messages.ViewMenu,
		detailReturn: messages.ViewSearch,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.browseView.WithContext(ctx)
	a.nearbyView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("tripcheck - Travel Rules"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.browseView.SetDimensions(msg.Width, msg.Height)
		a.detailView.SetDimensions(msg.Width, msg.Height)
		a.nearbyView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp && msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewMenu
			return a, nil
		}
		return a, a.forward(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewSearch:
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewBrowse:
			return a, a.browseView.Init()
		case messages.ViewNearby:
			return a, a.nearbyView.Init()
		case messages.ViewMenu, messages.ViewDetail, messages.ViewHelp:
		}
		return a, nil

	case messages.RuleSelected:
		// Remember where to go back to from the detail view.
		if a.currentView == messages.ViewSearch || a.currentView == messages.ViewBrowse {
			a.detailReturn = a.currentView
		}
		a.detailView.SetRule(msg.Rule)
		a.currentView = messages.ViewDetail
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.forward(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// forward routes a message to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewBrowse:
		a.browseView, cmd = a.browseView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
		// Esc from detail returns to the originating view.
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
			a.currentView = a.detailReturn
			return nil
		}
	case messages.ViewNearby:
		a.nearbyView, cmd = a.nearbyView.Update(msg)
	case messages.ViewHelp:
	}

	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewBrowse:
		return a.browseView.View()
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewNearby:
		return a.nearbyView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Search:
  (type)      Search as you type; results appear when you pause
  ctrl+v      Cycle verdict filter
  ctrl+f      Cycle category filter
  j/k, ↑/↓    Navigate results
  enter       Open rule

Nearby:
  tab         Switch between latitude and longitude
  enter       Look up airports

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.browseView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
	a.nearbyView.SetDimensions(width, height)
}
