// Package search provides the live search view for the TUI. Every
// keystroke feeds the debounce session; the search itself only runs once
// typing settles.
package search

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/components/input"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/components/list"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/components/status"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/keymap"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/session"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/styles"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
)

// verdictCycle is the order the verdict filter steps through. The empty
// value means no filter.
var verdictCycle = []domain.VerdictStatus{
	"", domain.VerdictAllowed, domain.VerdictLimited, domain.VerdictNotAllowed,
}

// categoryCycle is the order the category filter steps through.
var categoryCycle = []domain.Category{
	"", domain.CategoryFlight, domain.CategoryDocuments, domain.CategoryTrain,
	domain.CategoryBus, domain.CategoryGeneralTravel,
}

// View is the live search view: input on top, results below, status bar at
// the bottom.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.RuleList
	statusbar *status.Bar
	session   *session.Controller

	searchService driving.RuleSearchService
	ctx           context.Context

	verdictIdx  int
	categoryIdx int

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new search view. A non-positive settleDelay uses the
// session default.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.RuleSearchService,
	sess *session.Controller,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if sess == nil {
		sess = session.NewController(0)
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewRuleList(s),
		statusbar:     status.NewBar(s, km),
		session:       sess,
		searchService: searchService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SettleTimerFired:
		return v, v.handleSettled(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input. Navigation and filter keys are
// intercepted; everything else edits the query and restarts the debounce.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if msg.Type == tea.KeyEnter {
		rule := v.list.SelectedRule()
		if rule == nil {
			return v, nil
		}
		selected := *rule
		return v, func() tea.Msg {
			return messages.RuleSelected{Rule: selected}
		}
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	default:
	}

	switch msg.String() {
	case "ctrl+v":
		v.verdictIdx = (v.verdictIdx + 1) % len(verdictCycle)
		return v, v.refresh()
	case "ctrl+f":
		v.categoryIdx = (v.categoryIdx + 1) % len(categoryCycle)
		return v, v.refresh()
	}

	// The keystroke edits the query.
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)

	timer, ok := v.session.Input(v.input.Value())
	if !ok {
		// Query went blank: clear results immediately, no debounce.
		v.list.SetRules(nil)
		v.statusbar.Clear()
		v.statusbar.SetFilterHint(v.filterHint())
		return v, cmd
	}

	v.statusbar.SetState(status.StateTyping)
	return v, tea.Batch(cmd, tea.Tick(timer.Delay, func(time.Time) tea.Msg {
		return messages.SettleTimerFired{Token: timer.Token}
	}))
}

// handleSettled runs the search if the expired timer is still current.
func (v *View) handleSettled(msg messages.SettleTimerFired) tea.Cmd {
	query, ok := v.session.Fire(msg.Token)
	if !ok {
		return nil
	}
	return v.performSearch(query)
}

// refresh reruns the current query against the updated filters. A blank
// query with an active filter still searches: the filter alone narrows the
// catalog.
func (v *View) refresh() tea.Cmd {
	v.statusbar.SetFilterHint(v.filterHint())
	query := v.input.Value()
	if query == "" && v.verdictIdx == 0 && v.categoryIdx == 0 {
		v.list.SetRules(nil)
		v.statusbar.SetState(status.StateReady)
		return nil
	}
	return v.performSearch(query)
}

// performSearch executes a search as a Bubbletea command.
func (v *View) performSearch(query string) tea.Cmd {
	opts := domain.SearchOptions{
		Verdict:  verdictCycle[v.verdictIdx],
		Category: categoryCycle[v.categoryIdx],
	}
	return func() tea.Msg {
		if v.searchService == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}

		rules, err := v.searchService.Search(v.ctx, query, opts)
		return messages.SearchCompleted{Query: query, Rules: rules, Err: err}
	}
}

// handleSearchCompleted processes search results.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.list.SetRules(msg.Rules)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(msg.Rules))
	v.statusbar.SetFilterHint(v.filterHint())
}

// filterHint describes the active filters for the status bar.
func (v *View) filterHint() string {
	var hint string
	if verdict := verdictCycle[v.verdictIdx]; verdict != "" {
		hint = fmt.Sprintf("verdict: %s", verdict)
	}
	if category := categoryCycle[v.categoryIdx]; category != "" {
		if hint != "" {
			hint += "  "
		}
		hint += fmt.Sprintf("category: %s", category)
	}
	return hint
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	sections = append(sections, v.styles.Title.Render("TripCheck"), "")
	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View())
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10)
	v.statusbar.SetWidth(width)
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// Rules returns the current search results.
func (v *View) Rules() []domain.Rule {
	return v.list.Rules()
}

// SelectedRule returns the currently selected rule.
func (v *View) SelectedRule() *domain.Rule {
	return v.list.SelectedRule()
}

// Session returns the debounce session controller.
func (v *View) Session() *session.Controller {
	return v.session
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset clears the view back to an empty query.
func (v *View) Reset() {
	v.input.SetValue("")
	v.input.Focus()
	v.list.SetRules(nil)
	v.session.Clear()
	v.err = nil
	v.verdictIdx = 0
	v.categoryIdx = 0
	v.statusbar.Clear()
}
