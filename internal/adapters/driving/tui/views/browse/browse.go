// Package browse provides the sectioned catalog browser: curated sections
// on the left, member rules on the right.
package browse

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/styles"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/ports/driving"
)

// focusArea is which pane receives navigation keys.
type focusArea int

const (
	focusSections focusArea = iota
	focusRules
)

// View is the sectioned catalog browser.
type View struct {
	styles  *styles.Styles
	catalog driving.CatalogService
	ctx     context.Context

	sections        []driving.Section
	selectedSection int
	selectedRule    int
	focus           focusArea

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new browse view.
func NewView(s *styles.Styles, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		catalog: catalog,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the sections.
func (v *View) Init() tea.Cmd {
	return func() tea.Msg {
		if v.catalog == nil {
			return messages.SectionsLoaded{Err: ErrNoCatalogService}
		}
		sections, err := v.catalog.Sections(v.ctx)
		return messages.SectionsLoaded{Sections: sections, Err: err}
	}
}

// Update handles messages for the browse view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SectionsLoaded:
		v.err = msg.Err
		v.sections = msg.Sections
		v.selectedSection = 0
		v.selectedRule = 0
		v.focus = focusSections
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if v.focus == focusRules {
			v.focus = focusSections
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "up", "k":
		v.moveUp()
		return v, nil

	case "down", "j":
		v.moveDown()
		return v, nil

	case "enter":
		return v.handleSelect()
	}

	return v, nil
}

func (v *View) moveUp() {
	if v.focus == focusSections {
		if v.selectedSection > 0 {
			v.selectedSection--
		}
		return
	}
	if v.selectedRule > 0 {
		v.selectedRule--
	}
}

func (v *View) moveDown() {
	if v.focus == focusSections {
		if v.selectedSection < len(v.sections)-1 {
			v.selectedSection++
		}
		return
	}
	if section := v.currentSection(); section != nil && v.selectedRule < len(section.Rules)-1 {
		v.selectedRule++
	}
}

func (v *View) handleSelect() (*View, tea.Cmd) {
	section := v.currentSection()
	if section == nil {
		return v, nil
	}

	if v.focus == focusSections {
		if len(section.Rules) == 0 {
			return v, nil
		}
		v.focus = focusRules
		v.selectedRule = 0
		return v, nil
	}

	if v.selectedRule < len(section.Rules) {
		rule := section.Rules[v.selectedRule]
		return v, func() tea.Msg {
			return messages.RuleSelected{Rule: rule}
		}
	}
	return v, nil
}

func (v *View) currentSection() *driving.Section {
	if v.selectedSection < 0 || v.selectedSection >= len(v.sections) {
		return nil
	}
	return &v.sections[v.selectedSection]
}

// View renders the browser.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Browse"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		return b.String()
	}

	for i, section := range v.sections {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selectedSection && v.focus == focusSections {
			cursor = "> "
			style = v.styles.Selected
		} else if i == v.selectedSection {
			cursor = "* "
			style = v.styles.Subtitle
		}
		b.WriteString(cursor + style.Render(fmt.Sprintf("%s (%d)", section.Title, len(section.Rules))))
		b.WriteString("\n")

		if i == v.selectedSection && v.focus == focusRules {
			for j, rule := range section.Rules {
				ruleCursor := "    "
				ruleStyle := v.styles.Normal
				if j == v.selectedRule {
					ruleCursor = "  > "
					ruleStyle = v.styles.Selected
				}
				badge := v.styles.VerdictStyle(rule.Verdict.Status).Render(styles.VerdictBadge(rule.Verdict.Status))
				title := rule.ShortTitle
				if title == "" {
					title = rule.Title
				}
				b.WriteString(ruleCursor + ruleStyle.Render(title) + "  " + badge)
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Open  [esc] Back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Sections returns the loaded sections.
func (v *View) Sections() []driving.Section {
	return v.sections
}
