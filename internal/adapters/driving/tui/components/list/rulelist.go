// Package list provides the navigable rule list component.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/styles"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
)

// RuleList displays matched rules in a navigable list with verdict badges.
type RuleList struct {
	rules    []domain.Rule
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewRuleList creates a new rule list component.
func NewRuleList(s *styles.Styles) *RuleList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RuleList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Update handles list navigation messages.
func (r *RuleList) Update(msg tea.Msg) (*RuleList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the rule list.
func (r *RuleList) View() string {
	if len(r.rules) == 0 {
		return r.styles.Muted.Render("No matching rules")
	}

	lines := make([]string, 0, len(r.rules)*2+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Rules (%d)", len(r.rules)))
	lines = append(lines, header, "")

	// Each entry takes two lines (title + summary).
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.rules) {
		end = len(r.rules)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderRule(i, &r.rules[i]))
	}

	return strings.Join(lines, "\n")
}

// renderRule formats a single rule with its verdict badge and summary.
func (r *RuleList) renderRule(index int, rule *domain.Rule) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := rule.ShortTitle
	if title == "" {
		title = rule.Title
	}

	badge := styles.VerdictBadge(rule.Verdict.Status)
	maxTitleLen := r.width - len(badge) - 8
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s", indicator, maxTitleLen, title)) +
			"  " + r.styles.VerdictStyle(rule.Verdict.Status).Render(badge)
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s", indicator, maxTitleLen, title)) +
			"  " + r.styles.VerdictStyle(rule.Verdict.Status).Render(badge)
	}

	summary := rule.Verdict.Summary
	maxSummaryLen := r.width - 6
	if maxSummaryLen < 20 {
		maxSummaryLen = 20
	}
	if len(summary) > maxSummaryLen {
		summary = summary[:maxSummaryLen-3] + "..."
	}
	summaryLine := r.styles.Muted.Render("    " + summary)

	return titleLine + "\n" + summaryLine
}

// SetRules updates the list content, resetting the selection.
func (r *RuleList) SetRules(rules []domain.Rule) {
	r.rules = rules
	r.selected = 0
}

// Rules returns the current rules.
func (r *RuleList) Rules() []domain.Rule {
	return r.rules
}

// Selected returns the index of the selected rule.
func (r *RuleList) Selected() int {
	return r.selected
}

// SelectedRule returns the currently selected rule, or nil if none.
func (r *RuleList) SelectedRule() *domain.Rule {
	if len(r.rules) == 0 || r.selected < 0 || r.selected >= len(r.rules) {
		return nil
	}
	return &r.rules[r.selected]
}

// MoveUp moves selection up.
func (r *RuleList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RuleList) MoveDown() {
	if r.selected < len(r.rules)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RuleList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of rules.
func (r *RuleList) Count() int {
	return len(r.rules)
}

// IsEmpty returns whether the list is empty.
func (r *RuleList) IsEmpty() bool {
	return len(r.rules) == 0
}
