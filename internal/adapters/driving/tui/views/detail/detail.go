// Package detail renders a single rule: verdict, compliance steps, and the
// rich article content when the rule carries it.
package detail

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/messages"
	"github.com/yourtravelguide/tripcheck-cli/internal/adapters/driving/tui/styles"
	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
)

// View shows a single rule with scrolling.
type View struct {
	styles *styles.Styles
	rule   *domain.Rule
	offset int
	width  int
	height int
	ready  bool
}

// NewView creates a new detail view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80, height: 24}
}

// SetRule sets the rule to display and resets scrolling.
func (v *View) SetRule(rule domain.Rule) {
	v.rule = &rule
	v.offset = 0
}

// Rule returns the displayed rule.
func (v *View) Rule() *domain.Rule {
	return v.rule
}

// Init initialises the detail view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewSearch}
			}
		case "up", "k":
			if v.offset > 0 {
				v.offset--
			}
		case "down", "j":
			v.offset++
		}
	}

	return v, nil
}

// View renders the rule detail.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.rule == nil {
		return v.styles.Muted.Render("No rule selected")
	}

	lines := v.renderLines()

	// Scroll window, leaving room for the footer.
	visible := v.height - 2
	if visible < 1 {
		visible = 1
	}
	maxOffset := len(lines) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	end := v.offset + visible
	if end > len(lines) {
		end = len(lines)
	}

	body := strings.Join(lines[v.offset:end], "\n")
	footer := v.styles.Help.Render("[j/k] Scroll  [esc] Back")
	return body + "\n\n" + footer
}

// renderLines builds the full unscrolled content.
func (v *View) renderLines() []string {
	r := v.rule
	var lines []string

	lines = append(lines, v.styles.Title.Render(r.Title))

	badge := v.styles.VerdictStyle(r.Verdict.Status).Render(styles.VerdictBadge(r.Verdict.Status))
	lines = append(lines, badge+"  "+v.styles.Normal.Render(r.Verdict.Summary), "")

	if len(r.Tags) > 0 {
		lines = append(lines, v.styles.Muted.Render("Tags: "+strings.Join(r.Tags, ", ")), "")
	}

	if rc := r.RichContent; rc != nil {
		lines = append(lines, v.renderRichContent(rc)...)
	} else {
		lines = append(lines, v.renderLegacy(r)...)
	}

	if len(r.Sources) > 0 {
		lines = append(lines, v.styles.Subtitle.Render("Sources"))
		for _, src := range r.Sources {
			lines = append(lines, v.styles.Muted.Render(fmt.Sprintf("  %s - %s", src.Label, src.URL)))
		}
		lines = append(lines, "")
	}

	if r.LastUpdated != "" {
		lines = append(lines, v.styles.Muted.Render("Last updated: "+r.LastUpdated))
	}

	return lines
}

// renderLegacy renders the plain guidance fields.
func (v *View) renderLegacy(r *domain.Rule) []string {
	var lines []string

	if len(r.HowToComply) > 0 {
		lines = append(lines, v.styles.Subtitle.Render("How to comply"))
		for _, step := range r.HowToComply {
			lines = append(lines, v.styles.Normal.Render("  - "+step))
		}
		lines = append(lines, "")
	}

	if r.WhyRuleExists != "" {
		lines = append(lines, v.styles.Subtitle.Render("Why this rule exists"))
		lines = append(lines, v.styles.Normal.Render("  "+r.WhyRuleExists), "")
	}

	if len(r.ExtraNotes) > 0 {
		lines = append(lines, v.styles.Subtitle.Render("Notes"))
		for _, note := range r.ExtraNotes {
			lines = append(lines, v.styles.Muted.Render("  - "+note))
		}
		lines = append(lines, "")
	}

	return lines
}

// renderRichContent renders the article-style body.
func (v *View) renderRichContent(rc *domain.RichContent) []string {
	var lines []string

	if rc.QuickAnswer != "" {
		lines = append(lines, v.styles.Subtitle.Render("Quick answer"))
		lines = append(lines, v.styles.Normal.Render("  "+rc.QuickAnswer), "")
	}

	for _, para := range rc.Overview {
		lines = append(lines, v.styles.Normal.Render(para), "")
	}

	for _, cl := range rc.Checklists {
		lines = append(lines, v.styles.Subtitle.Render(cl.Title))
		for _, item := range cl.Items {
			lines = append(lines, v.styles.Normal.Render("  [ ] "+item))
		}
		lines = append(lines, "")
	}

	if t := rc.Table; t != nil {
		lines = append(lines, v.styles.Subtitle.Render(t.Caption))
		lines = append(lines, v.styles.Muted.Render("  "+strings.Join(t.Headers, " | ")))
		for _, row := range t.Rows {
			lines = append(lines, v.styles.Normal.Render("  "+strings.Join(row, " | ")))
		}
		lines = append(lines, "")
	}

	if len(rc.Dos) > 0 {
		lines = append(lines, v.styles.Subtitle.Render("Do"))
		for _, d := range rc.Dos {
			lines = append(lines, v.styles.Allowed.Render("  + ")+v.styles.Normal.Render(d))
		}
		lines = append(lines, "")
	}

	if len(rc.Donts) > 0 {
		lines = append(lines, v.styles.Subtitle.Render("Don't"))
		for _, d := range rc.Donts {
			lines = append(lines, v.styles.NotAllowed.Render("  x ")+v.styles.Normal.Render(d))
		}
		lines = append(lines, "")
	}

	for _, faq := range rc.FAQs {
		lines = append(lines, v.styles.Subtitle.Render("Q: "+faq.Question))
		lines = append(lines, v.styles.Normal.Render("  "+faq.Answer), "")
	}

	if len(rc.Tips) > 0 {
		lines = append(lines, v.styles.Subtitle.Render("Tips"))
		for _, tip := range rc.Tips {
			lines = append(lines, v.styles.Normal.Render("  - "+tip))
		}
		lines = append(lines, "")
	}

	if rc.VerifiedOn != "" {
		lines = append(lines, v.styles.Muted.Render("Verified on: "+rc.VerifiedOn), "")
	}

	return lines
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
