// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yourtravelguide/tripcheck-cli/internal/core/domain"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Allowed colours the "allowed" verdict.
	Allowed lipgloss.Color

	// Limited colours the "limited" verdict.
	Limited lipgloss.Color

	// NotAllowed colours the "not_allowed" verdict.
	NotAllowed lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#F59E0B"), // Amber
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Allowed:    lipgloss.Color("#A6E3A1"), // Green
		Limited:    lipgloss.Color("#F9E2AF"), // Yellow
		NotAllowed: lipgloss.Color("#F38BA8"), // Red
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Allowed style for the "allowed" verdict badge.
	Allowed lipgloss.Style

	// Limited style for the "limited" verdict badge.
	Limited lipgloss.Style

	// NotAllowed style for the "not_allowed" verdict badge.
	NotAllowed lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Allowed: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Allowed),

		Limited: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Limited),

		NotAllowed: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.NotAllowed),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// VerdictStyle returns the badge style for a verdict status.
func (s *Styles) VerdictStyle(status domain.VerdictStatus) lipgloss.Style {
	switch status {
	case domain.VerdictAllowed:
		return s.Allowed
	case domain.VerdictNotAllowed:
		return s.NotAllowed
	case domain.VerdictLimited:
		return s.Limited
	default:
		return s.Muted
	}
}

// VerdictBadge renders the short badge text for a verdict status.
func VerdictBadge(status domain.VerdictStatus) string {
	switch status {
	case domain.VerdictAllowed:
		return "ALLOWED"
	case domain.VerdictNotAllowed:
		return "NOT ALLOWED"
	case domain.VerdictLimited:
		return "LIMITED"
	default:
		return string(status)
	}
}
