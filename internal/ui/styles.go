package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pthm/polarity/internal/classifier"
)

// Label colors used by the analyzer form
const (
	colorPositive = lipgloss.Color("#4CAF50")
	colorNegative = lipgloss.Color("#f44336")
	colorNeutral  = lipgloss.Color("#FF9800")
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Sentiment styles
	Positive lipgloss.Style
	Negative lipgloss.Style
	Neutral  lipgloss.Style

	// Status styles
	Warning lipgloss.Style
	Success lipgloss.Style

	// Structural styles
	Title         lipgloss.Style
	Header        lipgloss.Style
	Subheader     lipgloss.Style
	Panel         lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Help          lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconWarning string
	IconSuccess string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Positive = lipgloss.NewStyle().Bold(true).Foreground(colorPositive)
		s.Negative = lipgloss.NewStyle().Bold(true).Foreground(colorNegative)
		s.Neutral = lipgloss.NewStyle().Bold(true).Foreground(colorNeutral)

		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green

		s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).MarginBottom(1)
		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Panel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
		s.Button = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("8")).
			Padding(0, 2)
		s.ButtonFocused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(colorPositive).
			Padding(0, 2)
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

		s.IconWarning = "⚠"
		s.IconSuccess = "✓"
	} else {
		// No-op styles for non-TTY (plain text output)
		s.Positive = lipgloss.NewStyle()
		s.Negative = lipgloss.NewStyle()
		s.Neutral = lipgloss.NewStyle()

		s.Warning = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()

		s.Title = lipgloss.NewStyle()
		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Panel = lipgloss.NewStyle()
		s.Button = lipgloss.NewStyle()
		s.ButtonFocused = lipgloss.NewStyle()
		s.Help = lipgloss.NewStyle()

		s.IconWarning = "WARN:"
		s.IconSuccess = "OK:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// ForLabel returns the style for a sentiment label
func (s *Styles) ForLabel(label classifier.Label) lipgloss.Style {
	switch label {
	case classifier.Positive:
		return s.Positive
	case classifier.Negative:
		return s.Negative
	default:
		return s.Neutral
	}
}
