package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Box         lipgloss.Style
	IntroBox    lipgloss.Style
	BoxTitle    lipgloss.Style
	Tab         lipgloss.Style
	TabSelected lipgloss.Style
	TabDivider  lipgloss.Style
	Match       lipgloss.Style
	Help        lipgloss.Style
	Preview     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		IntroBox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		BoxTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Tab:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TabSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // yellow
		TabDivider:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Match:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Italic(true), // yellow
		Help:        lipgloss.NewStyle().Faint(true),
		Preview:     lipgloss.NewStyle().Padding(0, 2),
	}
}
