package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles for everything drawn around the playfield.
// The playfield itself carries its own truecolor escapes.
type Theme struct {
	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style

	// Help footer and notices
	Help    lipgloss.Style
	Notice  lipgloss.Style
	Warning lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
