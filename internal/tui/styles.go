package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/steviee/go-mc-profiles/internal/profiles"
)

var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#00ADD8")).
			Padding(0, 1)

	// Table header styles
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				Foreground(lipgloss.Color("#FFFFFF"))

	// Selected row style
	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#FFA500")).
				Foreground(lipgloss.Color("#000000"))

	// Profile type styles
	forgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF00"))

	customStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

// getProfileStyle returns the row colour for a profile
func getProfileStyle(p profiles.Profile) lipgloss.Style {
	switch {
	case p.ID == profiles.ForgeProfileID:
		return forgeStyle
	case p.Type == profiles.CustomProfileType:
		return customStyle
	default:
		return lipgloss.NewStyle()
	}
}

// getProfileIndicator returns the marker shown before a profile name
func getProfileIndicator(p profiles.Profile) string {
	switch {
	case p.ID == profiles.ForgeProfileID:
		return "⚒"
	case p.Type == profiles.CustomProfileType:
		return "●"
	default:
		return "○"
	}
}
