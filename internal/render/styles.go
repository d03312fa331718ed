package render

import "github.com/charmbracelet/lipgloss"

// Shared color palette.
var (
	ColorHeader = lipgloss.Color("39")  // blue
	ColorLabel  = lipgloss.Color("245") // gray
	ColorValue  = lipgloss.Color("252") // near-white
	ColorActive = lipgloss.Color("205") // pink
	ColorMuted  = lipgloss.Color("240") // dark gray
)

// Shared styles for CLI and TUI output.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	ActiveStyle = lipgloss.NewStyle().Foreground(ColorActive).Bold(true)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)
