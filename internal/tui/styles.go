package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorText    = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorMuted)

	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorPrimary).
			Bold(true).
			Underline(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(1, 2)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	VerdictOKStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	VerdictFailStyle = lipgloss.NewStyle().
				Foreground(colorError)

	ToggleActiveStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	ToggleInactiveStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	LogTextStyle = lipgloss.NewStyle().
			Foreground(colorText)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// RenderKeyHint renders one keyboard shortcut for the help bar.
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderToggle renders an on/off option label.
func RenderToggle(name string, active bool) string {
	if active {
		return ToggleActiveStyle.Render(name)
	}
	return ToggleInactiveStyle.Render(name)
}
