package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	primary = lipgloss.Color("#8B5CF6") // Purple
	success = lipgloss.Color("#22C55E") // Green
	failure = lipgloss.Color("#F43F5E") // Rose
	text    = lipgloss.Color("#F8FAFC") // White
	textDim = lipgloss.Color("#94A3B8") // Slate
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(primary)
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(text)
	optionStyle   = lipgloss.NewStyle().Foreground(text)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)
	correctStyle  = lipgloss.NewStyle().Bold(true).Foreground(success)
	wrongStyle    = lipgloss.NewStyle().Bold(true).Foreground(failure)
	dimStyle      = lipgloss.NewStyle().Foreground(textDim)
	hintStyle     = lipgloss.NewStyle().Foreground(textDim).Italic(true)
)
