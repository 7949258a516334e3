package cmd

import (
	"charm.land/lipgloss/v2"
)

// Output styles shared by the commands.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	styleCorrect = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22C55E"))

	styleWrong = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F43F5E"))

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	styleHighlight = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#14B8A6"))
)
