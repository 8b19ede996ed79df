package tui

import "github.com/charmbracelet/lipgloss"

// Lipgloss styles shared by the review screens and the card listing.
var (
	// Header banner across the top of the review screen.
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("160")).
			Bold(true).
			Padding(0, 1)

	// The marker tag shown before a card title.
	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// Dim style for prompts, units and secondary info.
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)
