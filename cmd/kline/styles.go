package main

import "github.com/charmbracelet/lipgloss"

// Style definitions.
var (
	// LabelStyle for row titles.
	LabelStyle = lipgloss.NewStyle().Faint(true)

	// BoxStyle frames a tooltip.
	BoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true)
)
