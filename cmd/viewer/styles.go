package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rxtech-lab/argo-kline/internal/theme"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for help text.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true)
)

// ColorStyle renders text in a packed ARGB color.
func ColorStyle(argb uint32) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Color(argb).Hex()))
}
