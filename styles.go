package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorError = lipgloss.Color("#EF4444") // Red
	colorOK    = lipgloss.Color("#10B981") // Emerald
	colorMuted = lipgloss.Color("#6B7280") // Gray
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(colorOK).
		Bold(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
