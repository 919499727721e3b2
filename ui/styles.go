package ui

import "github.com/charmbracelet/lipgloss"

const (
	cpuFillColor = "2" // green
	memFillColor = "6" // cyan
)

// Styles split for readability
var (
	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	surfaceStyle = lipgloss.NewStyle().Margin(1)

	cpuLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cpuFillColor))

	memLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(memFillColor))

	listTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("cyan"))
)
