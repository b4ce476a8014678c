package main

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("36")  // Teal - titles
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - origin cells
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
	colorRed    = lipgloss.Color("167") // Soft red - overlap
)

var (
	// StyleTitle for scenario headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for labels and secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleFrame   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	styleOrigin  = lipgloss.NewStyle().Foreground(colorGray)
	styleOverlay = lipgloss.NewStyle().Foreground(colorCyan)
	styleOverlap = lipgloss.NewStyle().Foreground(colorRed)
	styleEmpty   = lipgloss.NewStyle().Foreground(colorDim)
)
