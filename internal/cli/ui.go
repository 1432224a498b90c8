package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan = lipgloss.Color("36")  // Teal - headings
	colorGray = lipgloss.Color("245") // Gray - borders
	colorRed  = lipgloss.Color("167") // Soft red - overflow
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell     = lipgloss.NewStyle().Padding(0, 1)
	styleNumber   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	styleBorder   = lipgloss.NewStyle().Foreground(colorGray)
	styleOverflow = lipgloss.NewStyle().Padding(0, 1).Foreground(colorRed)
)
