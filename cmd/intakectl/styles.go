package main

import "github.com/charmbracelet/lipgloss"

// idColumnWidth fits the longest question id plus a gap
const idColumnWidth = 22

// Color palette
var (
	colorSuccess = lipgloss.Color("#00D787")
	colorError   = lipgloss.Color("#FF5F87")
	colorWarning = lipgloss.Color("#FFAF00")
	colorInfo    = lipgloss.Color("#5FAFFF")
	colorMuted   = lipgloss.Color("#888888")
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleTitle   = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)
	styleColumn  = lipgloss.NewStyle().Width(idColumnWidth)
	styleBox     = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorInfo).
			Padding(0, 1)
)
