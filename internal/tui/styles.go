package tui

import (
	"github.com/charmbracelet/lipgloss"

	"levelmap/internal/session"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)

	aboveStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(session.ColorAbove))
	withinStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(session.ColorWithin))
	belowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(session.ColorBelow))
	referenceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(session.ColorReference))
)

// map overlay colours
const (
	annotationCol = "#E5E7EB"
	rubberBandCol = "#7C3AED"
	selectionCol  = "#FFFFFF"
	hoverCol      = "#FFA500"
	frameCol      = "#243141"
)
