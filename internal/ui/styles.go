package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/jadual/internal/schedule"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	dayStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Padding(0, 1).
			MarginRight(1)
	daySelectedStyle = dayStyle.
				Background(lipgloss.Color("33")).
				Foreground(lipgloss.Color("231")).
				Bold(true)
	dayWithTasksStyle = dayStyle.
				Background(lipgloss.Color("250")).
				Foreground(lipgloss.Color("16"))
	dayEmptyStyle = dayStyle.
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("245"))

	cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Padding(0, 1).
			MarginBottom(1)
	clockRowStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("33")).
			Foreground(lipgloss.Color("231")).
			Padding(0, 1)
)

var tierColors = map[schedule.Tier]lipgloss.Color{
	schedule.TierSuccess: lipgloss.Color("34"),
	schedule.TierDanger:  lipgloss.Color("160"),
	schedule.TierWarning: lipgloss.Color("208"),
	schedule.TierInfo:    lipgloss.Color("33"),
	schedule.TierNeutral: lipgloss.Color("244"),
}

func tierColor(tier schedule.Tier) lipgloss.Color {
	if color, ok := tierColors[tier]; ok {
		return color
	}
	return tierColors[schedule.TierNeutral]
}

func dayCellStyle(cell schedule.DayCell) lipgloss.Style {
	switch {
	case cell.Selected:
		return daySelectedStyle
	case cell.HasTasks:
		return dayWithTasksStyle
	default:
		return dayEmptyStyle
	}
}
