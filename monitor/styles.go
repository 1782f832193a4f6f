package monitor

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	axis    lipgloss.Style
	rest    lipgloss.Style
	pressed lipgloss.Style
	err     lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
		axis:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		rest:    lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		pressed: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(0)).Background(lipgloss.ANSIColor(3)),
		err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}
