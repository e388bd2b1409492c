package cli

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1)
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	styleLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleValue   = lipgloss.NewStyle().Bold(true)
	styleGood    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleBad     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleSystem  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	styleUser    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleAstro   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	styleTable   = lipgloss.NewStyle().Padding(0, 1)
)
