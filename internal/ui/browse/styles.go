package browse

import "github.com/charmbracelet/lipgloss"

var (
	titleColor    = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	mutedColor    = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#696969"}
	borderColor   = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	selectedColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	antiColor     = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"}

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(titleColor).PaddingLeft(1)
	filterStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	activeFilter = lipgloss.NewStyle().Bold(true).Foreground(selectedColor).Underline(true)
	helpStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	helpKeyStyle = lipgloss.NewStyle().Foreground(titleColor)
	detailStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Bold(true).Width(12)
	antiStyle  = lipgloss.NewStyle().Foreground(antiColor)
)
