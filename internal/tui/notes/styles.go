package notes

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF9E64")).
			Bold(true).
			Padding(0, 1)

	statusBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#FF9E64", Dark: "#FF9E64"})

	statusStyle = statusBannerStyle.Render

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF9E64")).
				Background(lipgloss.Color("#2A2A3C"))

	listStyle = lipgloss.NewStyle().
			MarginRight(1)

	paneStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#334455"))

	focusedPaneStyle = paneStyle.Copy().
				BorderForeground(lipgloss.Color("#FF9E64"))

	textPromptStyle = paneStyle.Copy()

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	findLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7AA2F7")).
			Bold(true)

	findCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ECE6A"))
)
