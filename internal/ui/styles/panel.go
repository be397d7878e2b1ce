package styles

import "github.com/charmbracelet/lipgloss"

var borderedPanel = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(T().Border)

// Panel returns the shared rounded-border panel style.
func Panel() lipgloss.Style {
	return borderedPanel
}
