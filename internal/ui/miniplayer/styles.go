package miniplayer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lmercier/resound/internal/ui/styles"
)

var (
	barStyle = styles.Panel()

	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	timeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	contentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// fadedBarStyle dims the bar border toward the background as the
// expanded surface takes over.
func fadedBarStyle(opacity float64) lipgloss.Style {
	border := styles.Alpha(styles.T().Border, styles.T().BgBase, opacity)
	return styles.Panel().BorderForeground(border)
}
