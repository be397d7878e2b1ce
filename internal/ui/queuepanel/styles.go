package queuepanel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lmercier/resound/internal/ui/styles"
)

const (
	playingSymbol = "▶" // ▶
)

var (
	cursorBg = styles.T().BgCursor

	panelStyle = styles.Panel()

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	trackStyle = styles.T().S().Base

	playingStyle = styles.T().S().Accent

	dimmedStyle = styles.T().S().Subtle
)
