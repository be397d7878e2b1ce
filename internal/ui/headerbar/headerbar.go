// Package headerbar renders the target strip shown in the chrome
// header: every available playback target, with the selected one
// highlighted.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lmercier/resound/internal/remote"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	availableStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	unavailableStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render returns the target strip centered in the given width, or ""
// when there is nothing useful to show.
func Render(targets []remote.Target, selectedID string, width int) string {
	if width < 20 || len(targets) == 0 {
		return ""
	}

	parts := make([]string, 0, len(targets))
	separator := separatorStyle.Render(" │ ")

	for _, t := range targets {
		style := availableStyle
		switch {
		case t.ID == selectedID:
			style = selectedStyle
		case !t.Available:
			style = unavailableStyle
		}
		parts = append(parts, style.Render(t.Name))
	}

	content := strings.Join(parts, separator)

	// Too many targets for the row: hide the strip rather than clip it.
	if lipgloss.Width(content) > width {
		return ""
	}

	if pad := (width - lipgloss.Width(content)) / 2; pad > 0 {
		content = strings.Repeat(" ", pad) + content
	}
	return content
}
