package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lmercier/resound/internal/keymap"
	"github.com/lmercier/resound/internal/ui/render"
)

var (
	helpBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)

	helpSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	helpKeyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	helpDescStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

var helpSections = []struct {
	title   string
	context string
}{
	{"General", "global"},
	{"Playback", "playback"},
	{"Targets", "targets"},
}

// renderHelp returns the centered key binding overlay.
func (m *Model) renderHelp() string {
	var b strings.Builder

	for i, section := range helpSections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(helpSectionStyle.Render(section.title))
		b.WriteString("\n")
		for _, binding := range keymap.ByContext(section.context) {
			keys := strings.Join(binding.Keys, ", ")
			b.WriteString(helpKeyStyle.Render(render.TruncateAndPad(keys, 14)))
			b.WriteString(helpDescStyle.Render(binding.Description))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(helpDescStyle.Render("press any key to close"))

	box := helpBoxStyle.Render(b.String())
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}
