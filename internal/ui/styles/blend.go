package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Blend interpolates between two colors in HCL color space.
// t=0 returns from, t=1 returns to. Used to cross-fade the chrome
// background toward an artwork-derived color during morphs.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))
	return lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
}

// Alpha fades a foreground color toward the given background.
// opacity=1 leaves the color untouched, opacity=0 disappears into bg.
func Alpha(fg, bg lipgloss.Color, opacity float64) lipgloss.Color {
	return Blend(bg, fg, opacity)
}
