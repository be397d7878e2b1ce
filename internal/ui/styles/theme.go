package styles

import "github.com/charmbracelet/lipgloss"

// Theme is resound's palette: a blue accent over a dark neutral base.
// The expanded surface blends BgBase toward the artwork scheme, so
// everything here is the "no artwork" resting state.
type Theme struct {
	Primary   lipgloss.Color // accent: selected target, playing marker
	Secondary lipgloss.Color // gradient tail for the brand mark

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	Border lipgloss.Color

	Error lipgloss.Color

	styles *Styles
}

// Styles are the pre-built lipgloss styles derived from the palette.
type Styles struct {
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style
	Title  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#bb9af7"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:   lipgloss.Color("#1a1a1a"),
	BgCursor: lipgloss.Color("#303030"),

	Border: lipgloss.Color("#585858"),

	Error: lipgloss.Color("#ff5555"),
}

// T returns the active theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		base := lipgloss.NewStyle().Foreground(t.FgBase)
		t.styles = &Styles{
			Base:   base,
			Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
			Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
			Title:  base.Bold(true),
			Accent: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
			Error:  lipgloss.NewStyle().Foreground(t.Error),
		}
	}
	return t.styles
}
