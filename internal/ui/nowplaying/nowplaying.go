// Package nowplaying renders the expanded player surface: artwork
// block, track header, seek bar and transport controls. All placement
// comes from the expansion geometry so the surface tracks the morph
// frame by frame.
package nowplaying

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lmercier/resound/internal/artwork"
	"github.com/lmercier/resound/internal/icons"
	"github.com/lmercier/resound/internal/remote"
	"github.com/lmercier/resound/internal/ui/expansion"
	"github.com/lmercier/resound/internal/ui/overlay"
	"github.com/lmercier/resound/internal/ui/render"
	"github.com/lmercier/resound/internal/ui/styles"
)

// State holds everything needed to render the expanded surface.
type State struct {
	Track       *remote.Track
	TargetName  string
	PlayerState remote.PlayerState

	// Position is the displayed position, which may be an optimistic
	// seek value awaiting server reconciliation.
	Position time.Duration
	Duration time.Duration

	Volume float64
	Mode   remote.Mode

	// Scheme is the artwork-derived color scheme, nil before extraction.
	Scheme *artwork.Scheme
}

// Render draws the surface for the given morph geometry and width.
// The returned block is geom.SurfaceRows tall. Layers are composited
// bottom-up so the header and controls sit over the artwork field.
func Render(s State, geom expansion.Geometry, width int) string {
	rows := int(math.Round(geom.SurfaceRows))
	if rows < 1 || width < 20 {
		return ""
	}

	out := blank(rows, width)
	out = overlay.Compose(out, artLayer(s, geom, rows, width), width, rows)
	out = overlay.Compose(out, headerLayer(s, geom, rows, width), width, rows)
	out = overlay.Compose(out, controlsLayer(s, geom, rows, width), width, rows)
	return out
}

// artLayer fills the artwork rectangle with the scheme background, or
// a neutral placeholder before extraction finishes.
func artLayer(s State, geom expansion.Geometry, rows, width int) string {
	cols := int(math.Round(geom.ArtCols))
	artRows := int(math.Round(geom.ArtRows))
	left := int(math.Round(geom.ArtLeft))
	top := int(math.Round(geom.ArtTop))

	lines := make([]string, rows)
	if cols < 1 || artRows < 1 {
		return strings.Join(lines, "\n")
	}

	color := lipgloss.Color("238")
	if s.Scheme != nil {
		color = lipgloss.Color(s.Scheme.Background.Hex())
	}
	block := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", min(cols, width-left)))

	for r := top; r < top+artRows && r < rows; r++ {
		if r >= 0 {
			lines[r] = pad(left) + block
		}
	}
	return strings.Join(lines, "\n")
}

// headerLayer places target name and track title at the morphing title
// position. Title weight interpolates from the mini bar's regular text
// to the expanded bold header.
func headerLayer(s State, geom expansion.Geometry, rows, width int) string {
	left := int(math.Round(geom.TitleLeft))
	top := int(math.Round(geom.TitleTop))

	lines := make([]string, rows)
	avail := width - left - 1
	if top < 0 || top >= rows || avail < 4 {
		return strings.Join(lines, "\n")
	}

	if geom.HeaderOpacity > 0 && top-1 >= 0 {
		target := render.TruncateEllipsis(icons.Device()+" "+render.Sanitize(s.TargetName), avail)
		lines[top-1] = pad(left) + fadeStyle(lipgloss.Color("245"), geom.HeaderOpacity).Render(target)
	}

	title := "nothing playing"
	if s.Track != nil {
		title = render.Sanitize(s.Track.Title)
	}
	title = render.TruncateEllipsis(title, avail)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(geom.TitleWeight > 0.5)
	lines[top] = pad(left) + titleStyle.Render(title)

	if s.Track != nil && s.Track.Artist != "" && top+1 < rows {
		artist := render.TruncateEllipsis(render.Sanitize(s.Track.Artist), avail)
		lines[top+1] = pad(left) + lipgloss.NewStyle().Foreground(lipgloss.Color("248")).Render(artist)
	}
	return strings.Join(lines, "\n")
}

// controlsLayer renders the seek bar, transport row and volume at the
// bottom of the surface, faded by the controls opacity so they resolve
// in during the morph instead of popping.
func controlsLayer(s State, geom expansion.Geometry, rows, width int) string {
	lines := make([]string, rows)
	if geom.ControlsOpacity <= 0 || rows < 5 {
		return strings.Join(lines, "\n")
	}

	inner := width - 4
	fg := fadeStyle(lipgloss.Color("252"), geom.ControlsOpacity)
	dim := fadeStyle(lipgloss.Color("245"), geom.ControlsOpacity)

	seek := seekBar(s.Position, s.Duration, inner)
	lines[rows-3] = pad(2) + fg.Render(seek)

	transport := transportRow(s)
	lines[rows-2] = pad(max((width-render.Width(transport))/2, 0)) + fg.Render(transport)

	vol := fmt.Sprintf("%s %3d%%", icons.Volume(), int(math.Round(s.Volume*100)))
	lines[rows-1] = pad(max(width-render.Width(vol)-2, 0)) + dim.Render(vol)

	return strings.Join(lines, "\n")
}

func transportRow(s State) string {
	playPause := icons.Play()
	if s.PlayerState == remote.StatePlaying {
		playPause = icons.Pause()
	}

	shuffle := "·"
	if s.Mode.Shuffle {
		shuffle = icons.Shuffle()
	}

	repeat := "·"
	switch s.Mode.Repeat {
	case remote.RepeatAll:
		repeat = icons.RepeatAll()
	case remote.RepeatOne:
		repeat = icons.RepeatOne()
	}

	return strings.Join([]string{shuffle, "⏮", playPause, "⏭", repeat}, "   ")
}

// seekBar renders "1:23  ━━━━─────  4:56" sized to width.
func seekBar(position, duration time.Duration, width int) string {
	pos := formatDuration(position)
	dur := formatDuration(duration)

	barWidth := width - render.Width(pos) - render.Width(dur) - 4
	if barWidth < 5 {
		return pos + " / " + dur
	}

	var ratio float64
	if duration > 0 {
		ratio = math.Min(float64(position)/float64(duration), 1)
	}
	filled := int(float64(barWidth) * ratio)
	bar := strings.Repeat("━", filled) + strings.Repeat("─", barWidth-filled)

	return pos + "  " + bar + "  " + dur
}

func blank(rows, width int) string {
	line := render.EmptyLine(width)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func fadeStyle(fg lipgloss.Color, opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.Alpha(fg, styles.T().BgBase, opacity))
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, sec)
}
