package queuepanel

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lmercier/resound/internal/remote"
	"github.com/lmercier/resound/internal/ui/render"
)

// XOffset returns the column where the panel's left edge sits for the
// current slide progress, given the full view width. The panel slides
// in from the trailing edge.
func (m *Model) XOffset(totalWidth int) int {
	visible := int(math.Round(m.Progress() * float64(Width)))
	return totalWidth - visible
}

// View renders the panel at its full width. The caller clips it against
// the trailing edge using the offset from XOffset.
func (m *Model) View() string {
	inner := Width - 2 // border columns
	rows := m.height - 2
	if rows < 3 || inner < 8 {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(render.TruncateAndPad("Queue", inner)))
	b.WriteString("\n")

	listRows := rows - 2 // header + footer
	start, end := m.cur.VisibleRange(len(m.tracks), listRows)
	for row := 0; row < listRows; row++ {
		i := start + row
		if i >= end {
			b.WriteString(render.EmptyLine(inner))
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.renderTrack(m.tracks[i], inner, i == m.cur.Pos()))
		b.WriteString("\n")
	}

	b.WriteString(dimmedStyle.Render(render.TruncateAndPad(m.footer(), inner)))

	return panelStyle.Width(inner).Render(b.String())
}

func (m *Model) renderTrack(t remote.Track, width int, selected bool) string {
	marker := "  "
	style := trackStyle
	if t.ID != "" && t.ID == m.currentTrackID {
		marker = playingSymbol + " "
		style = playingStyle
	}
	if selected {
		style = style.Background(cursorBg)
	}

	dur := formatDuration(t.Duration)
	title := render.Sanitize(t.Title)
	if t.Artist != "" {
		title = render.Sanitize(t.Artist) + " - " + title
	}

	titleWidth := width - len(marker) - len(dur) - 1
	if titleWidth < 1 {
		titleWidth = 1
	}
	line := marker + render.TruncateAndPadEllipsis(title, titleWidth) + " " + dur
	return style.Render(render.TruncateAndPad(line, width))
}

func (m *Model) footer() string {
	if m.updatedAt.IsZero() {
		return "loading…"
	}
	return fmt.Sprintf("%d tracks · updated %s", len(m.tracks), humanize.Time(m.updatedAt))
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
