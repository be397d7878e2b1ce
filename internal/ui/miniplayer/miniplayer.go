// Package miniplayer renders the collapsed player bar. During a swipe
// gesture the current and peek content layers are displaced horizontally
// by the gesture offset, so the bar previews the adjacent target sliding
// in from the edge the user is dragging toward.
package miniplayer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/lmercier/resound/internal/icons"
	"github.com/lmercier/resound/internal/remote"
	"github.com/lmercier/resound/internal/ui/render"
)

// layerGap is the horizontal spacing in cells between the outgoing
// current layer and the incoming peek layer.
const layerGap = 6

// State holds everything needed to render the collapsed bar.
type State struct {
	Track       *remote.Track
	TargetName  string
	PlayerState remote.PlayerState
	Position    time.Duration
	Duration    time.Duration
	Connected   bool

	// Offset is the swipe displacement in [-1,1], fractions of the bar
	// width. Negative slides the current layer toward the leading edge.
	Offset float64
	// BounceOffset is an additional displacement in cells from the
	// bounce controller.
	BounceOffset float64
	// Opacity fades the bar out as the player expands.
	Opacity float64

	PeekTarget *remote.Target
	PeekTrack  *remote.Track
}

// Height returns the bar height including borders.
func Height() int {
	return 3
}

// Render returns the collapsed bar for the given width, or the empty
// string when the bar is fully faded out.
func Render(s State, width int) string {
	if s.Opacity <= 0 {
		return ""
	}

	inner := max(width-4, 0) // borders + padding
	if inner < 10 {
		return ""
	}

	shift := int(math.Round(s.Offset*float64(inner) + s.BounceOffset))

	var line string
	if shift == 0 && s.PeekTarget == nil {
		line = renderResting(s, inner)
	} else {
		line = renderLayered(s, inner, shift)
	}

	style := barStyle
	if s.Opacity < 1 {
		style = fadedBarStyle(s.Opacity)
	}
	return style.Padding(0, 1).Width(width - 2).Render(line)
}

// renderResting renders the fully styled bar used outside gestures.
func renderResting(s State, inner int) string {
	if !s.Connected {
		return dimStyle.Render(render.TruncateAndPad(icons.Offline()+"  disconnected", inner))
	}
	if s.Track == nil {
		return dimStyle.Render(render.TruncateAndPad(idleText(s.TargetName), inner))
	}

	status := statusSymbol(s.PlayerState)
	timeStr := fmt.Sprintf("%s / %s", formatDuration(s.Position), formatDuration(s.Duration))

	title := render.Sanitize(s.Track.Title)
	if s.Track.Artist != "" {
		title = title + "  ·  " + render.Sanitize(s.Track.Artist)
	}

	fixed := render.Width(status) + 2 + render.Width(timeStr) + 3
	titleWidth := max(inner-fixed, 8)

	var b strings.Builder
	b.WriteString(status)
	b.WriteString("  ")
	b.WriteString(titleStyle.Render(render.TruncateAndPadEllipsis(title, titleWidth)))
	b.WriteString("   ")
	b.WriteString(timeStyle.Render(timeStr))
	return render.TruncateAndPad(b.String(), inner)
}

// renderLayered renders the displaced current layer plus the incoming
// peek layer on a blank canvas. Layers are plain text so they can be
// windowed at cell granularity.
func renderLayered(s State, inner, shift int) string {
	canvas := newCanvas(inner)
	canvas.place(currentLayerText(s), shift)

	if s.PeekTarget != nil {
		peek := peekLayerText(s)
		if shift < 0 {
			canvas.place(peek, inner+shift+layerGap)
		} else {
			canvas.place(peek, shift-layerGap-render.Width(peek))
		}
	}

	return contentStyle.Render(canvas.String())
}

func currentLayerText(s State) string {
	if s.Track == nil {
		return idleText(s.TargetName)
	}
	text := statusSymbol(s.PlayerState) + "  " + render.Sanitize(s.Track.Title)
	if s.Track.Artist != "" {
		text += "  ·  " + render.Sanitize(s.Track.Artist)
	}
	return text
}

// peekLayerText previews the adjacent target: its cached track when one
// is known, otherwise the device glyph and target name.
func peekLayerText(s State) string {
	if s.PeekTrack != nil {
		text := render.Sanitize(s.PeekTrack.Title)
		if s.PeekTrack.Artist != "" {
			text += "  ·  " + render.Sanitize(s.PeekTrack.Artist)
		}
		return text
	}
	return icons.Device() + "  " + render.Sanitize(s.PeekTarget.Name)
}

func idleText(targetName string) string {
	if targetName == "" {
		return "no target selected"
	}
	return icons.Device() + "  " + render.Sanitize(targetName) + "  ·  idle"
}

func statusSymbol(state remote.PlayerState) string {
	switch state {
	case remote.StatePlaying:
		return icons.Play()
	case remote.StatePaused:
		return icons.Pause()
	default:
		return icons.Stop()
	}
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, sec)
}
