package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lmercier/resound/internal/icons"
	"github.com/lmercier/resound/internal/remote"
	"github.com/lmercier/resound/internal/ui/expansion"
	"github.com/lmercier/resound/internal/ui/headerbar"
	"github.com/lmercier/resound/internal/ui/miniplayer"
	"github.com/lmercier/resound/internal/ui/nowplaying"
	"github.com/lmercier/resound/internal/ui/overlay"
	"github.com/lmercier/resound/internal/ui/render"
	"github.com/lmercier/resound/internal/ui/styles"
)

var (
	chromeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	brand       = styles.ApplyBoldGradient("resound", styles.T().Primary, styles.T().Secondary)
)

// View renders the layered frame: chrome, player surface (mini bar or
// morphing expanded surface), queue panel and help overlay.
func (m *Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	now := time.Now()
	geom := expansion.Compute(m.Width, m.Height, m.Expansion.Progress())

	out := m.renderChrome(geom)

	if geom.SurfaceRows > float64(miniplayer.Height()) {
		surface := nowplaying.Render(m.nowPlayingState(now), geom, m.Width)
		out = overlay.Compose(out, padTop(surface, m.Height-lineCount(surface)), m.Width, m.Height)
	}

	if bar := miniplayer.Render(m.miniState(now), m.Width); bar != "" {
		out = overlay.Compose(out, padTop(bar, m.Height-miniplayer.Height()), m.Width, m.Height)
	}

	if m.QueuePanel.Progress() > 0 {
		panel := m.QueuePanel.View()
		if panel != "" {
			placed := indent(panel, m.QueuePanel.XOffset(m.Width))
			out = overlay.Compose(out, padTop(placed, 2), m.Width, m.Height)
		}
	}

	if m.ShowHelp {
		out = overlay.Compose(out, m.renderHelp(), m.Width, m.Height)
	}

	return out
}

// ExpandedBackgroundColor is the color outer chrome (tab bars, headers)
// should blend toward while the player is expanded.
func (m *Model) ExpandedBackgroundColor() lipgloss.Color {
	base := styles.T().BgBase
	if m.schemes == nil {
		return base
	}
	target := lipgloss.Color(m.schemes.Dark.Background.Hex())
	return styles.Blend(base, target, m.Expansion.Progress())
}

// renderChrome draws the always-present base: a status header and a
// blank field the player surface sits on.
func (m *Model) renderChrome(geom expansion.Geometry) string {
	status := m.connectionStatus()
	if m.ErrorMsg != "" {
		status = styles.T().S().Error.Render(render.TruncateEllipsis(m.ErrorMsg, m.Width/2))
	}
	header := render.Row(brand, status, m.Width-2)
	headerLine := chromeStyle.Render(" " + header + " ")

	selectedID := ""
	if t := m.Service.SelectedTarget(); t != nil {
		selectedID = t.ID
	}
	if strip := headerbar.Render(m.Service.AvailableTargets(), selectedID, m.Width); strip != "" {
		headerLine = overlay.Compose(headerLine, strip, m.Width, headerbar.Height)
	}

	lines := make([]string, m.Height)
	lines[0] = headerLine
	blank := render.EmptyLine(m.Width)
	for i := 1; i < m.Height; i++ {
		lines[i] = blank
	}

	// Fade the header away as the surface takes the whole screen.
	if geom.SurfaceRows >= float64(m.Height)-1 {
		lines[0] = blank
	}

	return strings.Join(lines, "\n")
}

func (m *Model) connectionStatus() string {
	if !m.Service.Connected() {
		return icons.Offline() + " offline"
	}
	if target := m.Service.SelectedTarget(); target != nil {
		return icons.Device() + " " + render.Sanitize(target.Name)
	}
	return "no target"
}

// miniState assembles the collapsed bar's render state from the service
// snapshot and the gesture controllers.
func (m *Model) miniState(now time.Time) miniplayer.State {
	geom := expansion.Compute(m.Width, m.Height, m.Expansion.Progress())

	s := miniplayer.State{
		Track:        m.Service.CurrentTrack(),
		PlayerState:  remote.StateIdle,
		Position:     m.displayedPosition(now),
		Connected:    m.Service.Connected(),
		Offset:       m.Swipe.Offset(),
		BounceOffset: -m.Hint.Offset(),
		Opacity:      geom.MiniOpacity,
	}
	if track := m.Service.CurrentTrack(); track != nil {
		s.Duration = track.Duration
	}
	if target := m.Service.SelectedTarget(); target != nil {
		s.TargetName = target.Name
		s.PlayerState = target.State
	}
	s.PeekTarget, s.PeekTrack = m.Swipe.Peek()
	return s
}

func (m *Model) nowPlayingState(now time.Time) nowplaying.State {
	s := nowplaying.State{
		Track:       m.Service.CurrentTrack(),
		PlayerState: remote.StateIdle,
		Position:    m.displayedPosition(now),
		Volume:      float64(m.Service.Volume()) / 100,
		Mode:        m.Service.Mode(),
	}
	if s.Track != nil {
		s.Duration = s.Track.Duration
	}
	if target := m.Service.SelectedTarget(); target != nil {
		s.TargetName = target.Name
		s.PlayerState = target.State
	}
	if m.schemes != nil {
		s.Scheme = &m.schemes.Dark
	}
	return s
}

// padTop prepends empty lines so a block lands at the given row when
// composed over the base.
func padTop(block string, rows int) string {
	if rows <= 0 {
		return block
	}
	return strings.Repeat("\n", rows) + block
}

// indent shifts every line right by n columns.
func indent(block string, n int) string {
	if n <= 0 {
		return block
	}
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func lineCount(block string) int {
	if block == "" {
		return 0
	}
	return strings.Count(block, "\n") + 1
}
