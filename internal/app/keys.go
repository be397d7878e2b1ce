package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmercier/resound/internal/keymap"
)

const seekStep = 5 * time.Second

// handleKey dispatches a key press through the keymap resolver.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}

	key := msg.String()
	if key == " " {
		key = "space"
	}

	// An open queue panel gets first look at list navigation keys.
	if m.QueuePanel.HandleKey(key) {
		return m, nil
	}

	switch m.Keys.Resolve(key) {
	case keymap.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case keymap.ActionHelp:
		m.ShowHelp = true
		return m, nil

	case keymap.ActionToggleExpand:
		m.Expansion.Toggle(now)
		return m, m.startFrames()

	case keymap.ActionCollapse:
		// Esc peels layers: queue panel first, then the surface.
		if m.QueuePanel.IsOpen() {
			m.QueuePanel.Toggle(now)
		} else if m.Expansion.IsExpanded() {
			m.Expansion.Collapse(now)
		}
		return m, m.startFrames()

	case keymap.ActionToggleQueue:
		if !m.Expansion.IsExpanded() {
			// No surface to slide over; nudge instead of opening.
			m.Hint.TriggerBounce(now)
			return m, m.startFrames()
		}
		m.QueuePanel.Toggle(now)
		return m, m.startFrames()

	case keymap.ActionPlayPause:
		m.Service.PlayPause()

	case keymap.ActionStop:
		m.Service.Stop()

	case keymap.ActionNextTrack:
		m.Service.Next()

	case keymap.ActionPrevTrack:
		m.Service.Previous()

	case keymap.ActionSeekForward:
		m.seekBy(seekStep, now)

	case keymap.ActionSeekBack:
		m.seekBy(-seekStep, now)

	case keymap.ActionVolumeUp:
		m.adjustVolume(5)

	case keymap.ActionVolumeDown:
		m.adjustVolume(-5)

	case keymap.ActionCycleRepeat:
		m.Service.CycleRepeat()

	case keymap.ActionToggleShuffle:
		m.Service.ToggleShuffle()

	case keymap.ActionNextTarget:
		return m, m.switchTarget(1, now)

	case keymap.ActionPrevTarget:
		return m, m.switchTarget(-1, now)

	case keymap.ActionDismissHints:
		m.Hint.StopHints()
		if err := m.StateMgr.SetOnboardingCompleted(true); err != nil {
			m.reportError("save settings", err)
			return m, ClearErrorCmd()
		}
	}

	return m, nil
}

// seekBy issues an optimistic seek: the displayed position jumps
// immediately and the server report reconciles it later.
func (m *Model) seekBy(delta time.Duration, now time.Time) {
	target := m.Service.SelectedTarget()
	track := m.Service.CurrentTrack()
	if target == nil || track == nil {
		return
	}

	pos := m.displayedPosition(now) + delta
	if pos < 0 {
		pos = 0
	}
	if track.Duration > 0 && pos > track.Duration {
		pos = track.Duration
	}

	m.Service.Seek(target.ID, pos)
	m.position = pos
	m.positionAt = now
}

func (m *Model) adjustVolume(delta int) {
	v := m.Service.Volume() + delta
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	m.Service.SetVolume(v)
}
