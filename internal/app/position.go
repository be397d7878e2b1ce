package app

import (
	"time"

	"github.com/lmercier/resound/internal/remote"
)

// displayedPosition dead-reckons playback position between server
// reports: while playing, the last known position advances with wall
// time, clamped to the track length.
func (m *Model) displayedPosition(now time.Time) time.Duration {
	target := m.Service.SelectedTarget()
	if target == nil || target.State != remote.StatePlaying {
		return m.position
	}

	pos := m.position + now.Sub(m.positionAt)
	if track := m.Service.CurrentTrack(); track != nil && track.Duration > 0 && pos > track.Duration {
		pos = track.Duration
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}
