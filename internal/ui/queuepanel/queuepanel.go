// Package queuepanel implements the sliding queue panel shown over the
// expanded player surface. It animates in from the trailing edge on its
// own timeline and keeps the queue fresh while visible.
package queuepanel

import (
	"time"

	"github.com/lmercier/resound/internal/anim"
	"github.com/lmercier/resound/internal/remote"
	"github.com/lmercier/resound/internal/ui/cursor"
)

const (
	slideDuration   = 250 * time.Millisecond
	refreshInterval = 5 * time.Second

	// Width is the panel width in columns, border included.
	Width = 38
)

// Service is the subset of the remote service the panel needs.
type Service interface {
	Queue() []remote.Track
	RefreshQueue()
}

// Model holds the panel's slide timeline and queue snapshot.
type Model struct {
	svc Service

	tl          *anim.Timeline
	cur         cursor.Cursor
	tracks      []remote.Track
	updatedAt   time.Time
	lastRefresh time.Time

	currentTrackID string
	height         int
}

func New(svc Service) *Model {
	return &Model{
		svc: svc,
		tl:  anim.NewTimeline(0),
		cur: cursor.New(2),
	}
}

// SetHeight sets the vertical space available to the panel.
func (m *Model) SetHeight(h int) {
	m.height = h
}

// Toggle opens or closes the panel. Ignored while a slide is already
// running so rapid toggles cannot desync the timeline from the intent.
func (m *Model) Toggle(now time.Time) {
	if m.tl.Animating() {
		return
	}
	if m.tl.Value() > 0.5 {
		m.tl.AnimateTo(0, slideDuration, anim.EaseInCubic, now)
		return
	}
	m.tl.AnimateTo(1, slideDuration, anim.EaseOutCubic, now)
	m.refresh(now)
}

// IsOpen reports whether the panel is logically open. Mid-slide, the
// state the panel is heading toward counts.
func (m *Model) IsOpen() bool {
	if m.tl.Animating() {
		return m.tl.Target() > 0.5
	}
	return m.tl.Value() > 0.5
}

// Progress returns the slide progress in [0,1].
func (m *Model) Progress() float64 {
	return m.tl.Value()
}

// Animating reports whether the slide timeline is running.
func (m *Model) Animating() bool {
	return m.tl.Animating()
}

// Reset snaps the panel shut without animation. Called when the player
// collapses underneath it.
func (m *Model) Reset() {
	m.tl.Set(0)
	m.cur.Reset()
}

// HandleKey routes list navigation keys to the panel while it is open.
// Returns true when the key was consumed.
func (m *Model) HandleKey(key string) bool {
	if !m.IsOpen() {
		return false
	}
	return m.cur.HandleKey(key, len(m.tracks), m.listRows())
}

// Advance steps the slide timeline and, while the panel is fully open,
// refreshes the queue on an interval. Returns true while animating.
func (m *Model) Advance(now time.Time) bool {
	animating := m.tl.Advance(now)
	if !animating && m.tl.Value() >= 1 && now.Sub(m.lastRefresh) >= refreshInterval {
		m.refresh(now)
	}
	return animating
}

// SetTracks replaces the queue snapshot, typically in response to a
// queue change event from the remote service.
func (m *Model) SetTracks(tracks []remote.Track, now time.Time) {
	m.tracks = tracks
	m.updatedAt = now
	m.cur.ClampToBounds(len(tracks))
}

// SetCurrentTrack marks which queue entry is currently playing and
// scrolls it into view.
func (m *Model) SetCurrentTrack(id string) {
	m.currentTrackID = id
	for i, t := range m.tracks {
		if t.ID == id {
			m.cur.Jump(i, len(m.tracks), m.listRows())
			return
		}
	}
}

// listRows is the number of track rows inside the border, header and
// footer.
func (m *Model) listRows() int {
	return m.height - 4
}

func (m *Model) refresh(now time.Time) {
	m.lastRefresh = now
	// Show the last polled snapshot right away; the forced refresh
	// comes back through the queue change event.
	if len(m.tracks) == 0 {
		if tracks := m.svc.Queue(); len(tracks) > 0 {
			m.SetTracks(tracks, now)
		}
	}
	m.svc.RefreshQueue()
}
