package remote

import (
	"fmt"
	"time"
)

// Mock is a test double for Service. It applies commands synchronously
// against in-memory state and records calls for assertions.
type Mock struct {
	targets      []Target
	selectedID   string
	tracks       map[string]*Track // targetID -> current/cached track
	queue        []Track
	mode         Mode
	volume       int
	position     time.Duration
	connected    bool
	artworkBase  string
	sub          *Subscription
	SelectCalls  []string
	SeekCalls    []time.Duration
	Commands     []string // transport/mode command names in call order
	RefreshCalls int
}

// Verify Mock implements Service at compile time.
var _ Service = (*Mock)(nil)

// NewMock creates a connected mock with no targets.
func NewMock() *Mock {
	return &Mock{
		tracks:    make(map[string]*Track),
		connected: true,
		volume:    50,
	}
}

// SetTargets replaces the target list (stored sorted, as the real
// service reports it).
func (m *Mock) SetTargets(targets ...Target) {
	m.targets = SortTargets(targets)
}

// Select marks a target selected without recording a command call.
func (m *Mock) Select(id string) { m.selectedID = id }

// SetTrack associates a track with a target, serving both as its
// current track when selected and as its cache entry.
func (m *Mock) SetTrack(targetID string, track *Track) {
	if track == nil {
		delete(m.tracks, targetID)
		return
	}
	m.tracks[targetID] = track
}

// SetQueue replaces the queue snapshot.
func (m *Mock) SetQueue(tracks ...Track) { m.queue = tracks }

// SetConnected flips the connection flag.
func (m *Mock) SetConnected(connected bool) { m.connected = connected }

// SetPosition sets the reported playback position.
func (m *Mock) SetPosition(pos time.Duration) { m.position = pos }

func (m *Mock) SelectedTarget() *Target {
	return FindTarget(m.targets, m.selectedID)
}

func (m *Mock) CurrentTrack() *Track {
	if m.selectedID == "" {
		return nil
	}
	return m.tracks[m.selectedID]
}

func (m *Mock) AvailableTargets() []Target { return m.targets }

func (m *Mock) CachedTrack(targetID string) *Track { return m.tracks[targetID] }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Queue() []Track { return m.queue }

func (m *Mock) Mode() Mode { return m.mode }

func (m *Mock) Volume() int { return m.volume }

func (m *Mock) Connected() bool { return m.connected }

func (m *Mock) ArtworkURL(track *Track, size int) string {
	if track == nil || m.artworkBase == "" {
		return ""
	}
	return fmt.Sprintf("%s/art/%s?size=%d", m.artworkBase, track.ID, size)
}

func (m *Mock) SelectTarget(id string) {
	m.SelectCalls = append(m.SelectCalls, id)
	m.selectedID = id
}

func (m *Mock) PlayPause() { m.Commands = append(m.Commands, "playpause") }

func (m *Mock) Stop() { m.Commands = append(m.Commands, "stop") }

func (m *Mock) Next() { m.Commands = append(m.Commands, "next") }

func (m *Mock) Previous() { m.Commands = append(m.Commands, "previous") }

func (m *Mock) Seek(_ string, position time.Duration) {
	m.SeekCalls = append(m.SeekCalls, position)
}

func (m *Mock) ToggleShuffle() {
	m.Commands = append(m.Commands, "shuffle")
	m.mode.Shuffle = !m.mode.Shuffle
}

func (m *Mock) CycleRepeat() {
	m.Commands = append(m.Commands, "repeat")
	m.mode.Repeat = m.mode.Repeat.Cycle()
}

func (m *Mock) SetVolume(percent int) {
	m.Commands = append(m.Commands, "volume")
	m.volume = percent
}

func (m *Mock) RefreshQueue() { m.RefreshCalls++ }

func (m *Mock) Subscribe() *Subscription {
	m.sub = NewSubscription()
	return m.sub
}

// Subscription returns the last subscription handed out, for pushing
// events from tests.
func (m *Mock) Subscription() *Subscription { return m.sub }

func (m *Mock) Close() error {
	if m.sub != nil {
		m.sub.CloseSubscription()
	}
	return nil
}
