package httpapi

import (
	"sync"
	"time"

	"github.com/lmercier/resound/internal/remote"
)

const pollInterval = 2 * time.Second

// Service implements remote.Service over the HTTP API.
type Service struct {
	client *Client

	mu        sync.RWMutex
	targets   []remote.Target
	selected  string
	track     *remote.Track
	cache     map[string]*remote.Track // last-known track per target
	queue     []remote.Track
	position  time.Duration
	mode      remote.Mode
	volume    int
	connected bool
	subs      []*remote.Subscription

	stopCh chan struct{}
	doneCh chan struct{}
}

// Verify Service implements the contract at compile time.
var _ remote.Service = (*Service)(nil)

// New creates a service polling the given server. Call Start to begin
// polling and Close to stop.
func New(client *Client) *Service {
	return &Service{
		client: client,
		cache:  make(map[string]*remote.Track),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start launches the background poll loop.
func (s *Service) Start() {
	go s.pollLoop()
}

func (s *Service) pollLoop() {
	defer close(s.doneCh)
	s.pollOnce()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.pollOnce()
		}
	}
}

func (s *Service) pollOnce() {
	dtos, err := s.client.Targets()
	if err != nil {
		s.setConnected(false)
		return
	}
	s.setConnected(true)

	targets := make([]remote.Target, 0, len(dtos))
	for _, d := range dtos {
		targets = append(targets, toTarget(d))
	}
	targets = remote.SortTargets(targets)

	s.mu.Lock()
	changed := !targetsEqual(s.targets, targets)
	s.targets = targets
	selected := s.selected
	if selected == "" && len(targets) > 0 {
		// Adopt the server's notion of an active target on first contact.
		for _, t := range targets {
			if t.Available && t.State != remote.StateIdle {
				selected = t.ID
				break
			}
		}
		if selected == "" {
			selected = targets[0].ID
		}
		s.selected = selected
		changed = true
	}
	s.mu.Unlock()

	if changed {
		s.broadcast(func(sub *remote.Subscription) {
			sub.SendTargets(remote.TargetsChange{Targets: targets, SelectedID: selected})
		})
	}

	if selected != "" {
		s.pollStatus(selected)
	}
}

func (s *Service) pollStatus(targetID string) {
	status, err := s.client.Status(targetID)
	if err != nil {
		return
	}

	var track *remote.Track
	if status.Track != nil {
		t := toTrack(*status.Track)
		track = &t
	}
	state := toState(status.State)
	mode := remote.Mode{Shuffle: status.Shuffle, Repeat: toRepeat(status.Repeat)}
	position := time.Duration(status.PositionMS) * time.Millisecond

	s.mu.Lock()
	prevTrack := s.track
	prevState := stateOf(s.targets, s.selected)
	prevMode := s.mode
	s.track = track
	if track != nil {
		s.cache[targetID] = track
	}
	s.position = position
	s.mode = mode
	s.volume = status.Volume
	for i := range s.targets {
		if s.targets[i].ID == targetID {
			s.targets[i].State = state
			if track != nil {
				s.targets[i].TrackID = track.ID
			}
		}
	}
	s.mu.Unlock()

	if !tracksEqual(prevTrack, track) {
		s.broadcast(func(sub *remote.Subscription) {
			sub.SendTrack(remote.TrackChange{Previous: prevTrack, Current: track})
		})
	}
	if prevState != state {
		s.broadcast(func(sub *remote.Subscription) {
			sub.SendState(remote.StateChange{Previous: prevState, Current: state})
		})
	}
	if prevMode != mode {
		s.broadcast(func(sub *remote.Subscription) {
			sub.SendMode(remote.ModeChange{Mode: mode})
		})
	}
	s.broadcast(func(sub *remote.Subscription) {
		sub.SendPosition(remote.PositionChange{Position: position})
	})
}

func (s *Service) setConnected(connected bool) {
	s.mu.Lock()
	changed := s.connected != connected
	s.connected = connected
	s.mu.Unlock()
	if changed {
		s.broadcast(func(sub *remote.Subscription) {
			sub.SendConnection(remote.ConnectionChange{Connected: connected})
		})
	}
}

func (s *Service) broadcast(send func(*remote.Subscription)) {
	s.mu.RLock()
	subs := make([]*remote.Subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, sub := range subs {
		send(sub)
	}
}

// State snapshots

func (s *Service) SelectedTarget() *remote.Target {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return remote.FindTarget(s.targets, s.selected)
}

func (s *Service) CurrentTrack() *remote.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.track
}

func (s *Service) AvailableTargets() []remote.Target {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]remote.Target, len(s.targets))
	copy(out, s.targets)
	return out
}

func (s *Service) CachedTrack(targetID string) *remote.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[targetID]
}

func (s *Service) Position() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.position
}

func (s *Service) Queue() []remote.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]remote.Track, len(s.queue))
	copy(out, s.queue)
	return out
}

func (s *Service) Mode() remote.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *Service) Volume() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume
}

func (s *Service) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

func (s *Service) ArtworkURL(track *remote.Track, size int) string {
	if track == nil {
		return ""
	}
	return s.client.ArtworkURL(track.ID, size)
}

// Commands. Each runs asynchronously; failures surface as ErrorEvents.

func (s *Service) SelectTarget(id string) {
	s.mu.Lock()
	s.selected = id
	s.track = s.cache[id]
	track := s.track
	targets := make([]remote.Target, len(s.targets))
	copy(targets, s.targets)
	s.mu.Unlock()

	// Optimistic local switch so the UI flips immediately; the next
	// poll reconciles with the server.
	s.broadcast(func(sub *remote.Subscription) {
		sub.SendTargets(remote.TargetsChange{Targets: targets, SelectedID: id})
	})
	s.broadcast(func(sub *remote.Subscription) {
		sub.SendTrack(remote.TrackChange{Current: track})
	})

	s.run("select target", func() error { return s.client.Select(id) })
}

func (s *Service) PlayPause() { s.command("play/pause", commandDTO{Action: "playpause"}) }

func (s *Service) Stop() { s.command("stop", commandDTO{Action: "stop"}) }

func (s *Service) Next() { s.command("skip next", commandDTO{Action: "next"}) }

func (s *Service) Previous() { s.command("skip previous", commandDTO{Action: "previous"}) }

func (s *Service) Seek(targetID string, position time.Duration) {
	s.run("seek", func() error {
		return s.client.Command(targetID, commandDTO{
			Action:     "seek",
			PositionMS: position.Milliseconds(),
		})
	})
}

func (s *Service) ToggleShuffle() { s.command("toggle shuffle", commandDTO{Action: "shuffle"}) }

func (s *Service) CycleRepeat() { s.command("cycle repeat", commandDTO{Action: "repeat"}) }

func (s *Service) SetVolume(percent int) {
	s.command("set volume", commandDTO{Action: "volume", Volume: percent})
}

func (s *Service) RefreshQueue() {
	s.mu.RLock()
	selected := s.selected
	s.mu.RUnlock()
	if selected == "" {
		return
	}
	go func() {
		dtos, err := s.client.Queue(selected)
		if err != nil {
			return // best-effort, keep last snapshot
		}
		tracks := make([]remote.Track, 0, len(dtos))
		for _, d := range dtos {
			tracks = append(tracks, toTrack(d))
		}
		s.mu.Lock()
		s.queue = tracks
		s.mu.Unlock()
		s.broadcast(func(sub *remote.Subscription) {
			sub.SendQueue(remote.QueueChange{Tracks: tracks})
		})
	}()
}

func (s *Service) command(op string, cmd commandDTO) {
	s.mu.RLock()
	selected := s.selected
	s.mu.RUnlock()
	if selected == "" {
		return
	}
	s.run(op, func() error { return s.client.Command(selected, cmd) })
}

func (s *Service) run(op string, fn func() error) {
	go func() {
		if err := fn(); err != nil {
			s.broadcast(func(sub *remote.Subscription) {
				sub.SendError(remote.ErrorEvent{Op: op, Err: err})
			})
		}
	}()
}

func (s *Service) Subscribe() *remote.Subscription {
	sub := remote.NewSubscription()
	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
	return sub
}

func (s *Service) Close() error {
	close(s.stopCh)
	<-s.doneCh
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()
	for _, sub := range subs {
		sub.CloseSubscription()
	}
	return nil
}

// Conversions

func toTarget(d targetDTO) remote.Target {
	return remote.Target{
		ID:        d.ID,
		Name:      d.Name,
		Available: d.Available,
		PoweredOn: d.PoweredOn,
		State:     toState(d.State),
		TrackID:   d.TrackID,
	}
}

func toTrack(d trackDTO) remote.Track {
	return remote.Track{
		ID:       d.ID,
		Title:    d.Title,
		Artist:   d.Artist,
		Album:    d.Album,
		Duration: time.Duration(d.DurationMS) * time.Millisecond,
	}
}

func toState(s string) remote.PlayerState {
	switch s {
	case "playing":
		return remote.StatePlaying
	case "paused":
		return remote.StatePaused
	default:
		return remote.StateIdle
	}
}

func toRepeat(s string) remote.RepeatMode {
	switch s {
	case "all":
		return remote.RepeatAll
	case "one":
		return remote.RepeatOne
	default:
		return remote.RepeatOff
	}
}

func stateOf(targets []remote.Target, id string) remote.PlayerState {
	if t := remote.FindTarget(targets, id); t != nil {
		return t.State
	}
	return remote.StateIdle
}

func targetsEqual(a, b []remote.Target) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func tracksEqual(a, b *remote.Track) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}
