package remote

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	StateChanged      <-chan StateChange
	TrackChanged      <-chan TrackChange
	TargetsChanged    <-chan TargetsChange
	PositionChanged   <-chan PositionChange
	QueueChanged      <-chan QueueChange
	ModeChanged       <-chan ModeChange
	ConnectionChanged <-chan ConnectionChange
	Error             <-chan ErrorEvent
	Done              <-chan struct{}

	// Internal write channels
	stateCh      chan StateChange
	trackCh      chan TrackChange
	targetsCh    chan TargetsChange
	positionCh   chan PositionChange
	queueCh      chan QueueChange
	modeCh       chan ModeChange
	connectionCh chan ConnectionChange
	errorCh      chan ErrorEvent
	doneCh       chan struct{}
}

// NewSubscription creates a subscription with buffered channels.
// Service implementations publish through the Send* methods; all sends
// are non-blocking and drop when the subscriber lags.
func NewSubscription() *Subscription {
	s := &Subscription{
		stateCh:      make(chan StateChange, eventBufferSize),
		trackCh:      make(chan TrackChange, eventBufferSize),
		targetsCh:    make(chan TargetsChange, eventBufferSize),
		positionCh:   make(chan PositionChange, eventBufferSize),
		queueCh:      make(chan QueueChange, eventBufferSize),
		modeCh:       make(chan ModeChange, eventBufferSize),
		connectionCh: make(chan ConnectionChange, eventBufferSize),
		errorCh:      make(chan ErrorEvent, eventBufferSize),
		doneCh:       make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.TrackChanged = s.trackCh
	s.TargetsChanged = s.targetsCh
	s.PositionChanged = s.positionCh
	s.QueueChanged = s.queueCh
	s.ModeChanged = s.modeCh
	s.ConnectionChanged = s.connectionCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// CloseSubscription signals the subscriber to stop.
func (s *Subscription) CloseSubscription() {
	close(s.doneCh)
}

// SendState publishes a state change (non-blocking).
func (s *Subscription) SendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
		// Drop if buffer full
	}
}

// SendTrack publishes a track change (non-blocking).
func (s *Subscription) SendTrack(e TrackChange) {
	select {
	case s.trackCh <- e:
	default:
	}
}

// SendTargets publishes a targets change (non-blocking).
func (s *Subscription) SendTargets(e TargetsChange) {
	select {
	case s.targetsCh <- e:
	default:
	}
}

// SendPosition publishes a position change (non-blocking).
func (s *Subscription) SendPosition(e PositionChange) {
	select {
	case s.positionCh <- e:
	default:
	}
}

// SendQueue publishes a queue change (non-blocking).
func (s *Subscription) SendQueue(e QueueChange) {
	select {
	case s.queueCh <- e:
	default:
	}
}

// SendMode publishes a mode change (non-blocking).
func (s *Subscription) SendMode(e ModeChange) {
	select {
	case s.modeCh <- e:
	default:
	}
}

// SendConnection publishes a connection change (non-blocking).
func (s *Subscription) SendConnection(e ConnectionChange) {
	select {
	case s.connectionCh <- e:
	default:
	}
}

// SendError publishes a command failure (non-blocking).
func (s *Subscription) SendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
