package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmercier/resound/internal/errmsg"
	"github.com/lmercier/resound/internal/remote"
	"github.com/lmercier/resound/internal/ui/miniplayer"
)

// Update handles messages and returns the updated model and commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Swipe.SetWidth(msg.Width)
		m.QueuePanel.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ClearErrorMsg:
		m.ErrorMsg = ""
		return m, nil

	case StateChangedMsg:
		// Freeze or resume dead reckoning at the reported boundary.
		m.position = m.displayedPosition(time.Now())
		m.positionAt = time.Now()
		return m, m.WatchServiceEvents()

	case TrackChangedMsg:
		return m.handleTrackChanged(remote.TrackChange(msg))

	case TargetsChangedMsg:
		return m, tea.Batch(m.WatchServiceEvents(), m.maybeStartHints(time.Now()))

	case PositionChangedMsg:
		m.position = msg.Position
		m.positionAt = time.Now()
		return m, m.WatchServiceEvents()

	case QueueChangedMsg:
		m.QueuePanel.SetTracks(msg.Tracks, time.Now())
		return m, m.WatchServiceEvents()

	case ModeChangedMsg:
		// Mode is read from the service snapshot at render time.
		return m, m.WatchServiceEvents()

	case ConnectionChangedMsg:
		cmds := []tea.Cmd{m.WatchServiceEvents()}
		if msg.Connected {
			cmds = append(cmds, m.maybeStartHints(time.Now()))
		}
		return m, tea.Batch(cmds...)

	case ServiceErrorMsg:
		m.reportError(msg.Op, msg.Err)
		return m, tea.Batch(m.WatchServiceEvents(), ClearErrorCmd())

	case ServiceClosedMsg:
		return m, tea.Quit

	case StderrMsg:
		m.ErrorMsg = string(msg)
		return m, ClearErrorCmd()

	case ArtworkMsg:
		return m.handleArtwork(msg)
	}

	return m, nil
}

// handleFrame advances every timeline one frame and keeps the loop
// running while anything still moves.
func (m *Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	animating := m.Expansion.Advance(now)
	animating = m.QueuePanel.Advance(now) || animating
	animating = m.Swipe.Advance(now) || animating
	animating = m.Hint.Advance(now) || animating
	if m.Swipe.Dragging() {
		animating = true
	}

	if animating {
		return m, FrameCmd()
	}
	m.frameLoop = false
	return m, nil
}

// handleTick does the once-a-second housekeeping that does not need
// animation frames: queue auto-refresh while the panel is open.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if !m.frameLoop {
		m.QueuePanel.Advance(now)
	}
	return m, TickCmd()
}

func (m *Model) handleTrackChanged(change remote.TrackChange) (tea.Model, tea.Cmd) {
	m.position = 0
	m.positionAt = time.Now()

	current := ""
	if change.Current != nil {
		current = change.Current.ID
	}
	m.QueuePanel.SetCurrentTrack(current)

	cmds := []tea.Cmd{m.WatchServiceEvents()}
	if change.Current != nil {
		if change.Current.ID != m.schemesTrack {
			m.schemes = nil
		}
		if cmd := m.ExtractArtworkCmd(change.Current); cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.sendNowPlayingNotification(change.Current)
	} else {
		m.schemes = nil
		m.schemesTrack = ""
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleArtwork(msg ArtworkMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// Best effort: keep the default theme.
		return m, nil
	}
	track := m.Service.CurrentTrack()
	if track == nil || track.ID != msg.TrackID {
		return m, nil // stale extraction, a newer track took over
	}
	m.schemes = msg.Schemes
	m.schemesTrack = msg.TrackID
	return m, nil
}

// handleMouse routes drag gestures on the collapsed bar to the swipe
// controller. Everything else is ignored.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && !m.Expansion.IsExpanded() && m.inMiniBar(msg.Y) {
			m.Swipe.DragStart(msg.X, now)
			return m, m.startFrames()
		}

	case tea.MouseActionMotion:
		if m.Swipe.Dragging() {
			m.Swipe.DragMove(msg.X, now)
		}

	case tea.MouseActionRelease:
		// Always forwarded: the controller decides whether a live drag
		// is resolving, and a release outside one must not leave it
		// holding gesture state.
		wasDragging := m.Swipe.Dragging()
		m.Swipe.DragEnd(now)
		if wasDragging {
			return m, m.startFrames()
		}
	}

	return m, nil
}

// inMiniBar reports whether a row falls inside the collapsed bar.
func (m *Model) inMiniBar(y int) bool {
	return y >= m.Height-miniplayer.Height()
}

// maybeStartHints begins the discovery hint loop once per session, when
// the server is reachable, a target is selected, hints are enabled and
// the user has never committed a swipe.
func (m *Model) maybeStartHints(now time.Time) tea.Cmd {
	if m.hintsStarted {
		return nil
	}
	if !m.Cfg.HintsEnabled() || !m.StateMgr.HintsEnabled() {
		return nil
	}
	if m.StateMgr.OnboardingCompleted() {
		return nil
	}
	if !m.Service.Connected() || m.Service.SelectedTarget() == nil {
		return nil
	}
	m.hintsStarted = true
	m.Hint.StartHints(now)
	return m.startFrames()
}

// switchTarget performs a keyboard target switch in the given
// direction, bouncing the bar when there is nowhere to go.
func (m *Model) switchTarget(dir int, now time.Time) tea.Cmd {
	selectedID := ""
	if t := m.Service.SelectedTarget(); t != nil {
		selectedID = t.ID
	}
	next := remote.AdjacentTarget(m.Service.AvailableTargets(), selectedID, dir)
	if next == nil {
		m.Hint.TriggerBounce(now)
		return m.startFrames()
	}
	m.Service.SelectTarget(next.ID)
	m.StateMgr.SaveSelectedTarget(next.ID)
	return nil
}

func (m *Model) reportError(op string, err error) {
	m.ErrorMsg = errmsg.Format(errmsg.Op(op), err)
	m.sendErrorNotification(m.ErrorMsg)
}
