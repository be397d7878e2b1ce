package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmercier/resound/internal/remote"
)

// frameInterval targets ~60fps while timelines are animating.
const frameInterval = time.Second / 60

// FrameCmd returns a command that sends the next animation frame.
func FrameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ClearErrorCmd schedules the transient error line to clear.
func ClearErrorCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

// WatchServiceEvents returns a command that waits for remote service
// events and converts them to tea messages. Re-issued after every
// delivered message so the subscription keeps draining.
func (m *Model) WatchServiceEvents() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return TrackChangedMsg(e)
		case e := <-sub.TargetsChanged:
			return TargetsChangedMsg(e)
		case e := <-sub.PositionChanged:
			return PositionChangedMsg(e)
		case e := <-sub.QueueChanged:
			return QueueChangedMsg(e)
		case e := <-sub.ModeChanged:
			return ModeChangedMsg(e)
		case e := <-sub.ConnectionChanged:
			return ConnectionChangedMsg(e)
		case e := <-sub.Error:
			return ServiceErrorMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// ExtractArtworkCmd fetches artwork for the track and derives color
// schemes off the UI loop. Best effort: failures come back in the
// message and degrade to the default theme.
func (m *Model) ExtractArtworkCmd(track *remote.Track) tea.Cmd {
	if track == nil {
		return nil
	}
	url := m.Service.ArtworkURL(track, 64)
	if url == "" {
		return nil
	}
	extractor := m.extractor
	trackID := track.ID
	return func() tea.Msg {
		schemes, err := extractor.Extract(url)
		return ArtworkMsg{TrackID: trackID, Schemes: schemes, Err: err}
	}
}

// startFrames begins the frame loop if it is not already running.
func (m *Model) startFrames() tea.Cmd {
	if m.frameLoop {
		return nil
	}
	m.frameLoop = true
	return FrameCmd()
}
