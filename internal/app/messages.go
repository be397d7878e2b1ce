package app

import (
	"time"

	"github.com/lmercier/resound/internal/artwork"
	"github.com/lmercier/resound/internal/remote"
)

// FrameMsg drives animation frames while any timeline is running.
type FrameMsg time.Time

// TickMsg is sent every second for housekeeping: position dead
// reckoning and the queue panel refresh interval.
type TickMsg time.Time

// ClearErrorMsg clears the transient error line.
type ClearErrorMsg struct{}

// Service event messages, converted from the remote subscription.

// StateChangedMsg is sent when the selected target's player state changes.
type StateChangedMsg remote.StateChange

// TrackChangedMsg is sent when the current track changes.
type TrackChangedMsg remote.TrackChange

// TargetsChangedMsg is sent when the target list or selection changes.
type TargetsChangedMsg remote.TargetsChange

// PositionChangedMsg is sent when the server reports playback position.
type PositionChangedMsg remote.PositionChange

// QueueChangedMsg is sent when the selected target's queue changes.
type QueueChangedMsg remote.QueueChange

// ModeChangedMsg is sent when shuffle or repeat changes.
type ModeChangedMsg remote.ModeChange

// ConnectionChangedMsg is sent when the server connection comes or goes.
type ConnectionChangedMsg remote.ConnectionChange

// ServiceErrorMsg is sent when a fire-and-forget command fails.
type ServiceErrorMsg remote.ErrorEvent

// ServiceClosedMsg is sent when the remote service shuts down.
type ServiceClosedMsg struct{}

// StderrMsg carries a line a native library wrote to fd 2 while the
// TUI owned the terminal.
type StderrMsg string

// ArtworkMsg carries the result of an artwork extraction.
type ArtworkMsg struct {
	TrackID string
	Schemes *artwork.Schemes
	Err     error
}
