package remote

import "time"

// StateChange is emitted when the selected target's player state changes.
type StateChange struct {
	Previous PlayerState
	Current  PlayerState
}

// TrackChange is emitted when the current track on the selected target
// changes, including when it changes because a different target was
// selected. Current is nil when the new target has nothing loaded.
type TrackChange struct {
	Previous *Track
	Current  *Track
}

// TargetsChange is emitted when the available target list or the
// selection changes. Targets is the full sorted snapshot.
type TargetsChange struct {
	Targets    []Target
	SelectedID string
}

// PositionChange is emitted when the server reports a new playback
// position, including after a seek resolves.
type PositionChange struct {
	Position time.Duration
}

// QueueChange is emitted when the selected target's queue contents change.
type QueueChange struct {
	Tracks []Track
}

// ModeChange is emitted when shuffle or repeat changes.
type ModeChange struct {
	Mode Mode
}

// ConnectionChange is emitted when the server connection is established
// or lost.
type ConnectionChange struct {
	Connected bool
}

// ErrorEvent is emitted when a fire-and-forget command fails.
type ErrorEvent struct {
	Op  string // e.g. "select target", "seek"
	Err error
}
