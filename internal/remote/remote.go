// Package remote defines the contract with the networked playback
// server: the data model for playback targets and tracks, the Service
// interface the UI drives, and the event subscription used to observe
// server-side state changes. The UI treats all of this as an in-process
// collaborator; the concrete transport lives in remote/httpapi.
package remote

import "time"

// PlayerState describes what a target is currently doing.
type PlayerState int

const (
	StateIdle PlayerState = iota
	StatePlaying
	StatePaused
)

// String returns a human-readable state name.
func (s PlayerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}

// RepeatMode controls queue repetition on the selected target.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatAll
	RepeatOne
)

// Cycle returns the next mode in the off -> all -> one -> off sequence.
func (m RepeatMode) Cycle() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatOff
	}
}

// Target is a speaker, zone or device capable of playing audio.
// Snapshots come wholesale from the server on every refresh; the UI
// never mutates them. Selection persists by ID across refreshes.
type Target struct {
	ID        string
	Name      string
	Available bool
	PoweredOn bool
	State     PlayerState
	TrackID   string // track currently loaded, if any
}

// Track is immutable display data for a piece of media.
type Track struct {
	ID       string
	Title    string
	Artist   string
	Album    string
	Duration time.Duration
}

// Mode is the shuffle/repeat pair reported by the selected target.
type Mode struct {
	Shuffle bool
	Repeat  RepeatMode
}
