// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Target operations
	OpTargetSelect  Op = "select playback target"
	OpTargetRefresh Op = "refresh playback targets"

	// Transport operations
	OpPlayPause    Op = "toggle playback"
	OpStop         Op = "stop playback"
	OpSkipNext     Op = "skip to next track"
	OpSkipPrevious Op = "skip to previous track"
	OpSeek         Op = "seek"

	// Mode operations
	OpShuffleToggle Op = "toggle shuffle"
	OpRepeatCycle   Op = "change repeat mode"
	OpVolumeSet     Op = "set volume"

	// Queue operations
	OpQueueRefresh Op = "refresh queue"

	// Persistence
	OpStateSave Op = "save settings"

	// Initialization
	OpInitialize Op = "initialize application"
	OpConnect    Op = "connect to server"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
