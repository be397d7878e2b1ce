package remote

import "time"

// Service is the playback-server contract the UI drives.
//
// All command methods are fire-and-forget: the UI does not wait for
// completion and keeps animating regardless of the outcome. Failures
// surface asynchronously as ErrorEvents on the subscription, never as
// return values that could stall a frame.
type Service interface {
	// State snapshots
	SelectedTarget() *Target
	CurrentTrack() *Track
	AvailableTargets() []Target // sorted by display name, stable
	CachedTrack(targetID string) *Track
	Position() time.Duration
	Queue() []Track
	Mode() Mode
	Volume() int
	Connected() bool

	// Artwork
	ArtworkURL(track *Track, size int) string

	// Commands (fire-and-forget)
	SelectTarget(id string)
	PlayPause()
	Stop()
	Next()
	Previous()
	Seek(targetID string, position time.Duration)
	ToggleShuffle()
	CycleRepeat()
	SetVolume(percent int)
	RefreshQueue()

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
