// Package notify posts desktop notifications for track changes and
// remote errors over the org.freedesktop.Notifications D-Bus API.
package notify

// Urgency is the freedesktop notification urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification describes a single desktop notification. Title is the
// summary line; everything else is optional. Setting ReplacesID to a
// previous notification's ID updates it in place, which keeps a track
// change from stacking a pile of toasts.
type Notification struct {
	Title      string
	Body       string
	Icon       string // file path or themed icon name
	Timeout    int32  // ms; -1 server default, 0 never expires
	ReplacesID uint32
	Urgency    Urgency
}

// Notifier posts and retracts desktop notifications. Implementations
// degrade to no-ops rather than erroring when no notification server
// is reachable, so callers never need a fallback path.
type Notifier interface {
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}
