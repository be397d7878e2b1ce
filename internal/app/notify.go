package app

import (
	"strings"

	"github.com/lmercier/resound/internal/notify"
	"github.com/lmercier/resound/internal/remote"
)

// sendNowPlayingNotification shows a desktop notification for a track
// change, replacing the previous one so skipping does not stack them.
func (m *Model) sendNowPlayingNotification(track *remote.Track) {
	if m.notifier == nil || !m.Cfg.NotificationsEnabled() || track == nil {
		return
	}

	var parts []string
	if track.Artist != "" {
		parts = append(parts, track.Artist)
	}
	if track.Album != "" {
		parts = append(parts, track.Album)
	}

	id, err := m.notifier.Notify(notify.Notification{
		Title:      track.Title,
		Body:       strings.Join(parts, " · "),
		Timeout:    5000,
		ReplacesID: m.lastNotifyID,
		Urgency:    notify.UrgencyLow,
	})
	if err == nil && id != 0 {
		m.lastNotifyID = id
	}
}

// sendErrorNotification surfaces a command failure outside the
// terminal. Transient and low-stakes, so never critical urgency.
func (m *Model) sendErrorNotification(text string) {
	if m.notifier == nil || !m.Cfg.NotificationsEnabled() {
		return
	}
	_, _ = m.notifier.Notify(notify.Notification{
		Title:   "Resound",
		Body:    text,
		Timeout: 5000,
		Urgency: notify.UrgencyNormal,
	})
}
