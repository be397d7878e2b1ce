//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	notifyDest = "org.freedesktop.Notifications"
	notifyPath = "/org/freedesktop/Notifications"
	notifyIntf = "org.freedesktop.Notifications"
)

// New connects to the session bus and returns a Notifier backed by
// the freedesktop notification server. When there is no session bus
// (a bare TTY, an SSH session) it returns a no-op notifier instead of
// an error so the player runs the same either way.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return noopNotifier{}, nil //nolint:nilerr
	}
	return &dbusNotifier{obj: conn.Object(notifyDest, notifyPath)}, nil
}

type dbusNotifier struct {
	obj dbus.BusObject
}

func (d *dbusNotifier) Notify(n Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant("resound"),
	}
	// Argument order fixed by org.freedesktop.Notifications: app_name, replaces_id,
	// app_icon, summary, body, actions, hints, expire_timeout.
	call := d.obj.Call(notifyIntf+".Notify", 0,
		"Resound", n.ReplacesID, n.Icon, n.Title, n.Body,
		[]string{}, hints, n.Timeout)
	if call.Err != nil {
		return 0, call.Err
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (d *dbusNotifier) Close(id uint32) error {
	return d.obj.Call(notifyIntf+".CloseNotification", 0, id).Err
}

type noopNotifier struct{}

func (noopNotifier) Notify(Notification) (uint32, error) { return 0, nil }
func (noopNotifier) Close(uint32) error                  { return nil }
