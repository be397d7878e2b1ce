package notify

import "testing"

func TestUrgencyMatchesFreedesktopSpec(t *testing.T) {
	// The urgency hint is passed to the server as a raw byte, so the
	// constants must line up with the freedesktop values exactly.
	for _, tt := range []struct {
		urgency Urgency
		want    byte
	}{
		{UrgencyLow, 0},
		{UrgencyNormal, 1},
		{UrgencyCritical, 2},
	} {
		if byte(tt.urgency) != tt.want {
			t.Errorf("urgency %v = %d, want %d", tt.urgency, byte(tt.urgency), tt.want)
		}
	}
}

func TestNotificationZeroValue(t *testing.T) {
	// A zero Notification must mean "new notification, never expires,
	// low urgency" since callers often only fill Title and Body.
	var n Notification
	if n.ReplacesID != 0 {
		t.Errorf("zero ReplacesID = %d, want 0", n.ReplacesID)
	}
	if n.Timeout != 0 {
		t.Errorf("zero Timeout = %d, want 0", n.Timeout)
	}
	if n.Urgency != UrgencyLow {
		t.Errorf("zero Urgency = %v, want UrgencyLow", n.Urgency)
	}
}
