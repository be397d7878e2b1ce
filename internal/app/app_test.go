package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmercier/resound/internal/config"
	"github.com/lmercier/resound/internal/notify"
	"github.com/lmercier/resound/internal/remote"
	"github.com/lmercier/resound/internal/state"
)

// mockNotifier records notifications for testing.
type mockNotifier struct {
	notifications []notify.Notification
	lastID        uint32
}

func (m *mockNotifier) Notify(n notify.Notification) (uint32, error) {
	m.lastID++
	m.notifications = append(m.notifications, n)
	return m.lastID, nil
}

func (m *mockNotifier) Close(_ uint32) error {
	return nil
}

func newTestModel(t *testing.T) (*Model, *remote.Mock, *state.Mock) {
	t.Helper()

	svc := remote.NewMock()
	svc.SetTargets(
		remote.Target{ID: "a", Name: "Bedroom", Available: true},
		remote.Target{ID: "b", Name: "Kitchen", Available: true, State: remote.StatePlaying},
		remote.Target{ID: "c", Name: "Office", Available: true},
	)
	svc.Select("b")
	svc.SetTrack("b", &remote.Track{ID: "t1", Title: "Current", Artist: "Band", Duration: 3 * time.Minute})
	svc.SetTrack("a", &remote.Track{ID: "t2", Title: "Cached", Artist: "Other"})

	stateMgr := state.NewMock()
	m := New(&config.Config{}, svc, stateMgr, &mockNotifier{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return m, svc, stateMgr
}

// runFrames advances the animation loop with synthetic frame times
// until everything settles.
func runFrames(t *testing.T, m *Model, from time.Time, span time.Duration) {
	t.Helper()
	for elapsed := time.Duration(0); elapsed <= span; elapsed += 16 * time.Millisecond {
		m.Update(FrameMsg(from.Add(elapsed)))
	}
}

func TestSavedTargetRestoredOnStartup(t *testing.T) {
	svc := remote.NewMock()
	svc.SetTargets(remote.Target{ID: "a", Name: "Bedroom", Available: true})
	stateMgr := state.NewMock()
	stateMgr.TargetID = "a"

	New(&config.Config{}, svc, stateMgr, nil)
	assert.Equal(t, []string{"a"}, svc.SelectCalls)
}

func TestToggleExpandMorphsToExpanded(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "expand starts the frame loop")

	runFrames(t, m, time.Now(), time.Second)
	assert.True(t, m.Expansion.IsExpanded())
	assert.Equal(t, 1.0, m.ExpansionProgress())
}

func TestExpandPrefetchesQueue(t *testing.T) {
	m, svc, _ := newTestModel(t)
	require.Zero(t, svc.RefreshCalls)

	m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	runFrames(t, m, time.Now(), time.Second)

	require.True(t, m.Expansion.IsExpanded())
	assert.Equal(t, 1, svc.RefreshCalls, "settled expand forces one queue refresh")
}

func TestCollapseForcesQueuePanelShut(t *testing.T) {
	m, _, _ := newTestModel(t)
	now := time.Now()

	m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	runFrames(t, m, now, time.Second)
	require.True(t, m.Expansion.IsExpanded())

	m.QueuePanel.Toggle(time.Now())
	runFrames(t, m, time.Now(), time.Second)
	require.True(t, m.QueuePanel.IsOpen())

	m.Expansion.Collapse(time.Now())
	runFrames(t, m, time.Now(), time.Second)

	assert.False(t, m.Expansion.IsExpanded())
	assert.Equal(t, 0.0, m.QueuePanel.Progress(), "collapse snaps the panel shut")
}

func TestEscPeelsQueuePanelBeforeSurface(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	runFrames(t, m, time.Now(), time.Second)
	m.QueuePanel.Toggle(time.Now())
	runFrames(t, m, time.Now(), time.Second)

	m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	runFrames(t, m, time.Now(), time.Second)
	assert.True(t, m.Expansion.IsExpanded(), "first esc only closes the panel")
	assert.False(t, m.QueuePanel.IsOpen())

	m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	runFrames(t, m, time.Now(), time.Second)
	assert.False(t, m.Expansion.IsExpanded())
}

func TestSwipeCommitCompletesOnboarding(t *testing.T) {
	m, svc, stateMgr := newTestModel(t)
	require.False(t, stateMgr.Onboarded)

	press := tea.MouseMsg{X: 40, Y: 28, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m.Update(press)
	require.True(t, m.Swipe.Dragging())

	// Slow drag left past the distance threshold, then release.
	for x := 40; x >= 14; x -= 2 {
		m.Update(tea.MouseMsg{X: x, Y: 28, Action: tea.MouseActionMotion})
		time.Sleep(time.Millisecond)
	}
	m.Update(tea.MouseMsg{X: 14, Y: 28, Action: tea.MouseActionRelease})

	runFrames(t, m, time.Now(), time.Second)

	assert.Equal(t, []string{"c"}, svc.SelectCalls, "leftward swipe selects the next target")
	assert.True(t, stateMgr.Onboarded)
	assert.Equal(t, "c", stateMgr.TargetID)
}

func TestEdgeTapDoesNotBreakNextSwipe(t *testing.T) {
	m, svc, _ := newTestModel(t)

	// Tap inside the edge dead zone: press and release, no motion.
	m.Update(tea.MouseMsg{X: 1, Y: 28, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.Swipe.Dragging())
	m.Update(tea.MouseMsg{X: 1, Y: 28, Action: tea.MouseActionRelease})

	// The next swipe still tracks, resolves and commits.
	m.Update(tea.MouseMsg{X: 40, Y: 28, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.Swipe.Dragging())
	for x := 40; x >= 14; x -= 2 {
		m.Update(tea.MouseMsg{X: x, Y: 28, Action: tea.MouseActionMotion})
		time.Sleep(time.Millisecond)
	}
	assert.NotZero(t, m.Swipe.Offset(), "drag offset must track after an edge tap")
	m.Update(tea.MouseMsg{X: 14, Y: 28, Action: tea.MouseActionRelease})

	runFrames(t, m, time.Now(), time.Second)

	assert.Equal(t, []string{"c"}, svc.SelectCalls)
	assert.False(t, m.Swipe.Dragging(), "gesture machine settles back to idle")
}

func TestDragIgnoredWhileExpanded(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	runFrames(t, m, time.Now(), time.Second)

	m.Update(tea.MouseMsg{X: 40, Y: 28, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.Swipe.Dragging())
}

func TestHintsStartWhenEligible(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(ConnectionChangedMsg{Connected: true})
	assert.True(t, m.Hint.Hinting())
}

func TestHintsSuppressedAfterOnboarding(t *testing.T) {
	m, _, stateMgr := newTestModel(t)
	stateMgr.Onboarded = true

	m.Update(ConnectionChangedMsg{Connected: true})
	assert.False(t, m.Hint.Hinting())
}

func TestHintsRespectConfigFlag(t *testing.T) {
	m, _, _ := newTestModel(t)
	disabled := false
	m.Cfg.Hints.Enabled = &disabled

	m.Update(ConnectionChangedMsg{Connected: true})
	assert.False(t, m.Hint.Hinting())
}

func TestDismissHintsPersists(t *testing.T) {
	m, _, stateMgr := newTestModel(t)
	m.Update(ConnectionChangedMsg{Connected: true})
	require.True(t, m.Hint.Hinting())

	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.False(t, m.Hint.Hinting())
	assert.True(t, stateMgr.Onboarded)
}

func TestKeyboardTargetSwitch(t *testing.T) {
	m, svc, stateMgr := newTestModel(t)

	m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, []string{"c"}, svc.SelectCalls)
	assert.Equal(t, "c", stateMgr.TargetID)
}

func TestKeyboardSwitchAtEndBounces(t *testing.T) {
	m, svc, _ := newTestModel(t)
	svc.Select("c") // last in sorted order (Bedroom, Kitchen, Office)

	m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	assert.Empty(t, svc.SelectCalls, "no wrap-around at the end of the list")
	assert.True(t, m.Hint.Bouncing())
}

func TestOptimisticSeek(t *testing.T) {
	m, svc, _ := newTestModel(t)
	now := time.Now()
	m.position = 60 * time.Second
	m.positionAt = now

	m.seekBy(seekStep, now)

	require.Len(t, svc.SeekCalls, 1)
	assert.Equal(t, 65*time.Second, svc.SeekCalls[0])
	assert.Equal(t, 65*time.Second, m.position, "display jumps before the server answers")
}

func TestSeekClampedToTrack(t *testing.T) {
	m, svc, _ := newTestModel(t)
	now := time.Now()
	m.position = 179 * time.Second
	m.positionAt = now

	m.seekBy(seekStep, now)

	require.Len(t, svc.SeekCalls, 1)
	assert.Equal(t, 3*time.Minute, svc.SeekCalls[0])
}

func TestPositionReconciledByServer(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.position = 65 * time.Second

	m.Update(PositionChangedMsg{Position: 62 * time.Second})
	assert.Equal(t, 62*time.Second, m.position)
}

func TestVolumeClamped(t *testing.T) {
	m, svc, _ := newTestModel(t)

	svc.SetVolume(98)
	m.adjustVolume(5)
	assert.Equal(t, 100, svc.Volume())

	svc.SetVolume(3)
	m.adjustVolume(-5)
	assert.Equal(t, 0, svc.Volume())
}

func TestServiceErrorShownAndNotified(t *testing.T) {
	m, _, _ := newTestModel(t)
	notifier := m.notifier.(*mockNotifier)

	m.Update(ServiceErrorMsg{Op: "seek", Err: assert.AnError})

	assert.Contains(t, m.ErrorMsg, "seek")
	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "Resound", notifier.notifications[0].Title)
}

func TestTrackChangeNotifies(t *testing.T) {
	m, _, _ := newTestModel(t)
	notifier := m.notifier.(*mockNotifier)

	track := &remote.Track{ID: "t3", Title: "New Song", Artist: "Band", Album: "Record"}
	m.Update(TrackChangedMsg{Current: track})

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "New Song", notifier.notifications[0].Title)
	assert.Contains(t, notifier.notifications[0].Body, "Band")
	assert.Equal(t, time.Duration(0), m.position, "position resets with the track")
}

func TestTrackChangeNotificationsDisabled(t *testing.T) {
	m, _, _ := newTestModel(t)
	notifier := m.notifier.(*mockNotifier)
	disabled := false
	m.Cfg.Notifications = &disabled

	m.Update(TrackChangedMsg{Current: &remote.Track{ID: "t3", Title: "New Song"}})
	assert.Empty(t, notifier.notifications)
}

func TestStaleArtworkIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(ArtworkMsg{TrackID: "gone", Schemes: nil})
	assert.Nil(t, m.schemes)
}

func TestTransportKeys(t *testing.T) {
	m, svc, _ := newTestModel(t)

	m.handleKey(tea.KeyMsg{Type: tea.KeySpace})
	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'S'}})
	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'R'}})

	assert.Equal(t, []string{"playpause", "next", "previous", "shuffle", "repeat"}, svc.Commands)
}
