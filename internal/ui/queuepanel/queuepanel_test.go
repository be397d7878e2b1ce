package queuepanel

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmercier/resound/internal/remote"
	"github.com/lmercier/resound/internal/ui/testutil"
)

func settle(t *testing.T, m *Model, now time.Time) time.Time {
	t.Helper()
	for i := 0; i < 100; i++ {
		now = now.Add(16 * time.Millisecond)
		if !m.Advance(now) {
			return now
		}
	}
	t.Fatal("slide did not settle")
	return now
}

func TestToggleOpensAndCloses(t *testing.T) {
	svc := remote.NewMock()
	m := New(svc)
	now := time.Now()

	m.Toggle(now)
	assert.True(t, m.IsOpen(), "heading open counts as open")
	assert.Equal(t, 1, svc.RefreshCalls, "opening requests a fresh queue")

	now = settle(t, m, now)
	assert.Equal(t, 1.0, m.Progress())

	m.Toggle(now)
	assert.False(t, m.IsOpen())
	settle(t, m, now)
	assert.Equal(t, 0.0, m.Progress())
}

func TestToggleIgnoredWhileSliding(t *testing.T) {
	svc := remote.NewMock()
	m := New(svc)
	now := time.Now()

	m.Toggle(now)
	m.Advance(now.Add(50 * time.Millisecond))
	require.True(t, m.Animating())

	m.Toggle(now.Add(60 * time.Millisecond))
	assert.True(t, m.IsOpen(), "toggle during slide is dropped")
	assert.Equal(t, 1, svc.RefreshCalls)
}

func TestAutoRefreshWhileOpen(t *testing.T) {
	svc := remote.NewMock()
	m := New(svc)
	now := time.Now()

	m.Toggle(now)
	now = settle(t, m, now)
	require.Equal(t, 1, svc.RefreshCalls)

	m.Advance(now.Add(2 * time.Second))
	assert.Equal(t, 1, svc.RefreshCalls, "too early to refresh again")

	m.Advance(now.Add(6 * time.Second))
	assert.Equal(t, 2, svc.RefreshCalls)

	m.Advance(now.Add(7 * time.Second))
	assert.Equal(t, 2, svc.RefreshCalls, "interval restarts after each refresh")
}

func TestNoRefreshWhileClosed(t *testing.T) {
	svc := remote.NewMock()
	m := New(svc)
	now := time.Now()

	m.Advance(now.Add(10 * time.Second))
	m.Advance(now.Add(20 * time.Second))
	assert.Zero(t, svc.RefreshCalls)
}

func TestResetSnapsShut(t *testing.T) {
	svc := remote.NewMock()
	m := New(svc)
	now := time.Now()

	m.Toggle(now)
	settle(t, m, now)

	m.Reset()
	assert.Equal(t, 0.0, m.Progress())
	assert.False(t, m.IsOpen())
	assert.False(t, m.Animating())
}

func TestXOffsetTracksProgress(t *testing.T) {
	svc := remote.NewMock()
	m := New(svc)

	assert.Equal(t, 120, m.XOffset(120), "closed panel sits past the edge")

	now := time.Now()
	m.Toggle(now)
	settle(t, m, now)
	assert.Equal(t, 120-Width, m.XOffset(120))
}

func TestViewMarksPlayingTrack(t *testing.T) {
	svc := remote.NewMock()
	m := New(svc)
	m.SetHeight(12)

	now := time.Now()
	m.SetTracks([]remote.Track{
		{ID: "t1", Title: "First", Artist: "A", Duration: 3 * time.Minute},
		{ID: "t2", Title: "Second", Artist: "B", Duration: 4 * time.Minute},
	}, now)
	m.SetCurrentTrack("t2")
	m.Toggle(now)
	settle(t, m, now)

	view := m.View()
	require.NotEmpty(t, view)
	assert.Contains(t, view, "Second")
	assert.Contains(t, view, playingSymbol)
	assert.Contains(t, view, "2 tracks")
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 12)
}

func TestListKeysScrollLongQueue(t *testing.T) {
	svc := remote.NewMock()
	m := New(svc)
	m.SetHeight(10) // 6 track rows

	now := time.Now()
	tracks := make([]remote.Track, 20)
	for i := range tracks {
		tracks[i] = remote.Track{ID: fmt.Sprintf("t%d", i), Title: fmt.Sprintf("Track %02d", i)}
	}
	m.SetTracks(tracks, now)

	assert.False(t, m.HandleKey("j"), "closed panel ignores navigation keys")

	m.Toggle(now)
	settle(t, m, now)

	assert.True(t, m.HandleKey("G"))
	view := testutil.Strip(m.View())
	assert.Contains(t, view, "Track 19")
	assert.NotContains(t, view, "Track 00")

	assert.True(t, m.HandleKey("g"))
	view = testutil.Strip(m.View())
	assert.Contains(t, view, "Track 00")
	assert.NotContains(t, view, "Track 19")

	assert.False(t, m.HandleKey("u"), "unbound keys pass through to the app")
}

func TestCurrentTrackScrollsIntoView(t *testing.T) {
	svc := remote.NewMock()
	m := New(svc)
	m.SetHeight(10)

	now := time.Now()
	tracks := make([]remote.Track, 20)
	for i := range tracks {
		tracks[i] = remote.Track{ID: fmt.Sprintf("t%d", i), Title: fmt.Sprintf("Track %02d", i)}
	}
	m.SetTracks(tracks, now)
	m.SetCurrentTrack("t15")
	m.Toggle(now)
	settle(t, m, now)

	assert.Contains(t, testutil.Strip(m.View()), "Track 15")
}
