//go:build linux

package mpris

import (
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmercier/resound/internal/remote"
)

func playerWithMock() (*playerAdapter, *remote.Mock) {
	svc := remote.NewMock()
	svc.SetTargets(
		remote.Target{ID: "a", Name: "Bedroom", Available: true, State: remote.StatePlaying},
	)
	svc.Select("a")
	svc.SetTrack("a", &remote.Track{ID: "t1", Title: "Undertow", Artist: "Pale Crest", Duration: 3 * time.Minute})
	return &playerAdapter{service: svc}, svc
}

func TestPlaybackStatusFollowsTarget(t *testing.T) {
	p, svc := playerWithMock()

	status, err := p.PlaybackStatus()
	require.NoError(t, err)
	assert.Equal(t, types.PlaybackStatusPlaying, status)

	svc.SetTargets(remote.Target{ID: "a", Name: "Bedroom", Available: true, State: remote.StatePaused})
	status, _ = p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPaused, status)
}

func TestPlayPauseMapping(t *testing.T) {
	p, svc := playerWithMock()

	require.NoError(t, p.Pause())
	assert.Equal(t, []string{"playpause"}, svc.Commands, "pause toggles while playing")

	require.NoError(t, p.Play())
	assert.Equal(t, []string{"playpause"}, svc.Commands, "play is a no-op while already playing")
}

func TestSeekIsRelative(t *testing.T) {
	p, svc := playerWithMock()
	svc.SetPosition(60 * time.Second)

	require.NoError(t, p.Seek(types.Microseconds(5*time.Second/time.Microsecond)))
	require.Len(t, svc.SeekCalls, 1)
	assert.Equal(t, 65*time.Second, svc.SeekCalls[0])
}

func TestSeekClampsAtZero(t *testing.T) {
	p, svc := playerWithMock()
	svc.SetPosition(2 * time.Second)

	require.NoError(t, p.Seek(types.Microseconds(-10*time.Second/time.Microsecond)))
	require.Len(t, svc.SeekCalls, 1)
	assert.Equal(t, time.Duration(0), svc.SeekCalls[0])
}

func TestMetadataFromCurrentTrack(t *testing.T) {
	p, _ := playerWithMock()

	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "Undertow", meta.Title)
	assert.Equal(t, []string{"Pale Crest"}, meta.Artist)
	assert.NotEmpty(t, meta.TrackId)
}

func TestSetLoopStatusCyclesToRequested(t *testing.T) {
	p, svc := playerWithMock()

	require.NoError(t, p.SetLoopStatus(types.LoopStatusTrack))
	assert.Equal(t, remote.RepeatOne, svc.Mode().Repeat)

	require.NoError(t, p.SetLoopStatus(types.LoopStatusTrack))
	assert.Equal(t, remote.RepeatOne, svc.Mode().Repeat, "already matching, no extra cycles")
}

func TestSetShuffleOnlyTogglesOnChange(t *testing.T) {
	p, svc := playerWithMock()

	require.NoError(t, p.SetShuffle(true))
	require.NoError(t, p.SetShuffle(true))
	assert.Equal(t, []string{"shuffle"}, svc.Commands)
}

func TestVolumeScaling(t *testing.T) {
	p, svc := playerWithMock()

	vol, err := p.Volume()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, vol, 0.001)

	require.NoError(t, p.SetVolume(0.8))
	assert.Equal(t, 80, svc.Volume())
}
