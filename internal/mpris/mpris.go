//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/lmercier/resound/internal/remote"
)

// Adapter exposes the selected remote target over MPRIS on D-Bus, so
// desktop media keys drive whatever target the client is pointed at.
type Adapter struct {
	service remote.Service
	server  *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(service remote.Service) (*Adapter, error) {
	a := &Adapter{service: service}

	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{service: service}

	a.server = server.NewServer("resound", rootAdapter, playerAdapter)

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil // Track list interface not implemented
}

func (r *rootAdapter) Identity() (string, error) {
	return "Resound", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{}, nil // OpenUri not supported
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and optional interfaces.
// Commands are fire-and-forget like the rest of the UI: the adapter
// reports success and lets failures surface through the event stream.
type playerAdapter struct {
	service remote.Service
}

func (p *playerAdapter) Next() error {
	p.service.Next()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.service.Previous()
	return nil
}

func (p *playerAdapter) Pause() error {
	if p.playing() {
		p.service.PlayPause()
	}
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.service.PlayPause()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.service.Stop()
	return nil
}

func (p *playerAdapter) Play() error {
	if !p.playing() {
		p.service.PlayPause()
	}
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	target := p.service.SelectedTarget()
	if target == nil {
		return nil
	}
	pos := p.service.Position() + time.Duration(offset)*time.Microsecond
	if pos < 0 {
		pos = 0
	}
	p.service.Seek(target.ID, pos)
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	target := p.service.SelectedTarget()
	if target == nil {
		return nil
	}
	p.service.Seek(target.ID, time.Duration(position)*time.Microsecond)
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	target := p.service.SelectedTarget()
	if target == nil {
		return types.PlaybackStatusStopped, nil
	}
	switch target.State {
	case remote.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case remote.StatePaused:
		return types.PlaybackStatusPaused, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	track := p.service.CurrentTrack()
	if track == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(track.ID)),
		Length:  types.Microseconds(track.Duration.Microseconds()),
		Title:   track.Title,
		Artist:  []string{track.Artist},
		Album:   track.Album,
	}

	if url := p.service.ArtworkURL(track, 512); url != "" {
		meta.ArtUrl = url
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return float64(p.service.Volume()) / 100, nil
}

func (p *playerAdapter) SetVolume(volume float64) error {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	p.service.SetVolume(int(volume * 100))
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.service.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.service.Connected(), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.service.Connected(), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.service.SelectedTarget() != nil, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.service.CurrentTrack() != nil, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	switch p.service.Mode().Repeat {
	case remote.RepeatOne:
		return types.LoopStatusTrack, nil
	case remote.RepeatAll:
		return types.LoopStatusPlaylist, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// The server only exposes a cycle command, so the adapter advances the
// mode until it matches the requested status.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	var want remote.RepeatMode
	switch status {
	case types.LoopStatusTrack:
		want = remote.RepeatOne
	case types.LoopStatusPlaylist:
		want = remote.RepeatAll
	default:
		want = remote.RepeatOff
	}

	mode := p.service.Mode().Repeat
	for i := 0; i < 2 && mode != want; i++ {
		p.service.CycleRepeat()
		mode = mode.Cycle()
	}
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.service.Mode().Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	if p.service.Mode().Shuffle != shuffle {
		p.service.ToggleShuffle()
	}
	return nil
}

func (p *playerAdapter) playing() bool {
	target := p.service.SelectedTarget()
	return target != nil && target.State == remote.StatePlaying
}

func formatTrackID(id string) string {
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
