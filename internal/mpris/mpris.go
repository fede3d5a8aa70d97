//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog"

	"github.com/brazdilr/bardio/internal/catalog"
	"github.com/brazdilr/bardio/internal/playback"
)

// Adapter exposes the coordinator as an MPRIS player over D-Bus, so desktop
// media keys and applets drive the same playback as the terminal surfaces.
type Adapter struct {
	server *server.Server
	player *playerAdapter
	detach func()
	log    zerolog.Logger
}

// New creates and starts the MPRIS adapter.
func New(svc playback.Service, log zerolog.Logger) (*Adapter, error) {
	p := &playerAdapter{service: svc}
	a := &Adapter{
		player: p,
		server: server.NewServer("bardio", rootAdapter{}, p),
		log:    log.With().Str("component", "mpris").Logger(),
	}
	a.detach = svc.Attach(p)

	// Start the server in background
	go func() {
		if err := a.server.Listen(); err != nil {
			a.log.Warn().Err(err).Msg("mpris server stopped")
		}
	}()

	return a, nil
}

// Close detaches from the coordinator and releases D-Bus resources.
func (a *Adapter) Close() error {
	a.detach()
	return a.server.Stop()
}

// rootAdapter answers the MediaPlayer2 interface. The app cannot be
// raised or quit from the desktop.
type rootAdapter struct{}

func (rootAdapter) Raise() error                { return nil }
func (rootAdapter) Quit() error                 { return nil }
func (rootAdapter) CanQuit() (bool, error)      { return false, nil }
func (rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (rootAdapter) Identity() (string, error)   { return "bardio", nil }

func (rootAdapter) SupportedUriSchemes() ([]string, error) { //nolint:revive // interface name
	return []string{"file", "http", "https"}, nil
}

func (rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter. Property reads
// come from the last rendered snapshot; methods issue coordinator commands.
type playerAdapter struct {
	service playback.Service

	mu    sync.RWMutex
	state playback.State
}

// Render implements playback.Adapter.
func (p *playerAdapter) Render(s playback.State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = s
}

func (p *playerAdapter) snapshot() playback.State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *playerAdapter) Next() error      { return p.service.Next() }
func (p *playerAdapter) Previous() error  { return p.service.Previous() }
func (p *playerAdapter) Play() error      { return p.service.Play() }
func (p *playerAdapter) Pause() error     { return p.service.Pause() }
func (p *playerAdapter) PlayPause() error { return p.service.TogglePlayPause() }

// Stop pauses. A sample has no stopped state distinct from paused.
func (p *playerAdapter) Stop() error { return p.service.Pause() }

// Seek moves relative to the current position.
func (p *playerAdapter) Seek(offset types.Microseconds) error {
	s := p.snapshot()
	target := s.Position + time.Duration(offset)*time.Microsecond
	return p.seekTo(s, target)
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.seekTo(p.snapshot(), time.Duration(position)*time.Microsecond)
}

func (p *playerAdapter) seekTo(s playback.State, target time.Duration) error {
	if s.Duration <= 0 {
		return playback.ErrDurationUnknown
	}
	return p.service.SeekToFraction(float64(target) / float64(s.Duration))
}

func (*playerAdapter) OpenUri(string) error { return nil } //nolint:revive // interface name

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.snapshot().Status() {
	case playback.StatusPlaying:
		return types.PlaybackStatusPlaying, nil
	case playback.StatusPaused:
		return types.PlaybackStatusPaused, nil
	default:
		return types.PlaybackStatusStopped, nil
	}
}

// Samples always play at normal speed.
func (*playerAdapter) Rate() (float64, error)        { return 1, nil }
func (*playerAdapter) MinimumRate() (float64, error) { return 1, nil }
func (*playerAdapter) MaximumRate() (float64, error) { return 1, nil }
func (*playerAdapter) SetRate(float64) error         { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.snapshot()
	if !s.HasTrack() {
		return types.Metadata{}, nil
	}

	artist := "bardio"
	if s.Info != nil && s.Info.Artist != "" {
		artist = s.Info.Artist
	}
	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(s.Category, s.Index)),
		Length:      types.Microseconds(s.DisplayDuration().Microseconds()),
		Title:       s.Track.Title,
		Artist:      []string{artist},
		Album:       catalog.Label(s.Category),
		TrackNumber: s.Index + 1,
	}

	if art := FindCoverArt(s.Track.Locator); art != "" {
		meta.ArtUrl = "file://" + art
	}

	return meta, nil
}

// Volume reports mute as volume 0.
func (p *playerAdapter) Volume() (float64, error) {
	if p.snapshot().IsMuted {
		return 0, nil
	}
	return 1.0, nil
}

// SetVolume maps 0 to mute and anything else to unmute.
func (p *playerAdapter) SetVolume(v float64) error {
	if (v <= 0) != p.snapshot().IsMuted {
		return p.service.ToggleMute()
	}
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.snapshot().Position.Microseconds(), nil
}

// The queue is circular, so next and previous exist whenever it is not empty.
func (p *playerAdapter) CanGoNext() (bool, error)     { return !p.snapshot().Empty(), nil }
func (p *playerAdapter) CanGoPrevious() (bool, error) { return !p.snapshot().Empty(), nil }
func (p *playerAdapter) CanPlay() (bool, error)       { return !p.snapshot().Empty(), nil }
func (p *playerAdapter) CanSeek() (bool, error)       { return p.snapshot().Duration > 0, nil }
func (*playerAdapter) CanPause() (bool, error)        { return true, nil }
func (*playerAdapter) CanControl() (bool, error)      { return true, nil }

func formatTrackID(category string, index int) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s/%d", category, index)
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
