package playback

import (
	"slices"
	"time"

	"github.com/brazdilr/bardio/internal/player"
)

// Status is the coarse transport status, as desktop integrations report it.
type Status int

const (
	StatusStopped Status = iota
	StatusPlaying
	StatusPaused
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusStopped:
		return "Stopped"
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// State is an immutable snapshot of the playback state. Slices are shared
// between snapshots and must not be modified.
type State struct {
	Category   string
	Categories []string
	Tracks     []Track
	Index      int    // -1 when the category is empty
	Track      *Track // nil when the category is empty

	IsPlaying bool // playback confirmed by the engine
	Pending   bool // a play request is awaiting confirmation
	IsMuted   bool

	Position time.Duration
	Duration time.Duration // 0 while unknown

	// Info is what the engine read from the media; nil until its metadata
	// arrives for the current track.
	Info *player.TrackInfo

	// Version increases with every published snapshot.
	Version uint64
}

// HasTrack reports whether a track is addressable.
func (s State) HasTrack() bool {
	return s.Track != nil
}

// Empty reports whether the active category has no tracks.
func (s State) Empty() bool {
	return len(s.Tracks) == 0
}

// Active reports whether playback is running or about to.
// Surfaces show the pause control when Active.
func (s State) Active() bool {
	return s.IsPlaying || s.Pending
}

// Progress returns the position as a fraction of the duration, or 0 while
// the duration is unknown.
func (s State) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return max(0, min(1, float64(s.Position)/float64(s.Duration)))
}

// Status returns the transport status.
func (s State) Status() Status {
	switch {
	case !s.HasTrack():
		return StatusStopped
	case s.Active():
		return StatusPlaying
	case s.Position > 0:
		return StatusPaused
	default:
		return StatusStopped
	}
}

// DisplayDuration returns the known duration, falling back to the track's hint.
func (s State) DisplayDuration() time.Duration {
	if s.Duration > 0 || s.Track == nil {
		return s.Duration
	}
	return s.Track.DurationHint
}

// sameAs compares everything but Version.
func (s State) sameAs(o State) bool {
	if (s.Track == nil) != (o.Track == nil) {
		return false
	}
	if s.Track != nil && *s.Track != *o.Track {
		return false
	}
	return s.Category == o.Category &&
		s.Index == o.Index &&
		s.IsPlaying == o.IsPlaying &&
		s.Pending == o.Pending &&
		s.IsMuted == o.IsMuted &&
		s.Position == o.Position &&
		s.Duration == o.Duration &&
		s.Info == o.Info &&
		slices.Equal(s.Categories, o.Categories) &&
		slices.Equal(s.Tracks, o.Tracks)
}
