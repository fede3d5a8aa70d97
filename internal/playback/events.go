package playback

import (
	"errors"

	"github.com/brazdilr/bardio/internal/player"
)

// TrackChange is emitted when the selected track changes, whether by a
// command, a category switch, or automatic advance.
//
// The app handles track-related side effects (notifications, analytics)
// in response to this event. Playing tells whether the change happened
// with playback running or requested.
type TrackChange struct {
	Previous      *Track
	Current       *Track
	PreviousIndex int
	Index         int
	Category      string
	Playing       bool
}

// ErrorKind classifies engine failures.
type ErrorKind int

const (
	// MediaLoadFailed covers missing locators, network and decode failures.
	MediaLoadFailed ErrorKind = iota
	// PlaybackRejected means the audio output refused to start.
	PlaybackRejected
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case MediaLoadFailed:
		return "MediaLoadFailed"
	case PlaybackRejected:
		return "PlaybackRejected"
	default:
		return "Unknown"
	}
}

func classify(err error) ErrorKind {
	if errors.Is(err, player.ErrPlaybackRejected) {
		return PlaybackRejected
	}
	return MediaLoadFailed
}

// ErrorEvent is emitted when a track fails to load or play.
type ErrorEvent struct {
	Kind     ErrorKind
	Category string
	Index    int
	Track    *Track
	Skipped  bool // playback moved on to the next track
	Err      error
}
