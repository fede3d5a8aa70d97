package player

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrMediaLoad is returned (wrapped) when a source cannot be fetched or decoded.
	ErrMediaLoad = errors.New("media load failed")
	// ErrPlaybackRejected is returned (wrapped) when the audio output refuses to start.
	ErrPlaybackRejected = errors.New("playback rejected")
	// ErrUnloaded is returned by Play when the source was replaced or stopped
	// while Play was waiting for it.
	ErrUnloaded = errors.New("source unloaded")
)

// EventKind identifies an engine notification.
type EventKind int

const (
	// EventMetadata fires once per Load when the duration becomes known.
	EventMetadata EventKind = iota
	// EventProgress fires periodically while playing.
	EventProgress
	// EventEnded fires when the loaded source plays to its end.
	EventEnded
	// EventError fires when the loaded source fails to fetch or decode.
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventMetadata:
		return "metadata"
	case EventProgress:
		return "progress"
	case EventEnded:
		return "ended"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a notification about the currently loaded source.
// Events of a previous source are never delivered after Load returns.
type Event struct {
	Kind     EventKind
	Duration time.Duration // EventMetadata
	Position time.Duration // EventProgress
	Err      error         // EventError
}

// Interface is the single-source audio engine driven by the playback coordinator.
type Interface interface {
	// Load replaces the current source. Fetching and decoding continue in the
	// background; the result arrives as EventMetadata or EventError.
	Load(locator string)
	// Play starts or resumes the loaded source. It blocks until the source is
	// decoded and the output accepted it, ctx is done, or the source is replaced.
	Play(ctx context.Context) error
	Pause()
	Stop()
	// Seek jumps to a fraction of the duration, clamped to [0, 1].
	// No-op while the duration is unknown.
	Seek(fraction float64)
	SetMuted(muted bool)
	Muted() bool
	State() State
	Position() time.Duration
	// Duration returns 0 while unknown.
	Duration() time.Duration
	Info() *TrackInfo
	Events() <-chan Event
	Close()
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
