// Package errmsg turns errors into the short messages shown to visitors.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/player"
)

// Op represents an operation that can fail.
type Op string

const (
	// Playback operations
	OpPlaybackStart  Op = "start playback"
	OpPlaybackPause  Op = "pause playback"
	OpPlaybackSkip   Op = "change track"
	OpPlaybackSeek   Op = "seek"
	OpPlaybackMute   Op = "toggle mute"
	OpTrackSelect    Op = "select track"
	OpCategorySelect Op = "switch category"

	// Startup
	OpConfigLoad    Op = "load configuration"
	OpAnalyticsOpen Op = "open analytics store"
	OpMPRISStart    Op = "start MPRIS"
	OpInitialize    Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %s", op, Describe(err))
}

// Describe turns known playback errors into short explanations.
// Other errors are returned verbatim.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, playback.ErrEmptyQueue):
		return "no samples in this category"
	case errors.Is(err, playback.ErrUnknownCategory):
		return "no such category"
	case errors.Is(err, playback.ErrIndexOutOfRange):
		return "no such track"
	case errors.Is(err, playback.ErrDurationUnknown):
		return "track length not known yet"
	case errors.Is(err, playback.ErrNoLocator):
		return "sample is missing"
	case errors.Is(err, playback.ErrClosed):
		return "player is shutting down"
	case errors.Is(err, player.ErrPlaybackRejected):
		return "audio output unavailable"
	case errors.Is(err, player.ErrMediaLoad):
		return "sample could not be loaded"
	default:
		return err.Error()
	}
}

// Event describes a playback failure for a status line.
func Event(e playback.ErrorEvent) string {
	title := "sample"
	if e.Track != nil && e.Track.Title != "" {
		title = e.Track.Title
	}
	msg := fmt.Sprintf("%s: %s", title, Describe(e.Err))
	if e.Skipped {
		msg += ", skipping"
	}
	return msg
}
