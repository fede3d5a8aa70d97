package errmsg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/player"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		err  error
		want string
	}{
		{"nil error", OpPlaybackStart, nil, ""},
		{"unknown error is kept", OpConfigLoad, errors.New("permission denied"), "Failed to load configuration: permission denied"},
		{"empty queue", OpPlaybackStart, playback.ErrEmptyQueue, "Failed to start playback: no samples in this category"},
		{"wrapped engine error", OpPlaybackStart, fmt.Errorf("%w: HTTP 404", player.ErrMediaLoad), "Failed to start playback: sample could not be loaded"},
		{"duration unknown", OpPlaybackSeek, playback.ErrDurationUnknown, "Failed to seek: track length not known yet"},
		{"unknown category", OpCategorySelect, fmt.Errorf("%w: %q", playback.ErrUnknownCategory, "jazz"), "Failed to switch category: no such category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.op, tt.err))
		})
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "", Describe(nil))
	assert.Equal(t, "no such track", Describe(playback.ErrIndexOutOfRange))
	assert.Equal(t, "sample is missing", Describe(playback.ErrNoLocator))
	assert.Equal(t, "player is shutting down", Describe(playback.ErrClosed))
	assert.Equal(t, "audio output unavailable", Describe(fmt.Errorf("start: %w", player.ErrPlaybackRejected)))
}

func TestEvent(t *testing.T) {
	e := playback.ErrorEvent{
		Kind:    playback.PlaybackRejected,
		Track:   &playback.Track{Title: "Pop song #2"},
		Skipped: true,
		Err:     player.ErrPlaybackRejected,
	}
	assert.Equal(t, "Pop song #2: audio output unavailable, skipping", Event(e))

	e.Track = &playback.Track{}
	e.Skipped = false
	assert.Equal(t, "sample: audio output unavailable", Event(e))
}
