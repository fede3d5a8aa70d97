package playback

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscription_Delivers(t *testing.T) {
	sub := newSubscription()

	sub.sendState(State{Category: "pop", Version: 1})
	sub.sendTrack(TrackChange{Index: 1})
	sub.sendError(ErrorEvent{Kind: PlaybackRejected, Err: errors.New("denied")})

	assert.Equal(t, "pop", (<-sub.States).Category)
	assert.Equal(t, 1, (<-sub.TrackChanged).Index)
	assert.Equal(t, PlaybackRejected, (<-sub.Errors).Kind)
}

func TestSubscription_StatesKeepOnlyLatest(t *testing.T) {
	sub := newSubscription()

	for v := uint64(1); v <= 10; v++ {
		sub.sendState(State{Version: v})
	}

	require.Len(t, sub.States, 1)
	assert.Equal(t, uint64(10), (<-sub.States).Version)
}

func TestSubscription_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	for i := range queueDepth + 5 {
		sub.sendTrack(TrackChange{Index: i})
		sub.sendError(ErrorEvent{Index: i})
	}

	assert.Len(t, sub.TrackChanged, queueDepth)
	assert.Len(t, sub.Errors, queueDepth)
	assert.Equal(t, 0, (<-sub.TrackChanged).Index, "the oldest events are kept")
}

func TestSubscription_CloseIsIdempotent(t *testing.T) {
	sub := newSubscription()

	sub.close()
	sub.close()

	select {
	case <-sub.Done:
	default:
		t.Fatal("Done should be closed")
	}
}
