package analytics

import (
	"context"
	"strconv"

	"github.com/brazdilr/bardio/internal/playback"
)

// Watch tracks playback milestones from a coordinator subscription until ctx
// is cancelled or the subscription ends: track_started whenever a track
// begins playing, playback_error for every failed load or start.
func (t *Tracker) Watch(ctx context.Context, sub *playback.Subscription) {
	var (
		playing  bool
		category string
		index    = -1
	)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Done:
			return
		case st := <-sub.States:
			started := st.IsPlaying && st.HasTrack() &&
				(!playing || st.Category != category || st.Index != index)
			playing = st.IsPlaying
			category = st.Category
			index = st.Index
			if started {
				t.Track(TrackStarted, map[string]string{
					"category": st.Category,
					"index":    strconv.Itoa(st.Index),
					"title":    st.Track.Title,
				})
			}
		case e := <-sub.Errors:
			props := map[string]string{
				"kind":     e.Kind.String(),
				"category": e.Category,
				"index":    strconv.Itoa(e.Index),
				"skipped":  strconv.FormatBool(e.Skipped),
			}
			if e.Track != nil {
				props["title"] = e.Track.Title
			}
			if e.Err != nil {
				props["error"] = e.Err.Error()
			}
			t.Track(PlaybackError, props)
		}
	}
}
