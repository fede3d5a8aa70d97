// Package playlist holds the tracks of the selected category and the
// cursor that walks them.
package playlist

import "github.com/brazdilr/bardio/internal/catalog"

type Track = catalog.Track

// Queue is an ordered, immutable snapshot of a category's tracks with a
// cursor that wraps at both ends. The cursor is -1 only when the queue is
// empty.
type Queue struct {
	tracks []Track
	cur    int
}

func New() *Queue {
	return &Queue{cur: -1}
}

// Replace swaps in a copy of tracks and points the cursor at the first one.
func (q *Queue) Replace(tracks ...Track) *Track {
	q.tracks = append([]Track(nil), tracks...)
	q.cur = -1
	if len(q.tracks) > 0 {
		q.cur = 0
	}
	return q.Current()
}

func (q *Queue) Current() *Track {
	if q.cur < 0 {
		return nil
	}
	return &q.tracks[q.cur]
}

func (q *Queue) Index() int { return q.cur }

func (q *Queue) Len() int { return len(q.tracks) }

func (q *Queue) Empty() bool { return len(q.tracks) == 0 }

// Tracks returns a copy of the queued tracks.
func (q *Queue) Tracks() []Track {
	return append([]Track(nil), q.tracks...)
}

// Next advances the cursor, wrapping from the last track to the first.
func (q *Queue) Next() *Track { return q.step(1) }

// Previous moves the cursor back, wrapping from the first track to the last.
func (q *Queue) Previous() *Track { return q.step(-1) }

func (q *Queue) step(delta int) *Track {
	n := len(q.tracks)
	if n == 0 {
		return nil
	}
	q.cur = ((q.cur+delta)%n + n) % n
	return q.Current()
}

// JumpTo moves the cursor to index. Out-of-range indices leave it alone
// and return nil.
func (q *Queue) JumpTo(index int) *Track {
	if index < 0 || index >= len(q.tracks) {
		return nil
	}
	q.cur = index
	return q.Current()
}
