package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tracks(titles ...string) []Track {
	out := make([]Track, len(titles))
	for i, title := range titles {
		out[i] = Track{Title: title, Locator: "/" + title + ".mp3"}
	}
	return out
}

func title(t *Track) string {
	if t == nil {
		return ""
	}
	return t.Title
}

func TestQueue_Empty(t *testing.T) {
	q := New()

	assert.True(t, q.Empty())
	assert.Equal(t, -1, q.Index())
	assert.Nil(t, q.Current())
	assert.Nil(t, q.Next())
	assert.Nil(t, q.Previous())
	assert.Nil(t, q.JumpTo(0))
	assert.Empty(t, q.Tracks())
}

func TestQueue_Replace(t *testing.T) {
	q := New()

	assert.Equal(t, "a", title(q.Replace(tracks("a", "b")...)))
	assert.Equal(t, 0, q.Index())
	assert.Equal(t, 2, q.Len())

	q.Next()
	assert.Equal(t, "x", title(q.Replace(tracks("x")...)), "replace resets the cursor")
	assert.Equal(t, 0, q.Index())

	assert.Nil(t, q.Replace())
	assert.Equal(t, -1, q.Index())
	assert.True(t, q.Empty())
}

func TestQueue_ReplaceCopies(t *testing.T) {
	src := tracks("a", "b")
	q := New()
	q.Replace(src...)

	src[0].Title = "changed"
	assert.Equal(t, "a", title(q.Current()))

	out := q.Tracks()
	out[1].Title = "changed"
	assert.Equal(t, "b", q.Tracks()[1].Title)
}

func TestQueue_NextWraps(t *testing.T) {
	q := New()
	q.Replace(tracks("a", "b", "c")...)

	var got []string
	for range 4 {
		got = append(got, title(q.Next()))
	}
	assert.Equal(t, []string{"b", "c", "a", "b"}, got)
}

func TestQueue_PreviousWraps(t *testing.T) {
	q := New()
	q.Replace(tracks("a", "b", "c")...)

	assert.Equal(t, "c", title(q.Previous()))
	assert.Equal(t, "b", title(q.Previous()))
	assert.Equal(t, 1, q.Index())
}

func TestQueue_SingleTrack(t *testing.T) {
	q := New()
	q.Replace(tracks("solo")...)

	assert.Equal(t, "solo", title(q.Next()))
	assert.Equal(t, "solo", title(q.Previous()))
	assert.Equal(t, 0, q.Index())
}

func TestQueue_JumpTo(t *testing.T) {
	q := New()
	q.Replace(tracks("a", "b", "c")...)

	require.Equal(t, "c", title(q.JumpTo(2)))
	assert.Equal(t, 2, q.Index())

	assert.Nil(t, q.JumpTo(3))
	assert.Nil(t, q.JumpTo(-1))
	assert.Equal(t, 2, q.Index(), "invalid jumps keep the cursor")
}
