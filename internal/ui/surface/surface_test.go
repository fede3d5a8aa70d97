package surface

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brazdilr/bardio/internal/errmsg"
	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/ui/action"
)

func TestBase_RenderKeepsNewest(t *testing.T) {
	var b Base
	redraws := 0
	b.OnRender(func() { redraws++ })

	b.Render(playback.State{Category: "pop", Version: 2})
	b.Render(playback.State{Category: "wedding", Version: 1})

	assert.Equal(t, "pop", b.Snapshot().Category)
	assert.Equal(t, 1, redraws)

	b.Render(playback.State{Category: "acoustic", Version: 3})
	assert.Equal(t, "acoustic", b.Snapshot().Category)
	assert.Equal(t, 2, redraws)
}

func TestBase_UnversionedStateAlwaysApplies(t *testing.T) {
	var b Base
	b.Render(playback.State{Category: "pop", Version: 5})
	b.Render(playback.State{Category: "wedding"})

	assert.Equal(t, "wedding", b.Snapshot().Category)
}

func TestClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{9 * time.Second, "0:09"},
		{3*time.Minute + 12*time.Second, "3:12"},
		{61*time.Minute + time.Second, "61:01"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Clock(tt.d))
		})
	}
}

func TestStepTab(t *testing.T) {
	keys := []string{"pop", "acoustic", "wedding"}

	assert.Equal(t, "acoustic", StepTab(keys, "pop", 1))
	assert.Equal(t, "pop", StepTab(keys, "wedding", 1))
	assert.Equal(t, "wedding", StepTab(keys, "pop", -1))
	assert.Equal(t, "acoustic", StepTab(keys, "jazz", 1), "unknown key steps from the first tab")
	assert.Equal(t, "", StepTab(nil, "pop", 1))
}

func TestTabIndex(t *testing.T) {
	keys := []string{"pop", "acoustic"}

	assert.Equal(t, 1, TabIndex(keys, "acoustic"))
	assert.Equal(t, 0, TabIndex(keys, "jazz"))
}

func TestTabs_MarksActiveAndCursor(t *testing.T) {
	keys := []string{"pop", "children"}

	plain := stripANSI(Tabs(keys, "pop", "pop"))
	assert.Contains(t, plain, "[Pop]")
	assert.Contains(t, plain, " Children's ")
	assert.Contains(t, plain, "│")

	plain = stripANSI(Tabs(keys, "pop", "children"))
	assert.Contains(t, plain, " Pop ")
	assert.Contains(t, plain, "[Children's]")
}

func TestRun(t *testing.T) {
	boom := errors.New("boom")

	msg := Run(errmsg.OpPlaybackSkip, func() error { return boom })()
	em, ok := msg.(ErrorMsg)
	require.True(t, ok)
	assert.Equal(t, errmsg.OpPlaybackSkip, em.Op)
	assert.ErrorIs(t, em.Err, boom)
	assert.True(t, strings.HasPrefix(em.Text(), "Failed to "))

	assert.Nil(t, Run(errmsg.OpPlaybackSkip, func() error { return nil })())
}

func TestErrorMsg_Text(t *testing.T) {
	msg := ErrorMsg{Op: errmsg.OpCategorySelect, Err: playback.ErrUnknownCategory}
	assert.Equal(t, errmsg.Format(errmsg.OpCategorySelect, playback.ErrUnknownCategory), msg.Text())
}

func TestIsPlayback(t *testing.T) {
	for _, a := range []keymap.Action{
		keymap.ActionPlayPause, keymap.ActionNextTrack,
		keymap.ActionPrevTrack, keymap.ActionToggleMute,
	} {
		assert.True(t, IsPlayback(a), a)
	}
	assert.False(t, IsPlayback(keymap.ActionSelect))
	assert.False(t, IsPlayback(keymap.ActionSeekBack))
}

func TestPlayback_NonTransportIsNil(t *testing.T) {
	assert.Nil(t, Playback(nil, keymap.ActionSelect))
	assert.Nil(t, Playback(nil, keymap.ActionQuit))
}

func TestNavigate(t *testing.T) {
	msg := Navigate("hero", "contact")()

	am, ok := msg.(action.Msg)
	require.True(t, ok)
	assert.Equal(t, "hero", am.Source)
	assert.Equal(t, action.GoTo{Anchor: "contact"}, am.Action)
}

type countingTracker struct{ controls int }

func (c *countingTracker) Click(string, string) {}
func (c *countingTracker) Control(string)       { c.controls++ }

func TestOrNop(t *testing.T) {
	assert.Equal(t, NopTracker{}, OrNop(nil))

	c := &countingTracker{}
	OrNop(c).Control("play")
	assert.Equal(t, 1, c.controls)
}

func stripANSI(s string) string {
	var b strings.Builder
	esc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			esc = true
		case esc:
			if r == 'm' {
				esc = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
