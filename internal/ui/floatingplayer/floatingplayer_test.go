package floatingplayer

import (
	"strings"
	"testing"
	"testing/synctest"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brazdilr/bardio/internal/catalog"
	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/player"
	"github.com/brazdilr/bardio/internal/ui/surface"
	"github.com/brazdilr/bardio/internal/ui/testutil"
)

type recorder struct{ controls []string }

func (r *recorder) Click(string, string)    {}
func (r *recorder) Control(button string) { r.controls = append(r.controls, button) }

type fixture struct {
	m      *Model
	h      *testutil.SectionHarness
	svc    *playback.Coordinator
	engine *player.Mock
	rec    *recorder
}

func withPlayer(t *testing.T, fn func(t *testing.T, f *fixture)) {
	t.Helper()
	synctest.Test(t, func(t *testing.T) {
		engine := player.NewMock()
		cat := catalog.New(catalog.Category{Key: "wedding", Tracks: []catalog.Track{
			{Title: "First dance", Locator: "/a.mp3", DurationHint: 90 * time.Second},
			{Title: "Vows", Locator: "/b.mp3"},
		}})
		svc := playback.New(engine, cat, "", zerolog.Nop())
		defer svc.Close()

		rec := &recorder{}
		m := New(svc, rec, 10)
		detach := svc.Attach(m)
		defer detach()
		synctest.Wait()

		fn(t, &fixture{m: m, h: testutil.NewSectionHarness(m, 56, Height(false)), svc: svc, engine: engine, rec: rec})
	})
}

// loaded reports a 100s track at 40s.
func (f *fixture) loaded() {
	f.engine.Emit(player.Event{Kind: player.EventMetadata, Duration: 100 * time.Second})
	f.engine.Emit(player.Event{Kind: player.EventProgress, Position: 40 * time.Second})
	synctest.Wait()
}

func TestView_ShowsTitleMetaAndProgress(t *testing.T) {
	withPlayer(t, func(t *testing.T, f *fixture) {
		view := f.h.View()

		assert.Contains(t, view, "First dance")
		assert.Contains(t, view, MetaLabel+" • 1:30")
		assert.Contains(t, view, "0:00")
		assert.Equal(t, Height(false), len(testutil.SplitLines(view)))
		assert.LessOrEqual(t, testutil.MeasureWidth(view), 56)
	})
}

func TestSelect_TogglesPlayback(t *testing.T) {
	withPlayer(t, func(t *testing.T, f *fixture) {
		f.h.PressAndRun("enter")
		synctest.Wait()

		assert.True(t, f.svc.State().IsPlaying)
		assert.Equal(t, 1, f.engine.PlayCalls())
		require.Len(t, f.rec.controls, 1)
	})
}

func TestSeekKeys(t *testing.T) {
	withPlayer(t, func(t *testing.T, f *fixture) {
		f.loaded()

		assert.Nil(t, f.h.PressAndRun("l"))
		synctest.Wait()
		f.h.PressAndRun("h")
		synctest.Wait()
		f.h.PressAndRun("7")
		synctest.Wait()

		seeks := f.engine.SeekCalls()
		require.Len(t, seeks, 3)
		assert.InDelta(t, 0.5, seeks[0], 1e-9)
		assert.InDelta(t, 0.4, seeks[1], 1e-9)
		assert.InDelta(t, 0.7, seeks[2], 1e-9)
		assert.Equal(t, 70*time.Second, f.svc.State().Position)
	})
}

func TestSeek_UnknownDurationReportsError(t *testing.T) {
	withPlayer(t, func(t *testing.T, f *fixture) {
		msg := f.h.PressAndRun("5")

		em, ok := msg.(surface.ErrorMsg)
		require.True(t, ok)
		assert.ErrorIs(t, em.Err, playback.ErrDurationUnknown)
		assert.Empty(t, f.engine.SeekCalls())
	})
}

func TestHide_CollapsesToShowButton(t *testing.T) {
	withPlayer(t, func(t *testing.T, f *fixture) {
		f.h.Press("x")

		assert.True(t, f.m.Hidden())
		view := f.h.View()
		assert.NotContains(t, view, "First dance")
		assert.Equal(t, 1, len(testutil.SplitLines(view)))

		// Transport and seek keys do nothing while collapsed.
		assert.Nil(t, f.h.Press("l"))
		f.h.Press("enter")

		assert.False(t, f.m.Hidden())
		assert.False(t, f.svc.State().IsPlaying)
		assert.Equal(t, []string{"hide-player", "show-player"}, f.rec.controls)
	})
}

func TestMeta(t *testing.T) {
	track := catalog.Track{Title: "Vows", DurationHint: 2 * time.Minute}

	assert.Equal(t, MetaLabel, Meta(playback.State{}))
	assert.Equal(t, MetaLabel+" • 2:00", Meta(playback.State{Track: &track}))

	s := playback.State{
		Track:    &track,
		Duration: 3*time.Minute + 5*time.Second,
		Info:     &player.TrackInfo{Artist: "Studio", Format: "MP3", Size: 2_000_000},
	}
	assert.Equal(t, MetaLabel+" • 3:05 · Studio · MP3 · 2.0 MB", Meta(s))
}

func TestProgressBar(t *testing.T) {
	s := playback.State{Position: 30 * time.Second, Duration: 60 * time.Second}

	bar := ProgressBar(s, 20)
	assert.True(t, strings.HasPrefix(bar, "0:30  "))
	assert.True(t, strings.HasSuffix(bar, "  1:00"))
	assert.Equal(t, 20, testutil.MeasureWidth(bar))
	assert.Equal(t, 4, strings.Count(bar, filledBlock))
	assert.Equal(t, 4, strings.Count(bar, emptyBlock))

	assert.Equal(t, "0:30 / 1:00", ProgressBar(s, 12))
}

func TestHeight(t *testing.T) {
	assert.Equal(t, 5, Height(false))
	assert.Equal(t, 1, Height(true))
}
