package console

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brazdilr/bardio/internal/catalog"
	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/player"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"", Command{}},
		{"   ", Command{}},
		{"play", Command{Name: CmdPlay}},
		{"  PAUSE ", Command{Name: CmdPause}},
		{"p", Command{Name: CmdToggle}},
		{"previous", Command{Name: CmdPrev}},
		{"exit", Command{Name: CmdQuit}},
		{"cat Wedding", Command{Name: CmdCat, Category: "wedding"}},
		{"track 2", Command{Name: CmdTrack, Track: 1}},
		{"seek 25", Command{Name: CmdSeek, Fraction: 0.25}},
		{"seek 100%", Command{Name: CmdSeek, Fraction: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"dance", ErrUnknownCommand},
		{"cat", ErrMissingArgument},
		{"track", ErrMissingArgument},
		{"track 0", ErrInvalidArgument},
		{"track two", ErrInvalidArgument},
		{"seek", ErrMissingArgument},
		{"seek 150", ErrInvalidArgument},
		{"seek -1", ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	help := Help()
	for _, name := range Commands {
		assert.Contains(t, help, name)
	}
}

// syncBuffer is a bytes.Buffer safe for the adapter goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Split(strings.TrimRight(b.buf.String(), "\n"), "\n")
}

type recordingTracker struct {
	controls []string
}

func (r *recordingTracker) Click(string, string) {}
func (r *recordingTracker) Control(button string) {
	r.controls = append(r.controls, button)
}

func testCatalog() *catalog.Catalog {
	return catalog.New(
		catalog.Category{Key: catalog.Pop, Tracks: []catalog.Track{
			{Title: "A", Locator: "a.mp3"},
			{Title: "B", Locator: "b.mp3"},
		}},
		catalog.Category{Key: "silence"},
	)
}

func withConsole(t *testing.T, fn func(t *testing.T, c *Console, out *syncBuffer, m *player.Mock)) {
	t.Helper()
	synctest.Test(t, func(t *testing.T) {
		m := player.NewMock()
		svc := playback.New(m, testCatalog(), "", zerolog.Nop())
		defer svc.Close()

		out := &syncBuffer{}
		c := New(svc, nil, out)
		detach := svc.Attach(c)
		defer detach()
		synctest.Wait()

		fn(t, c, out, m)
	})
}

func TestConsole_PrintsOnChange(t *testing.T) {
	withConsole(t, func(t *testing.T, c *Console, out *syncBuffer, m *player.Mock) {
		assert.Equal(t, []string{"▶ Pop · A (1/2)"}, out.Lines())

		assert.False(t, c.Line("play"))
		synctest.Wait()
		m.Emit(player.Event{Kind: player.EventProgress, Position: time.Second})
		m.Emit(player.Event{Kind: player.EventProgress, Position: 2 * time.Second})
		synctest.Wait()
		assert.False(t, c.Line("mute"))
		synctest.Wait()

		lines := out.Lines()
		assert.Equal(t, "⏸ Pop · A (1/2) [muted]", lines[len(lines)-1])
		for _, l := range lines {
			assert.NotContains(t, l, "0:0", "progress ticks do not print")
		}
	})
}

func TestConsole_Commands(t *testing.T) {
	withConsole(t, func(t *testing.T, c *Console, out *syncBuffer, m *player.Mock) {
		require.False(t, c.Line("track 2"))
		synctest.Wait()
		m.Emit(player.Event{Kind: player.EventMetadata, Duration: 100 * time.Second})
		synctest.Wait()
		require.False(t, c.Line("seek 50"))
		require.False(t, c.Line("status"))
		synctest.Wait()

		assert.Equal(t, []float64{0.5}, m.SeekCalls())
		lines := out.Lines()
		assert.Equal(t, "▶ Pop · B (2/2)  0:50 / 1:40", lines[len(lines)-1])

		require.False(t, c.Line("cat silence"))
		synctest.Wait()
		lines = out.Lines()
		assert.Equal(t, "▶ No samples in Silence", lines[len(lines)-1])

		assert.True(t, c.Line("quit"))
	})
}

func TestConsole_ErrorsArePrinted(t *testing.T) {
	withConsole(t, func(t *testing.T, c *Console, out *syncBuffer, _ *player.Mock) {
		c.Line("cat jazz")
		c.Line("dance")

		lines := out.Lines()
		assert.Contains(t, lines, "Failed to switch category: no such category")
		assert.Contains(t, lines, "unknown command: dance")
	})
}

func TestConsole_TracksControls(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		svc := playback.New(player.NewMock(), testCatalog(), "", zerolog.Nop())
		defer svc.Close()
		tr := &recordingTracker{}
		c := New(svc, tr, &syncBuffer{})

		c.Line("next")
		c.Line("status")
		c.Line("help")

		assert.Equal(t, []string{"console:next"}, tr.controls)
	})
}

func TestErrorLine(t *testing.T) {
	e := playback.ErrorEvent{
		Track:   &playback.Track{Title: "A"},
		Skipped: true,
		Err:     player.ErrMediaLoad,
	}
	assert.Equal(t, "! A: sample could not be loaded, skipping", ErrorLine(e))

	e = playback.ErrorEvent{Err: errors.New("boom")}
	assert.Equal(t, "! sample: boom", ErrorLine(e))
}
