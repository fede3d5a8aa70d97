package app

import (
	"strings"
	"sync"
	"testing"
	"testing/synctest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brazdilr/bardio/internal/analytics"
	"github.com/brazdilr/bardio/internal/catalog"
	"github.com/brazdilr/bardio/internal/contact"
	"github.com/brazdilr/bardio/internal/errmsg"
	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/player"
	"github.com/brazdilr/bardio/internal/ui/surface"
	"github.com/brazdilr/bardio/internal/ui/testutil"
	"github.com/brazdilr/bardio/internal/ui/topbar"
)

type click struct{ text, href string }

type event struct {
	name  string
	props map[string]string
}

type recordingTracker struct {
	mu       sync.Mutex
	clicks   []click
	controls []string
	events   []event
}

func (r *recordingTracker) Click(text, href string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clicks = append(r.clicks, click{text, href})
}

func (r *recordingTracker) Control(button string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.controls = append(r.controls, button)
}

func (r *recordingTracker) Track(name string, props map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{name, props})
}

type harness struct {
	t       *testing.T
	m       Model
	svc     *playback.Coordinator
	engine  *player.Mock
	tracker *recordingTracker
	quit    bool
}

// withApp runs fn in a synctest bubble with an 80x24 app over a mock engine.
func withApp(t *testing.T, fn func(t *testing.T, h *harness)) {
	t.Helper()
	synctest.Test(t, func(t *testing.T) {
		engine := player.NewMock()
		svc := playback.New(engine, catalog.Default(), "", zerolog.Nop())
		defer svc.Close()

		tracker := &recordingTracker{}
		m := New(Options{Service: svc, Tracker: tracker, SeekStep: 5})
		defer m.Close()
		synctest.Wait()

		h := &harness{t: t, m: m, svc: svc, engine: engine, tracker: tracker}
		h.send(tea.WindowSizeMsg{Width: 80, Height: 24})
		fn(t, h)
	})
}

func (h *harness) send(msg tea.Msg) {
	model, cmd := h.m.Update(msg)
	h.m = model.(Model)
	h.run(cmd)
}

// run executes cmd and feeds its messages back until the chain ends.
func (h *harness) run(cmd tea.Cmd) {
	for range 200 {
		if cmd == nil {
			return
		}
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
			return
		}
		var model tea.Model
		model, cmd = h.m.Update(msg)
		h.m = model.(Model)
	}
}

func (h *harness) press(keys ...string) {
	for _, k := range keys {
		h.send(testutil.Key(k))
	}
	synctest.Wait()
	// Let surfaces pick up the published state.
	h.send(RedrawMsg{})
}

func (h *harness) view() string {
	return testutil.StripANSI(h.m.View())
}

func TestNew_HeroFocused(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		assert.Equal(t, AnchorHome, h.m.Focused())

		view := h.view()
		assert.Contains(t, view, headline)
		assert.Contains(t, view, "Play samples")
		assert.Contains(t, view, "Menu")
		assert.Equal(t, 24, testutil.CountLines(h.m.View()))
	})
}

func TestSpaceTogglesPlayback(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press(" ")

		assert.True(t, h.svc.State().IsPlaying)
		assert.Equal(t, 1, h.engine.PlayCalls())
		assert.Contains(t, h.view(), "Pause")
		assert.Contains(t, h.tracker.controls, "play_pause")

		h.press(" ")
		assert.False(t, h.svc.State().IsPlaying)
	})
}

func TestPlaybackKeysEverywhere(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press("tab", ">", "M")

		s := h.svc.State()
		assert.Equal(t, 1, s.Index)
		assert.True(t, s.IsMuted)
		assert.Equal(t, AnchorSamples, h.m.Focused())
	})
}

func TestTabCyclesFocus(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press("tab")
		assert.Equal(t, AnchorSamples, h.m.Focused())
		h.press("tab")
		assert.Equal(t, AnchorFAQ, h.m.Focused())
		h.press("tab")
		assert.Equal(t, AnchorContact, h.m.Focused())

		// Tab walks the form fields before leaving it.
		h.press("tab", "tab", "tab")
		assert.Equal(t, AnchorContact, h.m.Focused())
		h.press("tab")
		assert.Equal(t, "player", h.m.Focused())
		h.press("tab")
		assert.Equal(t, "topbar", h.m.Focused())
	})
}

func TestShiftTabWraps(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press("shift+tab")
		assert.Equal(t, "topbar", h.m.Focused())
		h.press("shift+tab")
		assert.Equal(t, "player", h.m.Focused())
		h.press("shift+tab")
		assert.Equal(t, AnchorContact, h.m.Focused())
		assert.Equal(t, 3, h.m.form.Field(), "entered from below at the send button")
	})
}

func TestHeroOrderScrollsToContact(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press("l", "enter")

		assert.Equal(t, AnchorContact, h.m.Focused())
		assert.Positive(t, h.m.page.Offset())
		assert.False(t, h.m.page.Animating())
		assert.Equal(t, []click{{"Order a song", "#contact"}}, h.tracker.clicks)
	})
}

func TestMenuNavigation(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press("m")
		require.True(t, h.m.menu.IsOpen())
		assert.Contains(t, h.view(), "About")

		h.press("j", "j", "enter")

		assert.False(t, h.m.menu.IsOpen())
		top, ok := h.m.page.AnchorTop(AnchorAbout)
		require.True(t, ok)
		assert.Equal(t, top-1, h.m.page.Offset())
		assert.Equal(t, AnchorHome, h.m.Focused(), "about has no focusable section")
		assert.Equal(t, []click{{"About", "#about"}}, h.tracker.clicks)
		assert.Equal(t, []string{"menu"}, h.tracker.controls)
	})
}

func TestMenuEscapeCloses(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press("m", "esc")
		assert.False(t, h.m.menu.IsOpen())
		assert.Empty(t, h.tracker.clicks)
	})
}

func TestContactFormTypingAndSubmit(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press("tab", "tab", "tab")
		require.Equal(t, AnchorContact, h.m.Focused())

		// Playback and quit keys are text while typing.
		h.press("A", "n", "n", " ", "q")
		assert.False(t, h.quit)
		assert.Equal(t, 0, h.engine.PlayCalls())
		assert.Equal(t, "Ann q", h.m.form.Form().Name)

		h.press("ctrl+s")
		require.NotNil(t, h.m.alert)
		assert.Equal(t, contact.FillAllFields, h.m.alert.Content)
		assert.Contains(t, h.view(), contact.FillAllFields)
		require.Len(t, h.tracker.events, 1)
		assert.Equal(t, analytics.ContactSubmit, h.tracker.events[0].name)
		assert.Equal(t, map[string]string{"result": "incomplete", "missing": "email,message"}, h.tracker.events[0].props)

		h.press("enter")
		assert.Nil(t, h.m.alert)
		assert.Equal(t, "Ann q", h.m.form.Form().Name, "invalid form keeps its values")
	})
}

func TestContactFormSent(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press("tab", "tab", "tab")
		h.press("A", "tab", "a", "@", "b", "tab", "H", "i", "ctrl+s")

		require.NotNil(t, h.m.alert)
		assert.Equal(t, contact.ThankYou, h.m.alert.Content)
		assert.Equal(t, map[string]string{"result": "sent"}, h.tracker.events[0].props)
		assert.Equal(t, contact.Form{}, h.m.form.Form())
	})
}

func TestEscapeLeavesForm(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press("tab", "tab", "tab", "esc")
		assert.Equal(t, "topbar", h.m.Focused())
		assert.False(t, h.m.form.Typing())
	})
}

func TestHelpPopup(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press("?")
		require.True(t, h.m.showHelp)
		assert.Contains(t, h.view(), "Playback")

		// Keys go to the popup, not the player.
		h.press(" ")
		assert.Equal(t, 0, h.engine.PlayCalls())

		h.press("esc")
		assert.False(t, h.m.showHelp)
	})
}

func TestErrorMsgShowsToast(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		model, cmd := h.m.Update(surface.ErrorMsg{Op: errmsg.OpPlaybackSeek, Err: playback.ErrDurationUnknown})
		h.m = model.(Model)
		require.NotNil(t, cmd)
		require.Len(t, h.m.Toasts, 1)
		assert.Equal(t, "Failed to seek: track length not known yet", h.m.Toasts[0].Text)
		assert.Contains(t, h.view(), "track length not known yet")
		assert.Equal(t, 24, testutil.CountLines(h.m.View()))

		h.send(toastExpiredMsg{ID: h.m.Toasts[0].ID})
		assert.Empty(t, h.m.Toasts)
	})
}

func TestEmptyQueueErrorIsSilent(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		model, cmd := h.m.Update(surface.ErrorMsg{Op: errmsg.OpPlaybackStart, Err: playback.ErrEmptyQueue})
		h.m = model.(Model)

		assert.Nil(t, cmd)
		assert.Empty(t, h.m.Toasts)
	})
}

func TestFloatingPlayerHideAndShow(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press("f")
		assert.Equal(t, "player", h.m.Focused())

		h.press("x")
		assert.True(t, h.m.player.Hidden())
		assert.Equal(t, 24, testutil.CountLines(h.m.View()))

		h.press("enter")
		assert.False(t, h.m.player.Hidden())
		assert.Equal(t, 0, h.engine.PlayCalls(), "the show button does not play")
	})
}

func TestTrackListSelectsTrack(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press("tab", "j", "enter")

		s := h.svc.State()
		assert.Equal(t, 1, s.Index)
		assert.Contains(t, h.tracker.controls, "track:2")
	})
}

func TestTopBarSwitchesCategory(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press("shift+tab", "l", "l", "enter")

		assert.Equal(t, catalog.Children, h.svc.State().Category)
		assert.Equal(t, "Children's song #1", topbar.Title(h.m.top.Snapshot()))
	})
}

func TestQuit(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		h.press("q")
		assert.True(t, h.quit)
	})
}

func TestHeaderShadowWhenScrolled(t *testing.T) {
	withApp(t, func(t *testing.T, h *harness) {
		assert.NotContains(t, h.view(), "▀▀▀")
		h.press("pgdown")
		assert.True(t, h.m.page.Scrolled())
		lines := strings.Split(h.view(), "\n")
		assert.Contains(t, lines[1], "▀▀▀")
	})
}
