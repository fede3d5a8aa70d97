// Package surface holds what the playback surfaces share: the last rendered
// snapshot, the redraw hook and command plumbing into bubbletea.
package surface

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brazdilr/bardio/internal/errmsg"
	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/ui"
	"github.com/brazdilr/bardio/internal/ui/action"
)

// Section is a focusable part of the page.
type Section interface {
	// Context names the key binding context used while focused.
	Context() string
	HandleAction(a keymap.Action, key string) tea.Cmd
	SetFocused(focused bool)
	SetSize(width, height int)
	View() string
}

// Base keeps the projection of the last snapshot a surface was rendered
// with. Render is called from the coordinator's adapter goroutine; the
// snapshot is read from the UI goroutine.
type Base struct {
	ui.Base

	mu     sync.RWMutex
	state  playback.State
	redraw func()
}

// Render stores s and fires the redraw hook. It implements playback.Adapter.
func (b *Base) Render(s playback.State) {
	b.mu.Lock()
	if s.Version != 0 && s.Version < b.state.Version {
		b.mu.Unlock()
		return
	}
	b.state = s
	redraw := b.redraw
	b.mu.Unlock()

	if redraw != nil {
		redraw()
	}
}

// Snapshot returns the last rendered state.
func (b *Base) Snapshot() playback.State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// OnRender sets the hook called after every Render.
func (b *Base) OnRender(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.redraw = fn
}

// ErrorMsg reports a command that failed.
type ErrorMsg struct {
	Op  errmsg.Op
	Err error
}

// Text returns the user-facing message.
func (m ErrorMsg) Text() string {
	return errmsg.Format(m.Op, m.Err)
}

// Run calls fn outside the bubbletea update loop. Coordinator commands
// block until applied, so they never run inside Update.
func Run(op errmsg.Op, fn func() error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(); err != nil {
			return ErrorMsg{Op: op, Err: err}
		}
		return nil
	}
}

// Navigate returns a command asking the page to scroll to anchor.
func Navigate(source, anchor string) tea.Cmd {
	return action.Cmd(source, action.GoTo{Anchor: anchor})
}

// Tracker receives interaction events.
type Tracker interface {
	Click(text, href string)
	Control(button string)
}

// NopTracker discards events.
type NopTracker struct{}

func (NopTracker) Click(string, string) {}
func (NopTracker) Control(string)       {}

// OrNop returns t, or a NopTracker when t is nil.
func OrNop(t Tracker) Tracker {
	if t == nil {
		return NopTracker{}
	}
	return t
}
