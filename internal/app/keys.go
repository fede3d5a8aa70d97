package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/ui/surface"
)

// keyHandler attempts to handle a key.
type keyHandler func(msg tea.KeyMsg) (bool, tea.Cmd)

// chain runs handlers in order until one handles the key.
func chain(msg tea.KeyMsg, handlers ...keyHandler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if handled, cmd := h(msg); handled {
			return true, cmd
		}
	}
	return false, nil
}

// handleKey routes a key to the topmost layer that wants it: the alert,
// the help popup, the open menu, the contact form and finally the bindings
// of the focused section.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	_, cmd := chain(msg,
		m.handleAlertKey,
		m.handleHelpKey,
		m.handleMenuKey,
		m.handleFormKey,
		m.handleBoundKey,
	)
	return cmd
}

func (m *Model) handleAlertKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.alert == nil {
		return false, nil
	}
	switch msg.String() {
	case "enter", "esc", " ", "q":
		m.alert = nil
	case "ctrl+c":
		return true, tea.Quit
	}
	// Modal: every other key is swallowed.
	return true, nil
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !m.showHelp {
		return false, nil
	}
	if msg.String() == "ctrl+c" {
		return true, tea.Quit
	}
	_, cmd := m.help.Update(msg)
	return true, cmd
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !m.menu.IsOpen() {
		return false, nil
	}
	key := msg.String()
	a := m.resolver.Resolve(m.menu.Context(), key, false)
	switch {
	case a == keymap.ActionQuit:
		return true, tea.Quit
	case a == keymap.ActionToggleMenu:
		m.menu.Close()
	case a == keymap.ActionHelp:
		m.openHelp()
	case surface.IsPlayback(a):
		return true, m.playback(a)
	default:
		return true, m.menu.HandleAction(a, key)
	}
	return true, nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.active().Section != m.form {
		return false, nil
	}
	cmd, handled := m.form.HandleKey(msg)
	return handled, cmd
}

func (m *Model) handleBoundKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()
	active := m.active()
	typing := active.Section == m.form && m.form.Typing()

	a := m.resolver.Resolve(active.Context(), key, typing)
	switch a {
	case "":
		return false, nil
	case keymap.ActionQuit:
		return true, tea.Quit
	case keymap.ActionFocusNext:
		m.moveFocus(1)
	case keymap.ActionFocusPrev:
		m.moveFocus(-1)
	case keymap.ActionToggleMenu:
		m.menu.Toggle()
		m.tracker.Control("menu")
	case keymap.ActionFocusPlayer:
		m.player.SetHidden(false)
		m.setFocus(len(m.sections)-1, 1)
	case keymap.ActionScrollUp:
		m.page.PageUp()
	case keymap.ActionScrollDown:
		m.page.PageDown()
	case keymap.ActionScrollTop:
		m.page.Top()
	case keymap.ActionScrollEnd:
		m.page.End()
	case keymap.ActionEscape:
		// Leave the section for the header.
		m.setFocus(0, -1)
	case keymap.ActionHelp:
		m.openHelp()
	default:
		if surface.IsPlayback(a) {
			return true, m.playback(a)
		}
		return true, active.HandleAction(a, key)
	}
	return true, nil
}

func (m *Model) playback(a keymap.Action) tea.Cmd {
	m.tracker.Control(string(a))
	return surface.Playback(m.svc, a)
}

// moveFocus cycles the focus ring and reveals the newly focused section.
func (m *Model) moveFocus(delta int) {
	n := len(m.sections)
	m.setFocus(((m.focus+delta)%n+n)%n, delta)
	if anchor := m.active().anchor; anchor != "" {
		m.page.Reveal(anchor)
	}
}

// setFocus focuses section i. The contact form is entered at its first
// field going forward and at its send button going back.
func (m *Model) setFocus(i, dir int) {
	m.active().SetFocused(false)
	m.focus = i
	if m.active().Section == m.form {
		if dir < 0 {
			m.form.FocusLast()
		} else {
			m.form.FocusFirst()
		}
	}
	m.active().SetFocused(true)
}
