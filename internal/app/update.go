package app

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brazdilr/bardio/internal/analytics"
	"github.com/brazdilr/bardio/internal/contact"
	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/ui/action"
	"github.com/brazdilr/bardio/internal/ui/contactform"
	"github.com/brazdilr/bardio/internal/ui/helpbindings"
	"github.com/brazdilr/bardio/internal/ui/popup"
	"github.com/brazdilr/bardio/internal/ui/surface"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case action.Msg:
		cmd = m.handleAction(msg)

	case surface.ErrorMsg:
		// An empty category silently ignores transport keys.
		if !errors.Is(msg.Err, playback.ErrEmptyQueue) {
			cmd = m.toast(msg.Text(), true)
		}

	case toastExpiredMsg:
		m.dropToast(msg.ID)

	case RedrawMsg:
		// Surfaces already hold the new snapshot.

	default:
		cmd = m.page.Update(msg)
	}

	m.refresh()
	return m, cmd
}

func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case action.GoTo:
		return m.goTo(a.Anchor)
	case contactform.Submitted:
		m.contactSubmitted(a)
	case helpbindings.Close:
		m.showHelp = false
	}
	return nil
}

// goTo scrolls to the section with anchor and gives it the focus when it
// has one.
func (m *Model) goTo(anchor string) tea.Cmd {
	cmd := m.page.ScrollTo(anchor)
	if cmd == nil {
		return nil
	}
	for i, s := range m.sections {
		if s.anchor == anchor {
			m.setFocus(i, 1)
			break
		}
	}
	return cmd
}

func (m *Model) contactSubmitted(a contactform.Submitted) {
	props := map[string]string{"result": "sent"}
	var missing *contact.MissingFieldsError
	if errors.As(a.Err, &missing) {
		props["result"] = "incomplete"
		props["missing"] = strings.Join(missing.Fields, ",")
	}
	m.tracker.Track(analytics.ContactSubmit, props)

	m.alert = &popup.Dialog{
		Title:   "Contact",
		Content: contact.Result(a.Err),
		Footer:  "enter: close",
	}
}

func (m *Model) openHelp() {
	contexts := []string{keymap.ContextGlobal, keymap.ContextPlayback, m.active().Context()}
	if m.menu.IsOpen() {
		contexts = append(contexts, keymap.ContextMenu)
	}
	m.help.SetContexts(contexts)
	m.showHelp = true
}

// toast shows text at the bottom of the screen until it expires.
func (m *Model) toast(text string, failed bool) tea.Cmd {
	m.lastToast++
	id := m.lastToast
	m.Toasts = append(m.Toasts, Toast{ID: id, Text: text, Failed: failed})
	if len(m.Toasts) > maxToasts {
		m.Toasts = m.Toasts[len(m.Toasts)-maxToasts:]
	}
	return expireToast(id)
}

func (m *Model) dropToast(id int64) {
	for i, n := range m.Toasts {
		if n.ID == id {
			m.Toasts = append(m.Toasts[:i:i], m.Toasts[i+1:]...)
			return
		}
	}
}
