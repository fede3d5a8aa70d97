// Package navmenu provides the hamburger navigation menu.
package navmenu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brazdilr/bardio/internal/icons"
	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/ui"
	"github.com/brazdilr/bardio/internal/ui/action"
	"github.com/brazdilr/bardio/internal/ui/styles"
	"github.com/brazdilr/bardio/internal/ui/surface"
)

// Link is one menu entry pointing at a page anchor.
type Link struct {
	Label  string
	Anchor string
}

var (
	menuStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.T().BorderFocus).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)
)

// Model is the menu: a button that unfolds a list of links.
type Model struct {
	ui.Base

	links   []Link
	tracker surface.Tracker
	open    bool
	cursor  int
}

// New creates a closed menu.
func New(links []Link, tracker surface.Tracker) *Model {
	return &Model{links: links, tracker: surface.OrNop(tracker)}
}

func (m *Model) Context() string {
	return keymap.ContextMenu
}

// IsOpen reports whether the link list is shown.
func (m *Model) IsOpen() bool {
	return m.open
}

// Toggle opens or closes the menu.
func (m *Model) Toggle() {
	m.open = !m.open
	m.cursor = 0
}

// Close closes the menu.
func (m *Model) Close() {
	m.open = false
}

// Cursor returns the highlighted link index.
func (m *Model) Cursor() int {
	return m.cursor
}

// Links returns the menu entries.
func (m *Model) Links() []Link {
	return m.links
}

func (m *Model) HandleAction(a keymap.Action, _ string) tea.Cmd {
	if !m.open {
		if a == keymap.ActionSelect {
			m.Toggle()
		}
		return nil
	}

	switch a {
	case keymap.ActionMoveUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case keymap.ActionMoveDown:
		if m.cursor < len(m.links)-1 {
			m.cursor++
		}
	case keymap.ActionSelect:
		return m.Choose(m.cursor)
	case keymap.ActionEscape:
		m.Close()
	}
	return nil
}

// Choose follows link i: the menu closes and the page scrolls to its anchor.
func (m *Model) Choose(i int) tea.Cmd {
	if i < 0 || i >= len(m.links) {
		return nil
	}
	link := m.links[i]
	m.Close()
	m.tracker.Click(link.Label, "#"+link.Anchor)
	return action.Cmd("navmenu", action.GoTo{Anchor: link.Anchor})
}

// Button renders the collapsed menu button.
func (m *Model) Button() string {
	return buttonStyle.Render(icons.Label(icons.Menu(), "Menu"))
}

// View renders the unfolded link list, or nothing while closed.
func (m *Model) View() string {
	if !m.open {
		return ""
	}
	lines := make([]string, 0, len(m.links))
	for i, link := range m.links {
		line := "  " + link.Label
		if i == m.cursor {
			line = styles.T().S().Cursor.Render("› " + link.Label)
		}
		lines = append(lines, line)
	}
	return menuStyle.Render(strings.Join(lines, "\n"))
}
