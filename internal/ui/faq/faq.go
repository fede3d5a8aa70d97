// Package faq provides the FAQ accordion. At most one answer is open.
package faq

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brazdilr/bardio/internal/icons"
	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/ui"
	"github.com/brazdilr/bardio/internal/ui/styles"
)

// Item is one question with its answer.
type Item struct {
	Question string
	Answer   string
}

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(styles.T().FgMuted).PaddingLeft(4)
)

// Model is the accordion.
type Model struct {
	ui.Base

	items  []Item
	open   int // -1 when every item is closed
	cursor int
}

// New creates an accordion with every item closed.
func New(items []Item) *Model {
	return &Model{items: items, open: -1}
}

func (m *Model) Context() string {
	return keymap.ContextFAQ
}

// Len returns the number of items.
func (m *Model) Len() int {
	return len(m.items)
}

// Toggle opens item i and closes any other; toggling the open item closes it.
func (m *Model) Toggle(i int) {
	if i < 0 || i >= len(m.items) {
		return
	}
	if m.open == i {
		m.open = -1
		return
	}
	m.open = i
}

// Expanded reports whether item i shows its answer.
func (m *Model) Expanded(i int) bool {
	return i >= 0 && i == m.open
}

// Open returns the open item, or -1.
func (m *Model) Open() int {
	return m.open
}

// Cursor returns the item under the keyboard cursor.
func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) HandleAction(a keymap.Action, _ string) tea.Cmd {
	switch a {
	case keymap.ActionMoveUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case keymap.ActionMoveDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case keymap.ActionSelect:
		m.Toggle(m.cursor)
	}
	return nil
}

func (m *Model) View() string {
	width := m.Width()
	lines := make([]string, 0, len(m.items)*2)
	for i, item := range m.items {
		q := icons.Fold(m.Expanded(i)) + " " + item.Question
		if m.IsFocused() && i == m.cursor {
			q = styles.T().S().Cursor.Render(q)
		} else {
			q = questionStyle.Render(q)
		}
		lines = append(lines, q)

		if m.Expanded(i) {
			style := answerStyle
			if width > 8 {
				style = style.Width(width)
			}
			lines = append(lines, style.Render(item.Answer))
		}
	}
	return strings.Join(lines, "\n")
}
