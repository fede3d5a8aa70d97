// Package topbar renders the compact player in the page header: transport
// controls, the current title and the category tabs.
package topbar

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brazdilr/bardio/internal/catalog"
	"github.com/brazdilr/bardio/internal/icons"
	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/ui/render"
	"github.com/brazdilr/bardio/internal/ui/styles"
	"github.com/brazdilr/bardio/internal/ui/surface"
)

// Height is the fixed height of the top bar.
const Height = 1

// FallbackTitle is shown for tracks without a title.
const FallbackTitle = "Song sample"

var controlStyle = lipgloss.NewStyle().Foreground(styles.T().Primary)

// Model is the top bar player.
type Model struct {
	surface.Base

	svc     playback.Service
	tracker surface.Tracker
	cursor  string // category under the tab cursor; "" follows the active one
}

// New creates the top bar.
func New(svc playback.Service, tracker surface.Tracker) *Model {
	return &Model{svc: svc, tracker: surface.OrNop(tracker)}
}

func (m *Model) Context() string {
	return keymap.ContextTopBar
}

// Cursor returns the category under the tab cursor.
func (m *Model) Cursor() string {
	if m.cursor != "" {
		return m.cursor
	}
	return m.Snapshot().Category
}

// SetFocused resets the tab cursor when focus leaves.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	if !focused {
		m.cursor = ""
	}
}

func (m *Model) HandleAction(a keymap.Action, _ string) tea.Cmd {
	s := m.Snapshot()
	switch a {
	case keymap.ActionTabLeft:
		m.cursor = surface.StepTab(s.Categories, m.Cursor(), -1)
	case keymap.ActionTabRight:
		m.cursor = surface.StepTab(s.Categories, m.Cursor(), 1)
	case keymap.ActionSelect:
		key := m.Cursor()
		m.cursor = ""
		if key == "" {
			return nil
		}
		m.tracker.Control("tab:" + key)
		return surface.SelectCategory(m.svc, key)
	}
	return nil
}

// Title returns the title shown for s.
func Title(s playback.State) string {
	if !s.HasTrack() {
		return "No samples in " + catalog.Label(s.Category)
	}
	if s.Track.Title == "" {
		return FallbackTitle
	}
	return s.Track.Title
}

func (m *Model) View() string {
	s := m.Snapshot()
	width := m.Width()

	controls := controlStyle.Render(icons.Prev() + " " + icons.PlayPause(s.Active()) + " " + icons.Next())

	cursor := ""
	if m.IsFocused() {
		cursor = m.Cursor()
	}
	tabs := surface.Tabs(s.Categories, s.Category, cursor)

	titleWidth := width - lipgloss.Width(controls) - lipgloss.Width(tabs) - 4
	if titleWidth < 8 {
		// Too narrow for everything: drop the tabs.
		tabs = ""
		titleWidth = width - lipgloss.Width(controls) - 2
	}
	title := styles.T().S().Title.Render(render.Truncate(Title(s), max(titleWidth, 0)))

	left := controls + "  " + title
	if tabs == "" {
		return left
	}
	return render.Row(left, tabs, width)
}
