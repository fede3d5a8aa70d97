// Package tracklist renders the "how it works" sample list: category tabs
// and one row per track of the active category.
package tracklist

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brazdilr/bardio/internal/catalog"
	"github.com/brazdilr/bardio/internal/icons"
	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/ui/render"
	"github.com/brazdilr/bardio/internal/ui/styles"
	"github.com/brazdilr/bardio/internal/ui/surface"
	"github.com/brazdilr/bardio/internal/ui/topbar"
)

var emptyStyle = lipgloss.NewStyle().Italic(true).Foreground(styles.T().FgSubtle)

// Model is the track list.
type Model struct {
	surface.Base

	svc      playback.Service
	tracker  surface.Tracker
	cursor   int
	category string // category the cursor belongs to
}

// New creates the track list.
func New(svc playback.Service, tracker surface.Tracker) *Model {
	return &Model{svc: svc, tracker: surface.OrNop(tracker)}
}

func (m *Model) Context() string {
	return keymap.ContextTrackList
}

// Cursor returns the row under the keyboard cursor for snapshot s.
// The cursor goes back to the first row when the category changes.
func (m *Model) Cursor() int {
	return m.sync(m.Snapshot())
}

func (m *Model) sync(s playback.State) int {
	if s.Category != m.category {
		m.category = s.Category
		m.cursor = 0
	}
	m.cursor = max(0, min(m.cursor, len(s.Tracks)-1))
	return m.cursor
}

func (m *Model) HandleAction(a keymap.Action, _ string) tea.Cmd {
	s := m.Snapshot()
	m.sync(s)

	switch a {
	case keymap.ActionMoveUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case keymap.ActionMoveDown:
		if m.cursor < len(s.Tracks)-1 {
			m.cursor++
		}
	case keymap.ActionTabLeft, keymap.ActionTabRight:
		delta := 1
		if a == keymap.ActionTabLeft {
			delta = -1
		}
		key := surface.StepTab(s.Categories, s.Category, delta)
		if key == "" || key == s.Category {
			return nil
		}
		m.tracker.Control("category:" + key)
		return surface.SelectCategory(m.svc, key)
	case keymap.ActionSelect:
		if s.Empty() {
			return nil
		}
		m.tracker.Control("track:" + strconv.Itoa(m.cursor+1))
		return surface.SelectTrack(m.svc, m.cursor)
	}
	return nil
}

// Row renders track i of s. The current track shows the pause glyph and
// the playing style while playback is active.
func Row(s playback.State, i int, width int) string {
	text, playing := rowText(s, i, width)
	if playing {
		return styles.T().S().Playing.Render(text)
	}
	return styles.T().S().Base.Render(text)
}

func rowText(s playback.State, i int, width int) (string, bool) {
	t := s.Tracks[i]
	playing := i == s.Index && s.Active()

	title := t.Title
	if title == "" {
		title = topbar.FallbackTitle
	}
	dur := ""
	if t.DurationHint > 0 {
		dur = surface.Clock(t.DurationHint)
	}
	if i == s.Index && s.Duration > 0 {
		dur = surface.Clock(s.Duration)
	}

	glyph := icons.PlayPause(playing)
	left := glyph + " " + render.Truncate(title, max(width-len(dur)-lipgloss.Width(glyph)-3, 1))
	return render.Row(left, dur, width), playing
}

func (m *Model) View() string {
	s := m.Snapshot()
	width := m.Width()
	cursor := m.sync(s)

	tabCursor := ""
	if m.IsFocused() {
		tabCursor = s.Category
	}
	lines := []string{surface.Tabs(s.Categories, s.Category, tabCursor), ""}

	if s.Empty() {
		lines = append(lines, emptyStyle.Render("No samples in "+catalog.Label(s.Category)+" yet."))
		return strings.Join(lines, "\n")
	}

	for i := range s.Tracks {
		rowWidth := max(width-2, 1)
		row := Row(s, i, rowWidth)
		marker := "  "
		if m.IsFocused() && i == cursor {
			marker = "› "
			text, _ := rowText(s, i, rowWidth)
			row = styles.T().S().Cursor.Render(text)
		}
		lines = append(lines, marker+row)
	}
	return strings.Join(lines, "\n")
}
