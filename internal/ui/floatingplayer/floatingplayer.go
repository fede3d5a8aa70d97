// Package floatingplayer renders the floating player: full transport
// controls, track meta, a seekable progress bar, and a collapsed form.
package floatingplayer

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/brazdilr/bardio/internal/icons"
	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/ui"
	"github.com/brazdilr/bardio/internal/ui/render"
	"github.com/brazdilr/bardio/internal/ui/styles"
	"github.com/brazdilr/bardio/internal/ui/surface"
	"github.com/brazdilr/bardio/internal/ui/topbar"
)

// MetaLabel prefixes the meta line.
const MetaLabel = "Song sample"

// Height returns the rendered height: a bordered three-line panel, or a
// single button line while hidden.
func Height(hidden bool) int {
	if hidden {
		return 1
	}
	return 5
}

var showButtonStyle = lipgloss.NewStyle().
	Foreground(styles.T().Primary).
	Bold(true).
	Padding(0, 1)

// Model is the floating player.
type Model struct {
	surface.Base

	svc      playback.Service
	tracker  surface.Tracker
	seekStep float64 // fraction of the track per seek key
	hidden   bool
}

// New creates the floating player. seekStep is in percent of the track.
func New(svc playback.Service, tracker surface.Tracker, seekStep int) *Model {
	if seekStep <= 0 {
		seekStep = 5
	}
	return &Model{
		svc:      svc,
		tracker:  surface.OrNop(tracker),
		seekStep: float64(seekStep) / 100,
	}
}

func (m *Model) Context() string {
	return keymap.ContextPlayer
}

// Hidden reports whether the player is collapsed to its show button.
func (m *Model) Hidden() bool {
	return m.hidden
}

// SetHidden collapses or restores the player.
func (m *Model) SetHidden(hidden bool) {
	m.hidden = hidden
}

func (m *Model) HandleAction(a keymap.Action, key string) tea.Cmd {
	if m.hidden {
		// Only the show button is left.
		if a == keymap.ActionSelect || a == keymap.ActionHidePlayer {
			m.hidden = false
			m.tracker.Control("show-player")
		}
		return nil
	}

	s := m.Snapshot()
	switch a {
	case keymap.ActionHidePlayer:
		m.hidden = true
		m.tracker.Control("hide-player")
	case keymap.ActionSelect:
		m.tracker.Control(icons.PlayPause(s.Active()))
		return surface.Playback(m.svc, keymap.ActionPlayPause)
	case keymap.ActionSeekBack:
		return surface.Seek(m.svc, max(0, s.Progress()-m.seekStep))
	case keymap.ActionSeekForward:
		return surface.Seek(m.svc, min(1, s.Progress()+m.seekStep))
	case keymap.ActionSeekDigit:
		n, err := strconv.Atoi(key)
		if err != nil || n < 0 || n > 9 {
			return nil
		}
		return surface.Seek(m.svc, float64(n)/10)
	}
	return nil
}

// Meta returns the line under the title: "Song sample • 3:12", extended
// with the format and size once the engine has read the media.
func Meta(s playback.State) string {
	parts := []string{MetaLabel}
	if d := s.DisplayDuration(); d > 0 {
		parts[0] += " • " + surface.Clock(d)
	}
	if s.Info != nil {
		if s.Info.Artist != "" {
			parts = append(parts, s.Info.Artist)
		}
		if s.Info.Format != "" {
			parts = append(parts, s.Info.Format)
		}
		if s.Info.Size > 0 {
			parts = append(parts, humanize.Bytes(uint64(s.Info.Size)))
		}
	}
	return strings.Join(parts, " · ")
}

func (m *Model) View() string {
	if m.hidden {
		return showButtonStyle.Render(icons.Note())
	}

	s := m.Snapshot()
	style := styles.Panel(m.IsFocused())
	inner := max(m.Width()-ui.PanelOverhead, 0)

	controls := icons.Prev() + " " + icons.PlayPause(s.Active()) + " " + icons.Next() + "  " + icons.Volume(s.IsMuted)
	titleWidth := max(inner-lipgloss.Width(controls)-2, 0)
	title := styles.T().S().Title.Render(render.Truncate(topbar.Title(s), titleWidth))

	lines := []string{
		render.Row(controls, title, inner),
		styles.T().S().Muted.Render(render.Truncate(Meta(s), inner)),
		ProgressBar(s, inner),
	}
	return style.Width(max(m.Width()-ui.BorderWidth, 0)).Render(strings.Join(lines, "\n"))
}
