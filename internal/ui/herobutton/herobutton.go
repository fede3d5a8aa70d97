// Package herobutton renders the page's hero section: the big play button
// and the call to action.
package herobutton

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brazdilr/bardio/internal/icons"
	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/ui/styles"
	"github.com/brazdilr/bardio/internal/ui/surface"
)

// Button labels.
const (
	PlayLabel  = "Play samples"
	PauseLabel = "Pause"
	OrderLabel = "Order a song"
)

// OrderAnchor is where the call to action scrolls.
const OrderAnchor = "contact"

const (
	buttonPlay = iota
	buttonOrder
)

var (
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.T().Border)

	selectedButtonStyle = buttonStyle.
				BorderForeground(styles.T().BorderFocus).
				Foreground(styles.T().Primary).
				Bold(true)
)

// Model is the hero section. It is a playback surface: the play button
// follows the coordinator's state.
type Model struct {
	surface.Base

	svc      playback.Service
	tracker  surface.Tracker
	headline string
	tagline  string
	selected int
}

// New creates the hero section.
func New(svc playback.Service, tracker surface.Tracker, headline, tagline string) *Model {
	return &Model{
		svc:      svc,
		tracker:  surface.OrNop(tracker),
		headline: headline,
		tagline:  tagline,
	}
}

func (m *Model) Context() string {
	return keymap.ContextHero
}

// PlayLabel returns the play button text for the last rendered state.
func (m *Model) PlayLabel() string {
	if m.Snapshot().Active() {
		return icons.Label(icons.Pause(), PauseLabel)
	}
	return icons.Label(icons.Play(), PlayLabel)
}

// Selected reports which button has the keyboard cursor: 0 play, 1 order.
func (m *Model) Selected() int {
	return m.selected
}

func (m *Model) HandleAction(a keymap.Action, _ string) tea.Cmd {
	switch a {
	case keymap.ActionTabLeft:
		m.selected = buttonPlay
	case keymap.ActionTabRight:
		m.selected = buttonOrder
	case keymap.ActionSelect:
		return m.press()
	}
	return nil
}

func (m *Model) press() tea.Cmd {
	if m.selected == buttonOrder {
		m.tracker.Click(OrderLabel, "#"+OrderAnchor)
		return surface.Navigate("hero", OrderAnchor)
	}
	m.tracker.Control(m.PlayLabel())
	return surface.Playback(m.svc, keymap.ActionPlayPause)
}

func (m *Model) View() string {
	width := m.Width()

	play := buttonStyle
	order := buttonStyle
	if m.IsFocused() {
		if m.selected == buttonOrder {
			order = selectedButtonStyle
		} else {
			play = selectedButtonStyle
		}
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		play.Render(m.PlayLabel()),
		"  ",
		order.Render(OrderLabel),
	)

	lines := []string{
		styles.Gradient(m.headline, styles.T().Primary, styles.T().Secondary),
		styles.T().S().Muted.Render(m.tagline),
		"",
		buttons,
	}
	block := strings.Join(lines, "\n")
	if width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
