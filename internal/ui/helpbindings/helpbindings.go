// Package helpbindings renders the key binding help popup.
package helpbindings

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/ui"
	"github.com/brazdilr/bardio/internal/ui/popup"
	"github.com/brazdilr/bardio/internal/ui/render"
	"github.com/brazdilr/bardio/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Title heads the popup.
const Title = "Keys"

// chrome is the title, the footer and the blank lines around the list.
const chrome = 4

// sections lists the binding contexts in the order they are shown.
var sections = []struct {
	context string
	label   string
}{
	{keymap.ContextGlobal, "Page"},
	{keymap.ContextPlayback, "Playback (everywhere)"},
	{keymap.ContextMenu, "Menu"},
	{keymap.ContextTopBar, "Top bar"},
	{keymap.ContextHero, "Hero"},
	{keymap.ContextTrackList, "Samples"},
	{keymap.ContextFAQ, "FAQ"},
	{keymap.ContextPlayer, "Floating player"},
	{keymap.ContextContact, "Contact form"},
}

var (
	keyStyle     = lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)
	headingStyle = lipgloss.NewStyle().Foreground(styles.T().Secondary).Bold(true)
)

// Model is the help popup: the bindings of the given contexts in a
// scrollable list.
type Model struct {
	ui.Base

	vp    viewport.Model
	lines []string
}

// New creates an empty help popup.
func New() Model {
	return Model{vp: viewport.New(0, 0)}
}

// SetContexts shows the bindings of contexts and scrolls back to the top.
// Unknown contexts are ignored.
func (m *Model) SetContexts(contexts []string) {
	var bindings [][]keymap.Binding
	var labels []string
	keyWidth := 0
	for _, sec := range sections {
		if !slices.Contains(contexts, sec.context) {
			continue
		}
		bs := keymap.ByContext(sec.context)
		for _, b := range bs {
			keyWidth = max(keyWidth, lipgloss.Width(keyList(b.Keys)))
		}
		bindings = append(bindings, bs)
		labels = append(labels, sec.label)
	}

	m.lines = m.lines[:0]
	for i, bs := range bindings {
		if i > 0 {
			m.lines = append(m.lines, "")
		}
		m.lines = append(m.lines, headingStyle.Render(labels[i]))
		for _, b := range bs {
			m.lines = append(m.lines, keyStyle.Render(render.Fit(keyList(b.Keys), keyWidth))+"  "+b.Description)
		}
	}
	m.vp.SetContent(strings.Join(m.lines, "\n"))
	m.vp.GotoTop()
}

// SetSize sizes the popup content area.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.vp.Width = width
	m.vp.Height = max(height-chrome, 1)
	m.vp.SetYOffset(m.vp.YOffset)
}

// Offset returns the first visible binding line.
func (m *Model) Offset() int {
	return m.vp.YOffset
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update scrolls on key presses; ?, esc and q close the popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.vp.SetYOffset(m.vp.YOffset + 1)
	case "k", "up":
		m.vp.SetYOffset(m.vp.YOffset - 1)
	case " ", "pgdown":
		m.vp.SetYOffset(m.vp.YOffset + m.vp.Height)
	case "pgup":
		m.vp.SetYOffset(m.vp.YOffset - m.vp.Height)
	}
	return m, nil
}

// View renders the title, the visible bindings and the footer. It is
// empty until the popup has a size.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	footer := "?/esc close"
	if len(m.lines) > m.vp.Height {
		footer = "j/k scroll · " + footer
	}
	return strings.Join([]string{
		styles.T().S().Title.Render(Title),
		"",
		m.vp.View(),
		"",
		styles.T().S().Subtle.Render(footer),
	}, "\n")
}

// keyList joins keys for display, spelling out the space bar.
func keyList(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, ", ")
}
