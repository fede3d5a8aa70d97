// Package page provides the scrollable site page: a viewport over stacked
// sections, each reachable by anchor with a smooth scroll.
package page

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brazdilr/bardio/internal/ui"
)

// TickInterval is the frame interval of the smooth scroll.
const TickInterval = 16 * time.Millisecond

// Block is one section of the page.
type Block struct {
	Anchor  string
	Content string
}

type scrollTickMsg struct {
	seq int
}

// Model is the page viewport.
type Model struct {
	vp      viewport.Model
	anchors map[string]int // anchor -> first line
	order   []string

	target    int
	seq       int
	animating bool
}

// New creates an empty page.
func New() *Model {
	return &Model{
		vp:      viewport.New(0, 0),
		anchors: make(map[string]int),
	}
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(width, height int) {
	m.vp.Width = width
	m.vp.Height = height
	m.vp.SetYOffset(m.vp.YOffset)
}

// SetBlocks replaces the page content, keeping the scroll offset.
func (m *Model) SetBlocks(blocks ...Block) {
	var b strings.Builder
	anchors := make(map[string]int, len(blocks))
	order := make([]string, 0, len(blocks))
	line := 0
	for i, block := range blocks {
		if i > 0 {
			b.WriteString("\n\n")
			line += 2
		}
		if block.Anchor != "" {
			anchors[block.Anchor] = line
			order = append(order, block.Anchor)
		}
		b.WriteString(block.Content)
		line += strings.Count(block.Content, "\n")
	}
	m.anchors = anchors
	m.order = order

	offset := m.vp.YOffset
	m.vp.SetContent(b.String())
	m.vp.SetYOffset(offset)
}

// AnchorTop returns the first line of the section with anchor.
func (m *Model) AnchorTop(anchor string) (int, bool) {
	top, ok := m.anchors[anchor]
	return top, ok
}

// Anchors returns the section anchors in page order.
func (m *Model) Anchors() []string {
	return m.order
}

// ScrollTo starts a smooth scroll that leaves the section with anchor just
// below the top edge. Unknown anchors are ignored.
func (m *Model) ScrollTo(anchor string) tea.Cmd {
	top, ok := m.anchors[anchor]
	if !ok {
		return nil
	}
	m.target = max(0, top-ui.AnchorMargin)
	m.seq++
	m.animating = true
	return m.tick()
}

// Reveal scrolls just enough to show the section with anchor, without
// animation. Used when keyboard focus moves to a section.
func (m *Model) Reveal(anchor string) {
	top, ok := m.anchors[anchor]
	if !ok {
		return
	}
	if top < m.vp.YOffset || top >= m.vp.YOffset+m.vp.Height {
		m.stop()
		m.vp.SetYOffset(max(0, top-ui.AnchorMargin))
	}
}

func (m *Model) tick() tea.Cmd {
	seq := m.seq
	return tea.Tick(TickInterval, func(time.Time) tea.Msg {
		return scrollTickMsg{seq: seq}
	})
}

// Update advances a running smooth scroll.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(scrollTickMsg)
	if !ok || tick.seq != m.seq || !m.animating {
		return nil
	}

	offset := m.vp.YOffset
	dist := m.target - offset
	if dist == 0 {
		m.animating = false
		return nil
	}
	step := dist / 3
	if step == 0 {
		step = 1
		if dist < 0 {
			step = -1
		}
	}
	m.vp.SetYOffset(offset + step)
	if m.vp.YOffset == offset || m.vp.YOffset == m.target {
		// Reached, or clamped at the end of the content.
		m.animating = false
		return nil
	}
	return m.tick()
}

// Animating reports whether a smooth scroll is running.
func (m *Model) Animating() bool {
	return m.animating
}

func (m *Model) stop() {
	m.animating = false
	m.seq++
}

// ScrollBy moves the page by n lines at once, cancelling any animation.
func (m *Model) ScrollBy(n int) {
	m.stop()
	m.vp.SetYOffset(max(0, m.vp.YOffset+n))
}

// PageUp scrolls up by one screen.
func (m *Model) PageUp() {
	m.ScrollBy(-max(m.vp.Height-1, 1))
}

// PageDown scrolls down by one screen.
func (m *Model) PageDown() {
	m.ScrollBy(max(m.vp.Height-1, 1))
}

// Top scrolls to the top of the page.
func (m *Model) Top() {
	m.stop()
	m.vp.GotoTop()
}

// End scrolls to the end of the page.
func (m *Model) End() {
	m.stop()
	m.vp.GotoBottom()
}

// Offset returns the first visible line.
func (m *Model) Offset() int {
	return m.vp.YOffset
}

// Scrolled reports whether the page is scrolled past the header shadow
// threshold.
func (m *Model) Scrolled() bool {
	return m.vp.YOffset > ui.ShadowThreshold
}

func (m *Model) View() string {
	return m.vp.View()
}
