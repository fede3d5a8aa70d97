package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brazdilr/bardio/internal/icons"
	"github.com/brazdilr/bardio/internal/ui/floatingplayer"
	"github.com/brazdilr/bardio/internal/ui/page"
	"github.com/brazdilr/bardio/internal/ui/popup"
	"github.com/brazdilr/bardio/internal/ui/render"
	"github.com/brazdilr/bardio/internal/ui/styles"
	"github.com/brazdilr/bardio/internal/ui/topbar"
)

const (
	// playerWidth caps the floating player's width.
	playerWidth = 56
	// shadowHeight is the line under the header holding its shadow.
	shadowHeight = 1
	// pagePadding is the left margin of the page sections.
	pagePadding = 2
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(styles.T().Primary)
	shadowStyle  = lipgloss.NewStyle().Foreground(styles.T().FgSubtle)
	blockStyle   = lipgloss.NewStyle().PaddingLeft(pagePadding)
)

func heading(title string) string {
	return headingStyle.Render(title)
}

// refresh sizes every part for the terminal and rebuilds the page content
// from the section views.
func (m *Model) refresh() {
	width := m.width
	contentWidth := max(width-pagePadding, 0)

	m.top.SetSize(max(width-lipgloss.Width(m.menu.Button())-1, 0), topbar.Height)
	m.hero.SetSize(contentWidth, 0)
	m.list.SetSize(contentWidth, 0)
	m.faq.SetSize(contentWidth, 0)
	m.form.SetSize(min(contentWidth, 72), 0)
	m.player.SetSize(min(width, playerWidth), floatingplayer.Height(m.player.Hidden()))
	m.help.SetSize(max(width-8, 0), max(m.height-6, 0))

	pageHeight := m.height - topbar.Height - shadowHeight -
		floatingplayer.Height(m.player.Hidden()) - len(m.Toasts)
	m.page.SetSize(width, max(pageHeight, 0))

	m.page.SetBlocks(
		page.Block{Anchor: AnchorHome, Content: "\n" + m.hero.View() + "\n"},
		page.Block{Anchor: AnchorSamples, Content: blockStyle.Render(heading("Samples") + "\n\n" + m.list.View())},
		page.Block{Anchor: AnchorAbout, Content: blockStyle.Render(heading("About") + "\n\n" + aboutText)},
		page.Block{Anchor: AnchorFAQ, Content: blockStyle.Render(heading("FAQ") + "\n\n" + m.faq.View())},
		page.Block{Anchor: AnchorContact, Content: blockStyle.Render(heading("Contact") + "\n\n" + m.form.View())},
		page.Block{Content: blockStyle.Render(styles.T().S().Subtle.Render(footerText))},
	)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := render.Row(m.top.View(), m.menu.Button(), m.width)

	shadow := ""
	if m.page.Scrolled() {
		shadow = shadowStyle.Render(strings.Repeat("▀", m.width))
	}

	body := m.page.View()
	if m.menu.IsOpen() {
		dropdown := lipgloss.PlaceHorizontal(m.width, lipgloss.Right, m.menu.View())
		body = popup.Compose(body, dropdown, m.width)
	}

	parts := []string{header, shadow, body}
	if len(m.Toasts) > 0 {
		parts = append(parts, m.renderToasts())
	}
	parts = append(parts, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, m.player.View()))
	view := strings.Join(parts, "\n")

	if m.showHelp {
		view = popup.Compose(view, popup.RenderBordered(m.help.View(), m.width, m.height), m.width)
	}
	if m.alert != nil {
		view = popup.Compose(view, m.alert.Render(m.width, m.height), m.width)
	}

	// Ensure view is exactly terminal height
	return enforceHeight(view, m.height)
}

// renderToasts renders one line per toast, newest last.
func (m Model) renderToasts() string {
	t := styles.T()
	lines := make([]string, 0, len(m.Toasts))
	for _, n := range m.Toasts {
		mark := lipgloss.NewStyle().Foreground(t.Primary).Render(icons.Check())
		if n.Failed {
			mark = t.S().Error.Render("!")
		}
		line := mark + " " + t.S().Base.Render(n.Text)
		lines = append(lines, render.Fit(line, m.width))
	}
	return strings.Join(lines, "\n")
}

func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	if len(lines) == targetHeight {
		return view
	}
	if len(lines) < targetHeight {
		for i := len(lines); i < targetHeight; i++ {
			lines = append(lines, "")
		}
	} else {
		lines = lines[:targetHeight]
	}
	return strings.Join(lines, "\n")
}
