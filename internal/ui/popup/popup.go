package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/brazdilr/bardio/internal/ui/styles"
)

// Dialog is the terminal's alert(): a bordered box with an optional title
// and footer hint, centered on screen.
type Dialog struct {
	Title   string
	Content string
	Footer  string
}

func (d Dialog) Render(termWidth, termHeight int) string {
	s := styles.T().S()
	var b strings.Builder
	if d.Title != "" {
		b.WriteString(s.Title.Render(d.Title) + "\n\n")
	}
	b.WriteString(d.Content)
	if d.Footer != "" {
		b.WriteString("\n\n" + s.Subtle.Render(d.Footer))
	}
	return RenderBordered(b.String(), termWidth, termHeight)
}

// RenderBordered boxes content in the focus border and centers the box.
// The box never grows wider than the screen less a small margin.
func RenderBordered(content string, termWidth, termHeight int) string {
	outer := min(widest(content)+6, max(termWidth-4, 8))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(1, 2).
		Width(outer - 2).
		Render(content)
	return Center(box, termWidth, termHeight)
}

func widest(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

// Center prefixes content with blank lines and a left margin so it sits in
// the middle of the area. Nothing is appended after it.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	top := max((termHeight-len(lines))/2, 0)
	margin := strings.Repeat(" ", max((termWidth-widest(content))/2, 0))

	out := make([]string, 0, top+len(lines))
	for range top {
		out = append(out, "")
	}
	for _, line := range lines {
		out = append(out, margin+line)
	}
	return strings.Join(out, "\n")
}

// Compose draws overlay on top of base, both width columns wide. On each
// line, the overlay's cells from its first to its last non-space character
// replace the base's; blank overlay lines and lines past the end of base
// are ignored. Styling on both sides is preserved.
func Compose(base, overlay string, width int) string {
	lines := strings.Split(base, "\n")
	for i, over := range strings.Split(overlay, "\n") {
		if i >= len(lines) {
			break
		}
		plain := ansi.Strip(over)
		if strings.TrimSpace(plain) == "" {
			continue
		}
		from := ansi.StringWidth(plain) - ansi.StringWidth(strings.TrimLeft(plain, " "))
		to := ansi.StringWidth(strings.TrimRight(plain, " "))

		under := padRight(lines[i], width)
		// Cutting through a wide rune leaves the pieces short.
		merged := padRight(ansi.Cut(under, 0, from), from) + ansi.Cut(over, from, to)
		if to < width {
			tail := ansi.Cut(under, to, width)
			merged += strings.Repeat(" ", max(width-to-ansi.StringWidth(tail), 0)) + tail
		}
		lines[i] = merged
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
