package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text in bold, blending its foreground from one color
// to another across the grapheme clusters. Colors that are not #rrggbb
// render the whole text in from.
func Gradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	start, err1 := colorful.Hex(string(from))
	end, err2 := colorful.Hex(string(to))
	if len(clusters) == 1 || err1 != nil || err2 != nil {
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		// HCL keeps the lightness even across the blend.
		c := start.BlendHcl(end, float64(i)/last).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Bold(true).Render(cluster))
	}
	return b.String()
}
