// Package styles holds the studio palette and the lipgloss styles built
// from it.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette.
type Theme struct {
	Primary   lipgloss.Color // accent: active tab, focused buttons, playing row
	Secondary lipgloss.Color // warm accent at the end of the headline gradient

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color

	styles *Styles
}

// Styles are the text styles every section uses.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style
	Cursor  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

var studio = Theme{
	Primary:   lipgloss.Color("#e879a6"),
	Secondary: lipgloss.Color("#f4b860"),

	FgBase:   lipgloss.Color("#d4d4d4"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5c5c5c"),

	BgCursor: lipgloss.Color("#2f2a33"),

	Border:      lipgloss.Color("#5c5c5c"),
	BorderFocus: lipgloss.Color("#e879a6"),

	Success: lipgloss.Color("#4ec98b"),
	Error:   lipgloss.Color("#ff6b6b"),
}

// T returns the theme.
func T() *Theme {
	return &studio
}

// S returns the styles of t, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		base := lipgloss.NewStyle().Foreground(t.FgBase)
		t.styles = &Styles{
			Base:    base,
			Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
			Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
			Title:   base.Bold(true),
			Playing: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
			Cursor:  lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.FgBase),
			Success: lipgloss.NewStyle().Foreground(t.Success),
			Error:   lipgloss.NewStyle().Foreground(t.Error),
		}
	}
	return t.styles
}
