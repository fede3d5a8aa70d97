package surface

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/brazdilr/bardio/internal/catalog"
	"github.com/brazdilr/bardio/internal/ui/styles"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(styles.T().Primary).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(styles.T().FgMuted)

	cursorTabStyle = lipgloss.NewStyle().
			Background(styles.T().BgCursor).
			Foreground(styles.T().FgBase)

	tabSeparatorStyle = lipgloss.NewStyle().
				Foreground(styles.T().Border)
)

// Clock formats d as m:ss.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

// Tabs renders category tabs. The active category is highlighted; cursor
// marks the tab under the keyboard cursor when it differs from the active one.
func Tabs(keys []string, active, cursor string) string {
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		label := catalog.Label(key)
		switch {
		case key == active && key == cursor:
			label = activeTabStyle.Render("[" + label + "]")
		case key == active:
			label = activeTabStyle.Render(" " + label + " ")
		case key == cursor:
			label = cursorTabStyle.Render("[" + label + "]")
		default:
			label = inactiveTabStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, tabSeparatorStyle.Render("│"))
}
