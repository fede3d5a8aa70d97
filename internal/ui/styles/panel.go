package styles

import "github.com/charmbracelet/lipgloss"

// Panel returns the rounded, padded frame of the floating panels. The
// border takes the accent color while the panel has focus.
func Panel(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
