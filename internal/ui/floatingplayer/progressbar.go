package floatingplayer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brazdilr/bardio/internal/playback"
	"github.com/brazdilr/bardio/internal/ui"
	"github.com/brazdilr/bardio/internal/ui/surface"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// ProgressBar renders the elapsed time, a block bar and the duration.
// Format: 1:23  ▓▓▓▓▓░░░░░  4:56
func ProgressBar(s playback.State, width int) string {
	posStr := surface.Clock(s.Position)
	durStr := surface.Clock(s.DisplayDuration())

	fixedWidth := lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixedWidth

	if barWidth < ui.MinProgressBarWidth {
		// Too narrow for bar, just show times
		return posStr + " / " + durStr
	}

	filled := min(int(float64(barWidth)*s.Progress()), barWidth)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, barWidth-filled)

	return posStr + "  " + bar + "  " + durStr
}
