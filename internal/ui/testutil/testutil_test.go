package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "plain", StripANSI("plain"))
	assert.Equal(t, "red text", StripANSI("\x1b[31mred\x1b[0m text"))
	assert.Equal(t, "bold green", StripANSI("\x1b[1;32mbold green\x1b[0m"))
	assert.Equal(t, "", StripANSI(""))
}

func TestMeasureWidth(t *testing.T) {
	assert.Equal(t, 4, MeasureWidth("\x1b[1mPop!\x1b[0m"))
	assert.Equal(t, 4, MeasureWidth("日本"))
}

const sample = "▶ Pop song #1\n\n  Pop song #2\n  Pop song #3\n\n"

func TestFindLine(t *testing.T) {
	assert.Equal(t, "  Pop song #2", FindLine(sample, "#2"))
	assert.Equal(t, "", FindLine(sample, "#4"))
}

func TestContainsLine(t *testing.T) {
	assert.True(t, ContainsLine(sample, "▶ Pop"))
	assert.False(t, ContainsLine(sample, "#1\n"), "matches within one line only")
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 3, CountLines(sample))
	assert.Equal(t, 0, CountLines("\n \n"))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"▶ Pop song #1", "", "  Pop song #2", "  Pop song #3"}, SplitLines(sample))
	assert.Empty(t, SplitLines("\n\n"))
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		typ  tea.KeyType
	}{
		{"enter", tea.KeyEnter},
		{"esc", tea.KeyEscape},
		{"shift+tab", tea.KeyShiftTab},
		{"ctrl+s", tea.KeyCtrlS},
		{" ", tea.KeySpace},
		{"j", tea.KeyRunes},
		{"?", tea.KeyRunes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := Key(tt.name)
			assert.Equal(t, tt.typ, k.Type)
			assert.Equal(t, tt.name, k.String())
		})
	}
}
