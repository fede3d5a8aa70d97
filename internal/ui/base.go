package ui

// Base is embedded by page sections for the focus and size bookkeeping
// surface.Section asks of them.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }

func (b *Base) IsFocused() bool { return b.focused }

func (b *Base) SetSize(width, height int) {
	b.width, b.height = width, height
}

func (b *Base) Width() int { return b.width }

func (b *Base) Height() int { return b.height }

// InnerWidth is the width left inside a bordered, padded panel.
func (b *Base) InnerWidth() int {
	return max(b.width-PanelOverhead, 0)
}
