package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brazdilr/bardio/internal/ui/popup"
)

// PopupHarness feeds keys to a popup and collects the commands it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness wraps p, keeping the command of its Init.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the popup as last returned by Update.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// Send delivers msg to the popup.
func (h *PopupHarness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Press delivers the key named name (see Key).
func (h *PopupHarness) Press(name string) tea.Cmd {
	return h.Send(Key(name))
}

// Commands returns every command collected so far.
func (h *PopupHarness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// View returns the popup's view with ANSI codes stripped.
func (h *PopupHarness) View() string {
	return StripANSI(h.popup.View())
}

// ExecuteCmd runs cmd and returns its message; nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
