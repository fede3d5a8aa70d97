package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/ui/surface"
)

// SectionHarness drives a page section with key presses resolved through
// the key map, the way the app dispatches them.
type SectionHarness struct {
	section  surface.Section
	resolver *keymap.Resolver
	cmds     []tea.Cmd
}

// NewSectionHarness focuses s and sizes it to width x height.
func NewSectionHarness(s surface.Section, width, height int) *SectionHarness {
	s.SetSize(width, height)
	s.SetFocused(true)
	return &SectionHarness{section: s, resolver: keymap.NewResolver(keymap.All)}
}

// Press resolves key in the section's context and hands the action to the
// section. Unbound keys are ignored and return nil.
func (h *SectionHarness) Press(key string) tea.Cmd {
	a := h.resolver.Resolve(h.section.Context(), key, false)
	if a == "" {
		return nil
	}
	cmd := h.section.HandleAction(a, key)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// PressAndRun presses key and runs the resulting command, returning its
// message (nil when there was no command).
func (h *SectionHarness) PressAndRun(key string) tea.Msg {
	return ExecuteCmd(h.Press(key))
}

// Commands returns the commands collected so far.
func (h *SectionHarness) Commands() []tea.Cmd {
	return h.cmds
}

// View returns the section's view with ANSI codes stripped.
func (h *SectionHarness) View() string {
	return StripANSI(h.section.View())
}
