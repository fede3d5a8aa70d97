// Package action carries requests from sections and popups up to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a request a component cannot fulfil itself. ActionType names
// it in logs.
type Action interface {
	ActionType() string
}

// Msg is the tea.Msg an Action travels in, tagged with the component that
// raised it ("navmenu", "hero", "contactform", ...).
type Msg struct {
	Source string
	Action Action
}

// GoTo scrolls the page to the block with the given anchor.
type GoTo struct {
	Anchor string
}

func (GoTo) ActionType() string { return "goto" }

func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg { return Msg{Source: source, Action: a} }
}
