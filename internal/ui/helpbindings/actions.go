package helpbindings

import "github.com/brazdilr/bardio/internal/ui/action"

// Close asks the app to hide the help popup.
type Close struct{}

func (Close) ActionType() string { return "helpbindings.close" }

// ActionMsg wraps a from the help popup.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "helpbindings", Action: a}
}
