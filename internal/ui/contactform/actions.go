package contactform

import (
	"github.com/brazdilr/bardio/internal/contact"
	"github.com/brazdilr/bardio/internal/ui/action"
)

// Submitted reports a submission attempt. Err is nil when the form was valid.
type Submitted struct {
	Form contact.Form
	Err  error
}

// ActionType implements action.Action.
func (a Submitted) ActionType() string { return "contactform.submitted" }

// ActionMsg creates an action.Msg for a contactform action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "contactform", Action: a}
}
