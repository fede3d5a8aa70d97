package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		name    string
		context string
		key     string
		typing  bool
		want    Action
	}{
		{"global quit from any context", ContextHero, "q", false, ActionQuit},
		{"playback key from any context", ContextFAQ, " ", false, ActionPlayPause},
		{"context shadows global", ContextPlayer, "left", false, ActionSeekBack},
		{"same key differs by context", ContextTopBar, "left", false, ActionTabLeft},
		{"digit seeks in player", ContextPlayer, "7", false, ActionSeekDigit},
		{"digit unbound elsewhere", ContextHero, "7", false, ""},
		{"unknown key", ContextHero, "F12", false, ""},
		{"typing hides printable globals", ContextContact, "q", true, ""},
		{"typing hides playback keys", ContextContact, " ", true, ""},
		{"typing keeps tab", ContextContact, "tab", true, ActionFocusNext},
		{"typing keeps esc", ContextContact, "esc", true, ActionEscape},
		{"typing keeps ctrl+c", ContextContact, "ctrl+c", true, ActionQuit},
		{"typing keeps own bindings", ContextContact, "ctrl+s", true, ActionSubmit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.context, tt.key, tt.typing))
		})
	}
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{Action: ActionQuit, Keys: []string{"q"}, Context: ContextGlobal},
		{Action: ActionHelp, Keys: []string{"q"}, Context: ContextGlobal},
	})

	assert.Equal(t, ActionHelp, r.Resolve(ContextHero, "q", false))
}

func TestResolver_Empty(t *testing.T) {
	assert.Equal(t, Action(""), NewResolver(nil).Resolve(ContextHero, "q", false))
}
