// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionFocusNext   Action = "focus_next"
	ActionFocusPrev   Action = "focus_prev"
	ActionToggleMenu  Action = "toggle_menu"
	ActionHelp        Action = "help"
	ActionScrollUp    Action = "scroll_up"
	ActionScrollDown  Action = "scroll_down"
	ActionScrollTop   Action = "scroll_top"
	ActionScrollEnd   Action = "scroll_end"
	ActionEscape      Action = "escape"
	ActionFocusPlayer Action = "focus_player"

	// Playback actions, available everywhere outside text entry
	ActionPlayPause  Action = "play_pause"
	ActionNextTrack  Action = "next_track"
	ActionPrevTrack  Action = "prev_track"
	ActionToggleMute Action = "toggle_mute"

	// List-like surfaces (menu, track list, FAQ)
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionSelect   Action = "select"

	// Category tabs (top bar, track list)
	ActionTabLeft  Action = "tab_left"
	ActionTabRight Action = "tab_right"

	// Floating player
	ActionSeekBack    Action = "seek_back"
	ActionSeekForward Action = "seek_forward"
	ActionSeekDigit   Action = "seek_digit"
	ActionHidePlayer  Action = "hide_player"

	// Contact form
	ActionSubmit Action = "submit"
)

// Binding contexts.
const (
	ContextGlobal    = "global"
	ContextPlayback  = "playback"
	ContextMenu      = "menu"
	ContextTopBar    = "topbar"
	ContextHero      = "hero"
	ContextTrackList = "tracklist"
	ContextFAQ       = "faq"
	ContextPlayer    = "player"
	ContextContact   = "contact"
)

// DigitKeys are the keys bound to ActionSeekDigit, in order 0-9.
var DigitKeys = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
