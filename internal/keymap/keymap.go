package keymap

// Binding maps keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains all key bindings, in help order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionFocusNext, []string{"tab"}, "Next section", ContextGlobal},
	{ActionFocusPrev, []string{"shift+tab"}, "Previous section", ContextGlobal},
	{ActionToggleMenu, []string{"m"}, "Navigation menu", ContextGlobal},
	{ActionFocusPlayer, []string{"f"}, "Focus floating player", ContextGlobal},
	{ActionScrollUp, []string{"pgup"}, "Scroll up", ContextGlobal},
	{ActionScrollDown, []string{"pgdown"}, "Scroll down", ContextGlobal},
	{ActionScrollTop, []string{"home"}, "Back to top", ContextGlobal},
	{ActionScrollEnd, []string{"end"}, "Scroll to end", ContextGlobal},
	{ActionEscape, []string{"esc"}, "Close / leave", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayback},
	{ActionNextTrack, []string{">", "."}, "Next sample", ContextPlayback},
	{ActionPrevTrack, []string{"<", ","}, "Previous sample", ContextPlayback},
	{ActionToggleMute, []string{"M"}, "Mute/unmute", ContextPlayback},

	// Navigation menu
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextMenu},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextMenu},
	{ActionSelect, []string{"enter"}, "Go to section", ContextMenu},

	// Top bar
	{ActionTabLeft, []string{"h", "left"}, "Previous category", ContextTopBar},
	{ActionTabRight, []string{"l", "right"}, "Next category", ContextTopBar},
	{ActionSelect, []string{"enter"}, "Switch category", ContextTopBar},

	// Hero
	{ActionTabLeft, []string{"h", "left"}, "Play button", ContextHero},
	{ActionTabRight, []string{"l", "right"}, "Order button", ContextHero},
	{ActionSelect, []string{"enter"}, "Press button", ContextHero},

	// Track list
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextTrackList},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextTrackList},
	{ActionTabLeft, []string{"h", "left"}, "Previous category", ContextTrackList},
	{ActionTabRight, []string{"l", "right"}, "Next category", ContextTrackList},
	{ActionSelect, []string{"enter"}, "Play/pause track", ContextTrackList},

	// FAQ
	{ActionMoveUp, []string{"k", "up"}, "Previous question", ContextFAQ},
	{ActionMoveDown, []string{"j", "down"}, "Next question", ContextFAQ},
	{ActionSelect, []string{"enter"}, "Open/close answer", ContextFAQ},

	// Floating player
	{ActionSeekBack, []string{"h", "left"}, "Seek back", ContextPlayer},
	{ActionSeekForward, []string{"l", "right"}, "Seek forward", ContextPlayer},
	{ActionSeekDigit, DigitKeys, "Jump to 0-90%", ContextPlayer},
	{ActionHidePlayer, []string{"x"}, "Hide/show player", ContextPlayer},
	{ActionSelect, []string{"enter"}, "Play/pause", ContextPlayer},

	// Contact form
	{ActionSubmit, []string{"ctrl+s"}, "Send", ContextContact},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Contexts returns the binding contexts in help order.
func Contexts() []string {
	var result []string
	seen := make(map[string]bool)
	for _, kb := range All {
		if !seen[kb.Context] {
			seen[kb.Context] = true
			result = append(result, kb.Context)
		}
	}
	return result
}
