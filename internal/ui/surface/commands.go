package surface

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brazdilr/bardio/internal/errmsg"
	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/playback"
)

// Playback maps the transport actions to coordinator commands.
// Returns nil for any other action.
func Playback(svc playback.Service, a keymap.Action) tea.Cmd {
	switch a {
	case keymap.ActionPlayPause:
		return Run(errmsg.OpPlaybackStart, svc.TogglePlayPause)
	case keymap.ActionNextTrack:
		return Run(errmsg.OpPlaybackSkip, svc.Next)
	case keymap.ActionPrevTrack:
		return Run(errmsg.OpPlaybackSkip, svc.Previous)
	case keymap.ActionToggleMute:
		return Run(errmsg.OpPlaybackMute, svc.ToggleMute)
	}
	return nil
}

// IsPlayback reports whether a is a transport action.
func IsPlayback(a keymap.Action) bool {
	switch a {
	case keymap.ActionPlayPause, keymap.ActionNextTrack,
		keymap.ActionPrevTrack, keymap.ActionToggleMute:
		return true
	}
	return false
}

// SelectCategory switches the coordinator to key.
func SelectCategory(svc playback.Service, key string) tea.Cmd {
	return Run(errmsg.OpCategorySelect, func() error { return svc.SelectCategory(key) })
}

// SelectTrack selects (or toggles) track i of the active category.
func SelectTrack(svc playback.Service, i int) tea.Cmd {
	return Run(errmsg.OpTrackSelect, func() error { return svc.SelectTrack(i) })
}

// Seek moves playback to fraction of the track.
func Seek(svc playback.Service, fraction float64) tea.Cmd {
	return Run(errmsg.OpPlaybackSeek, func() error { return svc.SeekToFraction(fraction) })
}

// TabIndex returns the index of key in keys, or 0 when absent.
func TabIndex(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return 0
}

// StepTab moves from key by delta through keys, wrapping around.
func StepTab(keys []string, key string, delta int) string {
	if len(keys) == 0 {
		return ""
	}
	n := len(keys)
	return keys[((TabIndex(keys, key)+delta)%n+n)%n]
}
