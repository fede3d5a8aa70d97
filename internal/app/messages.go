package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RedrawMsg asks for a frame after a surface picked up a new snapshot.
type RedrawMsg struct{}

// Toast is a short message shown above the floating player.
type Toast struct {
	ID     int64
	Text   string
	Failed bool
}

const (
	toastTTL  = 3 * time.Second
	maxToasts = 3
)

type toastExpiredMsg struct {
	ID int64
}

func expireToast(id int64) tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{ID: id} })
}
