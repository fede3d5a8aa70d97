package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal drawn over the page. The app owns the border and the
// placement; a popup renders only its body.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	View() string
	// SetSize gives the body's width and height, border excluded.
	SetSize(width, height int)
}
