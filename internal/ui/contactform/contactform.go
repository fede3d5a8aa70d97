// Package contactform provides the contact form section.
package contactform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brazdilr/bardio/internal/contact"
	"github.com/brazdilr/bardio/internal/keymap"
	"github.com/brazdilr/bardio/internal/ui"
	"github.com/brazdilr/bardio/internal/ui/styles"
)

// Field positions, in tab order.
const (
	FieldName = iota
	FieldEmail
	FieldMessage
	FieldSend
)

const messageHeight = 4

var (
	labelStyle = lipgloss.NewStyle().Foreground(styles.T().FgMuted)

	sendStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.T().Border)

	focusedSendStyle = sendStyle.
				BorderForeground(styles.T().BorderFocus).
				Foreground(styles.T().Primary).
				Bold(true)
)

// Model is the contact form.
type Model struct {
	ui.Base

	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	field   int
	status  string
	failed  bool
}

// New creates an empty form.
func New() *Model {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 100

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 200

	message := textarea.New()
	message.Placeholder = "Tell us about the song you'd like..."
	message.ShowLineNumbers = false
	message.CharLimit = 2000
	message.SetHeight(messageHeight)

	return &Model{name: name, email: email, message: message}
}

func (m *Model) Context() string {
	return keymap.ContextContact
}

// Typing reports whether keys go to a text field.
func (m *Model) Typing() bool {
	return m.IsFocused() && m.field != FieldSend
}

// Field returns the focused field.
func (m *Model) Field() int {
	return m.field
}

// Status returns the outcome of the last submission.
func (m *Model) Status() string {
	return m.status
}

// Form returns the current field values.
func (m *Model) Form() contact.Form {
	return contact.Form{
		Name:    m.name.Value(),
		Email:   m.email.Value(),
		Message: m.message.Value(),
	}
}

// SetFocused focuses the current field when the section gains focus.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.focusField(m.field)
}

// SetSize sizes the inputs to the section width.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	w := max(width-2, 10)
	m.name.Width = w
	m.email.Width = w
	m.message.SetWidth(w)
}

// FocusFirst moves to the first field.
func (m *Model) FocusFirst() {
	m.focusField(FieldName)
}

// FocusLast moves to the send button.
func (m *Model) FocusLast() {
	m.focusField(FieldSend)
}

func (m *Model) focusField(f int) tea.Cmd {
	m.field = f
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()
	if !m.IsFocused() {
		return nil
	}
	switch f {
	case FieldName:
		return m.name.Focus()
	case FieldEmail:
		return m.email.Focus()
	case FieldMessage:
		return m.message.Focus()
	}
	return nil
}

// HandleKey handles keys inside the form. It reports false for keys the
// app should handle: esc, ctrl+c, and tab past the first or last field.
func (m *Model) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "esc", "ctrl+c":
		return nil, false
	case "ctrl+s":
		return m.Submit(), true
	case "tab":
		if m.field == FieldSend {
			return nil, false
		}
		return m.focusField(m.field + 1), true
	case "shift+tab":
		if m.field == FieldName {
			return nil, false
		}
		return m.focusField(m.field - 1), true
	case "enter":
		switch m.field {
		case FieldSend:
			return m.Submit(), true
		case FieldName, FieldEmail:
			return m.focusField(m.field + 1), true
		}
	}

	var cmd tea.Cmd
	switch m.field {
	case FieldName:
		m.name, cmd = m.name.Update(msg)
	case FieldEmail:
		m.email, cmd = m.email.Update(msg)
	case FieldMessage:
		m.message, cmd = m.message.Update(msg)
	default:
		return nil, false
	}
	return cmd, true
}

func (m *Model) HandleAction(a keymap.Action, _ string) tea.Cmd {
	switch a {
	case keymap.ActionSubmit:
		return m.Submit()
	case keymap.ActionSelect:
		if m.field == FieldSend {
			return m.Submit()
		}
	}
	return nil
}

// Submit validates the form. A valid form is acknowledged and cleared;
// an invalid one keeps its values.
func (m *Model) Submit() tea.Cmd {
	form := m.Form()
	err := form.Validate()
	m.status = contact.Result(err)
	m.failed = err != nil
	if err == nil {
		m.reset()
	}
	return func() tea.Msg { return ActionMsg(Submitted{Form: form, Err: err}) }
}

func (m *Model) reset() {
	m.name.Reset()
	m.email.Reset()
	m.message.Reset()
	m.focusField(FieldName)
}

func (m *Model) View() string {
	send := sendStyle
	if m.IsFocused() && m.field == FieldSend {
		send = focusedSendStyle
	}

	lines := []string{
		labelStyle.Render("Name"),
		m.name.View(),
		labelStyle.Render("Email"),
		m.email.View(),
		labelStyle.Render("Message"),
		m.message.View(),
		send.Render("Send"),
	}
	if m.status != "" {
		style := styles.T().S().Success
		if m.failed {
			style = styles.T().S().Error
		}
		lines = append(lines, style.Render(m.status))
	}
	return strings.Join(lines, "\n")
}
