package contactform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brazdilr/bardio/internal/contact"
	"github.com/brazdilr/bardio/internal/ui/action"
	"github.com/brazdilr/bardio/internal/ui/testutil"
)

func newForm(t *testing.T) (*Model, *testutil.SectionHarness) {
	t.Helper()
	m := New()
	return m, testutil.NewSectionHarness(m, 50, 14)
}

func typeKeys(t *testing.T, m *Model, keys ...string) {
	t.Helper()
	for _, k := range keys {
		_, handled := m.HandleKey(testutil.Key(k))
		require.True(t, handled, "key %q", k)
	}
}

func submitted(t *testing.T, msg any) Submitted {
	t.Helper()
	am, ok := msg.(action.Msg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, "contactform", am.Source)
	s, ok := am.Action.(Submitted)
	require.True(t, ok)
	return s
}

func TestTyping(t *testing.T) {
	m := New()
	assert.False(t, m.Typing(), "unfocused form")

	m.SetFocused(true)
	assert.True(t, m.Typing())

	m.FocusLast()
	assert.Equal(t, FieldSend, m.Field())
	assert.False(t, m.Typing())

	m.FocusFirst()
	assert.Equal(t, FieldName, m.Field())
}

func TestHandleKey_FillsFields(t *testing.T) {
	m, _ := newForm(t)

	typeKeys(t, m, "A", "n", "n", " ", "q", "enter")
	typeKeys(t, m, "a", "@", "b", "tab")
	typeKeys(t, m, "H", "i")

	assert.Equal(t, contact.Form{Name: "Ann q", Email: "a@b", Message: "Hi"}, m.Form())
	assert.Equal(t, FieldMessage, m.Field())
}

func TestHandleKey_TabLeavesAtEdges(t *testing.T) {
	m, _ := newForm(t)

	_, handled := m.HandleKey(testutil.Key("shift+tab"))
	assert.False(t, handled)

	typeKeys(t, m, "tab", "tab", "tab")
	assert.Equal(t, FieldSend, m.Field())

	_, handled = m.HandleKey(testutil.Key("tab"))
	assert.False(t, handled)

	typeKeys(t, m, "shift+tab")
	assert.Equal(t, FieldMessage, m.Field())
}

func TestHandleKey_LeavesEscapeToApp(t *testing.T) {
	m, _ := newForm(t)

	for _, k := range []string{"esc", "ctrl+c"} {
		_, handled := m.HandleKey(testutil.Key(k))
		assert.False(t, handled, k)
	}

	m.FocusLast()
	_, handled := m.HandleKey(testutil.Key("x"))
	assert.False(t, handled, "the send button takes no text")
}

func TestSubmit_Incomplete(t *testing.T) {
	m, h := newForm(t)
	typeKeys(t, m, "A", "n", "n")

	cmd, handled := m.HandleKey(testutil.Key("ctrl+s"))
	require.True(t, handled)

	s := submitted(t, testutil.ExecuteCmd(cmd))
	assert.ErrorIs(t, s.Err, contact.ErrMissingFields)
	var missing *contact.MissingFieldsError
	require.ErrorAs(t, s.Err, &missing)
	assert.Equal(t, []string{contact.FieldEmail, contact.FieldMessage}, missing.Fields)

	assert.Equal(t, contact.FillAllFields, m.Status())
	assert.Equal(t, "Ann", m.Form().Name, "values are kept")
	assert.Contains(t, h.View(), contact.FillAllFields)
}

func TestSubmit_ValidClearsForm(t *testing.T) {
	m, _ := newForm(t)
	typeKeys(t, m, "A", "tab", "a", "@", "b", "tab", "H", "i", "tab")
	require.Equal(t, FieldSend, m.Field())

	cmd, handled := m.HandleKey(testutil.Key("enter"))
	require.True(t, handled)
	s := submitted(t, testutil.ExecuteCmd(cmd))

	assert.NoError(t, s.Err)
	assert.Equal(t, contact.Form{Name: "A", Email: "a@b", Message: "Hi"}, s.Form)
	assert.Equal(t, contact.Form{}, m.Form())
	assert.Equal(t, FieldName, m.Field())
	assert.Equal(t, contact.ThankYou, m.Status())
}

func TestHandleAction_SubmitShortcut(t *testing.T) {
	m, h := newForm(t)

	s := submitted(t, h.PressAndRun("ctrl+s"))

	assert.Error(t, s.Err)
	assert.Equal(t, contact.FillAllFields, m.Status())
}

func TestView_Labels(t *testing.T) {
	_, h := newForm(t)

	view := h.View()
	for _, label := range []string{"Name", "Email", "Message", "Send"} {
		assert.True(t, testutil.ContainsLine(view, label), label)
	}
}
