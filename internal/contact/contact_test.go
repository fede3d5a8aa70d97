package contact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		form    Form
		missing []string
	}{
		{"complete", Form{Name: "Jana", Email: "jana@example.com", Message: "A wedding song"}, nil},
		{"empty", Form{}, []string{FieldName, FieldEmail, FieldMessage}},
		{"whitespace only", Form{Name: "  ", Email: "a@b", Message: "\n\t"}, []string{FieldName, FieldMessage}},
		{"no email", Form{Name: "Jana", Message: "hi"}, []string{FieldEmail}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.missing == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrMissingFields)
			var mf *MissingFieldsError
			require.True(t, errors.As(err, &mf))
			assert.Equal(t, tt.missing, mf.Fields)
		})
	}
}

func TestMissingFieldsError_Message(t *testing.T) {
	err := Form{Name: "x"}.Validate()
	assert.EqualError(t, err, "missing fields: email, message")
}

func TestResult(t *testing.T) {
	assert.Equal(t, ThankYou, Result(nil))
	assert.Equal(t, FillAllFields, Result(Form{}.Validate()))
}
