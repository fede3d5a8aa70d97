// Package contact validates the site's contact form. There is no backend:
// a valid submission is only acknowledged.
package contact

import (
	"errors"
	"strings"
)

// Messages shown after a submission.
const (
	ThankYou     = "Thank you for your interest! We'll be in touch soon."
	FillAllFields = "Please fill in all fields."
)

// ErrMissingFields is matched by every validation failure.
var ErrMissingFields = errors.New("missing fields")

// Field names, in form order.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Form is one contact form submission.
type Form struct {
	Name    string
	Email   string
	Message string
}

// MissingFieldsError lists the blank fields of a submission.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing fields: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

// Validate checks that every field is filled in. Whitespace does not count.
func (f Form) Validate() error {
	var missing []string
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, FieldName)
	}
	if strings.TrimSpace(f.Email) == "" {
		missing = append(missing, FieldEmail)
	}
	if strings.TrimSpace(f.Message) == "" {
		missing = append(missing, FieldMessage)
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// Result returns the message to show for a validation outcome.
func Result(err error) string {
	if err != nil {
		return FillAllFields
	}
	return ThankYou
}
