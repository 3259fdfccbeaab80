// Package validate defines the user-input validation failures shared by the
// interaction controllers and forms.
package validate

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a validation failure.
type Kind string

const (
	// MissingRequiredField means a required field was left empty.
	MissingRequiredField Kind = "missing-required-field"
	// OutOfRangeValue means a numeric value fell outside its allowed range.
	OutOfRangeValue Kind = "out-of-range-value"
	// PasswordMismatch means the password confirmation did not match.
	PasswordMismatch Kind = "password-mismatch"
	// MissingAgreement means the terms checkbox was not ticked.
	MissingAgreement Kind = "missing-agreement"
	// NoSelectionMade means a required choice (category, reason) was not picked.
	NoSelectionMade Kind = "no-selection-made"
)

// Sentinels usable with errors.Is.
var (
	ErrMissingRequiredField = &Error{Kind: MissingRequiredField}
	ErrOutOfRangeValue      = &Error{Kind: OutOfRangeValue}
	ErrPasswordMismatch     = &Error{Kind: PasswordMismatch}
	ErrMissingAgreement     = &Error{Kind: MissingAgreement}
	ErrNoSelectionMade      = &Error{Kind: NoSelectionMade}
)

// Error is a validation failure with a message meant for the user.
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	}
	return string(e.Kind)
}

// Is matches on Kind so callers can compare against the sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New returns a validation error of the given kind.
func New(kind Kind, field, message string) *Error {
	return &Error{Kind: kind, Field: field, Message: message}
}

// KindOf reports the validation kind wrapped in err, if any.
func KindOf(err error) (Kind, bool) {
	var v *Error
	if errors.As(err, &v) {
		return v.Kind, true
	}
	return "", false
}

// Values holds form field values keyed by field name.
type Values map[string]string

// Get returns the trimmed value for key.
func (v Values) Get(key string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(v[key])
}

// Required fails with MissingRequiredField on the first blank field.
// A blank message falls back to "Please fill in all fields".
func Required(values Values, message string, fields ...string) error {
	for _, f := range fields {
		if values.Get(f) == "" {
			if message == "" {
				message = "Please fill in all fields"
			}
			return New(MissingRequiredField, f, message)
		}
	}
	return nil
}
