package validate

import (
	"errors"
	"fmt"
	"testing"
)

func TestRequiredReportsFirstBlankField(t *testing.T) {
	err := Required(Values{"name": "Ada", "email": "   "}, "", "name", "email", "password")
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected missing field, got %v", err)
	}
	var v *Error
	if !errors.As(err, &v) || v.Field != "email" {
		t.Fatalf("expected email to be reported, got %+v", v)
	}
	if err.Error() != "Please fill in all fields" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err := Required(Values{"name": "Ada"}, "", "name"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("signup: %w", New(PasswordMismatch, "confirm", "Passwords do not match"))
	if !errors.Is(err, ErrPasswordMismatch) || errors.Is(err, ErrMissingAgreement) {
		t.Fatalf("errors.Is matched the wrong kind for %v", err)
	}
	if k, ok := KindOf(err); !ok || k != PasswordMismatch {
		t.Fatalf("expected password mismatch kind, got %q %v", k, ok)
	}
	if _, ok := KindOf(errors.New("boom")); ok {
		t.Fatalf("plain errors have no kind")
	}
}
