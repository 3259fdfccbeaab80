package modal

import "tableflip.dev/fundflow/pkg/validate"

// Policy validates the values submitted with Confirm.
type Policy interface {
	Validate(validate.Values) error
}

// PolicyFunc adapts a function to a Policy.
type PolicyFunc func(validate.Values) error

// Validate implements Policy.
func (f PolicyFunc) Validate(v validate.Values) error { return f(v) }

// None accepts anything; used for plain confirmations such as logout.
var None Policy = PolicyFunc(func(validate.Values) error { return nil })

// Require fails with message when any of fields is blank.
func Require(message string, fields ...string) Policy {
	return PolicyFunc(func(v validate.Values) error {
		return validate.Required(v, message, fields...)
	})
}

// Choose fails with NoSelectionMade when field is blank.
func Choose(message, field string) Policy {
	return PolicyFunc(func(v validate.Values) error {
		if v.Get(field) == "" {
			return validate.New(validate.NoSelectionMade, field, message)
		}
		return nil
	})
}

// Use-site policies.
var (
	DeleteAccountPolicy = Require("Please enter your password to confirm deletion.", "password")
	CancelProjectPolicy = Require("Please provide a reason for cancellation.", "reason")
	ReportPolicy        = Choose("Please select a reason for reporting", "reason")
	AddCategoryPolicy   = Require("Please fill in all fields", "name", "description")
)

// ReportReasons are the choices offered by the report dialog.
var ReportReasons = []string{
	"Fraudulent project",
	"Inappropriate content",
	"Intellectual property violation",
	"Other",
}
