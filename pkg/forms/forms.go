// Package forms validates the full-page forms (login, signup, create project,
// donation) and turns valid submissions into intents.
package forms

import (
	"strconv"
	"strings"
	"time"

	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/validate"
)

const dateLayout = "2006-01-02"

// LoginForm is the login tab.
type LoginForm struct {
	Email    string
	Password string
}

// Validate checks required fields.
func (f LoginForm) Validate() error {
	return validate.Required(f.values(), "Please fill in all fields", "email", "password")
}

// Intent builds the login intent.
func (f LoginForm) Intent() intent.Intent {
	return intent.New(intent.Login, f.values())
}

func (f LoginForm) values() validate.Values {
	return validate.Values{"email": f.Email, "password": f.Password}
}

// SignupForm is the signup tab.
type SignupForm struct {
	Name     string
	Email    string
	Password string
	Confirm  string
	Terms    bool
}

// Validate checks fields, password confirmation and the terms checkbox, in
// that order.
func (f SignupForm) Validate() error {
	v := validate.Values{"name": f.Name, "email": f.Email, "password": f.Password, "confirm": f.Confirm}
	if err := validate.Required(v, "Please fill in all fields", "name", "email", "password", "confirm"); err != nil {
		return err
	}
	if f.Password != f.Confirm {
		return validate.New(validate.PasswordMismatch, "confirm", "Passwords do not match")
	}
	if !f.Terms {
		return validate.New(validate.MissingAgreement, "terms", "You must agree to the terms and conditions")
	}
	return nil
}

// Intent builds the signup intent.
func (f SignupForm) Intent() intent.Intent {
	return intent.New(intent.Signup, map[string]string{
		"name":     strings.TrimSpace(f.Name),
		"email":    strings.TrimSpace(f.Email),
		"password": f.Password,
	})
}

// SocialLogin builds the intent for a social login button.
func SocialLogin(platform string) intent.Intent {
	p := strings.TrimSpace(platform)
	if p != "" {
		p = strings.ToUpper(p[:1]) + p[1:]
	}
	return intent.New(intent.SocialLogin, map[string]string{"platform": p})
}

// ProjectForm is the create-project page.
type ProjectForm struct {
	Title     string
	Details   string
	Target    string
	StartDate string
	EndDate   string
	Category  string
	Tags      []string
	Images    []string
}

// Validate checks the form against today's date.
func (f ProjectForm) Validate(today time.Time) error {
	const msg = "Please fill in all required fields"
	v := validate.Values{
		"title":     f.Title,
		"details":   f.Details,
		"target":    f.Target,
		"startDate": f.StartDate,
		"endDate":   f.EndDate,
	}
	if err := validate.Required(v, msg, "title", "details", "target", "startDate", "endDate"); err != nil {
		return err
	}
	if strings.TrimSpace(f.Category) == "" {
		return validate.New(validate.NoSelectionMade, "category", msg)
	}
	target, err := strconv.ParseFloat(v.Get("target"), 64)
	if err != nil || target <= 0 {
		return validate.New(validate.OutOfRangeValue, "target", "Funding target must be a positive amount")
	}
	start, err := time.Parse(dateLayout, v.Get("startDate"))
	if err != nil {
		return validate.New(validate.OutOfRangeValue, "startDate", "Start date must look like 2006-01-02")
	}
	end, err := time.Parse(dateLayout, v.Get("endDate"))
	if err != nil {
		return validate.New(validate.OutOfRangeValue, "endDate", "End date must look like 2006-01-02")
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(day) {
		return validate.New(validate.OutOfRangeValue, "startDate", "Start date cannot be in the past")
	}
	if !end.After(start) {
		return validate.New(validate.OutOfRangeValue, "endDate", "End date must be after the start date")
	}
	if len(f.Images) == 0 {
		return validate.New(validate.MissingRequiredField, "images", "Please upload at least one image for your project")
	}
	return nil
}

// Intent builds the create-project intent.
func (f ProjectForm) Intent() intent.Intent {
	return intent.New(intent.CreateProject, map[string]string{
		"title":     strings.TrimSpace(f.Title),
		"details":   strings.TrimSpace(f.Details),
		"target":    strings.TrimSpace(f.Target),
		"startDate": strings.TrimSpace(f.StartDate),
		"endDate":   strings.TrimSpace(f.EndDate),
		"category":  f.Category,
		"tags":      strings.Join(f.Tags, ","),
		"images":    strconv.Itoa(len(f.Images)),
	})
}

// DonationForm is the backing panel: a preset tile or a custom amount.
type DonationForm struct {
	ProjectID string
	Preset    string
	Custom    string
}

// Amount resolves the donation amount.
func (f DonationForm) Amount() (float64, error) {
	raw := strings.TrimSpace(f.Preset)
	if raw == "" {
		raw = strings.TrimSpace(f.Custom)
	}
	if raw == "" {
		return 0, validate.New(validate.NoSelectionMade, "amount", "Please choose or enter an amount")
	}
	amount, err := strconv.ParseFloat(strings.TrimPrefix(raw, "$"), 64)
	if err != nil || amount <= 0 {
		return 0, validate.New(validate.OutOfRangeValue, "amount", "Please enter a valid amount")
	}
	return amount, nil
}

// Intent builds the donate intent.
func (f DonationForm) Intent() (intent.Intent, error) {
	amount, err := f.Amount()
	if err != nil {
		return intent.Intent{}, err
	}
	return intent.New(intent.Donate, map[string]string{
		"project": f.ProjectID,
		"amount":  strconv.FormatFloat(amount, 'f', -1, 64),
	}), nil
}

// Search builds a search intent for a non-blank term.
func Search(term string) (intent.Intent, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return intent.Intent{}, false
	}
	return intent.New(intent.Search, map[string]string{"term": term}), true
}
