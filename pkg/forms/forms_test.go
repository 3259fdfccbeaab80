package forms

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/validate"
)

func TestLoginRequiresBothFields(t *testing.T) {
	if err := (LoginForm{Email: "a@b.c"}).Validate(); !errors.Is(err, validate.ErrMissingRequiredField) {
		t.Fatalf("err = %v", err)
	}
	f := LoginForm{Email: "a@b.c", Password: "pw"}
	if err := f.Validate(); err != nil {
		t.Fatal(err)
	}
	if in := f.Intent(); in.Action != intent.Login || in.Payload["email"] != "a@b.c" {
		t.Fatalf("intent = %+v", in)
	}
}

func TestSignupOrderOfChecks(t *testing.T) {
	base := SignupForm{Name: "Ada", Email: "ada@x.io", Password: "pw1", Confirm: "pw1", Terms: true}

	missing := base
	missing.Email = ""
	if err := missing.Validate(); !errors.Is(err, validate.ErrMissingRequiredField) {
		t.Fatalf("missing: %v", err)
	}

	mismatch := base
	mismatch.Confirm = "pw2"
	mismatch.Terms = false
	if err := mismatch.Validate(); !errors.Is(err, validate.ErrPasswordMismatch) {
		t.Fatalf("mismatch should win over terms: %v", err)
	}

	terms := base
	terms.Terms = false
	if err := terms.Validate(); !errors.Is(err, validate.ErrMissingAgreement) {
		t.Fatalf("terms: %v", err)
	}

	if err := base.Validate(); err != nil {
		t.Fatal(err)
	}
	if got := intent.Acknowledgement(base.Intent()); got != "Account created successfully! Welcome to FundFlow, Ada!" {
		t.Fatalf("ack = %q", got)
	}
}

func TestSocialLoginCapitalizes(t *testing.T) {
	if p := SocialLogin("google").Payload["platform"]; p != "Google" {
		t.Fatalf("platform = %q", p)
	}
}

func TestProjectValidation(t *testing.T) {
	today := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)
	good := ProjectForm{
		Title:     "Solar Kit",
		Details:   "Portable power",
		Target:    "5000",
		StartDate: "2026-03-10",
		EndDate:   "2026-04-10",
		Category:  "tech",
		Images:    []string{"a.png"},
	}
	if err := good.Validate(today); err != nil {
		t.Fatalf("good form: %v", err)
	}

	cases := []struct {
		name string
		edit func(*ProjectForm)
		want error
	}{
		{"no title", func(f *ProjectForm) { f.Title = " " }, validate.ErrMissingRequiredField},
		{"no category", func(f *ProjectForm) { f.Category = "" }, validate.ErrNoSelectionMade},
		{"bad target", func(f *ProjectForm) { f.Target = "-3" }, validate.ErrOutOfRangeValue},
		{"past start", func(f *ProjectForm) { f.StartDate = "2026-03-09" }, validate.ErrOutOfRangeValue},
		{"end before start", func(f *ProjectForm) { f.EndDate = "2026-03-10" }, validate.ErrOutOfRangeValue},
		{"no images", func(f *ProjectForm) { f.Images = nil }, validate.ErrMissingRequiredField},
	}
	for _, tc := range cases {
		f := good
		tc.edit(&f)
		if err := f.Validate(today); !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v want %v", tc.name, err, tc.want)
		}
	}

	in := good.Intent()
	if in.Payload["images"] != "1" || in.Payload["category"] != "tech" {
		t.Fatalf("payload = %v", in.Payload)
	}
}

func TestDonationAmount(t *testing.T) {
	if _, err := (DonationForm{}).Amount(); !errors.Is(err, validate.ErrNoSelectionMade) {
		t.Fatalf("empty: %v", err)
	}
	if _, err := (DonationForm{Custom: "abc"}).Amount(); !errors.Is(err, validate.ErrOutOfRangeValue) {
		t.Fatalf("bad custom: %v", err)
	}
	if v, err := (DonationForm{Custom: "$42.5"}).Amount(); err != nil || v != 42.5 {
		t.Fatalf("custom = %v, %v", v, err)
	}
	in, err := (DonationForm{ProjectID: "p1", Preset: "25", Custom: "99"}).Intent()
	if err != nil || in.Payload["amount"] != "25" {
		t.Fatalf("preset should win: %+v %v", in, err)
	}
}

func TestSearchIgnoresBlank(t *testing.T) {
	if _, ok := Search("   "); ok {
		t.Fatal("blank search should not emit")
	}
	if in, ok := Search(" solar "); !ok || in.Payload["term"] != "solar" {
		t.Fatalf("search intent = %+v", in)
	}
}
