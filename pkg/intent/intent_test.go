package intent

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestDescribeMasksSecretsAndSortsKeys(t *testing.T) {
	in := New(Signup, map[string]string{
		"password": "hunter2",
		"email":    "a@b.c",
		"confirm":  "hunter2",
	})
	got := in.Describe()
	if strings.Contains(got, "hunter2") {
		t.Fatalf("secret leaked in %q", got)
	}
	if !strings.HasPrefix(got, `action:"signup" confirm="***" email="a@b.c"`) {
		t.Fatalf("unexpected describe output %q", got)
	}
	if in.ID == "" {
		t.Fatal("expected intent id")
	}
}

func TestRedactedMasksCopyOnly(t *testing.T) {
	in := New(Login, map[string]string{"email": "a@b.c", "password": "hunter2"})
	r := in.Redacted()
	if r.Payload["password"] != "***" || r.Payload["email"] != "a@b.c" {
		t.Fatalf("unexpected redacted payload %v", r.Payload)
	}
	if r.ID != in.ID || r.Action != Login {
		t.Fatalf("redaction changed identity: %+v", r)
	}
	if in.Payload["password"] != "hunter2" {
		t.Fatalf("original payload was modified: %v", in.Payload)
	}
}

func TestRecorderRejects(t *testing.T) {
	r := &Recorder{Reject: func(in Intent) error {
		if in.Action == Donate {
			return ErrRejected
		}
		return nil
	}}
	if err := r.Emit(context.Background(), New(Donate, nil)); !errors.Is(err, ErrRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
	if err := r.Emit(context.Background(), New(Login, nil)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if acts := r.Actions(); len(acts) != 1 || acts[0] != Login {
		t.Fatalf("recorded actions = %v", acts)
	}
}

func TestLocalLogsAndHonorsContext(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	local := NewLocal(log)

	if err := local.Emit(context.Background(), New(AddCategory, map[string]string{"name": "Games"})); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if !strings.Contains(buf.String(), "add-category") {
		t.Fatalf("expected log line, got %q", buf.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := local.Emit(ctx, New(Logout, nil)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestAcknowledgement(t *testing.T) {
	got := Acknowledgement(New(Signup, map[string]string{"name": "Ada"}))
	if got != "Account created successfully! Welcome to FundFlow, Ada!" {
		t.Fatalf("ack = %q", got)
	}
}
