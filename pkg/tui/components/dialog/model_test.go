package dialog

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fundflow/pkg/modal"
	"tableflip.dev/fundflow/pkg/notify"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/theme"
)

func reportDialog(effect modal.Effect, n notify.Notifier) *Model {
	ctl := modal.New("report",
		modal.WithTitle("Report Project"),
		modal.WithFields(modal.Field{Name: "reason", Label: "Reason", Choices: modal.ReportReasons}),
		modal.WithPolicy(modal.ReportPolicy),
		modal.WithEffect(effect),
		modal.WithNotifier(n),
	)
	return New(ctl, theme.Default(), "")
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func TestConfirmWithoutSelectionStaysOpen(t *testing.T) {
	rec := &notify.Recorder{}
	calls := 0
	d := reportDialog(func(context.Context, modal.Request) error { calls++; return nil }, rec)
	d.Open(modal.Subject{ID: "p1", Title: "Solar Kit"})

	res, _ := d.Update(context.Background(), enter())
	if res != Rejected || !d.IsOpen() {
		t.Fatalf("expected rejection with dialog open, got %v", res)
	}
	if d.Err() != "Please select a reason for reporting" {
		t.Fatalf("unexpected inline error %q", d.Err())
	}
	if last, _ := rec.Last(); last.Level != notify.Error {
		t.Fatalf("expected an error notice")
	}

	d.Update(context.Background(), tea.KeyPressMsg{Code: tea.KeyDown})
	res, _ = d.Update(context.Background(), enter())
	if res != Confirmed || d.IsOpen() || calls != 1 {
		t.Fatalf("expected confirm to run the effect once and close: res=%v calls=%d", res, calls)
	}
}

func TestEffectErrorKeepsDialogOpen(t *testing.T) {
	d := reportDialog(func(context.Context, modal.Request) error { return errors.New("offline") }, nil)
	d.Open(modal.Subject{})
	d.SetValue("reason", "Other")
	res, _ := d.Update(context.Background(), enter())
	if res != Rejected || !d.IsOpen() {
		t.Fatalf("effect failure must keep the dialog open")
	}
	if !strings.Contains(d.Err(), "offline") {
		t.Fatalf("expected effect error surfaced, got %q", d.Err())
	}
}

func TestClickOutsideCancels(t *testing.T) {
	d := reportDialog(nil, nil)
	d.Open(modal.Subject{Title: "Solar Kit"})
	view := d.Render(strings.Repeat("\n", 39), 100, 40)
	if !strings.Contains(view, "Report Project") {
		t.Fatalf("expected dialog in composed view")
	}
	b := d.Controller().Bounds()
	if b.W == 0 || b.H == 0 {
		t.Fatalf("render should record bounds")
	}
	if res, _ := d.Update(context.Background(), events.ClickMsg{X: b.X + 1, Y: b.Y + 1}); res != Pending || !d.IsOpen() {
		t.Fatalf("click inside must not dismiss")
	}
	if res, _ := d.Update(context.Background(), events.ClickMsg{X: 0, Y: 0}); res != Cancelled || d.IsOpen() {
		t.Fatalf("click outside should cancel")
	}
}

func TestEscCancelsAndReopenClears(t *testing.T) {
	ctl := modal.New("delete",
		modal.WithTitle("Delete Account"),
		modal.WithFields(modal.Field{Name: "password", Label: "Password", Secret: true}),
		modal.WithPolicy(modal.DeleteAccountPolicy),
	)
	d := New(ctl, theme.Default(), "This cannot be undone.")
	d.Open(modal.Subject{})
	d.SetValue("password", "hunter2")
	if strings.Contains(d.View(), "hunter2") {
		t.Fatalf("secret fields must be masked")
	}
	res, _ := d.Update(context.Background(), tea.KeyPressMsg{Code: tea.KeyEscape})
	if res != Cancelled || d.IsOpen() {
		t.Fatalf("esc should cancel")
	}
	d.Open(modal.Subject{})
	if d.Values()["password"] != "" {
		t.Fatalf("reopening should clear previous input")
	}
}
