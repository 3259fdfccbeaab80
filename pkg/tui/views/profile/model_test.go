package profile

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/notify"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/theme"
	"tableflip.dev/fundflow/pkg/tui/uiutil"
)

func newPage(t *testing.T) (*Model, *intent.Recorder, *notify.Recorder) {
	t.Helper()
	sink := &intent.Recorder{}
	notices := &notify.Recorder{}
	env := &uiutil.Env{
		Theme:    theme.Default(),
		Catalog:  catalog.Sample(),
		Sink:     sink,
		Notifier: notices,
		Profile:  "Green Energy Co.",
	}
	m := New(env)
	m.SetSize(100, 40)
	m.Enter("")
	return m, sink, notices
}

func key(m *Model, code rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestCancelProjectNeedsReason(t *testing.T) {
	m, sink, notices := newPage(t)
	key(m, tea.KeyRight) // My Projects
	key(m, tea.KeyEnter) // into the list
	key(m, tea.KeyEnter) // cancel first card
	if !m.cancel.IsOpen() {
		t.Fatalf("enter on an active project should open the cancel dialog")
	}
	key(m, tea.KeyEnter)
	if !m.cancel.IsOpen() {
		t.Fatalf("blank reason must keep the dialog open")
	}
	if last, _ := notices.Last(); last.Text != "Please provide a reason for cancellation." {
		t.Fatalf("unexpected notice %q", last.Text)
	}

	m.cancel.SetValue("reason", "Supplier fell through")
	cmd := key(m, tea.KeyEnter)
	if m.cancel.IsOpen() {
		t.Fatalf("valid reason should close the dialog")
	}
	got := sink.Intents()
	if len(got) != 1 || got[0].Action != intent.CancelProject || got[0].Payload["project"] != "p1" {
		t.Fatalf("expected cancel intent for p1, got %+v", got)
	}
	var change *events.CardChangeMsg
	for _, msg := range collect(cmd) {
		if c, ok := msg.(events.CardChangeMsg); ok {
			change = &c
		}
	}
	if change == nil || change.Card.EffectiveStatus() != catalog.StatusCancelled {
		t.Fatalf("expected a card change announcing the cancellation")
	}
	if c, _ := m.env.Catalog.Find("p1"); c.EffectiveStatus() != catalog.StatusCancelled {
		t.Fatalf("catalog should record the cancellation")
	}

	key(m, tea.KeyEnter)
	if m.cancel.IsOpen() {
		t.Fatalf("a cancelled project cannot be cancelled again")
	}
}

func TestRejectedCancelKeepsCard(t *testing.T) {
	m, sink, _ := newPage(t)
	sink.Reject = func(intent.Intent) error { return intent.ErrRejected }
	key(m, tea.KeyRight)
	key(m, tea.KeyEnter)
	key(m, tea.KeyEnter)
	m.cancel.SetValue("reason", "nope")
	key(m, tea.KeyEnter)
	if !m.cancel.IsOpen() {
		t.Fatalf("rejected intent must keep the dialog open")
	}
	if c, _ := m.env.Catalog.Find("p1"); c.EffectiveStatus() != catalog.StatusActive {
		t.Fatalf("card must stay active when the backend refuses")
	}
}

func TestDeleteAccountFlow(t *testing.T) {
	m, sink, _ := newPage(t)
	m.Enter(TabSettings)
	key(m, tea.KeyEnter) // into settings
	key(m, tea.KeyEnter) // open dialog
	if !m.remove.IsOpen() || !m.Capturing() {
		t.Fatalf("expected delete dialog")
	}
	key(m, tea.KeyEnter)
	if !m.remove.IsOpen() {
		t.Fatalf("missing password must block deletion")
	}
	m.remove.SetValue("password", "secret")
	cmd := key(m, tea.KeyEnter)
	if m.remove.IsOpen() {
		t.Fatalf("dialog should close")
	}
	if acts := sink.Actions(); len(acts) != 1 || acts[0] != intent.DeleteAccount {
		t.Fatalf("expected delete-account intent, got %v", acts)
	}
	navigated := false
	for _, msg := range collect(cmd) {
		if n, ok := msg.(events.NavigateMsg); ok && n.Page == events.PageAuth {
			navigated = true
		}
	}
	if !navigated {
		t.Fatalf("deleting the account should return to the sign-in page")
	}
}

func TestOpeningOneDialogClosesTheOther(t *testing.T) {
	m, _, _ := newPage(t)
	m.cancel.Open(m.cancel.Controller().Subject())
	m.remove.Open(m.remove.Controller().Subject())
	if m.cancel.IsOpen() || !m.remove.IsOpen() {
		t.Fatalf("only one dialog may be visible")
	}
}
