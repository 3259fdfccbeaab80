package flash

import (
	"strings"
	"testing"

	"tableflip.dev/fundflow/pkg/notify"
	"tableflip.dev/fundflow/pkg/tui/theme"
)

func TestNoticeHidesAfterItsOwnTimer(t *testing.T) {
	m := New("flash", theme.Default())
	m.Notify(notify.Notice{Level: notify.Success, Text: "Thank you for your 7/10 rating!"})
	if !m.Visible() || !strings.Contains(m.View(), "7/10") {
		t.Fatalf("expected notice to show, got %q", m.View())
	}
	if m.Arm() == nil {
		t.Fatalf("expected a hide timer")
	}
	if m.Arm() != nil {
		t.Fatalf("timer should only be armed once per notice")
	}

	first := hideMsg{id: "flash", tag: m.tag}
	m.Notify(notify.Notice{Level: notify.Error, Text: "second"})
	m.Update(first)
	if !m.Visible() {
		t.Fatalf("stale timer must not hide a newer notice")
	}
	m.Update(hideMsg{id: "other", tag: m.tag})
	if !m.Visible() {
		t.Fatalf("timer for another component must be ignored")
	}
	m.Update(hideMsg{id: "flash", tag: m.tag})
	if m.Visible() || m.View() != "" {
		t.Fatalf("expected notice hidden")
	}
}

func TestStopInvalidatesPending(t *testing.T) {
	m := New("flash", theme.Default())
	m.Notify(notify.Notice{Text: "hello"})
	m.Stop()
	if m.Visible() || m.Arm() != nil {
		t.Fatalf("stop should hide and disarm")
	}
}
