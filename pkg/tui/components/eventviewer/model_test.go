package eventviewer

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/notify"
	"tableflip.dev/fundflow/pkg/tui/events"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(s string) string { return ansi.ReplaceAllString(s, "") }

func TestEntryForIntent(t *testing.T) {
	in := intent.New(intent.Donate, map[string]string{"amount": "25"})
	e, ok := EntryFor(events.IntentMsg{Component: "project", Intent: in})
	if !ok || e.Source != "project" || e.Summary != "donate" || e.Level != LevelInfo {
		t.Fatalf("unexpected entry %+v", e)
	}
	e, _ = EntryFor(events.IntentMsg{Component: "project", Intent: in, Err: errors.New("offline")})
	if e.Level != LevelError || e.Detail != "offline" {
		t.Fatalf("refused intent should log as error, got %+v", e)
	}
	if _, ok := EntryFor("tick"); ok {
		t.Fatalf("unknown messages are skipped")
	}
}

func TestAppendNewestFirstAndCapped(t *testing.T) {
	m := NewModel(2)
	m.SetSize(60, 8)
	m.Append(Entry{Summary: "one"})
	m.Append(Entry{Summary: "two"})
	m.Append(Entry{Summary: "three", Level: LevelOf(notify.Error)})
	got := m.Entries()
	if len(got) != 2 || got[0].Summary != "three" || got[1].Summary != "two" {
		t.Fatalf("unexpected entries %+v", got)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "Events (2)") || !strings.Contains(view, "[app] three") {
		t.Fatalf("view missing entries:\n%s", view)
	}
}
