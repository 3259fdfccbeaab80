package projects

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/theme"
	"tableflip.dev/fundflow/pkg/tui/uiutil"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string { return ansiPattern.ReplaceAllString(s, "") }

func newPage(t *testing.T) (*Model, *intent.Recorder) {
	t.Helper()
	rec := &intent.Recorder{}
	env := &uiutil.Env{Theme: theme.Default(), Catalog: catalog.Sample(), Sink: rec}
	m := New(env)
	m.SetSize(100, 40)
	m.Enter("")
	return m, rec
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func press(m *Model, code rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

func TestSearchFiltersAsYouType(t *testing.T) {
	m, _ := newPage(t)
	typeText(m, "WATER")
	if m.Filter().Count() != 2 {
		t.Fatalf("expected two water-tagged projects, got %d", m.Filter().Count())
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "Showing 2 of 6 projects") {
		t.Fatalf("expected count line, got %q", view)
	}
	typeText(m, "zzz")
	if !strings.Contains(stripANSI(m.View()), "No projects found") || m.List().Placeholders() != 1 {
		t.Fatalf("expected a single no-results placeholder")
	}
}

func TestStatusPickerAndTagShortcut(t *testing.T) {
	m, _ := newPage(t)
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	press(m, tea.KeyRight) // active
	if m.Filter().Count() != 4 {
		t.Fatalf("expected four active projects, got %d", m.Filter().Count())
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	press(m, tea.KeyRight) // first tag: solar
	if m.Filter().ActiveTag() != "solar" || m.Filter().Count() != 1 {
		t.Fatalf("tag shortcut should override the query, tag=%q count=%d", m.Filter().ActiveTag(), m.Filter().Count())
	}
	press(m, tea.KeyLeft) // back to all
	if m.Filter().ActiveTag() != "" || m.Filter().Count() != 4 {
		t.Fatalf("choosing all should restore the compound query, got %d", m.Filter().Count())
	}
}

func TestEnterOnCardOpensProject(t *testing.T) {
	m, rec := newPage(t)
	m.Enter("category:education")
	cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatalf("expected navigation command")
	}
	if got := rec.Actions(); len(got) != 1 || got[0] != intent.OpenProject {
		t.Fatalf("expected open-project intent, got %v", got)
	}
	if rec.Intents()[0].Payload["project"] != "p4" {
		t.Fatalf("expected p4, got %v", rec.Intents()[0].Payload)
	}
	var nav *events.NavigateMsg
	for _, msg := range drain(cmd) {
		if n, ok := msg.(events.NavigateMsg); ok {
			nav = &n
		}
	}
	if nav == nil || nav.Page != events.PageProject || nav.Subject != "p4" {
		t.Fatalf("expected navigation to p4, got %+v", nav)
	}
}

func TestCardChangeRefilters(t *testing.T) {
	m, _ := newPage(t)
	m.Enter("category:tech")
	card, _ := m.env.Catalog.Find("p1")
	cancelled := *card
	cancelled.Status = catalog.StatusCancelled
	m.status.Group().Select(catalog.StatusActive)
	m.apply()
	m.Update(events.CardChangeMsg{Card: cancelled})
	if m.Filter().Count() != 0 {
		t.Fatalf("cancelled card should drop out of the active listing")
	}
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
