package cardlist

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/filter"
	"tableflip.dev/fundflow/pkg/tui/theme"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string { return ansiPattern.ReplaceAllString(s, "") }

func newList(t *testing.T) (*Model, *filter.Filter) {
	t.Helper()
	m := New("cards", theme.Default())
	f := filter.New(catalog.Sample().Cards, filter.WithSurface(m))
	m.Attach(f)
	return m, f
}

func TestListMirrorsFilter(t *testing.T) {
	m, f := newList(t)
	if m.Count() != f.Total() {
		t.Fatalf("expected every card visible, got %d of %d", m.Count(), f.Total())
	}
	f.Apply(filter.Query{Search: "solar"})
	view := stripANSI(m.View())
	if !strings.Contains(view, "Solar Kit") || strings.Contains(view, "Art Book") {
		t.Fatalf("unexpected listing %q", view)
	}
	if !strings.Contains(view, "$37,500 of $50,000") {
		t.Fatalf("expected funding line, got %q", view)
	}
}

func TestPlaceholderShownOnce(t *testing.T) {
	m, f := newList(t)
	f.Apply(filter.Query{Search: "zzz"})
	f.Apply(filter.Query{Search: "zzzz"})
	if m.Placeholders() != 1 {
		t.Fatalf("expected exactly one placeholder, got %d", m.Placeholders())
	}
	if !strings.Contains(stripANSI(m.View()), NoResultsText) {
		t.Fatalf("expected placeholder text")
	}
	f.Apply(filter.Query{})
	if m.Placeholders() != 0 {
		t.Fatalf("placeholder should be removed when results return")
	}
}

func TestCursorAndEnter(t *testing.T) {
	m, _ := newList(t)
	m.Focus()
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	picked, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !picked {
		t.Fatalf("enter should pick the card under the cursor")
	}
	card, _ := m.Selected()
	if card.ID != m.cards()[1].ID {
		t.Fatalf("expected second card selected, got %s", card.ID)
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnd})
	if _, ok := m.Selected(); !ok {
		t.Fatalf("end should land on the last card")
	}
}
