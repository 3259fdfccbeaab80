package tageditor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fundflow/pkg/tui/theme"
)

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestEnterCommitsTrimmedTag(t *testing.T) {
	m := New("tags", theme.Default())
	m.Focus()
	typeText(m, "  ")
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if len(m.Tags()) != 0 {
		t.Fatalf("blank input must not add a chip")
	}
	m.input.SetValue("")
	m.editor.SetInput("")
	typeText(m, "solar")
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := m.Tags(); len(got) != 1 || got[0] != "solar" {
		t.Fatalf("expected [solar], got %v", got)
	}
	if m.input.Value() != "" {
		t.Fatalf("input should clear after commit, got %q", m.input.Value())
	}
}

func TestChipRemovalTargetsHighlighted(t *testing.T) {
	m := New("tags", theme.Default())
	for _, tag := range []string{"a", "b", "c"} {
		m.editor.Add(tag)
	}
	m.Focus()
	m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Capturing() {
		t.Fatalf("up should move into the chip row")
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if got := strings.Join(m.Tags(), ","); got != "a,c" {
		t.Fatalf("expected b removed, got %s", got)
	}
	if !strings.Contains(m.View(), "a ×") {
		t.Fatalf("view should list remaining chips: %q", m.View())
	}
}

func TestResetClearsEverything(t *testing.T) {
	m := New("tags", theme.Default())
	m.editor.Add("x")
	m.editor.SetInput("pending")
	m.Reset()
	if len(m.Tags()) != 0 || m.input.Value() != "" {
		t.Fatalf("reset should clear chips and input")
	}
}
