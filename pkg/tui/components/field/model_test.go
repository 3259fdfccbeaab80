package field

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fundflow/pkg/tui/theme"
)

func TestFieldReportsChanges(t *testing.T) {
	m := New("email", "Email", theme.Default())
	if changed, _ := m.Update(tea.KeyPressMsg{Code: 'a', Text: "a"}); changed {
		t.Fatalf("blurred input must ignore typing")
	}
	m.Focus()
	if changed, _ := m.Update(tea.KeyPressMsg{Code: 'a', Text: "a"}); !changed || m.Value() != "a" {
		t.Fatalf("expected typed text, got %q", m.Value())
	}
	if changed, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyLeft}); changed {
		t.Fatalf("cursor movement is not a change")
	}
}

func TestSecretFieldMasks(t *testing.T) {
	m := New("password", "Password", theme.Default(), WithSecret())
	m.SetValue("hunter2")
	if strings.Contains(m.View(), "hunter2") || !strings.Contains(m.View(), "Password") {
		t.Fatalf("unexpected view %q", m.View())
	}
}
