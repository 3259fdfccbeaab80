package gallery

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fundflow/pkg/tui/theme"
)

func TestTicksAdvanceAndWrap(t *testing.T) {
	m := New("gallery", theme.Default())
	m.SetSlides([]string{"one", "two", "three"})
	if m.Start() == nil {
		t.Fatalf("expected a scheduled tick")
	}
	tag := m.carousel.Start()
	for i := 0; i < 3; i++ {
		if cmd := m.Update(TickMsg{Component: "gallery", Tag: tag}); cmd == nil {
			t.Fatalf("current tick should schedule the next one")
		}
	}
	if m.Current() != 0 {
		t.Fatalf("three ticks over three slides should wrap to 0, got %d", m.Current())
	}
}

func TestStoppedGalleryDropsTicks(t *testing.T) {
	m := New("gallery", theme.Default())
	m.SetSlides([]string{"one", "two"})
	m.Start()
	tag := m.carousel.Start()
	m.Stop()
	if cmd := m.Update(TickMsg{Component: "gallery", Tag: tag}); cmd != nil || m.Current() != 0 {
		t.Fatalf("stale tick must be dropped")
	}
	if m.Update(TickMsg{Component: "other", Tag: tag}) != nil {
		t.Fatalf("ticks for another gallery must be ignored")
	}
}

func TestArrowsAndDigitsNavigate(t *testing.T) {
	m := New("gallery", theme.Default())
	m.SetSlides([]string{"one", "two", "three"})
	m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if m.Current() != 0 {
		t.Fatalf("unfocused gallery should ignore keys")
	}
	m.Focus()
	m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if m.Current() != 2 {
		t.Fatalf("prev from first should wrap to last, got %d", m.Current())
	}
	m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if m.Current() != 1 {
		t.Fatalf("digit should jump to slide, got %d", m.Current())
	}
	if !strings.Contains(m.View(), "two") || !strings.Contains(m.View(), "○ ● ○") {
		t.Fatalf("unexpected view %q", m.View())
	}
}

func TestSingleSlideDoesNotAutoAdvance(t *testing.T) {
	m := New("gallery", theme.Default())
	m.SetSlides([]string{"only"})
	if m.Start() != nil {
		t.Fatalf("one slide needs no timer")
	}
}
