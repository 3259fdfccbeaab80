package ratingview

import (
	"context"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fundflow/pkg/notify"
	"tableflip.dev/fundflow/pkg/rating"
	"tableflip.dev/fundflow/pkg/tui/theme"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string { return ansiPattern.ReplaceAllString(s, "") }

type memStore struct {
	v  float64
	ok bool
}

func (m *memStore) Rating() (float64, bool, error) { return m.v, m.ok, nil }
func (m *memStore) SetRating(v float64) error {
	m.v, m.ok = v, true
	return nil
}

func newBound(t *testing.T, store *memStore, n notify.Notifier) *Model {
	t.Helper()
	m := New("rating", theme.Default())
	p := rating.NewPair(store, rating.WithDisplay(m), rating.WithNotifier(n))
	m.Bind(p)
	if err := p.Load(5); err != nil {
		t.Fatalf("load: %v", err)
	}
	return m
}

func TestSliderKeysKeepRepresentationsInSync(t *testing.T) {
	m := newBound(t, &memStore{}, nil)
	m.Focus()
	m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	m.Update(tea.KeyPressMsg{Code: tea.KeyPgUp})
	if m.Slider() != 6.1 || m.Field() != "6.1" || m.Stars().Value != 6.1 {
		t.Fatalf("expected 6.1 everywhere, got slider=%v field=%q stars=%v", m.Slider(), m.Field(), m.Stars().Value)
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnd})
	m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if m.Slider() != 10 {
		t.Fatalf("slider must clamp at 10, got %v", m.Slider())
	}
}

func TestFieldTypingDrivesSlider(t *testing.T) {
	m := newBound(t, &memStore{}, nil)
	m.Focus()
	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if !m.Capturing() {
		t.Fatalf("down should move focus to the numeric field")
	}
	m.field.SetValue("")
	m.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	m.Update(tea.KeyPressMsg{Code: '5', Text: "5"})
	if m.Slider() != 10 {
		t.Fatalf("typing 15 should clamp the slider to 10, got %v", m.Slider())
	}
	if m.Field() != "15" {
		t.Fatalf("field keeps raw text while typing, got %q", m.Field())
	}
	m.Blur()
	if m.Field() != "10" {
		t.Fatalf("blur should normalize the field, got %q", m.Field())
	}
}

func TestEnterRequestsSubmit(t *testing.T) {
	store := &memStore{}
	rec := &notify.Recorder{}
	m := newBound(t, store, rec)
	m.Focus()
	submit, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !submit {
		t.Fatalf("enter should request submit")
	}
	msg, err := m.pair.Submit(context.Background())
	if err != nil || msg != "Thank you for your 5/10 rating!" || store.v != 5 {
		t.Fatalf("unexpected submit result %q %v %v", msg, err, store.v)
	}
}

func TestRenderStarsCountsGlyphs(t *testing.T) {
	out := stripANSI(RenderStars(rating.Render(7.5), theme.Default().Stars))
	if strings.Count(out, starGlyph) != 10 {
		t.Fatalf("expected 10 star glyphs, got %q", out)
	}
	if !strings.Contains(out, "(7.5/10)") {
		t.Fatalf("expected label, got %q", out)
	}
	out = stripANSI(RenderStars(rating.Render(0), theme.Default().Stars))
	if strings.Count(out, starGlyph) != 10 || !strings.Contains(out, "(0/10)") {
		t.Fatalf("unexpected zero rating row %q", out)
	}
}
