package rating

import (
	"context"
	"errors"
	"math"
	"testing"

	"tableflip.dev/fundflow/pkg/notify"
)

type memStore struct {
	v   float64
	ok  bool
	err error
}

func (m *memStore) Rating() (float64, bool, error) { return m.v, m.ok, m.err }
func (m *memStore) SetRating(v float64) error {
	if m.err != nil {
		return m.err
	}
	m.v, m.ok = v, true
	return nil
}

type screen struct {
	slider float64
	field  string
	stars  Stars
}

func (s *screen) SetSlider(v float64) { s.slider = v }
func (s *screen) SetField(t string)   { s.field = t }
func (s *screen) SetStars(st Stars)   { s.stars = st }

func TestSetValueClampsOutOfRange(t *testing.T) {
	p := NewPair(nil)
	for _, v := range []float64{-3, -0.01, 10.5, 1e9, math.Inf(1), math.Inf(-1), math.NaN()} {
		p.SetValue(v)
		got := p.Value()
		if got != Min && got != Max {
			t.Fatalf("SetValue(%v) stored %v, want a bound", v, got)
		}
	}
	p.SetValue(-1)
	if p.Value() != 0 {
		t.Fatalf("negative should clamp to 0, got %v", p.Value())
	}
	p.SetValue(11)
	if p.Value() != 10 {
		t.Fatalf("above range should clamp to 10, got %v", p.Value())
	}
}

func TestSetTextParsesLikeNumberField(t *testing.T) {
	p := NewPair(nil)
	cases := map[string]float64{
		"7.5":    7.5,
		"abc":    0,
		"":       0,
		"12":     10,
		"-4":     0,
		"6.2xy":  6.2,
		" 3 ":    3,
		"1e999":  10,
		"-1e999": 0,
		"1e-999": 0,
	}
	for in, want := range cases {
		p.SetText(in)
		if p.Value() != want {
			t.Fatalf("SetText(%q) = %v want %v", in, p.Value(), want)
		}
	}
}

func TestRepresentationsAgree(t *testing.T) {
	s := &screen{}
	p := NewPair(nil, WithDisplay(s))
	p.SetText("8.25")
	if s.slider != 8.25 || s.field != "8.25" || s.stars.Value != 8.25 {
		t.Fatalf("screen out of sync: %+v", s)
	}
	p.SetSlider(3)
	if s.field != "3" || s.stars.Full != 3 {
		t.Fatalf("slider did not sync field/stars: %+v", s)
	}
}

func TestStarCounts(t *testing.T) {
	for _, v := range []float64{0, 0.5, 1, 3.3, 7, 7.75, 9.99, 10} {
		st := Render(v)
		wantFull := int(math.Floor(v))
		wantEmpty := 10 - int(math.Ceil(v))
		if st.Full != wantFull || st.Empty != wantEmpty {
			t.Fatalf("Render(%v) = %+v", v, st)
		}
		frac := v != math.Floor(v)
		if st.HasPartial() != frac {
			t.Fatalf("Render(%v) partial = %v want %v", v, st.HasPartial(), frac)
		}
		if st.Slots() != 10 {
			t.Fatalf("Render(%v) draws %d slots, want 10", v, st.Slots())
		}
	}
}

func TestStarsLabelAndWidth(t *testing.T) {
	st := Render(6.5)
	if st.Label() != "(6.5/10)" {
		t.Fatalf("label = %q", st.Label())
	}
	if st.PartialWidth() != "50%" {
		t.Fatalf("partial width = %q", st.PartialWidth())
	}
}

func TestLoadPrefersSavedValue(t *testing.T) {
	p := NewPair(&memStore{v: 4.5, ok: true})
	if err := p.Load(7); err != nil {
		t.Fatal(err)
	}
	if p.Value() != 4.5 {
		t.Fatalf("value = %v want saved 4.5", p.Value())
	}

	p = NewPair(&memStore{})
	if err := p.Load(7); err != nil {
		t.Fatal(err)
	}
	if p.Value() != 7 {
		t.Fatalf("value = %v want default 7", p.Value())
	}
}

func TestSubmitPersistsAndNotifies(t *testing.T) {
	store := &memStore{}
	rec := &notify.Recorder{}
	p := NewPair(store, WithNotifier(rec))
	p.SetValue(8.5)

	msg, err := p.Submit(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if msg != "Thank you for your 8.5/10 rating!" {
		t.Fatalf("msg = %q", msg)
	}
	if !store.ok || store.v != 8.5 {
		t.Fatalf("store = %+v", store)
	}
	if n, _ := rec.Last(); n.Level != notify.Success {
		t.Fatalf("notice = %+v", n)
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	boom := errors.New("disk full")
	p := NewPair(&memStore{err: boom})
	if _, err := p.Submit(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestNudgeRounds(t *testing.T) {
	p := NewPair(nil)
	p.SetValue(9.8)
	p.Nudge(0.5)
	if p.Value() != 10 {
		t.Fatalf("nudge past max = %v", p.Value())
	}
	p.Nudge(-0.1)
	if p.Value() != 9.9 {
		t.Fatalf("nudge = %v want 9.9", p.Value())
	}
}
