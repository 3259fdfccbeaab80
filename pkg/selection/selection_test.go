package selection

import "testing"

func amounts() []Option {
	return []Option{{ID: "10", Label: "$10"}, {ID: "25", Label: "$25"}, {ID: "50", Label: "$50"}}
}

func TestSelectSwitchesExclusively(t *testing.T) {
	marks := map[string]bool{}
	g := New(amounts(), WithMarker(MarkerFunc(func(id string, on bool) { marks[id] = on })))

	g.Select("10")
	g.Select("25")

	id, ok := g.Selected()
	if !ok || id != "25" {
		t.Fatalf("selected = %q,%v want 25", id, ok)
	}
	if marks["10"] {
		t.Fatal("10 should be deselected on the surface")
	}
	if !marks["25"] {
		t.Fatal("25 should be marked selected")
	}
	count := 0
	for _, on := range marks {
		if on {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected one marked option, got %d", count)
	}
}

func TestSelectUnknownIsNoop(t *testing.T) {
	g := New(amounts())
	g.Select("50")
	g.Select("1000")
	if id, _ := g.Selected(); id != "50" {
		t.Fatalf("selected = %q want 50", id)
	}
	if g.IsSelected("1000") {
		t.Fatal("unknown id reported selected")
	}
}

func TestEmptyGroupHasNoSelection(t *testing.T) {
	g := New(nil)
	g.Move(1)
	if _, ok := g.Selected(); ok {
		t.Fatal("empty group cannot have a selection")
	}
}

func TestCustomSlotIsMutuallyExclusive(t *testing.T) {
	g := New(amounts(), WithCustom())
	g.Select("25")
	g.FocusCustom()
	if _, ok := g.Selected(); ok {
		t.Fatal("focusing custom input should clear presets")
	}
	g.SetCustom("42")
	g.Select("10")
	if g.Custom() != "" {
		t.Fatalf("picking a preset should clear custom value, got %q", g.Custom())
	}
}

func TestMoveWraps(t *testing.T) {
	g := New(amounts())
	g.Move(-1)
	if id, _ := g.Selected(); id != "50" {
		t.Fatalf("move -1 from none = %q want 50", id)
	}
	g.Move(1)
	if id, _ := g.Selected(); id != "10" {
		t.Fatalf("move +1 from last = %q want 10", id)
	}
	g.SelectIndex(7)
	if g.SelectedIndex() != 0 {
		t.Fatalf("out of range index should be ignored, got %d", g.SelectedIndex())
	}
}
