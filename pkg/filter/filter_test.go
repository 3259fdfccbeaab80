package filter

import (
	"testing"

	"tableflip.dev/fundflow/pkg/catalog"
)

type grid struct {
	visible      map[string]bool
	count        int
	placeholders int
	maxSeen      int
}

func newGrid() *grid { return &grid{visible: map[string]bool{}} }

func (g *grid) SetVisible(id string, v bool) { g.visible[id] = v }
func (g *grid) SetCount(n int)               { g.count = n }
func (g *grid) SetNoResults(show bool) {
	if show {
		g.placeholders++
	} else if g.placeholders > 0 {
		g.placeholders--
	}
	if g.placeholders > g.maxSeen {
		g.maxSeen = g.placeholders
	}
}

func twoCards() []catalog.Card {
	return []catalog.Card{
		{ID: "a", Title: "Solar Kit", Category: "tech", Tags: catalog.SplitTags("solar,energy")},
		{ID: "b", Title: "Art Book", Category: "art", Tags: catalog.SplitTags("book")},
	}
}

func TestAllQueryShowsEverything(t *testing.T) {
	cards := catalog.Sample().Cards
	g := newGrid()
	f := New(cards, WithSurface(g))
	n := f.Apply(Query{Search: "", Category: All, Status: All})
	if n != len(cards) || g.count != len(cards) {
		t.Fatalf("count = %d / %d want %d", n, g.count, len(cards))
	}
	for _, c := range cards {
		if !g.visible[c.ID] {
			t.Fatalf("%s hidden", c.ID)
		}
	}
}

func TestSearchExample(t *testing.T) {
	g := newGrid()
	f := New(twoCards(), WithSurface(g))
	if n := f.Apply(Query{Search: "solar"}); n != 1 {
		t.Fatalf("count = %d want 1", n)
	}
	if !g.visible["a"] || g.visible["b"] {
		t.Fatalf("visibility = %v", g.visible)
	}
}

func TestSearchIsCaseInsensitiveAndMatchesTags(t *testing.T) {
	f := New(twoCards())
	if n := f.Apply(Query{Search: "ART"}); n != 1 || !f.IsVisible("b") {
		t.Fatalf("title match failed, count %d", n)
	}
	if n := f.Apply(Query{Search: "energy"}); n != 1 || !f.IsVisible("a") {
		t.Fatalf("tag match failed, count %d", n)
	}
}

func TestCategoryAndStatus(t *testing.T) {
	f := New(catalog.Sample().Cards)
	if n := f.Apply(Query{Category: "art"}); n != 1 {
		t.Fatalf("art count = %d", n)
	}
	if n := f.Apply(Query{Status: "active"}); n != 4 {
		t.Fatalf("active count = %d", n)
	}
	if n := f.Apply(Query{Status: "cancelled", Category: "health"}); n != 1 || !f.IsVisible("p6") {
		t.Fatalf("cancelled health count = %d", n)
	}
}

func TestNoResultsPlaceholderNeverStacks(t *testing.T) {
	g := newGrid()
	f := New(twoCards(), WithSurface(g))
	f.Apply(Query{Search: "zzz"})
	f.Apply(Query{Search: "yyy"})
	f.ApplyTag("nothing")
	if g.placeholders != 1 || g.maxSeen != 1 {
		t.Fatalf("placeholders = %d (max %d), want exactly one", g.placeholders, g.maxSeen)
	}
	if !f.NoResults() {
		t.Fatal("expected no-results state")
	}
	f.Apply(Query{})
	if g.placeholders != 0 || f.NoResults() {
		t.Fatalf("placeholder should be removed, got %d", g.placeholders)
	}
}

func TestTagShortcutOverridesQuery(t *testing.T) {
	f := New(catalog.Sample().Cards)
	f.Apply(Query{Category: "art"})
	if n := f.ApplyTag("Water"); n != 2 {
		t.Fatalf("water tag count = %d want 2", n)
	}
	if f.ActiveTag() != "Water" {
		t.Fatalf("active tag = %q", f.ActiveTag())
	}
	if n := f.ApplyTag("all"); n != 1 {
		t.Fatalf("all should restore the art query, got %d", n)
	}
	if f.ActiveTag() != "" {
		t.Fatal("tag should be disengaged")
	}
	f.ApplyTag("energy")
	if n := f.Apply(Query{Search: "kit"}); n != 1 || f.ActiveTag() != "" {
		t.Fatalf("new search should disengage tag; count %d tag %q", n, f.ActiveTag())
	}
}

func TestSortOrders(t *testing.T) {
	f := New(catalog.Sample().Cards)
	f.SetSort(Popular)
	if v := f.Visible(); v[0].ID != "p1" {
		t.Fatalf("most backed first, got %s", v[0].ID)
	}
	f.SetSort(Funded)
	if v := f.Visible(); v[0].ID != "p2" {
		t.Fatalf("best funded first, got %s", v[0].ID)
	}
	f.SetSort(Ending)
	v := f.Visible()
	if v[0].ID != "p4" {
		t.Fatalf("soonest ending active first, got %s", v[0].ID)
	}
	last := v[len(v)-1]
	if last.EffectiveStatus() == catalog.StatusActive {
		t.Fatalf("closed projects should sort last, got %s", last.ID)
	}
	if ParseOrder("FUNDED") != Funded || ParseOrder("bogus") != Newest {
		t.Fatal("ParseOrder mismatch")
	}
}

func TestUpdateRecomputes(t *testing.T) {
	f := New(catalog.Sample().Cards)
	f.Apply(Query{Status: "active"})
	card, _ := catalog.Sample().Find("p1")
	card.Status = catalog.StatusCancelled
	if !f.Update(*card) {
		t.Fatal("update failed")
	}
	if f.IsVisible("p1") || f.Count() != 3 {
		t.Fatalf("cancelled card should drop out of active view, count %d", f.Count())
	}
}
