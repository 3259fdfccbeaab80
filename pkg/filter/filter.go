// Package filter narrows a static card list by search text, category, status
// and tag shortcuts, keeping a visible count and a single "no results"
// placeholder in step with the result.
package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"tableflip.dev/fundflow/pkg/catalog"
)

// All disables the category, status or tag predicate it is used for.
const All = "all"

// Order is a sort applied to the visible cards.
type Order string

const (
	Newest  Order = "newest"
	Popular Order = "popular"
	Funded  Order = "funded"
	Ending  Order = "ending"
)

// Orders lists the supported sorts in display order.
var Orders = []Order{Newest, Popular, Funded, Ending}

// Query is the compound filter.
type Query struct {
	Search   string
	Category string
	Status   string
	Sort     Order
}

func (q Query) normalized() Query {
	q.Search = strings.TrimSpace(q.Search)
	if strings.TrimSpace(q.Category) == "" {
		q.Category = All
	}
	if strings.TrimSpace(q.Status) == "" {
		q.Status = All
	}
	if q.Sort == "" {
		q.Sort = Newest
	}
	return q
}

// Surface mirrors the result on screen.
type Surface interface {
	SetVisible(cardID string, visible bool)
	SetCount(n int)
	// SetNoResults shows or removes the placeholder. It is called with
	// true at most once per zero-result state.
	SetNoResults(show bool)
}

// Filter applies queries to a fixed card list.
type Filter struct {
	cards   []catalog.Card
	visible []bool
	order   []int
	count   int

	query     Query
	tag       string
	noResults bool

	fold    cases.Caser
	surface Surface
}

// Option configures a Filter.
type Option func(*Filter)

// WithSurface injects the on-screen representation.
func WithSurface(s Surface) Option { return func(f *Filter) { f.surface = s } }

// New builds a filter with every card visible.
func New(cards []catalog.Card, opts ...Option) *Filter {
	f := &Filter{
		cards: append([]catalog.Card(nil), cards...),
		fold:  cases.Fold(),
	}
	for _, o := range opts {
		o(f)
	}
	f.visible = make([]bool, len(f.cards))
	f.Apply(Query{})
	return f
}

// Apply runs the compound query and disengages any tag shortcut.
func (f *Filter) Apply(q Query) int {
	q = q.normalized()
	f.query = q
	f.tag = ""

	term := f.fold.String(q.Search)
	for i, c := range f.cards {
		f.visible[i] = f.matchesSearch(c, term) &&
			(q.Category == All || c.Category == q.Category) &&
			(q.Status == All || c.EffectiveStatus() == strings.ToLower(q.Status))
	}
	return f.commit()
}

// ApplyTag engages the tag shortcut: only cards with a tag containing tag
// stay visible. Passing "all" re-runs the last compound query instead.
func (f *Filter) ApplyTag(tag string) int {
	tag = strings.TrimSpace(tag)
	if tag == "" || strings.EqualFold(tag, All) {
		return f.Apply(f.query)
	}
	f.tag = tag
	needle := f.fold.String(tag)
	for i, c := range f.cards {
		f.visible[i] = f.tagsContain(c, needle)
	}
	return f.commit()
}

// SetSort changes the order without touching visibility.
func (f *Filter) SetSort(o Order) {
	if o == "" {
		o = Newest
	}
	f.query.Sort = o
	f.sortVisible()
}

// Query returns the last compound query.
func (f *Filter) Query() Query { return f.query }

// ActiveTag returns the engaged tag shortcut, or "".
func (f *Filter) ActiveTag() string { return f.tag }

// Count returns the number of visible cards.
func (f *Filter) Count() int { return f.count }

// Total returns the number of cards.
func (f *Filter) Total() int { return len(f.cards) }

// NoResults reports whether the placeholder is showing.
func (f *Filter) NoResults() bool { return f.noResults }

// IsVisible reports whether the card with id is visible.
func (f *Filter) IsVisible(id string) bool {
	for i, c := range f.cards {
		if c.ID == id {
			return f.visible[i]
		}
	}
	return false
}

// Visible returns the visible cards in sort order.
func (f *Filter) Visible() []catalog.Card {
	out := make([]catalog.Card, 0, len(f.order))
	for _, i := range f.order {
		out = append(out, f.cards[i])
	}
	return out
}

// Update replaces the stored copy of a card, e.g. after it was cancelled.
// Visibility is recomputed with the current predicates.
func (f *Filter) Update(card catalog.Card) bool {
	for i := range f.cards {
		if f.cards[i].ID == card.ID {
			f.cards[i] = card
			if f.tag != "" {
				f.ApplyTag(f.tag)
			} else {
				f.Apply(f.query)
			}
			return true
		}
	}
	return false
}

func (f *Filter) matchesSearch(c catalog.Card, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(f.fold.String(c.Title), term) {
		return true
	}
	return f.tagsContain(c, term)
}

func (f *Filter) tagsContain(c catalog.Card, needle string) bool {
	for _, t := range c.Tags {
		if strings.Contains(f.fold.String(t), needle) {
			return true
		}
	}
	return false
}

func (f *Filter) commit() int {
	f.count = 0
	for i, c := range f.cards {
		if f.visible[i] {
			f.count++
		}
		if f.surface != nil {
			f.surface.SetVisible(c.ID, f.visible[i])
		}
	}
	f.sortVisible()

	empty := f.count == 0
	if f.surface != nil {
		f.surface.SetCount(f.count)
		// remove the old placeholder before showing a new one so they never stack
		if f.noResults {
			f.surface.SetNoResults(false)
		}
		if empty {
			f.surface.SetNoResults(true)
		}
	}
	f.noResults = empty
	return f.count
}

func (f *Filter) sortVisible() {
	f.order = f.order[:0]
	for i := range f.cards {
		if f.visible[i] {
			f.order = append(f.order, i)
		}
	}
	cards := f.cards
	switch f.query.Sort {
	case Popular:
		sort.SliceStable(f.order, func(a, b int) bool {
			return cards[f.order[a]].Backers > cards[f.order[b]].Backers
		})
	case Funded:
		sort.SliceStable(f.order, func(a, b int) bool {
			return cards[f.order[a]].Funded() > cards[f.order[b]].Funded()
		})
	case Ending:
		sort.SliceStable(f.order, func(a, b int) bool {
			return endingKey(cards[f.order[a]]) < endingKey(cards[f.order[b]])
		})
	}
}

// endingKey sorts closed projects after every running one.
func endingKey(c catalog.Card) int {
	if c.EffectiveStatus() != catalog.StatusActive {
		return int(^uint(0) >> 1)
	}
	return c.DaysLeft
}

// ParseOrder maps a name to an Order, defaulting to Newest.
func ParseOrder(s string) Order {
	for _, o := range Orders {
		if strings.EqualFold(string(o), strings.TrimSpace(s)) {
			return o
		}
	}
	return Newest
}
