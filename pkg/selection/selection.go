// Package selection keeps "exactly one picked" state for option lists: tabs,
// category pickers and donation tiles.
package selection

// Marker reflects selection changes on whatever renders the options.
type Marker interface {
	SetSelected(id string, selected bool)
}

// MarkerFunc adapts a function to a Marker.
type MarkerFunc func(id string, selected bool)

// SetSelected implements Marker.
func (f MarkerFunc) SetSelected(id string, selected bool) { f(id, selected) }

// Option is one entry in a Group.
type Option struct {
	ID    string
	Label string
}

// Group tracks which option, if any, is selected. At most one option is
// selected at a time.
type Group struct {
	options  []Option
	selected int

	marker Marker

	hasCustom bool
	custom    string
}

// GroupOption configures a Group.
type GroupOption func(*Group)

// WithMarker injects the surface that draws the selected marker.
func WithMarker(m Marker) GroupOption {
	return func(g *Group) { g.marker = m }
}

// WithCustom adds a free-text slot that is mutually exclusive with the preset
// options.
func WithCustom() GroupOption {
	return func(g *Group) { g.hasCustom = true }
}

// New builds a group with nothing selected.
func New(options []Option, opts ...GroupOption) *Group {
	g := &Group{
		options:  append([]Option(nil), options...),
		selected: -1,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Options returns the options in order.
func (g *Group) Options() []Option {
	return append([]Option(nil), g.options...)
}

// Len returns the number of options.
func (g *Group) Len() int { return len(g.options) }

// Select marks id selected and deselects the rest. Unknown ids are ignored.
// Picking a preset clears the custom value.
func (g *Group) Select(id string) {
	idx := g.index(id)
	if idx < 0 {
		return
	}
	g.setIndex(idx)
	if g.hasCustom {
		g.custom = ""
	}
}

// SelectIndex selects by position; out of range is ignored.
func (g *Group) SelectIndex(i int) {
	if i < 0 || i >= len(g.options) {
		return
	}
	g.Select(g.options[i].ID)
}

// Selected returns the selected option id.
func (g *Group) Selected() (string, bool) {
	if g.selected < 0 {
		return "", false
	}
	return g.options[g.selected].ID, true
}

// SelectedOption returns the selected option.
func (g *Group) SelectedOption() (Option, bool) {
	if g.selected < 0 {
		return Option{}, false
	}
	return g.options[g.selected], true
}

// SelectedIndex returns the selected position or -1.
func (g *Group) SelectedIndex() int { return g.selected }

// IsSelected reports whether id is the selected option.
func (g *Group) IsSelected(id string) bool {
	cur, ok := g.Selected()
	return ok && cur == id
}

// Move shifts the selection by delta, wrapping at both ends. With nothing
// selected it starts from the first or last option.
func (g *Group) Move(delta int) {
	n := len(g.options)
	if n == 0 || delta == 0 {
		return
	}
	var next int
	switch {
	case g.selected < 0 && delta > 0:
		next = 0
	case g.selected < 0:
		next = n - 1
	default:
		next = ((g.selected+delta)%n + n) % n
	}
	g.Select(g.options[next].ID)
}

// Clear deselects everything.
func (g *Group) Clear() {
	g.setIndex(-1)
}

// FocusCustom is called when the free-text slot gains focus; it clears the
// preset selection.
func (g *Group) FocusCustom() {
	if !g.hasCustom {
		return
	}
	g.Clear()
}

// SetCustom stores the free-text value.
func (g *Group) SetCustom(v string) {
	if !g.hasCustom {
		return
	}
	g.custom = v
}

// Custom returns the free-text value.
func (g *Group) Custom() string { return g.custom }

// HasCustom reports whether the group carries a free-text slot.
func (g *Group) HasCustom() bool { return g.hasCustom }

func (g *Group) setIndex(idx int) {
	prev := g.selected
	g.selected = idx
	if g.marker == nil {
		return
	}
	if prev >= 0 && prev != idx {
		g.marker.SetSelected(g.options[prev].ID, false)
	}
	if idx >= 0 {
		g.marker.SetSelected(g.options[idx].ID, true)
	}
}

func (g *Group) index(id string) int {
	for i, o := range g.options {
		if o.ID == id {
			return i
		}
	}
	return -1
}
