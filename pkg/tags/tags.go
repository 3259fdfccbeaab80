// Package tags implements the free-text chip list used when creating a
// project.
package tags

import "strings"

// Surface mirrors chips and the input box on screen.
type Surface interface {
	SetChips(chips []string)
	SetInput(text string)
}

// Editor is an ordered list of tags plus the pending input text.
type Editor struct {
	chips []string
	input string

	dedupe bool
	limit  int

	surface Surface
}

// Option configures an Editor.
type Option func(*Editor)

// WithSurface injects the on-screen representation.
func WithSurface(s Surface) Option { return func(e *Editor) { e.surface = s } }

// WithDedupe ignores tags already present (case-insensitive). Off by default.
func WithDedupe() Option { return func(e *Editor) { e.dedupe = true } }

// WithLimit caps the number of tags. Zero means unlimited, the default.
func WithLimit(n int) Option { return func(e *Editor) { e.limit = n } }

// New returns an editor seeded with initial chips.
func New(initial []string, opts ...Option) *Editor {
	e := &Editor{}
	for _, o := range opts {
		o(e)
	}
	for _, c := range initial {
		if c = strings.TrimSpace(c); c != "" {
			e.chips = append(e.chips, c)
		}
	}
	e.sync()
	return e
}

// SetInput records what is typed in the input box.
func (e *Editor) SetInput(text string) {
	e.input = text
	if e.surface != nil {
		e.surface.SetInput(text)
	}
}

// Input returns the pending text.
func (e *Editor) Input() string { return e.input }

// Enter commits the pending input. It reports whether a chip was added.
func (e *Editor) Enter() bool {
	added := e.Add(e.input)
	if added {
		e.input = ""
		e.sync()
	}
	return added
}

// Add appends text as a chip when it is non-blank after trimming.
func (e *Editor) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if e.limit > 0 && len(e.chips) >= e.limit {
		return false
	}
	if e.dedupe && e.Has(text) {
		return false
	}
	e.chips = append(e.chips, text)
	e.sync()
	return true
}

// Remove deletes the chip at i only.
func (e *Editor) Remove(i int) bool {
	if i < 0 || i >= len(e.chips) {
		return false
	}
	e.chips = append(e.chips[:i], e.chips[i+1:]...)
	e.sync()
	return true
}

// Has reports whether a chip equal to text exists, ignoring case.
func (e *Editor) Has(text string) bool {
	for _, c := range e.chips {
		if strings.EqualFold(c, text) {
			return true
		}
	}
	return false
}

// Chips returns a copy of the tags.
func (e *Editor) Chips() []string { return append([]string(nil), e.chips...) }

// Len returns the number of tags.
func (e *Editor) Len() int { return len(e.chips) }

// Reset drops every chip and the pending input.
func (e *Editor) Reset() {
	e.chips = nil
	e.input = ""
	e.sync()
}

func (e *Editor) sync() {
	if e.surface == nil {
		return
	}
	e.surface.SetChips(e.Chips())
	e.surface.SetInput(e.input)
}
