// Package modal implements the open/confirm/cancel lifecycle shared by every
// dialog: delete account, cancel project, report, add category and logout.
package modal

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/fundflow/pkg/notify"
	"tableflip.dev/fundflow/pkg/validate"
)

// State is the visibility of a modal.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// ErrNotOpen is returned by Confirm on a closed modal.
var ErrNotOpen = errors.New("modal: not open")

// Subject identifies what the modal acts on, e.g. the project being
// cancelled. It replaces page-level "current id" globals.
type Subject struct {
	ID    string
	Title string
}

// Request is what a confirm effect receives.
type Request struct {
	Subject Subject
	Values  validate.Values
}

// Effect runs after validation passes. A non-nil error keeps the modal open.
type Effect func(ctx context.Context, req Request) error

// Surface shows or hides the rendered dialog.
type Surface interface {
	SetVisible(id string, visible bool)
}

// Rect is the on-screen region of an open modal.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside r. An empty rect contains
// nothing.
func (r Rect) Contains(x, y int) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Controller owns one modal's state.
type Controller struct {
	id     string
	title  string
	fields []Field

	state   State
	subject Subject
	bounds  Rect

	policy   Policy
	effect   Effect
	notifier notify.Notifier
	surface  Surface

	onOpen func(*Controller)
}

// Field describes one input shown inside the modal.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Secret      bool
	Choices     []string // rendered as a pick list instead of free text
}

// Option configures a Controller.
type Option func(*Controller)

// WithTitle sets the heading.
func WithTitle(title string) Option { return func(c *Controller) { c.title = title } }

// WithFields declares the inputs the modal collects.
func WithFields(fields ...Field) Option {
	return func(c *Controller) { c.fields = append(c.fields, fields...) }
}

// WithPolicy sets the confirm validation.
func WithPolicy(p Policy) Option { return func(c *Controller) { c.policy = p } }

// WithEffect sets the action run on a valid confirm.
func WithEffect(e Effect) Option { return func(c *Controller) { c.effect = e } }

// WithNotifier routes validation and effect failures to the user.
func WithNotifier(n notify.Notifier) Option { return func(c *Controller) { c.notifier = n } }

// WithSurface injects the visibility surface.
func WithSurface(s Surface) Option { return func(c *Controller) { c.surface = s } }

// New returns a closed modal.
func New(id string, opts ...Option) *Controller {
	c := &Controller{id: id, policy: None}
	for _, o := range opts {
		o(c)
	}
	c.notifier = notify.Or(c.notifier)
	return c
}

// ID returns the modal id.
func (c *Controller) ID() string { return c.id }

// Title returns the heading.
func (c *Controller) Title() string { return c.title }

// Fields returns the declared inputs.
func (c *Controller) Fields() []Field { return append([]Field(nil), c.fields...) }

// State returns the current state.
func (c *Controller) State() State { return c.state }

// IsOpen reports whether the modal is visible.
func (c *Controller) IsOpen() bool { return c.state == Open }

// Subject returns what the open modal acts on.
func (c *Controller) Subject() Subject { return c.subject }

// SetBounds records where the modal was drawn, for outside-click dismissal.
func (c *Controller) SetBounds(r Rect) { c.bounds = r }

// Bounds returns the last recorded region.
func (c *Controller) Bounds() Rect { return c.bounds }

// Open shows the modal with no subject.
func (c *Controller) Open() { c.OpenFor(Subject{}) }

// OpenFor shows the modal acting on s.
func (c *Controller) OpenFor(s Subject) {
	c.subject = s
	if c.state == Open {
		return
	}
	if c.onOpen != nil {
		c.onOpen(c)
	}
	c.setState(Open)
}

// Cancel hides the modal without side effects.
func (c *Controller) Cancel() {
	if c.state != Open {
		return
	}
	c.setState(Closed)
	c.subject = Subject{}
}

// Confirm validates values and, if they pass, runs the effect once and
// closes. Failures keep the modal open and are reported to the notifier.
func (c *Controller) Confirm(ctx context.Context, values validate.Values) error {
	if c.state != Open {
		return ErrNotOpen
	}
	if err := c.policy.Validate(values); err != nil {
		c.notifier.Notify(notify.Notice{Level: notify.Error, Text: err.Error()})
		return err
	}
	if c.effect != nil {
		if err := c.effect(ctx, Request{Subject: c.subject, Values: values}); err != nil {
			c.notifier.Notify(notify.Notice{Level: notify.Error, Text: err.Error()})
			return fmt.Errorf("modal %s: %w", c.id, err)
		}
	}
	c.setState(Closed)
	c.subject = Subject{}
	return nil
}

// ClickAt dismisses an open modal when the point is outside its bounds. It
// reports whether the click dismissed the modal.
func (c *Controller) ClickAt(x, y int) bool {
	if c.state != Open || c.bounds.Contains(x, y) {
		return false
	}
	c.Cancel()
	return true
}

func (c *Controller) setState(s State) {
	c.state = s
	if c.surface != nil {
		c.surface.SetVisible(c.id, s == Open)
	}
}
