// Package rating keeps the project rating in sync across its three
// representations: the slider, the numeric field and the star row.
package rating

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"tableflip.dev/fundflow/pkg/notify"
	"tableflip.dev/fundflow/pkg/validate"
)

const (
	Min = 0.0
	Max = 10.0

	// Key is the durable store key holding the last submitted rating.
	Key = "projectRating"
)

// Store persists the submitted rating.
type Store interface {
	// Rating returns the saved value and whether one exists.
	Rating() (float64, bool, error)
	SetRating(v float64) error
}

// Display mirrors the value on screen.
type Display interface {
	SetSlider(v float64)
	SetField(text string)
	SetStars(s Stars)
}

// Clamp pins v into [Min, Max]. NaN becomes Min.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < Min:
		return Min
	case v > Max:
		return Max
	}
	return v
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Parse reads the numeric field the way a browser number parse would: the
// leading number is used, anything unparseable is 0, and the result is
// clamped.
func Parse(s string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return Min
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Min
	}
	// overflow comes back as ±Inf and clamps to the nearest bound
	return Clamp(v)
}

// Format renders v without trailing zeros, e.g. 7.5 or 8.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Pair is the synced slider and numeric field.
type Pair struct {
	value float64
	text  string

	store    Store
	display  Display
	notifier notify.Notifier
}

// Option configures a Pair.
type Option func(*Pair)

// WithDisplay injects the on-screen representation.
func WithDisplay(d Display) Option { return func(p *Pair) { p.display = d } }

// WithNotifier routes submit feedback.
func WithNotifier(n notify.Notifier) Option { return func(p *Pair) { p.notifier = n } }

// NewPair builds a pair backed by store. Call Load to initialize it.
func NewPair(store Store, opts ...Option) *Pair {
	p := &Pair{store: store}
	for _, o := range opts {
		o(p)
	}
	p.notifier = notify.Or(p.notifier)
	p.apply(Min)
	return p
}

// Load initializes from the saved rating, falling back to def when nothing
// has been saved.
func (p *Pair) Load(def float64) error {
	if p.store != nil {
		v, ok, err := p.store.Rating()
		if err != nil {
			p.apply(Clamp(def))
			return fmt.Errorf("rating: load: %w", err)
		}
		if ok {
			p.apply(Clamp(v))
			return nil
		}
	}
	p.apply(Clamp(def))
	return nil
}

// SetValue clamps v and updates every representation.
func (p *Pair) SetValue(v float64) { p.apply(Clamp(v)) }

// SetText handles input typed in the numeric field.
func (p *Pair) SetText(s string) { p.apply(Parse(s)) }

// SetSlider handles the slider moving to v.
func (p *Pair) SetSlider(v float64) { p.apply(Clamp(v)) }

// Nudge moves the value by delta, rounded to one decimal.
func (p *Pair) Nudge(delta float64) {
	p.SetValue(math.Round((p.value+delta)*10) / 10)
}

// Value returns the current rating.
func (p *Pair) Value() float64 { return p.value }

// Text returns the numeric field contents.
func (p *Pair) Text() string { return p.text }

// Stars returns the current star row.
func (p *Pair) Stars() Stars { return Render(p.value) }

// Submit persists the current value and returns the thank-you message.
func (p *Pair) Submit(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	v := p.value
	if v < Min || v > Max || math.IsNaN(v) {
		err := validate.New(validate.OutOfRangeValue, "rating", "Please enter a valid rating between 0 and 10")
		p.notifier.Notify(notify.Notice{Level: notify.Error, Text: err.Error()})
		return "", err
	}
	if p.store != nil {
		if err := p.store.SetRating(v); err != nil {
			p.notifier.Notify(notify.Notice{Level: notify.Error, Text: "Could not save your rating"})
			return "", fmt.Errorf("rating: save: %w", err)
		}
	}
	msg := fmt.Sprintf("Thank you for your %s/10 rating!", Format(v))
	p.notifier.Notify(notify.Notice{Level: notify.Success, Text: msg})
	return msg, nil
}

func (p *Pair) apply(v float64) {
	p.value = v
	p.text = Format(v)
	if p.display != nil {
		p.display.SetSlider(v)
		p.display.SetField(p.text)
		p.display.SetStars(Render(v))
	}
}
