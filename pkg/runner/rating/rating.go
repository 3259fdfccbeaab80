// Package rating reads and writes the saved project rating.
package rating

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/printers"
	"tableflip.dev/fundflow/pkg/rating"
	"tableflip.dev/fundflow/pkg/store"
)

// Get prints the saved rating.
type Get struct {
	Persistence store.Persistence
	Out         io.Writer
}

// Do prints the rating as stars.
func (g *Get) Do(_ context.Context) error {
	if g.Persistence == nil {
		return errors.New("can not get rating, no persistence")
	}
	v, ok, err := g.Persistence.Rating()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: g.Out}
	pp.Rating(v, ok)
	return nil
}

// Set stores a new rating through the same pair the TUI uses, so the value
// is parsed and clamped identically.
type Set struct {
	Value       string
	Persistence store.Persistence
	Out         io.Writer
}

// Do parses, clamps, saves and confirms.
func (s *Set) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not set rating, no persistence")
	}
	pair := rating.NewPair(s.Persistence)
	pair.SetText(s.Value)
	msg, err := pair.Submit(ctx)
	if err != nil {
		return err
	}
	in := intent.New(intent.RateProject, map[string]string{"rating": pair.Text()})
	if err := s.Persistence.Record(in); err != nil {
		return fmt.Errorf("record rating: %w", err)
	}
	out := s.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.FgGreen).Fprintln(out, msg)
	return nil
}

// Clear erases the saved rating.
type Clear struct {
	Persistence store.Persistence
}

// Do erases the rating.
func (c *Clear) Do(_ context.Context) error {
	if c.Persistence == nil {
		return errors.New("can not clear rating, no persistence")
	}
	return c.Persistence.ClearRating()
}
