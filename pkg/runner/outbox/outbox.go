// Package outbox prints the intents the local backend accepted.
package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/printers"
	"tableflip.dev/fundflow/pkg/store"
)

// Outbox lists recorded intents, optionally only one action.
type Outbox struct {
	Action      string
	ShowID      bool
	JSON        bool
	Persistence store.Persistence
	Out         io.Writer
}

// Do prints the outbox.
func (o *Outbox) Do(ctx context.Context) error {
	if o.Persistence == nil {
		return errors.New("can not list outbox, no persistence")
	}
	out := o.Out
	if out == nil {
		out = color.Output
	}
	all := make([]intent.Intent, 0)
	for _, in := range o.Persistence.Outbox(ctx) {
		if o.Action == "" || string(in.Action) == o.Action {
			all = append(all, in)
		}
	}
	if o.JSON {
		b, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	pp := printers.PrettyPrint{ShowID: o.ShowID, Out: out}
	pp.Title("Outbox")
	pp.Intents(all...)
	return nil
}
