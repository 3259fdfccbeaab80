package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/notify"
)

// Outbox records intents the backend accepted.
type Outbox interface {
	Record(in intent.Intent) error
}

// dispatcher sits between the pages and the backend. Accepted intents are
// recorded to the outbox and acknowledged with a success notice.
type dispatcher struct {
	backend  intent.Sink
	outbox   Outbox
	notifier notify.Notifier
	log      *logrus.Logger
}

var _ intent.Sink = (*dispatcher)(nil)

// Emit implements intent.Sink.
func (d *dispatcher) Emit(ctx context.Context, in intent.Intent) error {
	entry := d.log.WithFields(logrus.Fields{"intent": in.ID, "action": in.Action})
	if err := d.backend.Emit(ctx, in); err != nil {
		entry.WithError(err).Warn("intent refused")
		return fmt.Errorf("%s: %w", in.Action, err)
	}
	if d.outbox != nil {
		if err := d.outbox.Record(in); err != nil {
			entry.WithError(err).Warn("record outbox")
		}
	}
	// the rating pair confirms on its own
	if in.Action != intent.RateProject {
		notify.Or(d.notifier).Notify(notify.Notice{Level: notify.Success, Text: intent.Acknowledgement(in)})
	}
	return nil
}
