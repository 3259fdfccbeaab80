// Package uiutil holds what every page needs to reach the rest of the
// program, plus small rendering helpers shared by the views.
package uiutil

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/intent"
	"tableflip.dev/fundflow/pkg/logging"
	"tableflip.dev/fundflow/pkg/notify"
	"tableflip.dev/fundflow/pkg/rating"
	"tableflip.dev/fundflow/pkg/tui/events"
	"tableflip.dev/fundflow/pkg/tui/theme"
)

// Env is shared by all pages of one program run.
type Env struct {
	Ctx      context.Context
	Theme    theme.Theme
	Catalog  *catalog.Catalog
	Sink     intent.Sink
	Notifier notify.Notifier
	Ratings  rating.Store
	Log      *logrus.Logger
	// Profile is the display name of the signed-in demo user; cards with a
	// matching creator are listed as theirs.
	Profile string
	Now     func() time.Time
}

// Context returns the run context, never nil.
func (e *Env) Context() context.Context {
	if e.Ctx == nil {
		return context.Background()
	}
	return e.Ctx
}

// Today returns the current date.
func (e *Env) Today() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// Notify forwards to the notifier, if any.
func (e *Env) Notify(level notify.Level, format string, args ...interface{}) {
	notify.Or(e.Notifier).Notify(notify.Notice{Level: level, Text: fmt.Sprintf(format, args...)})
}

// Emit hands in to the sink. It returns the sink's error and a command that
// announces the outcome to the app.
func (e *Env) Emit(component events.ComponentID, in intent.Intent) (tea.Cmd, error) {
	var err error
	if e.Sink == nil {
		err = intent.ErrRejected
	} else {
		err = e.Sink.Emit(e.Context(), in)
	}
	return events.IntentCmd(component, in, err), err
}

// Logger returns the logger, discarding when none was configured.
func (e *Env) Logger() *logrus.Logger {
	if e.Log == nil {
		e.Log = logging.Discard()
	}
	return e.Log
}

// Money renders a whole-dollar amount with thousands separators.
func Money(v float64) string {
	n := int64(v + 0.5)
	s := fmt.Sprintf("%d", n)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return "$" + string(out)
}
