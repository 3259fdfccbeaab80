package ui

import (
	"context"

	"github.com/sirupsen/logrus"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/logging"
	"tableflip.dev/fundflow/pkg/store"
	"tableflip.dev/fundflow/pkg/tui/app"
	"tableflip.dev/fundflow/pkg/tui/events"
)

// UI launches the terminal interface.
type UI struct {
	Persistence store.Persistence
	Catalog     *catalog.Catalog
	Log         *logrus.Logger
	Profile     string
	Page        string
}

func (d *UI) Do(ctx context.Context) error {
	if d.Log == nil {
		d.Log = logging.Discard()
	}
	d.Log.WithFields(logrus.Fields{"page": d.Page, "profile": d.Profile}).Info("starting ui")
	err := app.Run(ctx, app.Options{
		Catalog: d.Catalog,
		Store:   d.Persistence,
		Log:     d.Log,
		Profile: d.Profile,
		Start:   events.PageID(d.Page),
	})
	if err != nil {
		d.Log.WithError(err).Error("ui exited")
	}
	return err
}
