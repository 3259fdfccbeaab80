package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/store"
)

// Info prints where fundflow reads and writes its state.
type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("FUNDFLOW_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "FUNDFLOW_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Fprintln(out, "FUNDFLOW_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Config.path:    ", n.Config.BasePath())
	catalogPath := n.Config.CatalogPath()
	if catalogPath == "" {
		catalogPath = "(built-in sample)"
	}
	fmt.Fprintln(out, "Config.catalog: ", catalogPath)
	logFile := n.Config.LogFile()
	if logFile == "" {
		logFile = "(disabled)"
	}
	fmt.Fprintln(out, "Config.log.file:", logFile)

	cat, err := catalog.Load(n.Config.CatalogPath())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Catalog: %d projects in %d categories\n", len(cat.Cards), len(cat.Categories))

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}
	if v, ok, err := n.Persistence.Rating(); err == nil && ok {
		fmt.Fprintf(out, "Rating: %v/10\n", v)
	} else {
		fmt.Fprintln(out, "Rating: none")
	}
	fmt.Fprintf(out, "Outbox: %d intents\n", len(n.Persistence.Outbox(ctx)))
	return nil
}
