package commands

import (
	"github.com/sirupsen/logrus"

	"tableflip.dev/fundflow/pkg/catalog"
	"tableflip.dev/fundflow/pkg/logging"
	"tableflip.dev/fundflow/pkg/store"
)

// env is what most commands need: the config, the store, the catalog and a
// logger.
type env struct {
	cfg     store.Config
	persist store.Persistence
	catalog *catalog.Catalog
	log     *logrus.Logger
}

func loadEnv() (*env, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Load(cfg.CatalogPath())
	if err != nil {
		return nil, err
	}
	log := logging.New(logging.Options{Level: cfg.LogLevel(), File: cfg.LogFile()})
	return &env{cfg: cfg, persist: p, catalog: cat, log: log}, nil
}
