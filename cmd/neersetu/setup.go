package main

import (
	"context"
	"fmt"

	"github.com/dev-eloper-365/NeerSetuBackend/internal/iodb"
	"github.com/dev-eloper-365/NeerSetuBackend/internal/ioload"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/catalog"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/core"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/store"
	"github.com/jonboulle/clockwork"
)

// newCore connects to the configured backend, loads the catalog with
// bounded retry, and assembles the core. The returned cleanup releases
// the backend handle.
func newCore(ctx context.Context) (*core.Core, func(), error) {
	cfg := getConfig()

	var (
		loader  catalog.Loader
		st      store.StatStore
		cleanup func()
	)

	if path := cfg.Catalog.SnapshotFile; path != "" {
		sq, err := ioload.OpenSqlite(path)
		if err != nil {
			return nil, nil, err
		}
		loader, st = sq, sq
		cleanup = func() { sq.Close() }
	} else {
		op := iodb.NewPgxOperator()
		if err := op.Connect(ctx, &cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		pg := ioload.NewPg(op, true)
		loader, st = pg, pg
		cleanup = func() { op.Close() }
	}

	snap, err := catalog.LoadWithRetry(
		ctx, loader, &cfg.Catalog, clockwork.NewRealClock())
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	holder := catalog.NewHolder()
	holder.Swap(snap)
	return core.New(cfg, holder, st), cleanup, nil
}
