package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/config"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
	"github.com/jonboulle/clockwork"
)

// Payload is what a bulk loader delivers from the persistent store.
type Payload struct {
	// Locations are the raw ingested entities, in store order.
	Locations []gw.LocationEntity

	// Years are all distinct assessment years present in the store.
	Years []string
}

// Loader supplies the full catalog content from the persistent store.
// Implementations live in internal/ioload.
type Loader interface {
	Load(ctx context.Context) (*Payload, error)
}

// LoadWithRetry acquires the catalog via the loader, retrying a fixed
// number of times with a fixed delay between attempts. The clock is
// injectable so tests run without sleeping; pass
// clockwork.NewRealClock() in production.
//
// On success the built snapshot is returned; the caller publishes it
// via Holder.Swap. On exhausted retries the holder is left untouched
// and every dependent operation keeps failing with ErrNotInitialized.
func LoadWithRetry(
	ctx context.Context,
	loader Loader,
	cfg *config.CatalogConfig,
	clock clockwork.Clock,
) (*Snapshot, error) {
	attempts := cfg.LoadRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		payload, err := loader.Load(ctx)
		if err == nil {
			snap, buildErr := Build(payload.Locations, payload.Years)
			if buildErr != nil {
				return nil, fmt.Errorf("cannot build catalog snapshot: %w", buildErr)
			}
			slog.Info("Catalog loaded",
				"locations", snap.Len(), "years", len(snap.Years()))
			return snap, nil
		}

		lastErr = err
		if attempt == attempts {
			break
		}
		slog.Warn("Catalog load failed, retrying",
			"attempt", attempt, "delay", cfg.RetryDelay, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-clock.After(cfg.RetryDelay):
		}
	}

	return nil, fmt.Errorf(
		"catalog load failed after %d attempts: %w", attempts, lastErr)
}
