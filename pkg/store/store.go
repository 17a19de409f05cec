// Package store defines the contract the core consumes from the
// persistent statistics store. Implementations live in internal/ioload;
// tests use in-memory fakes.
package store

import (
	"context"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
)

// StatStore supplies raw (pre-aggregation) stat rows. Rows may be keyed
// by duplicate raw location ids; callers canonicalize ids through the
// catalog snapshot before merging.
type StatStore interface {
	// StatsFor returns the raw rows for one ingested location id and
	// year. An empty slice means no data, not an error.
	StatsFor(ctx context.Context, locationID, year string) ([]gw.StatRecord, error)

	// StatsAllYears returns the raw rows for one ingested location id
	// across every year present in the store.
	StatsAllYears(ctx context.Context, locationID string) ([]gw.StatRecord, error)

	// StatsByTypeAndYear returns the raw rows of every location of the
	// given hierarchy level for one year.
	StatsByTypeAndYear(ctx context.Context, t gw.LocationType, year string) ([]gw.StatRecord, error)

	// Years returns all distinct assessment years present in the store.
	Years(ctx context.Context) ([]string, error)
}
