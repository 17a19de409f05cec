// Package core wires the catalog, resolver, aggregator, temporal
// resolver and ranking engine into the interfaces the outer layers
// (HTTP handlers, conversational tools) consume.
package core

import (
	"context"
	"fmt"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/aggregate"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/catalog"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/config"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/ranking"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/resolver"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/store"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/temporal"
)

// maxRankLimit bounds the limit parameter of RankLocations.
const maxRankLimit = 100

// Core is the request-processing layer of the service. It is stateless
// across calls: every request is a pure function of the catalog
// snapshot, the store content and the request parameters. Concurrency
// comes from the host runtime's request-level parallelism.
type Core struct {
	holder   *catalog.Holder
	store    store.StatStore
	resolver *resolver.Resolver
	engine   *ranking.Engine
}

// New assembles a Core from its collaborators.
func New(cfg *config.Config, holder *catalog.Holder, st store.StatStore) *Core {
	return &Core{
		holder:   holder,
		store:    st,
		resolver: resolver.New(&cfg.Resolver),
		engine:   ranking.New(st, cfg),
	}
}

// ResolveLocation finds the best-matching locations for a possibly
// misspelled name. Multiple candidates are not an error: the list is
// ranked and callers wanting disambiguation inspect it themselves.
// Returns catalog.ErrNotInitialized when no snapshot was ever loaded.
func (c *Core) ResolveLocation(
	name string,
	locType gw.LocationType,
	parentHint string,
) ([]gw.SearchResult, error) {
	snap, err := c.holder.Snapshot()
	if err != nil {
		return nil, err
	}
	return c.resolver.Resolve(snap, name, locType, parentHint), nil
}

// CanonicalStats returns the fully merged record of one logical
// location for one year, or nil when the store has no rows for it.
// An empty year means the most recent available year.
func (c *Core) CanonicalStats(
	ctx context.Context,
	locationID, year string,
) (*gw.StatRecord, error) {
	snap, err := c.holder.Snapshot()
	if err != nil {
		return nil, err
	}

	if year == "" {
		year = snap.MostRecentYear()
	}

	canonID := snap.CanonicalID(locationID)
	if _, ok := snap.Lookup(canonID); !ok {
		return nil, nil
	}

	var rows []gw.StatRecord
	for _, id := range snap.RawIDs(canonID) {
		part, err := c.store.StatsFor(ctx, id, year)
		if err != nil {
			return nil, fmt.Errorf(
				"cannot fetch stats for location %s year %s: %w",
				canonID, year, err)
		}
		rows = append(rows, part...)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	for i := range rows {
		rows[i].LocationID = canonID
	}
	merged := aggregate.Merge(rows)
	return &merged, nil
}

// HistoricalStats returns one canonical record per year for a logical
// location, ascending by year. Years without data are simply absent.
func (c *Core) HistoricalStats(
	ctx context.Context,
	locationID string,
) ([]gw.StatRecord, error) {
	snap, err := c.holder.Snapshot()
	if err != nil {
		return nil, err
	}

	canonID := snap.CanonicalID(locationID)
	if _, ok := snap.Lookup(canonID); !ok {
		return nil, nil
	}

	var rows []gw.StatRecord
	for _, id := range snap.RawIDs(canonID) {
		part, err := c.store.StatsAllYears(ctx, id)
		if err != nil {
			return nil, fmt.Errorf(
				"cannot fetch historical stats for location %s: %w",
				canonID, err)
		}
		rows = append(rows, part...)
	}

	for i := range rows {
		rows[i].LocationID = canonID
	}
	return aggregate.ByYear(rows), nil
}

// RankLocations ranks locations of one hierarchy level by a metric for
// a single year or across a historical window, including trend data for
// multi-year queries.
func (c *Core) RankLocations(
	ctx context.Context,
	field gw.Field,
	locType gw.LocationType,
	order ranking.Order,
	limit int,
	spec gw.YearSpec,
) (*ranking.Result, error) {
	snap, err := c.holder.Snapshot()
	if err != nil {
		return nil, err
	}

	if limit < 1 || limit > maxRankLimit {
		return nil, fmt.Errorf(
			"ranking limit must be between 1 and %d, got %d",
			maxRankLimit, limit)
	}

	return c.engine.TopK(ctx, snap, field, locType, order, limit, spec)
}

// ResolveYears exposes the temporal resolution the engine would apply
// for a spec, for callers that shape presentation before fetching.
func (c *Core) ResolveYears(spec gw.YearSpec) (temporal.Resolution, error) {
	snap, err := c.holder.Snapshot()
	if err != nil {
		return temporal.Resolution{}, err
	}
	return temporal.Resolve(spec, snap.Years()), nil
}
