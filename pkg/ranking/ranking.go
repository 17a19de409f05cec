// Package ranking orders locations by a metric for one or many years
// and synthesizes trend data for multi-year queries.
package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/aggregate"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/catalog"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/config"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/store"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/temporal"
	"golang.org/x/sync/errgroup"
)

// Order is the ranking direction.
type Order string

const (
	// Desc ranks the highest metric value first.
	Desc Order = "desc"
	// Asc ranks the lowest metric value first.
	Asc Order = "asc"
)

// ParseOrder converts a free-form string to an Order.
func ParseOrder(s string) (Order, bool) {
	switch Order(s) {
	case Desc, "":
		return Desc, true
	case Asc:
		return Asc, true
	}
	return "", false
}

// Entry is one ranked location.
type Entry struct {
	Location *gw.LocationEntity

	// Value is the metric for the target year in single-year mode, and
	// the cross-year average in multi-year mode.
	Value float64

	// Avg, Min and Max summarize the years the location appeared in.
	// Only meaningful in multi-year mode.
	Avg float64
	Min float64
	Max float64

	// Years lists the in-scope years the location had the metric for,
	// ascending. Only filled in multi-year mode.
	Years []string
}

// TrendPoint is one year of a trend series. Present is false for years
// the location had no value; the zero Value then carries no meaning.
type TrendPoint struct {
	Year    string
	Value   float64
	Present bool
}

// Series is the year-indexed metric of one location.
type Series struct {
	Location *gw.LocationEntity
	Points   []TrendPoint
}

// Result is a completed ranking.
type Result struct {
	Field      gw.Field
	Historical bool
	TargetYear string

	// Years are the in-scope years, ascending.
	Years []string

	Entries []Entry

	// Trend holds the year series of the top locations by average.
	// Only filled when the query is historical and spans more than one
	// year.
	Trend []Series
}

// Engine ranks locations using raw rows from a StatStore. It holds only
// configuration and collaborator handles; every call is a pure function
// of (snapshot, store content, parameters).
type Engine struct {
	store      store.StatStore
	jobs       int
	oversample int
	trendSize  int
}

// New creates a ranking engine.
func New(st store.StatStore, cfg *config.Config) *Engine {
	jobs := cfg.JobsNumber
	if jobs < 1 {
		jobs = 1
	}
	oversample := cfg.Ranking.Oversample
	if oversample < 1 {
		oversample = 1
	}
	trendSize := cfg.Ranking.TrendSize
	if trendSize < 1 {
		trendSize = 1
	}
	return &Engine{
		store:      st,
		jobs:       jobs,
		oversample: oversample,
		trendSize:  trendSize,
	}
}

// TopK ranks locations of one hierarchy level by a metric.
//
// In single-year mode one canonical record per location is ranked for
// the target year. In multi-year mode each in-scope year contributes
// its top k×oversample locations; per-location values accumulate across
// years and locations are ranked by their average. Locations missing
// the metric are excluded entirely, never sorted as zero. Ties on equal
// values keep catalog insertion order.
func (e *Engine) TopK(
	ctx context.Context,
	snap *catalog.Snapshot,
	field gw.Field,
	locType gw.LocationType,
	order Order,
	k int,
	spec gw.YearSpec,
) (*Result, error) {
	if k < 1 {
		return nil, fmt.Errorf("ranking limit must be positive, got %d", k)
	}
	if !locType.Valid() {
		return nil, fmt.Errorf("unknown location type %q", locType)
	}

	tr := temporal.Resolve(spec, snap.Years())
	res := &Result{
		Field:      field,
		Historical: tr.Historical,
		TargetYear: tr.TargetYear,
		Years:      tr.Years,
	}

	// A historical window that intersects no stored year yields no
	// entries; data from outside the window is never substituted.
	if tr.Historical && len(tr.Years) == 0 {
		return res, nil
	}

	if len(tr.Years) <= 1 {
		entries, err := e.rankYear(ctx, snap, field, locType, order, tr.TargetYear)
		if err != nil {
			return nil, err
		}
		if len(entries) > k {
			entries = entries[:k]
		}
		res.Entries = entries
		return res, nil
	}

	return e.topKMultiYear(ctx, snap, res, locType, order, k)
}

// topKMultiYear fetches per-year rankings concurrently, reassembles
// them in ascending year order and folds them into cross-year entries
// plus a trend of the leading locations.
func (e *Engine) topKMultiYear(
	ctx context.Context,
	snap *catalog.Snapshot,
	res *Result,
	locType gw.LocationType,
	order Order,
	k int,
) (*Result, error) {
	perYear := make([][]Entry, len(res.Years))

	// The fetches are independent reads; run them in parallel and slot
	// results by year index so reassembly stays deterministic.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.jobs)
	for i, year := range res.Years {
		g.Go(func() error {
			entries, err := e.rankYear(gctx, snap, res.Field, locType, order, year)
			if err != nil {
				return err
			}
			limit := k * e.oversample
			if len(entries) > limit {
				entries = entries[:limit]
			}
			perYear[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	type accum struct {
		loc    *gw.LocationEntity
		byYear map[string]float64
		years  []string
	}
	perLoc := make(map[string]*accum)
	var locOrder []string

	for i, year := range res.Years {
		for _, entry := range perYear[i] {
			a, ok := perLoc[entry.Location.ID]
			if !ok {
				a = &accum{loc: entry.Location, byYear: make(map[string]float64)}
				perLoc[entry.Location.ID] = a
				locOrder = append(locOrder, entry.Location.ID)
			}
			a.byYear[year] = entry.Value
			a.years = append(a.years, year)
		}
	}

	entries := make([]Entry, 0, len(locOrder))
	for _, id := range locOrder {
		a := perLoc[id]
		entry := Entry{Location: a.loc, Years: a.years}
		entry.Min = a.byYear[a.years[0]]
		entry.Max = entry.Min
		var sum float64
		for _, y := range a.years {
			v := a.byYear[y]
			sum += v
			if v < entry.Min {
				entry.Min = v
			}
			if v > entry.Max {
				entry.Max = v
			}
		}
		entry.Avg = sum / float64(len(a.years))
		entry.Value = entry.Avg
		entries = append(entries, entry)
	}

	sortEntries(entries, order)

	trendTop := entries
	if len(trendTop) > e.trendSize {
		trendTop = trendTop[:e.trendSize]
	}
	for _, entry := range trendTop {
		a := perLoc[entry.Location.ID]
		s := Series{Location: entry.Location}
		for _, y := range res.Years {
			v, ok := a.byYear[y]
			s.Points = append(s.Points, TrendPoint{Year: y, Value: v, Present: ok})
		}
		res.Trend = append(res.Trend, s)
	}

	if len(entries) > k {
		entries = entries[:k]
	}
	res.Entries = entries
	return res, nil
}

// rankYear produces the full ranked list of one hierarchy level for one
// year: raw rows are canonicalized through the catalog, merged per
// logical location, filtered to those measuring the metric, and sorted.
func (e *Engine) rankYear(
	ctx context.Context,
	snap *catalog.Snapshot,
	field gw.Field,
	locType gw.LocationType,
	order Order,
	year string,
) ([]Entry, error) {
	if year == "" {
		return nil, nil
	}

	rows, err := e.store.StatsByTypeAndYear(ctx, locType, year)
	if err != nil {
		return nil, fmt.Errorf(
			"cannot fetch %s stats for %s: %w", locType, year, err)
	}

	grouped := make(map[string][]gw.StatRecord)
	var ids []string
	for _, row := range rows {
		id := snap.CanonicalID(row.LocationID)
		loc, ok := snap.Lookup(id)
		if !ok || loc.Type != locType {
			continue
		}
		if _, ok := grouped[id]; !ok {
			ids = append(ids, id)
		}
		row.LocationID = id
		grouped[id] = append(grouped[id], row)
	}

	var entries []Entry
	for _, id := range ids {
		merged := aggregate.Merge(grouped[id])
		v, ok := merged.Value(field)
		if !ok {
			continue
		}
		loc, _ := snap.Lookup(id)
		entries = append(entries, Entry{Location: loc, Value: v})
	}

	sortEntries(entries, order)
	return entries, nil
}

// sortEntries orders by value in the requested direction; equal values
// keep catalog insertion order.
func sortEntries(entries []Entry, order Order) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Value != b.Value {
			if order == Asc {
				return a.Value < b.Value
			}
			return a.Value > b.Value
		}
		return a.Location.Ordinal < b.Location.Ordinal
	})
}
