package ioload

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/catalog"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/db"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/store"
	"github.com/dustin/go-humanize"
)

// PgLoader reads the catalog and raw stat rows from PostgreSQL.
// It implements both catalog.Loader and store.StatStore.
type PgLoader struct {
	operator db.Operator
	progress bool
}

// NewPg wraps a connected operator. When progress is true, the bulk
// catalog load renders a progress bar on stderr.
func NewPg(op db.Operator, progress bool) *PgLoader {
	return &PgLoader{operator: op, progress: progress}
}

var (
	_ catalog.Loader  = (*PgLoader)(nil)
	_ store.StatStore = (*PgLoader)(nil)
)

// Load implements catalog.Loader: the full set of ingested location
// rows in ingestion order, plus all distinct assessment years.
func (l *PgLoader) Load(ctx context.Context) (*catalog.Payload, error) {
	pool := l.operator.Pool()
	if pool == nil {
		return nil, fmt.Errorf("catalog load: database is not connected")
	}

	var count int
	err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM locations`).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("cannot count locations: %w", err)
	}

	var bar *pb.ProgressBar
	if l.progress && count > 0 {
		bar = pb.StartNew(count)
		defer bar.Finish()
	}

	rows, err := pool.Query(ctx, `
		SELECT id, external_id, name, type, parent_id
		FROM locations
		ORDER BY ordinal, id
	`)
	if err != nil {
		return nil, fmt.Errorf("cannot query locations: %w", err)
	}
	defer rows.Close()

	payload := &catalog.Payload{
		Locations: make([]gw.LocationEntity, 0, count),
	}
	for rows.Next() {
		var e gw.LocationEntity
		var typ string
		err = rows.Scan(&e.ID, &e.ExternalID, &e.Name, &typ, &e.ParentID)
		if err != nil {
			return nil, fmt.Errorf("cannot read location row: %w", err)
		}
		// Stored types vary in case between ingest sources.
		t, ok := gw.ParseLocationType(typ)
		if !ok {
			return nil, fmt.Errorf(
				"location %s: unknown type %q", e.ID, typ)
		}
		e.Type = t
		payload.Locations = append(payload.Locations, e)
		if bar != nil {
			bar.Increment()
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("location scan failed: %w", err)
	}

	payload.Years, err = l.Years(ctx)
	if err != nil {
		return nil, err
	}

	slog.Info("Loaded catalog rows",
		"locations", humanize.Comma(int64(len(payload.Locations))),
		"years", len(payload.Years))
	return payload, nil
}

// StatsFor returns the raw rows for one ingested location id and year.
func (l *PgLoader) StatsFor(
	ctx context.Context,
	locationID, year string,
) ([]gw.StatRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM gw_reports r
		WHERE r.location_id = $1 AND r.year = $2
		ORDER BY r.id
	`, reportColumns)
	return l.queryRecords(ctx, query, locationID, year)
}

// StatsAllYears returns the raw rows for one ingested location id
// across every year.
func (l *PgLoader) StatsAllYears(
	ctx context.Context,
	locationID string,
) ([]gw.StatRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM gw_reports r
		WHERE r.location_id = $1
		ORDER BY r.year, r.id
	`, reportColumns)
	return l.queryRecords(ctx, query, locationID)
}

// StatsByTypeAndYear returns the raw rows of every location of one
// hierarchy level for one year.
func (l *PgLoader) StatsByTypeAndYear(
	ctx context.Context,
	t gw.LocationType,
	year string,
) ([]gw.StatRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM gw_reports r
		JOIN locations l ON l.id = r.location_id
		WHERE UPPER(l.type) = $1 AND r.year = $2
		ORDER BY r.id
	`, reportColumns)
	return l.queryRecords(ctx, query, string(t), year)
}

// Years returns all distinct assessment years, ascending.
func (l *PgLoader) Years(ctx context.Context) ([]string, error) {
	pool := l.operator.Pool()
	if pool == nil {
		return nil, fmt.Errorf("years query: database is not connected")
	}

	rows, err := pool.Query(ctx,
		`SELECT DISTINCT year FROM gw_reports ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("cannot query years: %w", err)
	}
	defer rows.Close()

	var years []string
	for rows.Next() {
		var y string
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("cannot read year row: %w", err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func (l *PgLoader) queryRecords(
	ctx context.Context,
	query string,
	args ...any,
) ([]gw.StatRecord, error) {
	pool := l.operator.Pool()
	if pool == nil {
		return nil, fmt.Errorf("stats query: database is not connected")
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("cannot query stat rows: %w", err)
	}
	defer rows.Close()

	var res []gw.StatRecord
	for rows.Next() {
		var row reportRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, fmt.Errorf("cannot read stat row: %w", err)
		}
		res = append(res, row.record())
	}
	return res, rows.Err()
}
