package ioload

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/catalog"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/store"
	"github.com/dustin/go-humanize"

	_ "modernc.org/sqlite"
)

// SqliteLoader reads the catalog and raw stat rows from a local SQLite
// snapshot file. The file uses the same table layout as PostgreSQL,
// which makes it a convenient offline fixture for development and
// tests.
type SqliteLoader struct {
	db *sql.DB
}

var (
	_ catalog.Loader  = (*SqliteLoader)(nil)
	_ store.StatStore = (*SqliteLoader)(nil)
)

// OpenSqlite opens a snapshot file read-only.
func OpenSqlite(path string) (*SqliteLoader, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot read snapshot %s: %w", path, err)
	}
	return &SqliteLoader{db: db}, nil
}

// Close releases the snapshot file handle.
func (l *SqliteLoader) Close() error {
	return l.db.Close()
}

// Load implements catalog.Loader over the snapshot file.
func (l *SqliteLoader) Load(ctx context.Context) (*catalog.Payload, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, external_id, name, type, parent_id
		FROM locations
		ORDER BY ordinal, id
	`)
	if err != nil {
		return nil, fmt.Errorf("cannot query locations: %w", err)
	}
	defer rows.Close()

	payload := &catalog.Payload{}
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
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("location scan failed: %w", err)
	}

	payload.Years, err = l.Years(ctx)
	if err != nil {
		return nil, err
	}

	slog.Info("Loaded catalog snapshot file",
		"locations", humanize.Comma(int64(len(payload.Locations))),
		"years", len(payload.Years))
	return payload, nil
}

// StatsFor returns the raw rows for one ingested location id and year.
func (l *SqliteLoader) StatsFor(
	ctx context.Context,
	locationID, year string,
) ([]gw.StatRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM gw_reports r
		WHERE r.location_id = ? AND r.year = ?
		ORDER BY r.id
	`, reportColumns)
	return l.queryRecords(ctx, query, locationID, year)
}

// StatsAllYears returns the raw rows for one ingested location id
// across every year.
func (l *SqliteLoader) StatsAllYears(
	ctx context.Context,
	locationID string,
) ([]gw.StatRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM gw_reports r
		WHERE r.location_id = ?
		ORDER BY r.year, r.id
	`, reportColumns)
	return l.queryRecords(ctx, query, locationID)
}

// StatsByTypeAndYear returns the raw rows of every location of one
// hierarchy level for one year.
func (l *SqliteLoader) StatsByTypeAndYear(
	ctx context.Context,
	t gw.LocationType,
	year string,
) ([]gw.StatRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM gw_reports r
		JOIN locations l ON l.id = r.location_id
		WHERE UPPER(l.type) = ? AND r.year = ?
		ORDER BY r.id
	`, reportColumns)
	return l.queryRecords(ctx, query, string(t), year)
}

// Years returns all distinct assessment years, ascending.
func (l *SqliteLoader) Years(ctx context.Context) ([]string, error) {
	rows, err := l.db.QueryContext(ctx,
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

func (l *SqliteLoader) queryRecords(
	ctx context.Context,
	query string,
	args ...any,
) ([]gw.StatRecord, error) {
	rows, err := l.db.QueryContext(ctx, query, args...)
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
