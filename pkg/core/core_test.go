package core_test

import (
	"context"
	"testing"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/catalog"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/config"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/core"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keys raw rows by ingested location id, the way they arrive
// from the persistent store before canonicalization.
type memStore struct {
	rows map[string][]gw.StatRecord
}

func (m *memStore) StatsFor(ctx context.Context, locationID, year string) ([]gw.StatRecord, error) {
	var res []gw.StatRecord
	for _, r := range m.rows[locationID] {
		if r.Year == year {
			res = append(res, r)
		}
	}
	return res, nil
}

func (m *memStore) StatsAllYears(ctx context.Context, locationID string) ([]gw.StatRecord, error) {
	return m.rows[locationID], nil
}

func (m *memStore) StatsByTypeAndYear(ctx context.Context, t gw.LocationType, year string) ([]gw.StatRecord, error) {
	var res []gw.StatRecord
	for _, rows := range m.rows {
		for _, r := range rows {
			if r.Year == year {
				res = append(res, r)
			}
		}
	}
	return res, nil
}

func (m *memStore) Years(ctx context.Context) ([]string, error) {
	return nil, nil
}

func record(locID, year string, stage float64) gw.StatRecord {
	r := gw.StatRecord{LocationID: locID, Year: year}
	r.SetValue(gw.FieldStageOfExtraction, stage)
	r.Category = gw.CategoryForStage(stage)
	return r
}

// testCore builds a core over a catalog where the Bangalore Urban
// district was ingested twice: stat rows exist under both raw ids.
func testCore(t *testing.T) *core.Core {
	t.Helper()

	snap, err := catalog.Build([]gw.LocationEntity{
		{ID: "in", Name: "India", Type: gw.Country},
		{ID: "ka", Name: "Karnataka", Type: gw.State, ParentID: "in"},
		{ID: "blr", ExternalID: "D-572", Name: "Bangalore Urban", Type: gw.District, ParentID: "ka"},
		{ID: "blr2", ExternalID: "D-572", Name: "Bengaluru Urban", Type: gw.District, ParentID: "ka"},
		{ID: "mys", Name: "Mysuru", Type: gw.District, ParentID: "ka"},
	}, []string{"2022-2023", "2023-2024"})
	require.NoError(t, err)

	holder := catalog.NewHolder()
	holder.Swap(snap)

	st := &memStore{rows: map[string][]gw.StatRecord{
		"blr": {
			record("blr", "2022-2023", 40),
			record("blr", "2023-2024", 45),
		},
		"blr2": {
			record("blr2", "2023-2024", 50),
		},
		"mys": {
			record("mys", "2023-2024", 110),
		},
	}}

	return core.New(config.New(), holder, st)
}

func TestResolveLocation(t *testing.T) {
	c := testCore(t)

	res, err := c.ResolveLocation("mysuru", gw.District, "")
	require.NoError(t, err)
	require.NotEmpty(t, res)
	assert.Equal(t, "mys", res[0].Location.ID)
}

func TestResolveLocationNotInitialized(t *testing.T) {
	c := core.New(config.New(), catalog.NewHolder(), &memStore{})

	_, err := c.ResolveLocation("mysuru", gw.District, "")
	assert.ErrorIs(t, err, catalog.ErrNotInitialized)
}

func TestCanonicalStatsMergesDuplicateIDs(t *testing.T) {
	c := testCore(t)

	// Rows live under both raw ids of the folded district; the merged
	// record carries the canonical id and a recomputed category.
	rec, err := c.CanonicalStats(context.Background(), "blr", "2023-2024")
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "blr", rec.LocationID)
	stage, ok := rec.Value(gw.FieldStageOfExtraction)
	require.True(t, ok)
	assert.Equal(t, 95.0, stage)
	assert.Equal(t, gw.CategoryCritical, rec.Category)

	// Asking by the duplicate raw id reaches the same logical location.
	viaDup, err := c.CanonicalStats(context.Background(), "blr2", "2023-2024")
	require.NoError(t, err)
	require.NotNil(t, viaDup)
	assert.Equal(t, rec, viaDup)
}

func TestCanonicalStatsDefaultsToMostRecentYear(t *testing.T) {
	c := testCore(t)

	rec, err := c.CanonicalStats(context.Background(), "blr", "")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "2023-2024", rec.Year)
}

func TestCanonicalStatsIdempotent(t *testing.T) {
	c := testCore(t)

	first, err := c.CanonicalStats(context.Background(), "blr", "2023-2024")
	require.NoError(t, err)
	second, err := c.CanonicalStats(context.Background(), "blr", "2023-2024")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCanonicalStatsUnknownLocation(t *testing.T) {
	c := testCore(t)

	rec, err := c.CanonicalStats(context.Background(), "nope", "2023-2024")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestCanonicalStatsNoRows(t *testing.T) {
	c := testCore(t)

	rec, err := c.CanonicalStats(context.Background(), "mys", "2022-2023")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestHistoricalStats(t *testing.T) {
	c := testCore(t)

	recs, err := c.HistoricalStats(context.Background(), "blr")
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "2022-2023", recs[0].Year)
	assert.Equal(t, "2023-2024", recs[1].Year)

	// The duplicate id's 2023-2024 row folded into the canonical year.
	stage, ok := recs[1].Value(gw.FieldStageOfExtraction)
	require.True(t, ok)
	assert.Equal(t, 95.0, stage)
	for _, r := range recs {
		assert.Equal(t, "blr", r.LocationID)
	}
}

func TestRankLocations(t *testing.T) {
	c := testCore(t)

	res, err := c.RankLocations(
		context.Background(), gw.FieldStageOfExtraction, gw.District,
		ranking.Desc, 5, gw.YearSpec{Year: "2023-2024"})
	require.NoError(t, err)

	require.Len(t, res.Entries, 2)
	assert.Equal(t, "mys", res.Entries[0].Location.ID)
	assert.Equal(t, 110.0, res.Entries[0].Value)
	assert.Equal(t, "blr", res.Entries[1].Location.ID)
	assert.Equal(t, 95.0, res.Entries[1].Value)
}

func TestRankLocationsLimitBounds(t *testing.T) {
	c := testCore(t)

	for _, limit := range []int{0, -1, 101} {
		_, err := c.RankLocations(
			context.Background(), gw.FieldStageOfExtraction, gw.District,
			ranking.Desc, limit, gw.YearSpec{})
		assert.Error(t, err, limit)
	}
}

func TestResolveYears(t *testing.T) {
	c := testCore(t)

	res, err := c.ResolveYears(gw.YearSpec{FromYear: "2022-2023"})
	require.NoError(t, err)
	assert.True(t, res.Historical)
	assert.Equal(t, []string{"2022-2023", "2023-2024"}, res.Years)
}
