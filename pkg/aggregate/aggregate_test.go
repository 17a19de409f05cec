package aggregate_test

import (
	"testing"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/aggregate"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(locID, year string, category gw.Category, values map[gw.Field]float64) gw.StatRecord {
	r := gw.StatRecord{LocationID: locID, Year: year, Category: category}
	for f, v := range values {
		r.SetValue(f, v)
	}
	return r
}

func TestMergeSumsFields(t *testing.T) {
	r1 := record("d1", "2022-2023", gw.CategorySafe, map[gw.Field]float64{
		gw.FieldExtractionTotal:   10,
		gw.FieldRechargeTotal:     40,
		gw.FieldStageOfExtraction: 25,
	})
	r2 := record("d1", "2022-2023", gw.CategorySafe, map[gw.Field]float64{
		gw.FieldExtractionTotal:   15,
		gw.FieldStageOfExtraction: 60,
	})

	got := aggregate.Merge([]gw.StatRecord{r1, r2})

	v, ok := got.Value(gw.FieldExtractionTotal)
	require.True(t, ok)
	assert.Equal(t, 25.0, v)

	// RechargeTotal was measured only by r1; absent values sum as zero.
	v, ok = got.Value(gw.FieldRechargeTotal)
	require.True(t, ok)
	assert.Equal(t, 40.0, v)

	assert.Equal(t, "d1", got.LocationID)
	assert.Equal(t, "2022-2023", got.Year)
}

func TestMergeSingletonUnchanged(t *testing.T) {
	// The provider's label is kept even where a recompute would differ:
	// a singleton was already correct and is not re-derived.
	r := record("d1", "2022-2023", gw.CategorySafe, map[gw.Field]float64{
		gw.FieldStageOfExtraction: 95,
	})

	got := aggregate.Merge([]gw.StatRecord{r})
	assert.Equal(t, r, got)
}

func TestMergeRecomputesCategory(t *testing.T) {
	tests := []struct {
		name   string
		stages []float64
		want   gw.Category
	}{
		{"semi-critical total", []float64{40, 45}, gw.CategorySemiCritical},
		{"over-exploited total", []float64{50, 55}, gw.CategoryOverExploited},
		{"zero total", []float64{0, 0}, gw.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []gw.StatRecord
			for _, s := range tt.stages {
				records = append(records, record("d1", "2022-2023",
					gw.CategoryOverExploited, map[gw.Field]float64{
						gw.FieldStageOfExtraction: s,
					}))
			}
			got := aggregate.Merge(records)
			assert.Equal(t, tt.want, got.Category)
		})
	}
}

func TestMergeAbsentStageIsUnknown(t *testing.T) {
	r1 := record("d1", "2022-2023", gw.CategorySafe, map[gw.Field]float64{
		gw.FieldRainfall: 700,
	})
	r2 := record("d1", "2022-2023", gw.CategorySafe, map[gw.Field]float64{
		gw.FieldRainfall: 800,
	})

	got := aggregate.Merge([]gw.StatRecord{r1, r2})
	assert.Equal(t, gw.CategoryUnknown, got.Category)

	// No input measured extraction, so the merged record must not
	// fabricate a zero for it.
	_, ok := got.Value(gw.FieldExtractionTotal)
	assert.False(t, ok)
}

func TestMergeIdempotent(t *testing.T) {
	rows := []gw.StatRecord{
		record("d1", "2022-2023", gw.CategorySafe, map[gw.Field]float64{
			gw.FieldExtractionTotal:   10,
			gw.FieldStageOfExtraction: 40,
		}),
		record("d1", "2022-2023", gw.CategorySafe, map[gw.Field]float64{
			gw.FieldExtractionTotal:   15,
			gw.FieldStageOfExtraction: 45,
		}),
	}

	merged := aggregate.Merge(rows)
	again := aggregate.Merge([]gw.StatRecord{merged})
	assert.Equal(t, merged, again)
}

func TestMergeEmpty(t *testing.T) {
	got := aggregate.Merge(nil)
	assert.Equal(t, gw.CategoryUnknown, got.Category)
	assert.Empty(t, got.Values)
}

func TestByYear(t *testing.T) {
	rows := []gw.StatRecord{
		record("d1", "2022-2023", gw.CategorySafe, map[gw.Field]float64{
			gw.FieldStageOfExtraction: 40,
		}),
		record("d1", "2016-2017", gw.CategorySafe, map[gw.Field]float64{
			gw.FieldStageOfExtraction: 30,
		}),
		record("d1", "2022-2023", gw.CategorySafe, map[gw.Field]float64{
			gw.FieldStageOfExtraction: 52,
		}),
	}

	got := aggregate.ByYear(rows)
	require.Len(t, got, 2)

	assert.Equal(t, "2016-2017", got[0].Year)
	assert.Equal(t, gw.CategorySafe, got[0].Category)

	assert.Equal(t, "2022-2023", got[1].Year)
	v, ok := got[1].Value(gw.FieldStageOfExtraction)
	require.True(t, ok)
	assert.Equal(t, 92.0, v)
	assert.Equal(t, gw.CategoryCritical, got[1].Category)
}
