// Package aggregate folds raw per-location stat rows into canonical
// records.
//
// Upstream assessments split one logical location into command-area,
// non-command-area and poor-quality-area rows. The whole-location total
// is the sum of those rows, and the sustainability category must be
// recomputed from the summed stage of extraction because a per-row
// label is not valid for the merged total.
package aggregate

import (
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
)

// Merge folds raw records for one location and year into a single
// canonical record.
//
// A single input record is returned unchanged: its category was already
// correct and is not re-derived, which also makes merging idempotent
// (a canonical record merged with nothing else never changes). For
// multiple records every numeric field present in at least one input is
// summed, with absent fields treated as zero for the sum but never
// fabricated as a zero result when no input measured them. The category
// is then recomputed from the summed stage of extraction; a zero or
// absent stage yields Unknown, never Safe.
func Merge(records []gw.StatRecord) gw.StatRecord {
	switch len(records) {
	case 0:
		return gw.StatRecord{Category: gw.CategoryUnknown}
	case 1:
		return records[0]
	}

	res := gw.StatRecord{
		LocationID: records[0].LocationID,
		Year:       records[0].Year,
	}

	for _, f := range gw.Fields() {
		var sum float64
		var present bool
		for i := range records {
			if v, ok := records[i].Value(f); ok {
				sum += v
				present = true
			}
		}
		if present {
			res.SetValue(f, sum)
		}
	}

	stage, _ := res.Value(gw.FieldStageOfExtraction)
	res.Category = gw.CategoryForStage(stage)
	return res
}

// ByYear folds raw records into one canonical record per distinct year,
// sorted ascending by year.
func ByYear(records []gw.StatRecord) []gw.StatRecord {
	byYear := make(map[string][]gw.StatRecord)
	var years []string
	for _, r := range records {
		if _, ok := byYear[r.Year]; !ok {
			years = append(years, r.Year)
		}
		byYear[r.Year] = append(byYear[r.Year], r)
	}
	gw.SortYears(years)

	res := make([]gw.StatRecord, 0, len(years))
	for _, y := range years {
		res = append(res, Merge(byYear[y]))
	}
	return res
}
