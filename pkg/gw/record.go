package gw

import (
	"sort"
	"strings"
)

// Field names one numeric measurement of a groundwater assessment.
// The set of recognized fields is finite; stores and aggregation work
// only with the fields enumerated below.
type Field string

const (
	// FieldRainfall is annual rainfall in mm.
	FieldRainfall Field = "rainfall"

	// Recharge components and total, in MCM.
	FieldRechargeRainfall Field = "recharge_rainfall"
	FieldRechargeOther    Field = "recharge_other"
	FieldRechargeTotal    Field = "recharge_total"

	// FieldExtractable is the annual extractable groundwater resource, in MCM.
	FieldExtractable Field = "extractable"

	// Extraction components and total, in MCM.
	FieldExtractionIrrigation Field = "extraction_irrigation"
	FieldExtractionDomestic   Field = "extraction_domestic"
	FieldExtractionIndustrial Field = "extraction_industrial"
	FieldExtractionTotal      Field = "extraction_total"

	// FieldStageOfExtraction is the percentage of extractable groundwater
	// actually withdrawn annually, the primary sustainability indicator.
	FieldStageOfExtraction Field = "stage_of_extraction"
)

// Fields lists every recognized numeric field in a fixed order.
func Fields() []Field {
	return []Field{
		FieldRainfall,
		FieldRechargeRainfall,
		FieldRechargeOther,
		FieldRechargeTotal,
		FieldExtractable,
		FieldExtractionIrrigation,
		FieldExtractionDomestic,
		FieldExtractionIndustrial,
		FieldExtractionTotal,
		FieldStageOfExtraction,
	}
}

// ParseField converts a free-form string to a recognized Field.
func ParseField(s string) (Field, bool) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Fields() {
		if f == known {
			return known, true
		}
	}
	return "", false
}

// Category is the four-way sustainability classification derived from
// the stage of extraction.
type Category string

const (
	CategorySafe          Category = "Safe"
	CategorySemiCritical  Category = "Semi-Critical"
	CategoryCritical      Category = "Critical"
	CategoryOverExploited Category = "Over-Exploited"

	// CategoryUnknown marks records whose stage of extraction is absent
	// or zero. Absence of data is never presented as a favorable status.
	CategoryUnknown Category = "Unknown"
)

// CategoryForStage classifies a stage-of-extraction percentage.
// A zero or negative stage yields CategoryUnknown.
func CategoryForStage(stage float64) Category {
	switch {
	case stage <= 0:
		return CategoryUnknown
	case stage < 70:
		return CategorySafe
	case stage < 90:
		return CategorySemiCritical
	case stage < 100:
		return CategoryCritical
	default:
		return CategoryOverExploited
	}
}

// StatRecord is a groundwater assessment for one location and one year.
// A raw record is one provider row (command area, non-command area and
// poor-quality area sub-splits arrive as separate rows); a canonical
// record is the merged whole-location total (see pkg/aggregate). Both
// share this shape, with at most one canonical record per (location, year).
type StatRecord struct {
	// LocationID refers to the catalog entity the record belongs to.
	LocationID string

	// Year is a four-digit fiscal-year label such as "2022-2023".
	Year string

	// Values holds the measured fields. An absent key means "not
	// measured", which is distinct from a zero measurement.
	Values map[Field]float64

	// Category is the classification label. For raw rows it is the
	// provider's label for that row alone; after aggregation it is
	// recomputed from the merged stage of extraction.
	Category Category
}

// Value returns the measurement for f and whether it is present.
func (r *StatRecord) Value(f Field) (float64, bool) {
	v, ok := r.Values[f]
	return v, ok
}

// SetValue records a measurement, allocating the value bag on first use.
func (r *StatRecord) SetValue(f Field, v float64) {
	if r.Values == nil {
		r.Values = make(map[Field]float64)
	}
	r.Values[f] = v
}

// PresentFields returns the fields measured in r, in the fixed Fields()
// order, never in map iteration order.
func (r *StatRecord) PresentFields() []Field {
	var res []Field
	for _, f := range Fields() {
		if _, ok := r.Values[f]; ok {
			res = append(res, f)
		}
	}
	return res
}

// SortYears orders four-digit year-range labels ascending in place.
// Lexicographic order is chronological for well-formed labels.
func SortYears(years []string) {
	sort.Strings(years)
}

func normalizeUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
