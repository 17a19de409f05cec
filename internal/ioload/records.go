// Package ioload implements the bulk catalog loader and the raw stat
// store over PostgreSQL (serving) and local SQLite snapshot files
// (development and tests). This is an impure I/O package implementing
// the contracts in pkg/catalog and pkg/store.
package ioload

import (
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
)

// reportRow carries one gw_reports row through scanning. Nil pointers
// are NULL columns: not measured, distinct from zero.
type reportRow struct {
	locationID string
	year       string

	rainfall             *float64
	rechargeRainfall     *float64
	rechargeOther        *float64
	rechargeTotal        *float64
	extractable          *float64
	extractionIrrigation *float64
	extractionDomestic   *float64
	extractionIndustrial *float64
	extractionTotal      *float64
	stageOfExtraction    *float64

	category string
}

// scanTargets returns the scan destinations in the column order used by
// every report query: location_id, year, the ten numeric fields, and
// category.
func (r *reportRow) scanTargets() []any {
	return []any{
		&r.locationID,
		&r.year,
		&r.rainfall,
		&r.rechargeRainfall,
		&r.rechargeOther,
		&r.rechargeTotal,
		&r.extractable,
		&r.extractionIrrigation,
		&r.extractionDomestic,
		&r.extractionIndustrial,
		&r.extractionTotal,
		&r.stageOfExtraction,
		&r.category,
	}
}

// reportColumns is the SELECT list matching scanTargets.
const reportColumns = `r.location_id, r.year,
	r.rainfall, r.recharge_rainfall, r.recharge_other, r.recharge_total,
	r.extractable, r.extraction_irrigation, r.extraction_domestic,
	r.extraction_industrial, r.extraction_total, r.stage_of_extraction,
	r.category`

// record converts a scanned row into a domain StatRecord, keeping only
// the measured fields.
func (r *reportRow) record() gw.StatRecord {
	rec := gw.StatRecord{
		LocationID: r.locationID,
		Year:       r.year,
		Category:   gw.Category(r.category),
	}

	set := func(f gw.Field, v *float64) {
		if v != nil {
			rec.SetValue(f, *v)
		}
	}
	set(gw.FieldRainfall, r.rainfall)
	set(gw.FieldRechargeRainfall, r.rechargeRainfall)
	set(gw.FieldRechargeOther, r.rechargeOther)
	set(gw.FieldRechargeTotal, r.rechargeTotal)
	set(gw.FieldExtractable, r.extractable)
	set(gw.FieldExtractionIrrigation, r.extractionIrrigation)
	set(gw.FieldExtractionDomestic, r.extractionDomestic)
	set(gw.FieldExtractionIndustrial, r.extractionIndustrial)
	set(gw.FieldExtractionTotal, r.extractionTotal)
	set(gw.FieldStageOfExtraction, r.stageOfExtraction)

	return rec
}
