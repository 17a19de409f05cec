// Package schema provides database models for the tables the catalog
// and stat loaders read. Models double as the GORM AutoMigrate source
// for bootstrapping a fresh database.
package schema

// Location is one ingested administrative entity row. Duplicate rows
// for the same real-world place (repeated external ids, name
// collisions) are kept as ingested; the catalog builder folds them at
// load time.
type Location struct {
	// ID is the process-local stable identifier.
	ID string `gorm:"primaryKey;type:uuid"`

	// ExternalID is the upstream provider's identifier, when known.
	ExternalID string `gorm:"index;size:64"`

	// Name is the display name.
	Name string `gorm:"size:255;not null;index"`

	// Type is the hierarchy level: COUNTRY, STATE, DISTRICT or TALUK.
	Type string `gorm:"size:16;not null;index"`

	// ParentID references the owning entity one level up; empty for
	// countries.
	ParentID string `gorm:"type:uuid;index"`

	// Ordinal preserves ingestion order across reloads.
	Ordinal int `gorm:"not null;index"`
}

// GwReport is one raw assessment row for a location and year. Numeric
// columns are nullable: NULL means not measured, which is distinct
// from a zero measurement.
type GwReport struct {
	ID uint `gorm:"primaryKey;autoIncrement"`

	LocationID string `gorm:"type:uuid;not null;index:idx_gw_reports_loc_year"`
	Year       string `gorm:"size:16;not null;index:idx_gw_reports_loc_year;index"`

	// Rainfall is annual rainfall in mm.
	Rainfall *float64

	// Recharge components and total, in MCM.
	RechargeRainfall *float64
	RechargeOther    *float64
	RechargeTotal    *float64

	// Extractable is the annual extractable resource, in MCM.
	Extractable *float64

	// Extraction components and total, in MCM.
	ExtractionIrrigation *float64
	ExtractionDomestic   *float64
	ExtractionIndustrial *float64
	ExtractionTotal      *float64

	// StageOfExtraction is the percentage of extractable groundwater
	// withdrawn annually.
	StageOfExtraction *float64

	// Category is the provider's classification for this row alone.
	Category string `gorm:"size:32"`
}
