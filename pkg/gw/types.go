// Package gw provides the domain model for the groundwater statistics core:
// administrative locations, assessment records, search results and year
// specifications. The package is pure data, it has no I/O dependencies.
package gw

// LocationType is the level of an administrative entity in the fixed
// four-level hierarchy country → state → district → taluk.
type LocationType string

const (
	Country  LocationType = "COUNTRY"
	State    LocationType = "STATE"
	District LocationType = "DISTRICT"
	Taluk    LocationType = "TALUK"
)

// ParentType returns the type one level above t. Country has no parent
// and returns ok=false.
func (t LocationType) ParentType() (LocationType, bool) {
	switch t {
	case State:
		return Country, true
	case District:
		return State, true
	case Taluk:
		return District, true
	default:
		return "", false
	}
}

// Valid reports whether t is one of the four recognized levels.
func (t LocationType) Valid() bool {
	switch t {
	case Country, State, District, Taluk:
		return true
	}
	return false
}

// ParseLocationType converts a free-form string to a LocationType.
// Matching is case-insensitive; unknown values return ok=false.
func ParseLocationType(s string) (LocationType, bool) {
	switch LocationType(normalizeUpper(s)) {
	case Country:
		return Country, true
	case State:
		return State, true
	case District:
		return District, true
	case Taluk:
		return Taluk, true
	}
	return "", false
}

// LocationEntity is one administrative entity in the catalog.
type LocationEntity struct {
	// ID is a process-local stable identifier, unique within a snapshot.
	ID string

	// ExternalID is the identifier assigned by the upstream data provider.
	// Optional; when present it is unique and is used to detect duplicate
	// ingestion of the same real-world place.
	ExternalID string

	// Name is the display name as supplied by the provider.
	Name string

	// Type is the hierarchy level of the entity.
	Type LocationType

	// ParentID references the owning entity one level up.
	// Empty only for Country entities.
	ParentID string

	// Ordinal is the catalog insertion position. It is the deterministic
	// tie-break for equal match scores and equal ranking values.
	Ordinal int
}

// SearchResult pairs a location with a normalized match score in [0,1],
// where 1.0 is an exact match.
type SearchResult struct {
	Location *LocationEntity
	Score    float64
}

// YearSpec describes the time window of a request. At most one form is
// honored: an explicit year list takes precedence over a range, and a
// range over a single year. The zero value means "most recent year".
type YearSpec struct {
	// Year is a single target year label, e.g. "2022-2023".
	Year string

	// FromYear and ToYear bound an inclusive range. One-sided ranges are
	// valid: either bound may be empty.
	FromYear string
	ToYear   string

	// Years is an explicit set of year labels.
	Years []string
}

// IsHistorical reports whether s asks for a range or a list,
// i.e. trend rather than point data.
func (s YearSpec) IsHistorical() bool {
	return len(s.Years) > 0 || s.FromYear != "" || s.ToYear != ""
}
