// Package catalog holds the in-memory hierarchical location catalog.
//
// The catalog is an immutable snapshot built once from a bulk loader at
// startup. Readers share the snapshot by pointer and never block each
// other; a reload builds a fresh snapshot and atomically swaps the
// reference in a Holder, never mutating the old snapshot in place.
package catalog

import (
	"strings"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
)

type typeNameKey struct {
	typ  gw.LocationType
	name string
}

// Snapshot is the immutable set of location entities plus lookup
// indexes. All methods are pure reads, safe for concurrent use.
type Snapshot struct {
	entities   []*gw.LocationEntity
	byID       map[string]*gw.LocationEntity
	byExternal map[string]*gw.LocationEntity
	children   map[string][]*gw.LocationEntity
	byTypeName map[typeNameKey]*gw.LocationEntity

	// alias maps every raw ingested id to its canonical entity id, so
	// stat rows keyed by a duplicate row's id still reach the merged
	// logical location. aliasRev is the reverse mapping, in alias
	// creation order.
	alias    map[string]string
	aliasRev map[string][]string

	years []string
}

// NormalizeName prepares a place name for comparison: separator
// punctuation (hyphens, underscores) becomes spaces, the result is
// lower-cased and inner whitespace is collapsed.
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// Len returns the number of canonical entities in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.entities)
}

// Entities returns all canonical entities in catalog insertion order.
// The returned slice is shared and must not be modified.
func (s *Snapshot) Entities() []*gw.LocationEntity {
	return s.entities
}

// Lookup returns the canonical entity for id. Duplicate raw ids are
// transparently followed to their canonical entity.
func (s *Snapshot) Lookup(id string) (*gw.LocationEntity, bool) {
	e, ok := s.byID[s.CanonicalID(id)]
	return e, ok
}

// LookupByExternalID returns the entity carrying the given upstream
// identifier.
func (s *Snapshot) LookupByExternalID(externalID string) (*gw.LocationEntity, bool) {
	e, ok := s.byExternal[externalID]
	return e, ok
}

// CanonicalID maps a raw ingested id to the canonical entity id.
// Unknown ids map to themselves.
func (s *Snapshot) CanonicalID(id string) string {
	if canon, ok := s.alias[id]; ok {
		return canon
	}
	return id
}

// RawIDs returns every ingested id that denotes the given logical
// location: the canonical id first, then any duplicate raw ids folded
// into it. Stat fetches use the full set so rows stored under a
// duplicate id are not lost.
func (s *Snapshot) RawIDs(id string) []string {
	canon := s.CanonicalID(id)
	return append([]string{canon}, s.aliasRev[canon]...)
}

// Children returns the entities one level below parentID, in insertion
// order.
func (s *Snapshot) Children(parentID string) []*gw.LocationEntity {
	return s.children[s.CanonicalID(parentID)]
}

// ByTypeAndName returns the entity of the given type whose normalized
// name equals the normalized form of name.
func (s *Snapshot) ByTypeAndName(t gw.LocationType, name string) (*gw.LocationEntity, bool) {
	e, ok := s.byTypeName[typeNameKey{typ: t, name: NormalizeName(name)}]
	return e, ok
}

// ByType returns all entities of one hierarchy level, in insertion order.
func (s *Snapshot) ByType(t gw.LocationType) []*gw.LocationEntity {
	var res []*gw.LocationEntity
	for _, e := range s.entities {
		if e.Type == t {
			res = append(res, e)
		}
	}
	return res
}

// Ancestors returns the chain from the root country down to the entity
// itself. Unknown ids return nil. A guard stops on repeated ids so a
// malformed parent chain cannot loop forever.
func (s *Snapshot) Ancestors(id string) []*gw.LocationEntity {
	var res []*gw.LocationEntity
	visited := make(map[string]bool)

	currID := s.CanonicalID(id)
	for {
		if visited[currID] {
			return res
		}
		visited[currID] = true

		node, ok := s.byID[currID]
		if !ok {
			return res
		}
		res = append([]*gw.LocationEntity{node}, res...)

		if node.ParentID == "" {
			return res
		}
		currID = s.CanonicalID(node.ParentID)
	}
}

// Years returns every distinct assessment year present in the store,
// sorted ascending. The returned slice is shared and must not be
// modified.
func (s *Snapshot) Years() []string {
	return s.years
}

// MostRecentYear returns the latest known assessment year, or an empty
// string for an empty store.
func (s *Snapshot) MostRecentYear() string {
	if len(s.years) == 0 {
		return ""
	}
	return s.years[len(s.years)-1]
}
