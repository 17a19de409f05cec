package catalog

import (
	"fmt"
	"sort"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
	"github.com/google/uuid"
)

// Build constructs an immutable Snapshot from raw loader output.
//
// Rows that describe the same real-world place are folded into one
// canonical entity: a repeated external id, or a collision on
// (type, normalized name, parent), keeps the first-seen row and maps
// the duplicate's id to it. Stat rows keyed by a folded id later reach
// the canonical location through the alias table.
//
// Build validates the hierarchy: every non-country entity must have a
// parent whose type is exactly one level above, and country entities
// must have no parent.
func Build(locations []gw.LocationEntity, years []string) (*Snapshot, error) {
	snap := &Snapshot{
		byID:       make(map[string]*gw.LocationEntity),
		byExternal: make(map[string]*gw.LocationEntity),
		children:   make(map[string][]*gw.LocationEntity),
		byTypeName: make(map[typeNameKey]*gw.LocationEntity),
		alias:      make(map[string]string),
	}

	// First pass: fold duplicate external ids, mint missing ids.
	for i := range locations {
		raw := locations[i]
		if !raw.Type.Valid() {
			return nil, fmt.Errorf("location %q: unknown type %q", raw.Name, raw.Type)
		}

		if raw.ExternalID != "" {
			if canon, ok := snap.byExternal[raw.ExternalID]; ok {
				if raw.ID != "" && raw.ID != canon.ID {
					snap.alias[raw.ID] = canon.ID
				}
				continue
			}
		}

		e := raw
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if _, ok := snap.byID[e.ID]; ok {
			return nil, fmt.Errorf("location %q: duplicate id %q", e.Name, e.ID)
		}

		snap.entities = append(snap.entities, &e)
		snap.byID[e.ID] = &e
		if e.ExternalID != "" {
			snap.byExternal[e.ExternalID] = &e
		}
	}

	// Remap parents through the external-id aliases before comparing
	// (type, name, parent) keys, so siblings of a folded parent collide.
	for _, e := range snap.entities {
		if canon, ok := snap.alias[e.ParentID]; ok {
			e.ParentID = canon
		}
	}

	if err := foldNameCollisions(snap); err != nil {
		return nil, err
	}

	// An external-id fold can target an entity a name fold later removes,
	// chaining aliases two deep. Every alias must land on a kept entity,
	// or Lookup and RawIDs lose the raw id.
	flattenAliases(snap.alias)
	for _, e := range snap.entities {
		if canon, ok := snap.alias[e.ParentID]; ok {
			e.ParentID = canon
		}
	}

	if err := validateHierarchy(snap); err != nil {
		return nil, err
	}

	// Final indexes over the canonical set.
	for i, e := range snap.entities {
		e.Ordinal = i
		snap.byTypeName[typeNameKey{typ: e.Type, name: NormalizeName(e.Name)}] = e
		if e.ParentID != "" {
			snap.children[e.ParentID] = append(snap.children[e.ParentID], e)
		}
	}

	snap.aliasRev = make(map[string][]string)
	for raw, canon := range snap.alias {
		snap.aliasRev[canon] = append(snap.aliasRev[canon], raw)
	}
	for _, raws := range snap.aliasRev {
		sort.Strings(raws)
	}

	snap.years = dedupYears(years)
	return snap, nil
}

// foldNameCollisions removes entities that collide with an earlier one
// on (type, normalized name, parent), aliasing their ids to the first
// occurrence.
func foldNameCollisions(snap *Snapshot) error {
	seen := make(map[typeNameKey]map[string]*gw.LocationEntity)
	kept := snap.entities[:0]

	for _, e := range snap.entities {
		key := typeNameKey{typ: e.Type, name: NormalizeName(e.Name)}
		if key.name == "" {
			return fmt.Errorf("location id %q: empty name", e.ID)
		}

		byParent := seen[key]
		if byParent == nil {
			byParent = make(map[string]*gw.LocationEntity)
			seen[key] = byParent
		}

		if canon, ok := byParent[e.ParentID]; ok {
			snap.alias[e.ID] = canon.ID
			delete(snap.byID, e.ID)
			if e.ExternalID != "" {
				// The external id stays live; it now denotes the
				// entity the row folded into.
				snap.byExternal[e.ExternalID] = canon
			}
			continue
		}

		byParent[e.ParentID] = e
		kept = append(kept, e)
	}
	snap.entities = kept
	return nil
}

// flattenAliases resolves every alias target transitively so each raw
// id maps directly to its final canonical id.
func flattenAliases(alias map[string]string) {
	for raw, canon := range alias {
		for {
			next, ok := alias[canon]
			if !ok {
				break
			}
			canon = next
		}
		alias[raw] = canon
	}
}

func validateHierarchy(snap *Snapshot) error {
	for _, e := range snap.entities {
		wantParent, hasParent := e.Type.ParentType()

		if !hasParent {
			if e.ParentID != "" {
				return fmt.Errorf(
					"country %q (id %s) must not have a parent", e.Name, e.ID)
			}
			continue
		}

		if e.ParentID == "" {
			return fmt.Errorf(
				"%s %q (id %s) has no parent", e.Type, e.Name, e.ID)
		}
		parent, ok := snap.byID[e.ParentID]
		if !ok {
			return fmt.Errorf(
				"%s %q (id %s) references missing parent %q",
				e.Type, e.Name, e.ID, e.ParentID)
		}
		if parent.Type != wantParent {
			return fmt.Errorf(
				"%s %q (id %s) has parent of type %s, want %s",
				e.Type, e.Name, e.ID, parent.Type, wantParent)
		}
	}
	return nil
}

func dedupYears(years []string) []string {
	seen := make(map[string]bool, len(years))
	var res []string
	for _, y := range years {
		if y == "" || seen[y] {
			continue
		}
		seen[y] = true
		res = append(res, y)
	}
	gw.SortYears(res)
	return res
}
