// Package resolver implements approximate-match location resolution
// over a catalog snapshot.
//
// A query is normalized, matched against entity names with a
// Levenshtein-based similarity score, and only candidates at or above
// the configured threshold are returned, best first. Ties are broken by
// catalog insertion order, never by map iteration order.
package resolver

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/catalog"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/config"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
)

// partialWeight discounts a match against a single token of a longer
// name, so "bangalore" finds "Bangalore Urban" strongly but never as a
// perfect match.
const partialWeight = 0.95

// Resolver performs fuzzy location search. It holds only configuration;
// every call is a pure function of (snapshot, query, parameters).
type Resolver struct {
	cfg *config.ResolverConfig
}

// New creates a Resolver with the given match settings.
func New(cfg *config.ResolverConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve returns the best-matching locations for a possibly misspelled
// query, capped to the configured result count.
//
// When locType is empty all four hierarchy levels are searched and the
// score alone decides the winner across levels. When parentHint is
// given for a DISTRICT or TALUK query, the hint is resolved one level
// up and child results are narrowed to the top parent candidates; a
// hint that would empty the result set is ignored rather than enforced,
// so a bad parent name cannot hide a good child match.
//
// An empty query or an empty snapshot yields an empty result, not an
// error.
func (r *Resolver) Resolve(
	snap *catalog.Snapshot,
	query string,
	locType gw.LocationType,
	parentHint string,
) []gw.SearchResult {
	q := catalog.NormalizeName(query)
	if q == "" || snap == nil || snap.Len() == 0 {
		return nil
	}

	res := r.matchLevel(snap, q, locType)

	if parentHint != "" && (locType == gw.District || locType == gw.Taluk) {
		res = r.applyParentHint(snap, res, locType, parentHint)
	}

	if len(res) > r.cfg.MaxResults {
		res = res[:r.cfg.MaxResults]
	}
	return res
}

// applyParentHint narrows child candidates to those owned by the top
// matches of the hint at the parent level. The hint is advisory: if the
// narrowing removes everything, the unfiltered candidates are kept.
func (r *Resolver) applyParentHint(
	snap *catalog.Snapshot,
	candidates []gw.SearchResult,
	locType gw.LocationType,
	parentHint string,
) []gw.SearchResult {
	parentType, ok := locType.ParentType()
	if !ok {
		return candidates
	}

	parents := r.matchLevel(snap, catalog.NormalizeName(parentHint), parentType)
	if len(parents) > r.cfg.ParentCandidates {
		parents = parents[:r.cfg.ParentCandidates]
	}
	if len(parents) == 0 {
		return candidates
	}

	allowed := make(map[string]bool, len(parents))
	for _, p := range parents {
		allowed[p.Location.ID] = true
	}

	var filtered []gw.SearchResult
	for _, c := range candidates {
		if allowed[c.Location.ParentID] {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return candidates
	}
	return filtered
}

// matchLevel scores every entity of one level (or of all levels when
// locType is empty) against the normalized query and returns candidates
// at or above the threshold, best first.
func (r *Resolver) matchLevel(
	snap *catalog.Snapshot,
	q string,
	locType gw.LocationType,
) []gw.SearchResult {
	var res []gw.SearchResult
	for _, e := range snap.Entities() {
		if locType != "" && e.Type != locType {
			continue
		}
		s := score(q, catalog.NormalizeName(e.Name))
		if s < r.cfg.Threshold {
			continue
		}
		res = append(res, gw.SearchResult{Location: e, Score: s})
	}

	// Entities arrive in insertion order; the stable sort keeps that
	// order for equal scores.
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Score > res[j].Score
	})
	return res
}

// score computes a normalized similarity in [0,1] between the
// normalized query and a normalized entity name. Exact matches score
// 1.0; everything else is capped below it. Besides the whole name, each
// name token is tried so a query matching one word of a compound name
// still ranks high.
func score(q, name string) float64 {
	if q == name {
		return 1.0
	}

	best := levenshtein.Match(q, name, nil)
	if tokens := strings.Fields(name); len(tokens) > 1 {
		for _, tok := range tokens {
			if s := levenshtein.Match(q, tok, nil) * partialWeight; s > best {
				best = s
			}
		}
	}

	if best > 0.99 {
		best = 0.99
	}
	return best
}
