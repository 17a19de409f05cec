package resolver_test

import (
	"testing"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/catalog"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/config"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(t *testing.T) *catalog.Snapshot {
	t.Helper()
	snap, err := catalog.Build([]gw.LocationEntity{
		{ID: "in", Name: "India", Type: gw.Country},
		{ID: "ka", Name: "Karnataka", Type: gw.State, ParentID: "in"},
		{ID: "mh", Name: "Maharashtra", Type: gw.State, ParentID: "in"},
		{ID: "blr-u", Name: "Bangalore Urban", Type: gw.District, ParentID: "ka"},
		{ID: "blr-r", Name: "Bangalore Rural", Type: gw.District, ParentID: "ka"},
		{ID: "mys", Name: "Mysuru", Type: gw.District, ParentID: "ka"},
		{ID: "pune", Name: "Pune", Type: gw.District, ParentID: "mh"},
		{ID: "anekal", Name: "Anekal", Type: gw.Taluk, ParentID: "blr-u"},
		{ID: "haveli", Name: "Haveli", Type: gw.Taluk, ParentID: "pune"},
	}, nil)
	require.NoError(t, err)
	return snap
}

func newResolver() *resolver.Resolver {
	return resolver.New(&config.ResolverConfig{
		Threshold:        0.6,
		MaxResults:       5,
		ParentCandidates: 3,
	})
}

func TestResolveExactMatch(t *testing.T) {
	res := newResolver().Resolve(testSnapshot(t), "Karnataka", gw.State, "")

	require.NotEmpty(t, res)
	assert.Equal(t, "ka", res[0].Location.ID)
	assert.Equal(t, 1.0, res[0].Score)
}

func TestResolveMisspelled(t *testing.T) {
	res := newResolver().Resolve(testSnapshot(t), "karnatka", gw.State, "")

	require.NotEmpty(t, res)
	assert.Equal(t, "ka", res[0].Location.ID)
	assert.Less(t, res[0].Score, 1.0)
	assert.GreaterOrEqual(t, res[0].Score, 0.6)
}

func TestResolveNormalizesQuery(t *testing.T) {
	res := newResolver().Resolve(testSnapshot(t), "  BANGALORE_Urban ", gw.District, "")

	require.NotEmpty(t, res)
	assert.Equal(t, "blr-u", res[0].Location.ID)
	assert.Equal(t, 1.0, res[0].Score)
}

func TestResolvePartialTokenMatch(t *testing.T) {
	// "bangalore" matches one token of both compound district names;
	// scores tie, so catalog insertion order decides.
	res := newResolver().Resolve(testSnapshot(t), "bangalore", gw.District, "")

	require.Len(t, res, 2)
	assert.Equal(t, "blr-u", res[0].Location.ID)
	assert.Equal(t, "blr-r", res[1].Location.ID)
	assert.Equal(t, res[0].Score, res[1].Score)
	assert.Less(t, res[0].Score, 1.0)
}

func TestResolveThresholdExcludes(t *testing.T) {
	res := newResolver().Resolve(testSnapshot(t), "zzzzzz", gw.District, "")
	assert.Empty(t, res)
}

func TestResolveEmptyQuery(t *testing.T) {
	r := newResolver()
	assert.Empty(t, r.Resolve(testSnapshot(t), "", gw.District, ""))
	assert.Empty(t, r.Resolve(testSnapshot(t), "   ", gw.District, ""))
	assert.Empty(t, r.Resolve(nil, "pune", gw.District, ""))
}

func TestResolveAcrossLevels(t *testing.T) {
	// Without a level, the best score wins regardless of type.
	res := newResolver().Resolve(testSnapshot(t), "pune", "", "")

	require.NotEmpty(t, res)
	assert.Equal(t, "pune", res[0].Location.ID)
	assert.Equal(t, gw.District, res[0].Location.Type)
}

func TestResolveParentHintFilters(t *testing.T) {
	// Aurangabad exists in two states; the district rows share a name
	// under different parents.
	snap, err := catalog.Build([]gw.LocationEntity{
		{ID: "in", Name: "India", Type: gw.Country},
		{ID: "mh", Name: "Maharashtra", Type: gw.State, ParentID: "in"},
		{ID: "br", Name: "Bihar", Type: gw.State, ParentID: "in"},
		{ID: "abad-mh", Name: "Aurangabad", Type: gw.District, ParentID: "mh"},
		{ID: "abad-br", Name: "Aurangabad", Type: gw.District, ParentID: "br"},
	}, nil)
	require.NoError(t, err)

	// Without a hint the tie falls to insertion order; hinting the
	// second state flips the pick.
	res := newResolver().Resolve(snap, "aurangabad", gw.District, "")
	require.Len(t, res, 2)
	assert.Equal(t, "abad-mh", res[0].Location.ID)

	res = newResolver().Resolve(snap, "aurangabad", gw.District, "bihar")
	require.Len(t, res, 1)
	assert.Equal(t, "abad-br", res[0].Location.ID)
}

func TestResolveParentHintAdvisory(t *testing.T) {
	// A hint that matches no parent, or filters out every candidate,
	// must not suppress results.
	r := newResolver()
	snap := testSnapshot(t)

	res := r.Resolve(snap, "mysuru", gw.District, "zzzzz")
	require.NotEmpty(t, res)
	assert.Equal(t, "mys", res[0].Location.ID)

	// "maharashtra" resolves fine, but Mysuru has no district there;
	// the unfiltered match is kept.
	res = r.Resolve(snap, "mysuru", gw.District, "maharashtra")
	require.NotEmpty(t, res)
	assert.Equal(t, "mys", res[0].Location.ID)
}

func TestResolveParentHintIgnoredForStates(t *testing.T) {
	// Hints only apply one level down from districts and taluks.
	res := newResolver().Resolve(testSnapshot(t), "karnataka", gw.State, "india")

	require.NotEmpty(t, res)
	assert.Equal(t, "ka", res[0].Location.ID)
}

func TestResolveTalukWithDistrictHint(t *testing.T) {
	res := newResolver().Resolve(testSnapshot(t), "anekal", gw.Taluk, "bangalore urban")

	require.NotEmpty(t, res)
	assert.Equal(t, "anekal", res[0].Location.ID)
}

func TestResolveMaxResultsCap(t *testing.T) {
	locs := []gw.LocationEntity{
		{ID: "in", Name: "India", Type: gw.Country},
		{ID: "ka", Name: "Karnataka", Type: gw.State, ParentID: "in"},
	}
	names := []string{
		"Rampur One", "Rampur Two", "Rampur Three", "Rampur Four",
		"Rampur Five", "Rampur Six", "Rampur Seven",
	}
	for _, n := range names {
		locs = append(locs, gw.LocationEntity{
			ID: n, Name: n, Type: gw.District, ParentID: "ka",
		})
	}
	snap, err := catalog.Build(locs, nil)
	require.NoError(t, err)

	res := newResolver().Resolve(snap, "rampur", gw.District, "")
	assert.Len(t, res, 5)
}

func TestResolveOrderIsDeterministic(t *testing.T) {
	r := newResolver()
	snap := testSnapshot(t)

	first := r.Resolve(snap, "bangalore", gw.District, "")
	for range 10 {
		again := r.Resolve(snap, "bangalore", gw.District, "")
		require.Equal(t, len(first), len(again))
		for i := range first {
			assert.Equal(t, first[i].Location.ID, again[i].Location.ID)
		}
	}
}
