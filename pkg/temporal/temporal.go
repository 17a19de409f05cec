// Package temporal turns a year specification into the concrete years
// to query and decides between single-point and historical (trend)
// presentation.
package temporal

import (
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/gw"
)

// Resolution is the concrete time window of a request.
type Resolution struct {
	// Historical is true whenever a range or an explicit year list was
	// supplied, even if the filtered result collapses to a single year.
	// Callers use it to pick point vs. trend presentation, not the
	// count of resulting years.
	Historical bool

	// Years are the in-scope years, ascending.
	Years []string

	// TargetYear is the single year of a point query, or the most
	// recent in-scope year of a historical one. Empty when the window
	// holds no years.
	TargetYear string
}

// Resolve applies the precedence rules of a YearSpec against the years
// actually present in the store: an explicit list beats a range, a
// range beats a single year, and no specification at all means the most
// recent available year.
//
// Years requested but absent from the store are silently dropped,
// never an error: partial historical coverage is expected.
func Resolve(spec gw.YearSpec, availableYears []string) Resolution {
	switch {
	case len(spec.Years) > 0:
		return Resolution{
			Historical: true,
			Years:      intersect(availableYears, spec.Years),
		}.withTarget()

	case spec.FromYear != "" || spec.ToYear != "":
		return Resolution{
			Historical: true,
			Years:      inRange(availableYears, spec.FromYear, spec.ToYear),
		}.withTarget()
	}

	target := spec.Year
	if target == "" {
		target = mostRecent(availableYears)
	}
	res := Resolution{TargetYear: target}
	if target != "" {
		res.Years = []string{target}
	}
	return res
}

// withTarget fills TargetYear for historical resolutions: the most
// recent in-scope year. A window that intersects nothing keeps an
// empty target; years outside the request are never substituted.
func (r Resolution) withTarget() Resolution {
	if len(r.Years) > 0 {
		r.TargetYear = r.Years[len(r.Years)-1]
	}
	return r
}

// intersect keeps the available years that appear in the requested
// list, preserving the ascending order of availableYears.
func intersect(availableYears, requested []string) []string {
	want := make(map[string]bool, len(requested))
	for _, y := range requested {
		want[y] = true
	}

	var res []string
	for _, y := range availableYears {
		if want[y] {
			res = append(res, y)
		}
	}
	return res
}

// inRange keeps the available years within the inclusive bounds.
// One-sided ranges are valid: an empty bound does not constrain.
// Four-digit range labels compare chronologically as strings.
func inRange(availableYears []string, from, to string) []string {
	var res []string
	for _, y := range availableYears {
		if from != "" && y < from {
			continue
		}
		if to != "" && y > to {
			continue
		}
		res = append(res, y)
	}
	return res
}

func mostRecent(availableYears []string) string {
	if len(availableYears) == 0 {
		return ""
	}
	return availableYears[len(availableYears)-1]
}
