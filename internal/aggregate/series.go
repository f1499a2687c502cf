package aggregate

import (
	"sort"
	"time"

	"github.com/joshsymonds/hoard/internal/model"
)

// Point is one entry of a net-worth time series, ready for charting.
type Point struct {
	Date           time.Time
	NetWorth       float64
	AssetTotal     float64
	LiabilityTotal float64
}

// Series is an ordered net-worth time series, non-decreasing by date.
type Series []Point

// ComputeNetWorthSeries builds an ordered series from snapshots in any
// order. Input is never assumed pre-sorted and is not mutated. A snapshot's
// stored net worth is authoritative when present; otherwise net worth is
// derived from the component fields. Empty input yields an empty series.
func ComputeNetWorthSeries(snapshots []model.Snapshot) Series {
	if len(snapshots) == 0 {
		return Series{}
	}

	ordered := make([]model.Snapshot, len(snapshots))
	copy(ordered, snapshots)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	series := make(Series, 0, len(ordered))
	for i := range ordered {
		s := &ordered[i]
		series = append(series, Point{
			Date:           s.Date,
			NetWorth:       s.ComputedNetWorth(),
			AssetTotal:     s.AssetTotal(),
			LiabilityTotal: s.LiabilityTotal(),
		})
	}
	return series
}

// Latest returns the last point of the series, or a zero Point when empty.
func (s Series) Latest() Point {
	if len(s) == 0 {
		return Point{}
	}
	return s[len(s)-1]
}

// Previous returns the second-to-last point and whether one exists.
func (s Series) Previous() (Point, bool) {
	if len(s) < 2 {
		return Point{}, false
	}
	return s[len(s)-2], true
}
