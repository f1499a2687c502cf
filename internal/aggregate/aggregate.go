// Package aggregate is the portfolio aggregation engine: pure, deterministic
// computation over snapshots, accounts and properties, shared by every
// command and view so derived figures never drift between call sites.
//
// Every operation is total over its input domain. Malformed numeric input is
// expected to have been zeroed by the sanitize package; the guards here
// (division by zero, empty input, missing previous period) degrade to 0
// rather than erroring, because every output feeds an always-rendered view.
package aggregate

import "math"

// round2 rounds to two decimal places. Applied only at output boundaries so
// rounding error never compounds through chained computations.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
