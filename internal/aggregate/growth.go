package aggregate

// Growth is a period-over-period change, absolute and as a percentage.
// Both figures are signed and rounded to two decimals for display.
type Growth struct {
	Absolute float64
	Percent  float64
}

// ComputeGrowth compares a current figure against the previous period.
// A missing previous period is passed as 0; both that case and a true zero
// previous value degrade the percentage to 0 rather than dividing by zero.
// This is a display-safety policy: the result always renders as a number.
func ComputeGrowth(current, previous float64) Growth {
	absolute := current - previous
	percent := 0.0
	if previous != 0 {
		percent = absolute / previous * 100
	}
	return Growth{
		Absolute: round2(absolute),
		Percent:  round2(percent),
	}
}

// SeriesGrowth computes growth between the last two points of a series.
// Series shorter than two points have no prior period and report zero
// growth across the board.
func SeriesGrowth(s Series) Growth {
	prev, ok := s.Previous()
	if !ok {
		return Growth{}
	}
	return ComputeGrowth(s.Latest().NetWorth, prev.NetWorth)
}
