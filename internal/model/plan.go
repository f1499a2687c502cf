package model

// PlanCategory is one weighted slice of a retirement spending plan.
// Percentages are whole integers; a valid plan's percentages sum to 100.
type PlanCategory struct {
	Name    string
	Percent int
}

// Plan is the user's retirement spending allocation: a monthly spend figure
// split across named categories by integer percentage. Category order is
// preserved so allocations render in the order the user defined them.
type Plan struct {
	Categories   []PlanCategory
	MonthlySpend float64
}

// PercentTotal sums the plan's category percentages.
func (p *Plan) PercentTotal() int {
	total := 0
	for _, c := range p.Categories {
		total += c.Percent
	}
	return total
}
