package aggregate

import (
	"fmt"
	"math"

	"github.com/joshsymonds/hoard/internal/model"
)

// Allocation is one plan category's dollar share of the monthly spend.
type Allocation struct {
	Category string
	Percent  int
	Dollars  float64
}

// AllocateDollars converts a plan's integer percentages into dollar
// amounts, each rounded to the nearest dollar. The aggregator never
// renormalizes: a plan whose percentages do not sum to 100 allocates
// exactly what it says, because silently rescaling would misrepresent the
// user's explicit choices. Callers gate bad plans with ValidatePercentages.
func AllocateDollars(plan *model.Plan) []Allocation {
	allocations := make([]Allocation, 0, len(plan.Categories))
	for _, c := range plan.Categories {
		allocations = append(allocations, Allocation{
			Category: c.Name,
			Percent:  c.Percent,
			Dollars:  math.Round(plan.MonthlySpend * float64(c.Percent) / 100),
		})
	}
	return allocations
}

// ValidatePercentages rejects plans whose percentages do not sum to
// exactly 100. This is the submission gate callers apply before accepting
// user input; it is deliberately not applied inside AllocateDollars.
func ValidatePercentages(plan *model.Plan) error {
	if total := plan.PercentTotal(); total != 100 {
		return fmt.Errorf("allocation percentages must sum to 100, got %d", total)
	}
	for _, c := range plan.Categories {
		if c.Percent < 0 {
			return fmt.Errorf("allocation percentage for %q cannot be negative", c.Name)
		}
	}
	return nil
}
