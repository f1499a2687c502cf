package aggregate

import (
	"testing"

	"github.com/joshsymonds/hoard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retirementPlan() *model.Plan {
	return &model.Plan{
		MonthlySpend: 5000,
		Categories: []model.PlanCategory{
			{Name: "mortgage", Percent: 22},
			{Name: "cars", Percent: 3},
			{Name: "healthCare", Percent: 12},
			{Name: "foodAndDrinks", Percent: 10},
			{Name: "travelAndEntertainment", Percent: 28},
			{Name: "reinvestedFunds", Percent: 25},
		},
	}
}

func TestAllocateDollars(t *testing.T) {
	plan := retirementPlan()
	require.NoError(t, ValidatePercentages(plan))

	allocations := AllocateDollars(plan)

	want := map[string]float64{
		"mortgage":               1100,
		"cars":                   150,
		"healthCare":             600,
		"foodAndDrinks":          500,
		"travelAndEntertainment": 1400,
		"reinvestedFunds":        1250,
	}
	require.Len(t, allocations, len(want))

	var total float64
	for _, a := range allocations {
		assert.Equal(t, want[a.Category], a.Dollars, a.Category)
		total += a.Dollars
	}
	assert.Equal(t, plan.MonthlySpend, total,
		"allocations sum to the monthly spend when percentages sum to 100")
}

func TestAllocateDollars_PreservesCategoryOrder(t *testing.T) {
	allocations := AllocateDollars(retirementPlan())

	require.NotEmpty(t, allocations)
	assert.Equal(t, "mortgage", allocations[0].Category)
	assert.Equal(t, "reinvestedFunds", allocations[len(allocations)-1].Category)
}

func TestValidatePercentages(t *testing.T) {
	tests := []struct {
		name    string
		plan    model.Plan
		wantErr bool
	}{
		{
			name: "exactly one hundred",
			plan: model.Plan{Categories: []model.PlanCategory{
				{Name: "a", Percent: 60}, {Name: "b", Percent: 40},
			}},
		},
		{
			name: "under one hundred",
			plan: model.Plan{Categories: []model.PlanCategory{
				{Name: "a", Percent: 60}, {Name: "b", Percent: 39},
			}},
			wantErr: true,
		},
		{
			name: "over one hundred",
			plan: model.Plan{Categories: []model.PlanCategory{
				{Name: "a", Percent: 60}, {Name: "b", Percent: 41},
			}},
			wantErr: true,
		},
		{
			name: "negative percentage",
			plan: model.Plan{Categories: []model.PlanCategory{
				{Name: "a", Percent: 140}, {Name: "b", Percent: -40},
			}},
			wantErr: true,
		},
		{
			name:    "empty plan",
			plan:    model.Plan{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePercentages(&tt.plan)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
