package aggregate

import (
	"testing"

	"github.com/joshsymonds/hoard/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestComputePropertyMetrics(t *testing.T) {
	p := model.Property{
		Value:           500000,
		MortgageBalance: 300000,
		Rents: map[string]model.RentEntry{
			"2025-01": {Amount: 2000, Collected: true},
			"2025-02": {Amount: 2000, Collected: false},
		},
		Expenses: []model.PropertyExpense{{Amount: 500}},
	}

	m := ComputePropertyMetrics(&p)

	assert.Equal(t, 200000.0, m.Equity)
	assert.Equal(t, 2000.0, m.TotalRent, "uncollected rent is not realized income")
	assert.Equal(t, 500.0, m.TotalExpenses)
	assert.Equal(t, 1500.0, m.NOI)
	assert.Equal(t, 0.3, m.CapRate)
}

func TestComputePropertyMetrics_NegativeEquity(t *testing.T) {
	p := model.Property{Value: 250000, MortgageBalance: 310000}

	m := ComputePropertyMetrics(&p)

	assert.Equal(t, -60000.0, m.Equity, "negative equity is reported, not clamped")
}

func TestComputePropertyMetrics_ZeroValue(t *testing.T) {
	p := model.Property{
		Rents: map[string]model.RentEntry{"2025-01": {Amount: 1000, Collected: true}},
	}

	m := ComputePropertyMetrics(&p)

	assert.Equal(t, 1000.0, m.NOI)
	assert.Zero(t, m.CapRate, "cap rate degrades to 0 without a positive value")
}

func TestComputePortfolioMetrics(t *testing.T) {
	properties := []model.Property{
		{
			Value:           500000,
			MortgageBalance: 300000,
			PurchasePrice:   400000,
			Rents:           map[string]model.RentEntry{"2025-01": {Amount: 2000, Collected: true}},
			Expenses:        []model.PropertyExpense{{Amount: 500}},
		},
		{
			Value:           300000,
			MortgageBalance: 100000,
			PurchasePrice:   200000,
			Rents:           map[string]model.RentEntry{"2025-01": {Amount: 1500, Collected: true}},
		},
	}

	pm := ComputePortfolioMetrics(properties)

	assert.Equal(t, 800000.0, pm.TotalValue)
	assert.Equal(t, 400000.0, pm.TotalEquity)
	assert.Equal(t, 3500.0, pm.TotalRentIncome)
	assert.Equal(t, 3000.0, pm.TotalNOI)
	assert.Equal(t, 0.38, pm.AverageCapRate, "3000/800000*100 rounded to two decimals")
	assert.Equal(t, 0.5, pm.AverageCoCReturn, "3000/600000*100")
}

func TestComputePortfolioMetrics_Empty(t *testing.T) {
	pm := ComputePortfolioMetrics(nil)

	assert.Equal(t, PortfolioMetrics{}, pm)
}
