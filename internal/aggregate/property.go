package aggregate

import (
	"github.com/joshsymonds/hoard/internal/model"
)

// PropertyMetrics are the derived figures for a single property.
type PropertyMetrics struct {
	Equity        float64
	TotalRent     float64
	TotalExpenses float64
	NOI           float64
	CapRate       float64
}

// PortfolioMetrics are rollups across the full property list.
type PortfolioMetrics struct {
	TotalValue       float64
	TotalEquity      float64
	TotalRentIncome  float64
	TotalExpenses    float64
	TotalNOI         float64
	AverageCapRate   float64
	AverageCoCReturn float64
}

// ComputePropertyMetrics derives equity, realized income and yield figures
// for one property. Only collected rent counts toward income; equity may be
// negative; a non-positive value degrades the cap rate to 0.
func ComputePropertyMetrics(p *model.Property) PropertyMetrics {
	m := PropertyMetrics{Equity: p.Equity()}

	for _, rent := range p.Rents {
		if rent.Collected {
			m.TotalRent += rent.Amount
		}
	}
	for _, e := range p.Expenses {
		m.TotalExpenses += e.Amount
	}
	m.NOI = m.TotalRent - m.TotalExpenses

	if p.Value > 0 {
		m.CapRate = round2(m.NOI / p.Value * 100)
	}
	return m
}

// ComputePortfolioMetrics rolls per-property metrics up across the whole
// portfolio. The average cap rate is portfolio NOI over portfolio value,
// and cash-on-cash return approximates invested cash as purchase price;
// both degrade to 0 when the denominator is not positive.
func ComputePortfolioMetrics(properties []model.Property) PortfolioMetrics {
	var pm PortfolioMetrics
	var totalPurchase float64

	for i := range properties {
		p := &properties[i]
		m := ComputePropertyMetrics(p)
		pm.TotalValue += p.Value
		pm.TotalEquity += m.Equity
		pm.TotalRentIncome += m.TotalRent
		pm.TotalExpenses += m.TotalExpenses
		pm.TotalNOI += m.NOI
		totalPurchase += p.PurchasePrice
	}

	if pm.TotalValue > 0 {
		pm.AverageCapRate = round2(pm.TotalNOI / pm.TotalValue * 100)
	}
	if totalPurchase > 0 {
		pm.AverageCoCReturn = round2(pm.TotalNOI / totalPurchase * 100)
	}
	return pm
}
