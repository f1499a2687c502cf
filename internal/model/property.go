package model

import "time"

// PropertyType classifies how a real estate holding is used.
type PropertyType string

const (
	// TypeLongTermRental is a property leased on long-term contracts.
	TypeLongTermRental PropertyType = "longTermRental"
	// TypeShortTermRental is a property rented nightly or weekly.
	TypeShortTermRental PropertyType = "shortTermRental"
	// TypePrimaryResidence is the owner-occupied home.
	TypePrimaryResidence PropertyType = "primaryResidence"
	// TypeVacationHome is a second home not held for income.
	TypeVacationHome PropertyType = "vacationHome"
)

// RentEntry records rent for a single period (e.g. "2025-01").
// Scheduled-but-uncollected rent stays out of realized income.
type RentEntry struct {
	Amount    float64 `json:"amount"`
	Collected bool    `json:"collected"`
}

// PropertyExpense is a single expense charged against a property.
type PropertyExpense struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
}

// Unit is a rentable sub-unit of a property.
type Unit struct {
	Name   string  `json:"name"`
	Tenant string  `json:"tenant"`
	Rent   float64 `json:"rent"`
}

// Property is a real estate holding with its income and expense history.
type Property struct {
	PurchaseDate    time.Time
	Rents           map[string]RentEntry
	ID              string
	Address         string
	Type            PropertyType
	Expenses        []PropertyExpense
	Units           []Unit
	PurchasePrice   float64
	Value           float64
	MortgageBalance float64
}

// Equity is value minus mortgage balance. It may be negative and is
// reported as such, never clamped.
func (p *Property) Equity() float64 {
	return p.Value - p.MortgageBalance
}
