package sheets

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetWorthRow is a single row of the Net Worth tab. Amounts are carried as
// decimals at the export boundary so the spreadsheet never shows float
// artifacts.
type NetWorthRow struct {
	Date        time.Time
	NetWorth    decimal.Decimal
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
}

// AccountRow is a single row of the Accounts tab.
type AccountRow struct {
	Name        string
	Category    string
	Institution string
	Amount      decimal.Decimal
}

// PropertyRow is a single row of the Properties tab.
type PropertyRow struct {
	Address string
	Type    string
	Value   decimal.Decimal
	Equity  decimal.Decimal
	NOI     decimal.Decimal
	CapRate decimal.Decimal
}
