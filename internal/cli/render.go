package cli

import (
	"fmt"
	"strings"

	"github.com/joshsymonds/hoard/internal/aggregate"
	"github.com/joshsymonds/hoard/internal/model"
)

// Money formats a dollar amount with a thousands separator.
func Money(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	whole := s[:len(s)-3]
	frac := s[len(s)-3:]

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if negative {
		return "-$" + b.String() + frac
	}
	return "$" + b.String() + frac
}

// SignedMoney renders a delta colored by its sign.
func SignedMoney(amount float64) string {
	switch {
	case amount > 0:
		return SuccessStyle.Render("+" + Money(amount))
	case amount < 0:
		return ErrorStyle.Render(Money(amount))
	default:
		return SubtleStyle.Render(Money(0))
	}
}

// RenderTrend renders a net-worth series with its latest growth reading.
func RenderTrend(series aggregate.Series) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Net Worth Trend"))
	b.WriteString("\n")

	if len(series) == 0 {
		b.WriteString(SubtleStyle.Render("No snapshots yet. Add one with: hoard snapshot add"))
		b.WriteString("\n")
		return b.String()
	}

	for _, p := range series {
		fmt.Fprintf(&b, "  %s  %14s  %s\n",
			p.Date.Format("2006-01-02"),
			Money(p.NetWorth),
			SubtleStyle.Render(fmt.Sprintf("assets %s, liabilities %s",
				Money(p.AssetTotal), Money(p.LiabilityTotal))))
	}

	growth := aggregate.SeriesGrowth(series)
	fmt.Fprintf(&b, "\n  %s %s (%s%%)\n",
		BoldStyle.Render("Change:"),
		SignedMoney(growth.Absolute),
		fmt.Sprintf("%.2f", growth.Percent))

	return b.String()
}

// RenderBreakdown renders category balance cards for the accounts screen.
func RenderBreakdown(b *aggregate.Breakdown) string {
	var out strings.Builder
	out.WriteString(TitleStyle.Render("Accounts"))
	out.WriteString("\n")

	if len(b.Order) == 0 {
		out.WriteString(SubtleStyle.Render("No accounts yet. Link one with: hoard accounts refresh"))
		out.WriteString("\n")
		return out.String()
	}

	for _, category := range b.Order {
		group := b.Groups[category]
		fmt.Fprintf(&out, "  %s %s\n",
			BoldStyle.Render(CategoryLabel(category)),
			Money(group.Subtotal))
		for _, a := range group.Items {
			name := a.Name
			if name == "" {
				name = a.ID
			}
			detail := ""
			if a.Mask != "" {
				detail = SubtleStyle.Render(" ····" + a.Mask)
			}
			fmt.Fprintf(&out, "    %-30s%s %14s\n", name, detail, Money(a.Amount))
		}
	}

	fmt.Fprintf(&out, "\n  %s %s\n", BoldStyle.Render("Total:"), Money(b.Total))
	return out.String()
}

// RenderPropertyMetrics renders one property's derived figures.
func RenderPropertyMetrics(p *model.Property, m aggregate.PropertyMetrics) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(p.Address))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Value:     %s\n", Money(p.Value))
	fmt.Fprintf(&b, "  Mortgage:  %s\n", Money(p.MortgageBalance))
	fmt.Fprintf(&b, "  Equity:    %s\n", SignedMoney(m.Equity))
	fmt.Fprintf(&b, "  Rent:      %s collected\n", Money(m.TotalRent))
	fmt.Fprintf(&b, "  Expenses:  %s\n", Money(m.TotalExpenses))
	fmt.Fprintf(&b, "  NOI:       %s\n", SignedMoney(m.NOI))
	fmt.Fprintf(&b, "  Cap rate:  %.2f%%\n", m.CapRate)
	return b.String()
}

// RenderPortfolio renders portfolio-level rollups.
func RenderPortfolio(pm aggregate.PortfolioMetrics, count int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Portfolio (%d properties)", count)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Total value:   %s\n", Money(pm.TotalValue))
	fmt.Fprintf(&b, "  Total equity:  %s\n", SignedMoney(pm.TotalEquity))
	fmt.Fprintf(&b, "  Rent income:   %s\n", Money(pm.TotalRentIncome))
	fmt.Fprintf(&b, "  Total NOI:     %s\n", SignedMoney(pm.TotalNOI))
	fmt.Fprintf(&b, "  Avg cap rate:  %.2f%%\n", pm.AverageCapRate)
	fmt.Fprintf(&b, "  Avg CoC:       %.2f%%\n", pm.AverageCoCReturn)
	return b.String()
}

// RenderAllocations renders a retirement plan's dollar allocation.
func RenderAllocations(plan *model.Plan, allocations []aggregate.Allocation) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Retirement Allocation"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Monthly spend: %s\n\n", Money(plan.MonthlySpend))
	for _, a := range allocations {
		fmt.Fprintf(&b, "  %-26s %3d%%  %12s\n", a.Category, a.Percent, Money(a.Dollars))
	}
	return b.String()
}

// CategoryLabel returns the display name for an account category.
func CategoryLabel(c model.Category) string {
	switch c {
	case model.CategoryBank:
		return "Bank"
	case model.CategoryCreditCard:
		return "Credit Cards"
	case model.CategoryLoan:
		return "Loans"
	case model.CategoryInvestment:
		return "Investments"
	case model.CategoryRetirement:
		return "Retirement"
	case model.CategoryInsurance:
		return "Insurance"
	case model.CategoryDigital:
		return "Digital Assets"
	default:
		return "Miscellaneous"
	}
}
