package tui

import (
	"fmt"
	"strings"

	"github.com/joshsymonds/hoard/internal/aggregate"
	"github.com/joshsymonds/hoard/internal/cli"

	"github.com/charmbracelet/lipgloss"
)

var (
	loadingStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(cli.ErrorColor).
			Padding(1, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(cli.PrimaryColor).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(cli.SubtleColor).
				Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.SubtleColor).
			Padding(0, 1).
			MarginRight(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor).
			MarginTop(1)
)

func (m Model) renderTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			parts = append(parts, activeTabStyle.Render(name))
		} else {
			parts = append(parts, inactiveTabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderOverview() string {
	var summary strings.Builder
	if len(m.series) == 0 {
		summary.WriteString(cli.SubtleStyle.Render("No snapshots recorded yet."))
	} else {
		latest := m.series.Latest()
		fmt.Fprintf(&summary, "%s %s\n",
			cli.BoldStyle.Render("Net worth:"), cli.Money(latest.NetWorth))
		fmt.Fprintf(&summary, "Assets %s   Liabilities %s\n",
			cli.Money(latest.AssetTotal), cli.Money(latest.LiabilityTotal))
		fmt.Fprintf(&summary, "Change %s (%.2f%%)",
			cli.SignedMoney(m.growth.Absolute), m.growth.Percent)
	}

	var breakdown strings.Builder
	breakdown.WriteString(cli.BoldStyle.Render("By category") + "\n")
	if m.breakdown == nil || len(m.breakdown.Order) == 0 {
		breakdown.WriteString(cli.SubtleStyle.Render("No accounts yet."))
	} else {
		for _, c := range m.breakdown.Order {
			group := m.breakdown.Group(c)
			fmt.Fprintf(&breakdown, "%-16s %12s\n", cli.CategoryLabel(c), cli.Money(group.Subtotal))
		}
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(summary.String()),
		panelStyle.Render(breakdown.String()),
	)

	chart := panelStyle.Render(
		cli.BoldStyle.Render("Net worth history") + "\n" + renderSparkline(m.series, 48))

	return lipgloss.JoinVertical(lipgloss.Left, panels, chart)
}

func (m Model) renderAccounts() string {
	if len(m.accounts) == 0 {
		return loadingStyle.Render("No accounts. Add one with 'hoard accounts add'.")
	}
	total := fmt.Sprintf("%d accounts, total %s",
		len(m.accounts), cli.Money(m.breakdown.Total))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.accountTable.View(),
		footerStyle.Render(total),
	)
}

func (m Model) renderProperties() string {
	if len(m.properties) == 0 {
		return loadingStyle.Render("No properties. Add one with 'hoard property add'.")
	}
	summary := fmt.Sprintf("Equity %s   NOI %s   Avg cap rate %.2f%%",
		cli.Money(m.portfolio.TotalEquity),
		cli.Money(m.portfolio.TotalNOI),
		m.portfolio.AverageCapRate)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.propertyTable.View(),
		footerStyle.Render(summary),
	)
}

func (m Model) renderHelp() string {
	bindings := []struct {
		keys string
		desc string
	}{
		{"tab / shift+tab", "switch tabs"},
		{"1 / 2 / 3", "jump to tab"},
		{"j / k", "move selection"},
		{"?", "toggle help"},
		{"q", "quit"},
	}
	var b strings.Builder
	for _, bind := range bindings {
		fmt.Fprintf(&b, "%-18s %s\n", bind.keys, bind.desc)
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderFooter() string {
	return footerStyle.Render("tab: switch view • ?: help • q: quit")
}

var sparkTicks = []rune("▁▂▃▄▅▆▇█")

// renderSparkline draws the net-worth series as a one-line unicode chart,
// downsampling to at most width points.
func renderSparkline(series aggregate.Series, width int) string {
	if len(series) == 0 {
		return cli.SubtleStyle.Render("no data")
	}
	if width < 1 {
		width = 1
	}

	values := make([]float64, 0, len(series))
	for _, p := range series {
		values = append(values, p.NetWorth)
	}
	if len(values) > width {
		values = downsample(values, width)
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	var b strings.Builder
	span := maxVal - minVal
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - minVal) / span * float64(len(sparkTicks)-1))
		}
		b.WriteRune(sparkTicks[idx])
	}

	labels := fmt.Sprintf("%s  →  %s",
		cli.Money(series[0].NetWorth), cli.Money(series[len(series)-1].NetWorth))
	return b.String() + "\n" + cli.SubtleStyle.Render(labels)
}

// downsample reduces values to n points by averaging equal-width buckets.
func downsample(values []float64, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		lo := i * len(values) / n
		hi := (i + 1) * len(values) / n
		if hi <= lo {
			hi = lo + 1
		}
		var sum float64
		for _, v := range values[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}
