package tui

import (
	"context"

	"github.com/joshsymonds/hoard/internal/aggregate"

	tea "github.com/charmbracelet/bubbletea"
)

// loadData fetches snapshots, accounts, and properties from storage and
// computes every aggregate the dashboard renders.
func (m Model) loadData() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		snapshots, err := m.storage.ListSnapshots(ctx)
		if err != nil {
			return errorMsg{err: err}
		}

		accounts, err := m.storage.ListAccounts(ctx)
		if err != nil {
			return errorMsg{err: err}
		}

		properties, err := m.storage.ListProperties(ctx)
		if err != nil {
			return errorMsg{err: err}
		}

		series := aggregate.ComputeNetWorthSeries(snapshots)

		return dataLoadedMsg{
			series:     series,
			growth:     aggregate.SeriesGrowth(series),
			breakdown:  aggregate.Categorize(accounts),
			accounts:   accounts,
			properties: properties,
			portfolio:  aggregate.ComputePortfolioMetrics(properties),
		}
	}
}
