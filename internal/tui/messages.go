package tui

import (
	"github.com/joshsymonds/hoard/internal/aggregate"
	"github.com/joshsymonds/hoard/internal/model"
)

// dataLoadedMsg carries everything the dashboard shows, loaded in one pass.
type dataLoadedMsg struct {
	breakdown  *aggregate.Breakdown
	series     aggregate.Series
	growth     aggregate.Growth
	portfolio  aggregate.PortfolioMetrics
	accounts   []model.Account
	properties []model.Property
}

// errorMsg reports a load failure to the UI.
type errorMsg struct {
	err error
}
