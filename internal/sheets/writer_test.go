package sheets

import (
	"log/slog"
	"testing"
	"time"

	"github.com/joshsymonds/hoard/internal/aggregate"
	"github.com/joshsymonds/hoard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *Report {
	snapshots := []model.Snapshot{
		{Date: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), Cash: 1000},
		{Date: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), Cash: 1500},
	}
	accounts := []model.Account{
		{ID: "a1", Name: "Checking", RawCategory: "checking", Amount: 1200, Institution: "Chase"},
		{ID: "a2", Name: "Visa", RawCategory: "credit card", Amount: -300},
	}
	properties := []model.Property{
		{ID: "p1", Address: "12 Elm St", Type: model.TypeLongTermRental,
			Value: 500000, MortgageBalance: 300000, PurchasePrice: 400000},
	}

	return &Report{
		Series:     aggregate.ComputeNetWorthSeries(snapshots),
		Breakdown:  aggregate.Categorize(accounts),
		Properties: properties,
		Portfolio:  aggregate.ComputePortfolioMetrics(properties),
	}
}

func TestPrepareReportData(t *testing.T) {
	w := &Writer{config: DefaultConfig(), logger: slog.Default()}

	values := w.prepareReportData(testReport())

	require.NotEmpty(t, values)
	assert.Equal(t, "Net Worth Report", values[0][0])

	var sections []string
	for _, row := range values {
		if len(row) == 1 {
			if s, ok := row[0].(string); ok {
				sections = append(sections, s)
			}
		}
	}
	assert.Contains(t, sections, "Summary")
	assert.Contains(t, sections, "Net Worth History")
	assert.Contains(t, sections, "Accounts")
	assert.Contains(t, sections, "Properties")
}

func TestPrepareReportData_AmountsAreFixedPoint(t *testing.T) {
	w := &Writer{config: DefaultConfig(), logger: slog.Default()}

	values := w.prepareReportData(testReport())

	var found bool
	for _, row := range values {
		if len(row) == 4 && row[0] == "2025-02-28" {
			found = true
			assert.Equal(t, "1500.00", row[1], "amounts export with two fixed decimals")
		}
	}
	assert.True(t, found, "expected a history row for the second snapshot")
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate(), "no auth configured")

	cfg.ServiceAccountPath = "/tmp/key.json"
	assert.NoError(t, cfg.Validate())

	cfg.BatchSize = 0
	assert.Error(t, cfg.Validate())
}
