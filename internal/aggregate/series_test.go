package aggregate

import (
	"testing"
	"time"

	"github.com/joshsymonds/hoard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeNetWorthSeries_SortsByDate(t *testing.T) {
	snapshots := []model.Snapshot{
		{ID: "c", Date: day("2025-03-01"), Cash: 300},
		{ID: "a", Date: day("2025-01-01"), Cash: 100},
		{ID: "b", Date: day("2025-02-01"), Cash: 200},
	}

	series := ComputeNetWorthSeries(snapshots)

	require.Len(t, series, len(snapshots))
	for i := 1; i < len(series); i++ {
		assert.False(t, series[i].Date.Before(series[i-1].Date),
			"series must be non-decreasing by date")
	}
	assert.Equal(t, 100.0, series[0].NetWorth)
	assert.Equal(t, 300.0, series[2].NetWorth)

	// Input order must be untouched.
	assert.Equal(t, "c", snapshots[0].ID)
}

func TestComputeNetWorthSeries_StoredNetWorthIsAuthoritative(t *testing.T) {
	snapshots := []model.Snapshot{
		{
			Date:        day("2025-01-01"),
			Cash:        1000,
			Liabilities: 400,
			NetWorth:    999, // deliberately disagrees with the components
			HasNetWorth: true,
		},
		{
			Date:        day("2025-02-01"),
			Cash:        1000,
			Liabilities: 400,
		},
	}

	series := ComputeNetWorthSeries(snapshots)

	require.Len(t, series, 2)
	assert.Equal(t, 999.0, series[0].NetWorth, "stored value must pass through unchanged")
	assert.Equal(t, 600.0, series[1].NetWorth, "missing value must be derived")
}

func TestComputeNetWorthSeries_DerivesFromAllBuckets(t *testing.T) {
	s := model.Snapshot{
		Date:             day("2025-06-01"),
		Cash:             100,
		Investments:      200,
		RealEstate:       300,
		Retirement:       400,
		Vehicles:         50,
		PersonalProperty: 25,
		OtherAssets:      10,
		Liabilities:      500,
		CustomFields: []model.CustomField{
			{Name: "art", Kind: model.KindAsset, Amount: 15},
			{Name: "iou", Kind: model.KindLiability, Amount: 30},
		},
	}

	series := ComputeNetWorthSeries([]model.Snapshot{s})

	require.Len(t, series, 1)
	assert.Equal(t, 1100.0, series[0].AssetTotal)
	assert.Equal(t, 530.0, series[0].LiabilityTotal)
	assert.Equal(t, 570.0, series[0].NetWorth)
}

func TestComputeNetWorthSeries_EmptyInput(t *testing.T) {
	series := ComputeNetWorthSeries(nil)

	assert.Empty(t, series)
	assert.Equal(t, Point{}, series.Latest())
	assert.Equal(t, Growth{}, SeriesGrowth(series))
}

func TestComputeNetWorthSeries_Idempotent(t *testing.T) {
	snapshots := []model.Snapshot{
		{Date: day("2025-02-01"), Cash: 200},
		{Date: day("2025-01-01"), Cash: 100, NetWorth: 150, HasNetWorth: true},
	}

	first := ComputeNetWorthSeries(snapshots)
	second := ComputeNetWorthSeries(snapshots)

	assert.Equal(t, first, second)
}
