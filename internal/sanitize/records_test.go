package sanitize

import (
	"testing"

	"github.com/joshsymonds/hoard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_DefaultsEveryMissingField(t *testing.T) {
	s := Snapshot(map[string]any{"date": "2025-01-31"})

	assert.Zero(t, s.Cash)
	assert.Zero(t, s.Liabilities)
	assert.False(t, s.HasNetWorth, "absent netWorth must not be marked authoritative")
	assert.Zero(t, s.ComputedNetWorth())
}

func TestSnapshot_StoredNetWorth(t *testing.T) {
	tests := []struct {
		raw     any
		name    string
		wantHas bool
		want    float64
	}{
		{name: "numeric", raw: 1500.0, wantHas: true, want: 1500},
		{name: "numeric string", raw: "1500", wantHas: true, want: 1500},
		{name: "empty string", raw: "", wantHas: false},
		{name: "garbage", raw: "n/a", wantHas: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Snapshot(map[string]any{"netWorth": tt.raw})
			assert.Equal(t, tt.wantHas, s.HasNetWorth)
			if tt.wantHas {
				assert.Equal(t, tt.want, s.NetWorth)
			}
		})
	}
}

func TestSnapshot_CustomFields(t *testing.T) {
	s := Snapshot(map[string]any{
		"cash": "2,500.00",
		"customFields": []any{
			map[string]any{"name": "art", "kind": "asset", "amount": "750"},
			map[string]any{"name": "iou", "kind": "liability", "amount": 200.0},
			map[string]any{"name": "untagged", "amount": 50.0}, // kind defaults to asset
			"not a map",
		},
	})

	require.Len(t, s.CustomFields, 3)
	assert.Equal(t, 3300.0, s.AssetTotal())
	assert.Equal(t, 200.0, s.LiabilityTotal())
	assert.Equal(t, 3100.0, s.ComputedNetWorth())
}

func TestAccount_NormalizesCategory(t *testing.T) {
	a := Account(map[string]any{
		"id":       "acc-1",
		"name":     "Cold Wallet",
		"category": "crypto",
		"amount":   "0.5",
	})

	assert.Equal(t, model.CategoryDigital, a.Category)
	assert.Equal(t, "crypto", a.RawCategory)
	assert.Equal(t, 0.5, a.Amount)
}

func TestProperty_NestedRecords(t *testing.T) {
	p := Property(map[string]any{
		"address":         "12 Elm St",
		"type":            "shortTermRental",
		"value":           "500000",
		"mortgageBalance": 300000.0,
		"rentCollected": map[string]any{
			"2025-01": map[string]any{"amount": 2000.0, "collected": true},
			"2025-02": map[string]any{"amount": "2000", "collected": "false"},
			"2025-03": "broken",
		},
		"expenses": []any{
			map[string]any{"description": "roof", "amount": "500"},
		},
		"units": []any{
			map[string]any{"name": "A", "tenant": "Jo", "rent": 950.0},
		},
	})

	assert.Equal(t, model.TypeShortTermRental, p.Type)
	require.Len(t, p.Rents, 2)
	assert.True(t, p.Rents["2025-01"].Collected)
	assert.False(t, p.Rents["2025-02"].Collected)
	require.Len(t, p.Expenses, 1)
	assert.Equal(t, 500.0, p.Expenses[0].Amount)
	require.Len(t, p.Units, 1)
	assert.Equal(t, 200000.0, p.Equity())
}

func TestProperty_UnknownTypeDefaults(t *testing.T) {
	p := Property(map[string]any{"type": "castle"})

	assert.Equal(t, model.TypeLongTermRental, p.Type)
}
