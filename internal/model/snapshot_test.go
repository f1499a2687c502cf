package model

import "testing"

func TestSnapshotComputedNetWorth(t *testing.T) {
	s := Snapshot{
		Cash:        1000,
		Investments: 2000,
		Liabilities: 500,
		CustomFields: []CustomField{
			{Name: "collection", Kind: KindAsset, Amount: 300},
			{Name: "family loan", Kind: KindLiability, Amount: 100},
		},
	}

	if got := s.ComputedNetWorth(); got != 2700 {
		t.Errorf("ComputedNetWorth() = %v, want 2700", got)
	}

	s.NetWorth = 9999
	s.HasNetWorth = true
	if got := s.ComputedNetWorth(); got != 9999 {
		t.Errorf("stored net worth must win, got %v", got)
	}
}
