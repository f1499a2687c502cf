package model

import "testing"

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want Category
	}{
		{"bank", CategoryBank},
		{"Checking", CategoryBank},
		{"money market", CategoryBank},
		{"credit card", CategoryCreditCard},
		{"credit_card", CategoryCreditCard},
		{"mortgage", CategoryLoan},
		{"student-loan", CategoryLoan},
		{"brokerage", CategoryInvestment},
		{"401k", CategoryRetirement},
		{"Roth IRA", CategoryRetirement},
		{"insurance", CategoryInsurance},
		{"crypto", CategoryDigital},
		{"digital", CategoryDigital},
		{"foo", CategoryMisc},
		{"", CategoryMisc},
	}

	for _, tt := range tests {
		if got := NormalizeCategory(tt.raw); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestAccountDisplayable(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		want    bool
	}{
		{"id only", Account{ID: "acc-1"}, true},
		{"name only", Account{Name: "Savings"}, true},
		{"neither", Account{Amount: 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.account.Displayable(); got != tt.want {
				t.Errorf("Displayable() = %v, want %v", got, tt.want)
			}
		})
	}
}
