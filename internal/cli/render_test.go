package cli

import (
	"strings"
	"testing"

	"github.com/joshsymonds/hoard/internal/aggregate"
	"github.com/joshsymonds/hoard/internal/model"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		want   string
		amount float64
	}{
		{"$0.00", 0},
		{"$5.00", 5},
		{"$1,234.56", 1234.56},
		{"$1,000,000.00", 1000000},
		{"-$1,234.56", -1234.56},
		{"$999.99", 999.99},
	}

	for _, tt := range tests {
		if got := Money(tt.amount); got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestRenderTrendEmpty(t *testing.T) {
	out := RenderTrend(nil)
	if !strings.Contains(out, "hoard snapshot add") {
		t.Errorf("empty trend should hint at snapshot add, got %q", out)
	}
}

func TestRenderBreakdown(t *testing.T) {
	accounts := []model.Account{
		{ID: "1", Name: "Checking", Category: model.CategoryBank, Amount: 1200, Mask: "1234"},
		{ID: "2", Name: "401k", Category: model.CategoryRetirement, Amount: 50000},
	}

	out := RenderBreakdown(aggregate.Categorize(accounts))

	for _, want := range []string{"Checking", "401k", "$1,200.00", "$50,000.00", "$51,200.00", "····1234"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in breakdown:\n%s", want, out)
		}
	}
}

func TestRenderAllocations(t *testing.T) {
	plan := &model.Plan{
		MonthlySpend: 5000,
		Categories: []model.PlanCategory{
			{Name: "mortgage", Percent: 60},
			{Name: "travel", Percent: 40},
		},
	}

	out := RenderAllocations(plan, aggregate.AllocateDollars(plan))

	if !strings.Contains(out, "$3,000.00") || !strings.Contains(out, "$2,000.00") {
		t.Errorf("expected allocation dollars in output:\n%s", out)
	}
}
