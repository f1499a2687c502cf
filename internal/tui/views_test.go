package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/joshsymonds/hoard/internal/aggregate"
	"github.com/joshsymonds/hoard/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func testSeries(values ...float64) aggregate.Series {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make(aggregate.Series, 0, len(values))
	for i, v := range values {
		series = append(series, aggregate.Point{
			Date:     base.AddDate(0, i, 0),
			NetWorth: v,
		})
	}
	return series
}

func TestRenderSparkline(t *testing.T) {
	t.Run("empty series", func(t *testing.T) {
		got := renderSparkline(nil, 40)
		if !strings.Contains(got, "no data") {
			t.Errorf("expected placeholder, got %q", got)
		}
	})

	t.Run("rising series uses full range", func(t *testing.T) {
		got := renderSparkline(testSeries(100, 200, 300, 400), 40)
		if !strings.ContainsRune(got, '▁') || !strings.ContainsRune(got, '█') {
			t.Errorf("expected lowest and highest ticks in %q", got)
		}
	})

	t.Run("flat series stays on one tick", func(t *testing.T) {
		got := renderSparkline(testSeries(500, 500, 500), 40)
		if strings.ContainsRune(got, '█') {
			t.Errorf("flat series should not reach the top tick: %q", got)
		}
	})
}

func TestDownsample(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	got := downsample(values, 4)
	want := []float64{1.5, 3.5, 5.5, 7.5}
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTabSwitching(t *testing.T) {
	m := newModel(Config{})
	m.ready = true

	press := func(m Model, r rune) Model {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		return updated.(Model)
	}

	m = press(m, '2')
	if m.tab != TabAccounts {
		t.Errorf("expected accounts tab, got %v", m.tab)
	}

	m = press(m, '3')
	if m.tab != TabProperties {
		t.Errorf("expected properties tab, got %v", m.tab)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.tab != TabOverview {
		t.Errorf("expected wrap to overview, got %v", m.tab)
	}
}

func TestDataLoadedPopulatesTables(t *testing.T) {
	m := newModel(Config{})

	accounts := []model.Account{
		{ID: "a1", Name: "Checking", Category: model.CategoryBank, Amount: 1500},
	}
	updated, _ := m.Update(dataLoadedMsg{
		series:    testSeries(1000, 1100),
		accounts:  accounts,
		breakdown: aggregate.Categorize(accounts),
		properties: []model.Property{
			{ID: "p1", Address: "12 Oak St", Type: model.TypeLongTermRental, Value: 300000},
		},
	})
	m = updated.(Model)

	if !m.ready {
		t.Fatal("model should be ready after data load")
	}
	if got := len(m.accountTable.Rows()); got != 1 {
		t.Errorf("expected 1 account row, got %d", got)
	}
	if got := len(m.propertyTable.Rows()); got != 1 {
		t.Errorf("expected 1 property row, got %d", got)
	}

	view := m.View()
	if !strings.Contains(view, "Overview") {
		t.Errorf("expected tab bar in view, got %q", view)
	}
}
