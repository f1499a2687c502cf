package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/joshsymonds/hoard/internal/common"
	"github.com/joshsymonds/hoard/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func testDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSQLiteStorage_SnapshotRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	snapshot := model.Snapshot{
		ID:          "snap-1",
		Date:        testDate("2025-01-31"),
		Cash:        1000,
		Investments: 2500,
		Liabilities: 400,
		CustomFields: []model.CustomField{
			{Name: "art", Kind: model.KindAsset, Amount: 300},
		},
	}

	if err := store.SaveSnapshot(ctx, &snapshot); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}

	got, err := store.GetSnapshot(ctx, "snap-1")
	if err != nil {
		t.Fatalf("Failed to get snapshot: %v", err)
	}
	if got.Cash != 1000 || got.Liabilities != 400 {
		t.Errorf("snapshot fields did not round-trip: %+v", got)
	}
	if got.HasNetWorth {
		t.Error("snapshot without stored net worth must not report one")
	}
	if len(got.CustomFields) != 1 || got.CustomFields[0].Name != "art" {
		t.Errorf("custom fields did not round-trip: %+v", got.CustomFields)
	}
}

func TestSQLiteStorage_SnapshotStoredNetWorth(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	snapshot := model.Snapshot{
		ID:          "snap-nw",
		Date:        testDate("2025-02-28"),
		Cash:        100,
		NetWorth:    9999,
		HasNetWorth: true,
	}
	if err := store.SaveSnapshot(ctx, &snapshot); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}

	got, err := store.GetSnapshot(ctx, "snap-nw")
	if err != nil {
		t.Fatalf("Failed to get snapshot: %v", err)
	}
	if !got.HasNetWorth || got.NetWorth != 9999 {
		t.Errorf("stored net worth must survive persistence, got %+v", got)
	}
}

func TestSQLiteStorage_SnapshotDelete(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	snapshot := model.Snapshot{ID: "snap-del", Date: testDate("2025-03-01")}
	if err := store.SaveSnapshot(ctx, &snapshot); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}

	if err := store.DeleteSnapshot(ctx, "snap-del"); err != nil {
		t.Fatalf("Failed to delete snapshot: %v", err)
	}
	if _, err := store.GetSnapshot(ctx, "snap-del"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.DeleteSnapshot(ctx, "snap-del"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound for double delete, got %v", err)
	}
}

func TestSQLiteStorage_AccountUpsert(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	accounts := []model.Account{
		{ID: "acc-1", Name: "Checking", RawCategory: "checking",
			Category: model.CategoryBank, Amount: 1200, Institution: "Chase", Mask: "1234"},
		{ID: "acc-2", Name: "Manual Crypto", Category: model.CategoryDigital,
			Amount: 500, Manual: true},
	}
	if err := store.SaveAccounts(ctx, accounts); err != nil {
		t.Fatalf("Failed to save accounts: %v", err)
	}

	// Refresh with a new balance for acc-1 only.
	refreshed := []model.Account{
		{ID: "acc-1", Name: "Checking", RawCategory: "checking",
			Category: model.CategoryBank, Amount: 1350, Institution: "Chase", Mask: "1234",
			LastSynced: testDate("2025-04-01")},
	}
	if err := store.SaveAccounts(ctx, refreshed); err != nil {
		t.Fatalf("Failed to upsert accounts: %v", err)
	}

	all, err := store.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("Failed to list accounts: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 accounts, got %d", len(all))
	}

	got, err := store.GetAccount(ctx, "acc-1")
	if err != nil {
		t.Fatalf("Failed to get account: %v", err)
	}
	if got.Amount != 1350 {
		t.Errorf("Expected refreshed balance 1350, got %v", got.Amount)
	}
	if got.LastSynced.IsZero() {
		t.Error("Expected last_synced to be recorded")
	}
}

func TestSQLiteStorage_PropertyRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	property := model.Property{
		ID:              "prop-1",
		Address:         "12 Elm St",
		Type:            model.TypeLongTermRental,
		PurchaseDate:    testDate("2020-06-15"),
		PurchasePrice:   400000,
		Value:           500000,
		MortgageBalance: 300000,
		Rents: map[string]model.RentEntry{
			"2025-01": {Amount: 2000, Collected: true},
		},
		Expenses: []model.PropertyExpense{
			{Date: testDate("2025-01-10"), Description: "plumbing", Amount: 350},
		},
		Units: []model.Unit{{Name: "A", Tenant: "Jo", Rent: 2000}},
	}

	if err := store.SaveProperty(ctx, &property); err != nil {
		t.Fatalf("Failed to save property: %v", err)
	}

	got, err := store.GetProperty(ctx, "prop-1")
	if err != nil {
		t.Fatalf("Failed to get property: %v", err)
	}
	if got.Equity() != 200000 {
		t.Errorf("Expected equity 200000, got %v", got.Equity())
	}
	if !got.Rents["2025-01"].Collected {
		t.Error("rent entry did not round-trip")
	}
	if len(got.Expenses) != 1 || got.Expenses[0].Amount != 350 {
		t.Errorf("expenses did not round-trip: %+v", got.Expenses)
	}
	if len(got.Units) != 1 || got.Units[0].Tenant != "Jo" {
		t.Errorf("units did not round-trip: %+v", got.Units)
	}
}

func TestSQLiteStorage_PlanRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := store.GetPlan(ctx); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before any plan is set, got %v", err)
	}

	plan := model.Plan{
		MonthlySpend: 5000,
		Categories: []model.PlanCategory{
			{Name: "mortgage", Percent: 60},
			{Name: "travel", Percent: 40},
		},
	}
	if err := store.SavePlan(ctx, &plan); err != nil {
		t.Fatalf("Failed to save plan: %v", err)
	}

	// Saving again replaces the single active plan.
	plan.MonthlySpend = 6000
	if err := store.SavePlan(ctx, &plan); err != nil {
		t.Fatalf("Failed to replace plan: %v", err)
	}

	got, err := store.GetPlan(ctx)
	if err != nil {
		t.Fatalf("Failed to get plan: %v", err)
	}
	if got.MonthlySpend != 6000 {
		t.Errorf("Expected monthly spend 6000, got %v", got.MonthlySpend)
	}
	if len(got.Categories) != 2 || got.Categories[0].Name != "mortgage" {
		t.Errorf("plan categories did not round-trip in order: %+v", got.Categories)
	}
}

func TestSQLiteStorage_Validation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.SaveSnapshot(ctx, &model.Snapshot{Date: testDate("2025-01-01")}); err == nil {
		t.Error("expected error for snapshot without ID")
	}
	if err := store.SaveAccounts(ctx, []model.Account{}); err == nil {
		t.Error("expected error for empty account slice")
	}
	if err := store.SaveProperty(ctx, &model.Property{ID: "p"}); err == nil {
		t.Error("expected error for property without address")
	}
}
