package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/joshsymonds/hoard/internal/common"
	"github.com/joshsymonds/hoard/internal/model"
	"github.com/joshsymonds/hoard/internal/plaid"
	"github.com/joshsymonds/hoard/internal/service"
	"github.com/joshsymonds/hoard/internal/storage"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) service.Storage {
	t.Helper()
	ctx := context.Background()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRefreshBalances(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	fetcher := &plaid.MockFetcher{
		Accounts: []model.Account{
			{ID: "plaid-1", Name: "Checking", RawCategory: "checking", Category: model.CategoryBank, Amount: 1500},
			{ID: "plaid-2", Name: "Visa", RawCategory: "credit card", Category: model.CategoryCreditCard, Amount: -450},
		},
	}

	stats, err := refreshBalances(ctx, store, fetcher)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Fetched)
	assert.Equal(t, 2, stats.Updated)
	assert.Equal(t, 1, fetcher.Calls)

	saved, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, saved, 2)

	// A second refresh upserts in place rather than duplicating.
	fetcher.Accounts[0].Amount = 1750
	_, err = refreshBalances(ctx, store, fetcher)
	require.NoError(t, err)

	account, err := store.GetAccount(ctx, "plaid-1")
	require.NoError(t, err)
	assert.InDelta(t, 1750, account.Amount, 0.001)

	saved, err = store.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestRefreshBalancesFetchError(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	fetcher := &plaid.MockFetcher{Err: errors.New("provider down")}

	_, err := refreshBalances(ctx, store, fetcher)
	require.Error(t, err)

	saved, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestBuildFetcherRejectsUnknownProvider(t *testing.T) {
	_, err := buildFetcher("monzo")
	require.Error(t, err)

	_, err = buildFetcher("")
	require.Error(t, err)
}

func TestBuildFetcherPlaidRequiresFullConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("plaid.client_id", "test-client-id")
	viper.Set("plaid.secret", "test-secret")
	viper.Set("plaid.environment", "sandbox")

	// Without an access token there is no linked item to refresh.
	_, err := buildFetcher("plaid")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	viper.Set("plaid.access_token", "test-token")
	fetcher, err := buildFetcher("plaid")
	require.NoError(t, err)
	assert.NotNil(t, fetcher)
}
