package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joshsymonds/hoard/internal/cli"
	"github.com/joshsymonds/hoard/internal/common"
	"github.com/joshsymonds/hoard/internal/model"
	"github.com/joshsymonds/hoard/internal/plaid"
	"github.com/joshsymonds/hoard/internal/service"
	"github.com/joshsymonds/hoard/internal/simplefin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func refreshAccountsCmd() *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Refresh balances from a provider",
		Long: `Fetch current balances from the configured aggregation provider and
upsert them into the account list. Accounts added by hand are left alone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if provider == "" {
				provider = viper.GetString("provider")
			}

			fetcher, err := buildFetcher(provider)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := refreshBalances(ctx, store, fetcher)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Refreshed %d accounts (%d saved) in %s",
				stats.Fetched, stats.Updated, stats.Duration.Round(time.Millisecond))))
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "balance provider (plaid or simplefin, default from config)")

	return cmd
}

// buildFetcher constructs the configured provider client.
func buildFetcher(provider string) (service.BalanceFetcher, error) {
	switch provider {
	case "plaid":
		cfg := plaid.Config{
			ClientID:    viper.GetString("plaid.client_id"),
			Secret:      viper.GetString("plaid.secret"),
			Environment: viper.GetString("plaid.environment"),
			AccessToken: viper.GetString("plaid.access_token"),
		}
		// Balance refresh needs a linked item, so the access token is
		// required here even though the link flow does without one.
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		client, err := plaid.NewClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Plaid client: %w", err)
		}
		return client, nil

	case "simplefin":
		client, err := simplefin.NewClient(viper.GetString("simplefin.token"))
		if err != nil {
			return nil, fmt.Errorf("failed to create SimpleFIN client: %w", err)
		}
		return client, nil

	case "":
		return nil, common.NewUserError("no provider configured: set 'provider' in config or pass --provider", common.ErrMissingConfig)

	default:
		return nil, fmt.Errorf("unknown provider %q (want plaid or simplefin)", provider)
	}
}

// refreshBalances fetches balances and upserts them with progress feedback.
func refreshBalances(ctx context.Context, store service.Storage, fetcher service.BalanceFetcher) (service.SyncStats, error) {
	start := time.Now()

	common.LogInfo("Fetching balances from provider", nil)
	accounts, err := fetcher.GetBalances(ctx)
	if err != nil {
		common.LogError(err, "balance fetch failed", common.Fields{"fetched": 0})
		return service.SyncStats{}, fmt.Errorf("failed to fetch balances: %w", err)
	}

	stats := service.SyncStats{Fetched: len(accounts)}
	if len(accounts) == 0 {
		stats.Duration = time.Since(start)
		return stats, nil
	}

	bar := cli.NewRefreshBar(os.Stderr, len(accounts))
	for _, account := range accounts {
		if saveErr := store.SaveAccounts(ctx, []model.Account{account}); saveErr != nil {
			return stats, fmt.Errorf("failed to save account %s: %w", account.Name, saveErr)
		}
		stats.Updated++
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	stats.Duration = time.Since(start)
	return stats, nil
}
