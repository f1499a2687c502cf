package simplefin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/joshsymonds/hoard/internal/common"
	"github.com/joshsymonds/hoard/internal/model"
	"github.com/joshsymonds/hoard/internal/sanitize"
	"github.com/joshsymonds/hoard/internal/service"
)

// Client implements the BalanceFetcher interface for SimpleFIN.
type Client struct {
	httpClient *http.Client
	accessURL  string
}

// SimpleFIN API response types.
type accountSet struct {
	Accounts []account `json:"accounts"`
}

type account struct {
	Org struct {
		Name string `json:"name"`
	} `json:"org"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Balance string `json:"balance"`
}

// NewClient creates a new SimpleFIN client, using saved auth if available.
func NewClient(token string) (*Client, error) {
	auth, err := LoadOrClaimAuth(token)
	if err != nil {
		return nil, fmt.Errorf("failed to load/claim auth: %w", err)
	}

	return &Client{
		accessURL: auth.AccessURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// GetBalances fetches the current balance of every linked account.
// Balances arrive as strings on the wire and go through the sanitize
// boundary, so a malformed balance becomes 0 rather than an error.
func (c *Client) GetBalances(ctx context.Context) ([]model.Account, error) {
	endpoint, err := url.JoinPath(c.accessURL, "accounts")
	if err != nil {
		return nil, fmt.Errorf("failed to build accounts URL: %w", err)
	}

	// Balances only; transactions are not needed.
	endpoint += "?balances-only=1"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrProviderConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: SimpleFIN returned %d: %s", common.ErrProviderConnection, resp.StatusCode, string(body))
	}

	var set accountSet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}

	now := time.Now()
	accounts := make([]model.Account, 0, len(set.Accounts))
	for _, a := range set.Accounts {
		raw := a.Type
		if raw == "" {
			raw = "bank" // SimpleFIN rarely types accounts; most are depository
		}
		accounts = append(accounts, model.Account{
			ID:          a.ID,
			Name:        a.Name,
			RawCategory: raw,
			Category:    model.NormalizeCategory(raw),
			Amount:      sanitize.Number(a.Balance),
			Institution: a.Org.Name,
			Manual:      false,
			LastSynced:  now,
		})
	}

	slog.Info("Fetched SimpleFIN balances", "count", len(accounts))
	return accounts, nil
}

// Ensure Client implements BalanceFetcher interface.
var _ service.BalanceFetcher = (*Client)(nil)
