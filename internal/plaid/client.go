// Package plaid provides a client for interacting with the Plaid API.
package plaid

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joshsymonds/hoard/internal/common"
	"github.com/joshsymonds/hoard/internal/model"
	"github.com/joshsymonds/hoard/internal/service"
	"github.com/plaid/plaid-go/v20/plaid"
)

// Config holds Plaid API configuration.
type Config struct {
	ClientID    string
	Secret      string
	Environment string // sandbox or production
	AccessToken string
}

// Validate ensures all required fields are present.
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("%w: plaid client ID", common.ErrMissingConfig)
	}
	if c.Secret == "" {
		return fmt.Errorf("%w: plaid secret", common.ErrMissingConfig)
	}
	if c.AccessToken == "" {
		return fmt.Errorf("%w: plaid access token", common.ErrMissingConfig)
	}
	if c.Environment == "" {
		return fmt.Errorf("%w: plaid environment", common.ErrMissingConfig)
	}

	validEnvs := map[string]bool{
		"sandbox":    true,
		"production": true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid Plaid environment: must be sandbox or production")
	}

	return nil
}

// Client implements the BalanceFetcher interface.
type Client struct {
	client      *plaid.APIClient
	logger      *slog.Logger
	retryOpts   *service.RetryOptions
	accessToken string
	environment string
}

// NewClient creates a new Plaid client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	// Don't validate access token for Link flow
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("plaid client ID is required")
	}
	if cfg.Secret == "" {
		return nil, fmt.Errorf("plaid secret is required")
	}
	if cfg.Environment == "" {
		return nil, fmt.Errorf("plaid environment is required")
	}

	configuration := plaid.NewConfiguration()
	configuration.AddDefaultHeader("PLAID-CLIENT-ID", cfg.ClientID)
	configuration.AddDefaultHeader("PLAID-SECRET", cfg.Secret)

	switch cfg.Environment {
	case "sandbox":
		configuration.UseEnvironment(plaid.Sandbox)
	case "production":
		configuration.UseEnvironment(plaid.Production)
	default:
		return nil, fmt.Errorf("invalid Plaid environment: must be sandbox or production")
	}

	client := plaid.NewAPIClient(configuration)

	return &Client{
		client:      client,
		accessToken: cfg.AccessToken,
		environment: cfg.Environment,
		logger:      slog.Default().With("component", "plaid"),
		retryOpts: &service.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 1 * time.Second,
			MaxDelay:     30 * time.Second,
			Multiplier:   2.0,
		},
	}, nil
}

// GetBalances fetches the current balance of every linked account.
func (c *Client) GetBalances(ctx context.Context) ([]model.Account, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}

	c.logger.Info("Fetching account balances from Plaid")

	var plaidAccounts []plaid.AccountBase
	retryErr := common.WithRetry(ctx, func() error {
		request := plaid.NewAccountsBalanceGetRequest(c.accessToken)
		resp, _, err := c.client.PlaidApi.AccountsBalanceGet(ctx).AccountsBalanceGetRequest(*request).Execute()
		if err != nil {
			if plaidError := extractPlaidError(err); plaidError != nil {
				if plaidError.ErrorCode == "RATE_LIMIT_EXCEEDED" {
					c.logger.Warn("Rate limit hit, will retry", "error", plaidError.ErrorMessage)
					return &common.RetryableError{
						Err:       fmt.Errorf("%w: %s", common.ErrProviderRateLimit, plaidError.ErrorMessage),
						Retryable: true,
					}
				}
				return fmt.Errorf("plaid API error: %s - %s", plaidError.ErrorCode, plaidError.ErrorMessage)
			}
			return fmt.Errorf("failed to fetch balances: %w", err)
		}

		plaidAccounts = resp.GetAccounts()
		return nil
	}, *c.retryOpts)

	if retryErr != nil {
		return nil, retryErr
	}

	c.logger.Info("Fetched account balances", "count", len(plaidAccounts))

	accounts := make([]model.Account, 0, len(plaidAccounts))
	now := time.Now()
	for _, pa := range plaidAccounts {
		accounts = append(accounts, c.mapPlaidAccount(pa, now))
	}

	return accounts, nil
}

// mapPlaidAccount converts a Plaid account to our internal model.
// Balances on liability-side accounts arrive positive from Plaid and are
// negated so they subtract naturally from category totals.
func (c *Client) mapPlaidAccount(pa plaid.AccountBase, syncedAt time.Time) model.Account {
	raw := rawCategory(pa)
	category := model.NormalizeCategory(raw)

	balances := pa.GetBalances()
	amount := balances.GetCurrent()
	if category == model.CategoryCreditCard || category == model.CategoryLoan {
		amount = -amount
	}

	name := pa.GetName()
	if official := pa.GetOfficialName(); name == "" && official != "" {
		name = official
	}

	return model.Account{
		ID:          pa.GetAccountId(),
		Name:        name,
		RawCategory: raw,
		Category:    category,
		Amount:      amount,
		Mask:        pa.GetMask(),
		Manual:      false,
		LastSynced:  syncedAt,
	}
}

// rawCategory picks the most specific provider category string available:
// the subtype when present, else the account type.
func rawCategory(pa plaid.AccountBase) string {
	if subtype := string(pa.GetSubtype()); subtype != "" {
		return strings.ToLower(subtype)
	}
	return strings.ToLower(string(pa.GetType()))
}

// extractPlaidError attempts to extract a Plaid error from a generic error.
func extractPlaidError(err error) *plaid.PlaidError {
	plaidErr, convErr := plaid.ToPlaidError(err)
	if convErr != nil {
		return nil
	}
	return &plaidErr
}

// CreateLinkToken creates a Link token for Plaid Link initialization.
func (c *Client) CreateLinkToken(ctx context.Context) (string, error) {
	user := plaid.LinkTokenCreateRequestUser{
		ClientUserId: "hoard-user-" + time.Now().Format("20060102150405"),
	}

	request := plaid.NewLinkTokenCreateRequest(
		"Hoard Net Worth Tracker",
		"en",
		[]plaid.CountryCode{plaid.COUNTRYCODE_US},
		user,
	)

	// Balances are available on every product; auth keeps Link happy for
	// depository institutions.
	request.SetProducts([]plaid.Products{plaid.PRODUCTS_AUTH})

	// OAuth banks require a redirect URI in production. It must match the
	// Plaid dashboard configuration.
	if c.environment == "production" {
		request.SetRedirectUri("https://localhost:8080/")
	}

	resp, _, err := c.client.PlaidApi.LinkTokenCreate(ctx).LinkTokenCreateRequest(*request).Execute()
	if err != nil {
		if plaidError := extractPlaidError(err); plaidError != nil {
			return "", fmt.Errorf("plaid API error: %s - %s", plaidError.ErrorCode, plaidError.ErrorMessage)
		}
		return "", fmt.Errorf("failed to create link token: %w", err)
	}

	return resp.GetLinkToken(), nil
}

// ExchangePublicToken exchanges a public token from Link for an access token.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (string, string, error) {
	request := plaid.NewItemPublicTokenExchangeRequest(publicToken)
	resp, _, err := c.client.PlaidApi.ItemPublicTokenExchange(ctx).ItemPublicTokenExchangeRequest(*request).Execute()
	if err != nil {
		if plaidError := extractPlaidError(err); plaidError != nil {
			return "", "", fmt.Errorf("plaid API error: %s - %s", plaidError.ErrorCode, plaidError.ErrorMessage)
		}
		return "", "", fmt.Errorf("failed to exchange public token: %w", err)
	}

	return resp.GetAccessToken(), resp.GetItemId(), nil
}

// Institution represents a bank or financial institution.
type Institution struct {
	ID    string
	Name  string
	OAuth bool
}

// SearchInstitutions searches for financial institutions by name.
func (c *Client) SearchInstitutions(ctx context.Context, query string, limit int) ([]Institution, error) {
	request := plaid.NewInstitutionsSearchRequest(
		query,
		[]plaid.CountryCode{plaid.COUNTRYCODE_US},
	)

	options := plaid.InstitutionsSearchRequestOptions{
		IncludeOptionalMetadata: plaid.PtrBool(true),
	}
	request.SetOptions(options)

	resp, _, err := c.client.PlaidApi.InstitutionsSearch(ctx).InstitutionsSearchRequest(*request).Execute()
	if err != nil {
		if plaidError := extractPlaidError(err); plaidError != nil {
			return nil, fmt.Errorf("plaid API error: %s - %s", plaidError.ErrorCode, plaidError.ErrorMessage)
		}
		return nil, fmt.Errorf("failed to search institutions: %w", err)
	}

	// Apply limit on our side since the API doesn't support it
	institutions := make([]Institution, 0, limit)
	for i, inst := range resp.GetInstitutions() {
		if i >= limit {
			break
		}
		institutions = append(institutions, Institution{
			ID:    inst.GetInstitutionId(),
			Name:  inst.GetName(),
			OAuth: inst.GetOauth(),
		})
	}

	return institutions, nil
}

// Ensure Client implements BalanceFetcher interface.
var _ service.BalanceFetcher = (*Client)(nil)
