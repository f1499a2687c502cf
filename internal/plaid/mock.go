package plaid

import (
	"context"

	"github.com/joshsymonds/hoard/internal/model"
	"github.com/joshsymonds/hoard/internal/service"
)

// MockFetcher is a test double for the BalanceFetcher interface.
type MockFetcher struct {
	Err      error
	Accounts []model.Account
	Calls    int
}

// GetBalances returns the configured accounts or error.
func (m *MockFetcher) GetBalances(_ context.Context) ([]model.Account, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Accounts, nil
}

var _ service.BalanceFetcher = (*MockFetcher)(nil)
