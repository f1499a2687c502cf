// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/joshsymonds/hoard/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Snapshot operations. Listing makes no ordering promise; the aggregator
	// sorts defensively before computing any series.
	SaveSnapshot(ctx context.Context, snapshot *model.Snapshot) error
	GetSnapshot(ctx context.Context, id string) (*model.Snapshot, error)
	ListSnapshots(ctx context.Context) ([]model.Snapshot, error)
	DeleteSnapshot(ctx context.Context, id string) error

	// Account operations. SaveAccounts upserts by ID so a provider refresh
	// replaces balances in place.
	SaveAccounts(ctx context.Context, accounts []model.Account) error
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)
	DeleteAccount(ctx context.Context, id string) error

	// Property operations.
	SaveProperty(ctx context.Context, property *model.Property) error
	GetProperty(ctx context.Context, id string) (*model.Property, error)
	ListProperties(ctx context.Context) ([]model.Property, error)
	DeleteProperty(ctx context.Context, id string) error

	// Plan operations. One active retirement allocation plan at a time.
	SavePlan(ctx context.Context, plan *model.Plan) error
	GetPlan(ctx context.Context) (*model.Plan, error)

	// Database management
	Migrate(ctx context.Context) error
	BeginTx(ctx context.Context) (Transaction, error)
	Close() error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit() error
	Rollback() error
}

// BalanceFetcher is the contract every aggregation provider implements:
// fetch the current set of linked accounts with their balances.
type BalanceFetcher interface {
	GetBalances(ctx context.Context) ([]model.Account, error)
}

// RetryOptions configures retry behavior for providers and exporters.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// SyncStats summarizes a provider refresh for display.
type SyncStats struct {
	Duration time.Duration
	Fetched  int
	Updated  int
}
