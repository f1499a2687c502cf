package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/joshsymonds/hoard/internal/common"
	"github.com/joshsymonds/hoard/internal/model"
)

// SavePlan stores the single active retirement allocation plan. Callers
// validate percentage sums before saving; storage persists what it is given.
func (s *SQLiteStorage) SavePlan(ctx context.Context, plan *model.Plan) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("%w: plan", ErrNilParameter)
	}

	categories, err := json.Marshal(orEmptySlice(plan.Categories))
	if err != nil {
		return fmt.Errorf("failed to marshal plan categories: %w", err)
	}

	query := `
		INSERT INTO plans (id, monthly_spend, categories, updated_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			monthly_spend = excluded.monthly_spend,
			categories = excluded.categories,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, plan.MonthlySpend, string(categories)); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

// GetPlan returns the active plan, or common.ErrNotFound when none is set.
func (s *SQLiteStorage) GetPlan(ctx context.Context) (*model.Plan, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var plan model.Plan
	var categories string
	err := s.db.QueryRowContext(ctx,
		"SELECT monthly_spend, categories FROM plans WHERE id = 1").
		Scan(&plan.MonthlySpend, &categories)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query plan: %w", err)
	}

	if err := json.Unmarshal([]byte(categories), &plan.Categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan categories: %w", err)
	}
	return &plan, nil
}
