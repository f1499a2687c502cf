package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/joshsymonds/hoard/internal/common"
	"github.com/joshsymonds/hoard/internal/model"
)

// SaveSnapshot inserts or replaces a snapshot. Editing a snapshot is an
// explicit replace by ID; snapshots are never mutated in place otherwise.
func (s *SQLiteStorage) SaveSnapshot(ctx context.Context, snapshot *model.Snapshot) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSnapshot(snapshot); err != nil {
		return err
	}

	customFields, err := json.Marshal(snapshot.CustomFields)
	if err != nil {
		return fmt.Errorf("failed to marshal custom fields: %w", err)
	}

	var netWorth sql.NullFloat64
	if snapshot.HasNetWorth {
		netWorth = sql.NullFloat64{Float64: snapshot.NetWorth, Valid: true}
	}

	query := `
		INSERT OR REPLACE INTO snapshots
		(id, date, cash, investments, real_estate, retirement, vehicles,
		 personal_property, other_assets, liabilities, net_worth, custom_fields)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		snapshot.ID, snapshot.Date,
		snapshot.Cash, snapshot.Investments, snapshot.RealEstate,
		snapshot.Retirement, snapshot.Vehicles, snapshot.PersonalProperty,
		snapshot.OtherAssets, snapshot.Liabilities,
		netWorth, string(customFields))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	slog.Debug("saved snapshot", "id", snapshot.ID, "date", snapshot.Date.Format("2006-01-02"))
	return nil
}

// GetSnapshot returns a snapshot by ID, or common.ErrNotFound.
func (s *SQLiteStorage) GetSnapshot(ctx context.Context, id string) (*model.Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, selectSnapshot+" WHERE id = ?", id)
	snapshot, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	return snapshot, nil
}

// ListSnapshots returns every stored snapshot. No ordering is promised;
// the aggregator sorts by date before computing any series.
func (s *SQLiteStorage) ListSnapshots(ctx context.Context) ([]model.Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, selectSnapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []model.Snapshot
	for rows.Next() {
		snapshot, scanErr := scanSnapshot(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", scanErr)
		}
		snapshots = append(snapshots, *snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots: %w", err)
	}

	slog.Debug("retrieved snapshots", "count", len(snapshots))
	return snapshots, nil
}

// DeleteSnapshot removes a snapshot by ID.
func (s *SQLiteStorage) DeleteSnapshot(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

const selectSnapshot = `
	SELECT id, date, cash, investments, real_estate, retirement, vehicles,
	       personal_property, other_assets, liabilities, net_worth, custom_fields
	FROM snapshots`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*model.Snapshot, error) {
	var snapshot model.Snapshot
	var netWorth sql.NullFloat64
	var customFields string

	err := row.Scan(
		&snapshot.ID, &snapshot.Date,
		&snapshot.Cash, &snapshot.Investments, &snapshot.RealEstate,
		&snapshot.Retirement, &snapshot.Vehicles, &snapshot.PersonalProperty,
		&snapshot.OtherAssets, &snapshot.Liabilities,
		&netWorth, &customFields)
	if err != nil {
		return nil, err
	}

	if netWorth.Valid {
		snapshot.NetWorth = netWorth.Float64
		snapshot.HasNetWorth = true
	}
	if err := json.Unmarshal([]byte(customFields), &snapshot.CustomFields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal custom fields: %w", err)
	}

	return &snapshot, nil
}
