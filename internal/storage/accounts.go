package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/joshsymonds/hoard/internal/common"
	"github.com/joshsymonds/hoard/internal/model"
)

// SaveAccounts upserts accounts by ID so a provider refresh replaces
// balances in place while preserving manually-entered rows it never saw.
func (s *SQLiteStorage) SaveAccounts(ctx context.Context, accounts []model.Account) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAccounts(accounts); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO accounts
		(id, name, raw_category, category, amount, institution, mask, manual, last_synced)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			raw_category = excluded.raw_category,
			category = excluded.category,
			amount = excluded.amount,
			institution = excluded.institution,
			mask = excluded.mask,
			manual = excluded.manual,
			last_synced = excluded.last_synced`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i := range accounts {
		a := &accounts[i]
		var lastSynced sql.NullTime
		if !a.LastSynced.IsZero() {
			lastSynced = sql.NullTime{Time: a.LastSynced, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			a.ID, a.Name, a.RawCategory, string(a.Category), a.Amount,
			a.Institution, a.Mask, a.Manual, lastSynced); err != nil {
			return fmt.Errorf("failed to save account %s: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit accounts: %w", err)
	}

	slog.Debug("saved accounts", "count", len(accounts))
	return nil
}

// GetAccount returns an account by ID, or common.ErrNotFound.
func (s *SQLiteStorage) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, selectAccount+" WHERE id = ?", id)
	account, err := scanAccount(row)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query account: %w", err)
	}
	return account, nil
}

// ListAccounts returns every stored account in insertion order, which keeps
// the categorizer's first-seen grouping stable across calls.
func (s *SQLiteStorage) ListAccounts(ctx context.Context) ([]model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, selectAccount+" ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan account: %w", scanErr)
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}

// DeleteAccount removes an account by ID.
func (s *SQLiteStorage) DeleteAccount(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

const selectAccount = `
	SELECT id, name, raw_category, category, amount, institution, mask, manual, last_synced
	FROM accounts`

func scanAccount(row rowScanner) (*model.Account, error) {
	var account model.Account
	var rawCategory, institution, mask sql.NullString
	var category string
	var lastSynced sql.NullTime

	err := row.Scan(
		&account.ID, &account.Name, &rawCategory, &category, &account.Amount,
		&institution, &mask, &account.Manual, &lastSynced)
	if err != nil {
		return nil, err
	}

	account.RawCategory = rawCategory.String
	account.Institution = institution.String
	account.Mask = mask.String
	account.Category = model.Category(category)
	if lastSynced.Valid {
		account.LastSynced = lastSynced.Time
	}

	return &account, nil
}
