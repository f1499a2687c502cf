package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS snapshots (
					id TEXT PRIMARY KEY,
					date DATETIME NOT NULL,
					cash REAL NOT NULL DEFAULT 0,
					investments REAL NOT NULL DEFAULT 0,
					real_estate REAL NOT NULL DEFAULT 0,
					retirement REAL NOT NULL DEFAULT 0,
					vehicles REAL NOT NULL DEFAULT 0,
					personal_property REAL NOT NULL DEFAULT 0,
					other_assets REAL NOT NULL DEFAULT 0,
					liabilities REAL NOT NULL DEFAULT 0,
					net_worth REAL,
					custom_fields TEXT NOT NULL DEFAULT '[]',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_snapshots_date ON snapshots(date)`,

				`CREATE TABLE IF NOT EXISTS accounts (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					raw_category TEXT,
					category TEXT NOT NULL,
					amount REAL NOT NULL DEFAULT 0,
					institution TEXT,
					mask TEXT,
					manual INTEGER NOT NULL DEFAULT 0,
					last_synced DATETIME,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_accounts_category ON accounts(category)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add properties with nested rent, expense and unit documents",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS properties (
					id TEXT PRIMARY KEY,
					address TEXT NOT NULL,
					type TEXT NOT NULL,
					purchase_date DATETIME,
					purchase_price REAL NOT NULL DEFAULT 0,
					value REAL NOT NULL DEFAULT 0,
					mortgage_balance REAL NOT NULL DEFAULT 0,
					rents TEXT NOT NULL DEFAULT '{}',
					expenses TEXT NOT NULL DEFAULT '[]',
					units TEXT NOT NULL DEFAULT '[]',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Add single-row retirement allocation plan",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS plans (
					id INTEGER PRIMARY KEY CHECK (id = 1),
					monthly_spend REAL NOT NULL DEFAULT 0,
					categories TEXT NOT NULL DEFAULT '[]',
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)
			`)
			return err
		},
	},
}

// Migrate applies any pending schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	return nil
}
