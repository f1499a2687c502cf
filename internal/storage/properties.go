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

// SaveProperty inserts or replaces a property. Rents, expenses and units
// are document columns: nested CRUD loads the property, edits the nested
// record, and saves the whole row back.
func (s *SQLiteStorage) SaveProperty(ctx context.Context, property *model.Property) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProperty(property); err != nil {
		return err
	}

	rents := property.Rents
	if rents == nil {
		rents = map[string]model.RentEntry{}
	}
	rentsJSON, err := json.Marshal(rents)
	if err != nil {
		return fmt.Errorf("failed to marshal rents: %w", err)
	}
	expensesJSON, err := json.Marshal(orEmptySlice(property.Expenses))
	if err != nil {
		return fmt.Errorf("failed to marshal expenses: %w", err)
	}
	unitsJSON, err := json.Marshal(orEmptySlice(property.Units))
	if err != nil {
		return fmt.Errorf("failed to marshal units: %w", err)
	}

	var purchaseDate sql.NullTime
	if !property.PurchaseDate.IsZero() {
		purchaseDate = sql.NullTime{Time: property.PurchaseDate, Valid: true}
	}

	query := `
		INSERT OR REPLACE INTO properties
		(id, address, type, purchase_date, purchase_price, value,
		 mortgage_balance, rents, expenses, units)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		property.ID, property.Address, string(property.Type), purchaseDate,
		property.PurchasePrice, property.Value, property.MortgageBalance,
		string(rentsJSON), string(expensesJSON), string(unitsJSON))
	if err != nil {
		return fmt.Errorf("failed to save property: %w", err)
	}

	slog.Debug("saved property", "id", property.ID, "address", property.Address)
	return nil
}

// GetProperty returns a property by ID, or common.ErrNotFound.
func (s *SQLiteStorage) GetProperty(ctx context.Context, id string) (*model.Property, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, selectProperty+" WHERE id = ?", id)
	property, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query property: %w", err)
	}
	return property, nil
}

// ListProperties returns every stored property.
func (s *SQLiteStorage) ListProperties(ctx context.Context) ([]model.Property, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, selectProperty+" ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var properties []model.Property
	for rows.Next() {
		property, scanErr := scanProperty(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan property: %w", scanErr)
		}
		properties = append(properties, *property)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating properties: %w", err)
	}

	return properties, nil
}

// DeleteProperty removes a property and its nested records.
func (s *SQLiteStorage) DeleteProperty(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM properties WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

const selectProperty = `
	SELECT id, address, type, purchase_date, purchase_price, value,
	       mortgage_balance, rents, expenses, units
	FROM properties`

func scanProperty(row rowScanner) (*model.Property, error) {
	var property model.Property
	var propertyType string
	var purchaseDate sql.NullTime
	var rents, expenses, units string

	err := row.Scan(
		&property.ID, &property.Address, &propertyType, &purchaseDate,
		&property.PurchasePrice, &property.Value, &property.MortgageBalance,
		&rents, &expenses, &units)
	if err != nil {
		return nil, err
	}

	property.Type = model.PropertyType(propertyType)
	if purchaseDate.Valid {
		property.PurchaseDate = purchaseDate.Time
	}
	if err := json.Unmarshal([]byte(rents), &property.Rents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rents: %w", err)
	}
	if err := json.Unmarshal([]byte(expenses), &property.Expenses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal expenses: %w", err)
	}
	if err := json.Unmarshal([]byte(units), &property.Units); err != nil {
		return nil, fmt.Errorf("failed to unmarshal units: %w", err)
	}

	return &property, nil
}

func orEmptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
