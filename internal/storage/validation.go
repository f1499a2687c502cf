package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joshsymonds/hoard/internal/common"
	"github.com/joshsymonds/hoard/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrEmptySlice   = errors.New("slice cannot be empty")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateSnapshot validates a snapshot before persistence.
func validateSnapshot(snapshot *model.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("%w: snapshot", ErrNilParameter)
	}
	if snapshot.ID == "" {
		return fmt.Errorf("%w: snapshot.ID", ErrEmptyString)
	}
	if snapshot.Date.IsZero() {
		return errors.New("snapshot date is required")
	}
	return nil
}

// validateAccounts validates a slice of accounts.
func validateAccounts(accounts []model.Account) error {
	if accounts == nil {
		return fmt.Errorf("%w: accounts", ErrNilParameter)
	}
	if len(accounts) == 0 {
		return fmt.Errorf("%w: accounts", ErrEmptySlice)
	}
	for i := range accounts {
		if !accounts[i].Displayable() {
			return fmt.Errorf("%w: account at index %d has neither id nor name", common.ErrInvalidAccount, i)
		}
	}
	return nil
}

// validateProperty validates a property before persistence.
func validateProperty(property *model.Property) error {
	if property == nil {
		return fmt.Errorf("%w: property", ErrNilParameter)
	}
	if property.ID == "" {
		return fmt.Errorf("%w: property.ID", ErrEmptyString)
	}
	if property.Address == "" {
		return fmt.Errorf("%w: property.Address", ErrEmptyString)
	}
	return nil
}
