package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joshsymonds/hoard/internal/config"
	"github.com/joshsymonds/hoard/internal/model"
	"github.com/joshsymonds/hoard/internal/service"
	"github.com/joshsymonds/hoard/internal/storage"
	"github.com/spf13/viper"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// parseDay parses a calendar day, defaulting to today when empty.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	day, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return day, nil
}

// parseMonth validates a rent month key, e.g. "2025-07".
func parseMonth(s string) (string, error) {
	if _, err := time.Parse("2006-01", s); err != nil {
		return "", fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return s, nil
}

// parseFieldSpec parses a custom snapshot field written as name=amount,
// for example "Art collection=12000".
func parseFieldSpec(spec string, kind model.FieldKind) (model.CustomField, error) {
	idx := strings.LastIndex(spec, "=")
	if idx < 0 {
		return model.CustomField{}, fmt.Errorf("invalid field %q (want name=amount)", spec)
	}

	name := strings.TrimSpace(spec[:idx])
	if name == "" {
		return model.CustomField{}, fmt.Errorf("invalid field %q: name is required", spec)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(spec[idx+1:]), 64)
	if err != nil {
		return model.CustomField{}, fmt.Errorf("invalid field amount %q: %w", spec[idx+1:], err)
	}

	return model.CustomField{Name: name, Kind: kind, Amount: amount}, nil
}

// parsePlanSpec parses an allocation category written as name:percent,
// for example "Travel:25".
func parsePlanSpec(spec string) (model.PlanCategory, error) {
	idx := strings.LastIndex(spec, ":")
	if idx < 0 {
		return model.PlanCategory{}, fmt.Errorf("invalid category %q (want name:percent)", spec)
	}

	name := strings.TrimSpace(spec[:idx])
	if name == "" {
		return model.PlanCategory{}, fmt.Errorf("invalid category %q: name is required", spec)
	}

	percent, err := strconv.Atoi(strings.TrimSpace(spec[idx+1:]))
	if err != nil {
		return model.PlanCategory{}, fmt.Errorf("invalid category percent %q: %w", spec[idx+1:], err)
	}

	return model.PlanCategory{Name: name, Percent: percent}, nil
}
