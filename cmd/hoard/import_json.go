package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joshsymonds/hoard/internal/cli"
	"github.com/joshsymonds/hoard/internal/model"
	"github.com/joshsymonds/hoard/internal/sanitize"
	"github.com/spf13/cobra"
)

// importDocument is the shape of a JSON export: three independent record
// collections, each loosely typed. Every record goes through the sanitize
// boundary, so missing or malformed fields default rather than fail.
type importDocument struct {
	Snapshots  []map[string]any `json:"snapshots"`
	Accounts   []map[string]any `json:"accounts"`
	Properties []map[string]any `json:"properties"`
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import snapshots, accounts, and properties from a JSON export",
		Long: `Load a JSON export produced by another tracker or an older version of
this one. Records are lenient: numbers may arrive as strings, unknown
categories fall back to miscellaneous, and malformed nested entries are
dropped rather than aborting the import.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			var doc importDocument
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var snapshots, accounts, properties int

			for _, raw := range doc.Snapshots {
				snap := sanitize.Snapshot(raw)
				if snap.ID == "" {
					snap.ID = uuid.NewString()
				}
				if err := store.SaveSnapshot(ctx, &snap); err != nil {
					return fmt.Errorf("failed to save snapshot %s: %w", snap.ID, err)
				}
				snapshots++
			}

			var batch []model.Account
			for _, raw := range doc.Accounts {
				account := sanitize.Account(raw)
				if !account.Displayable() {
					continue
				}
				if account.ID == "" {
					account.ID = uuid.NewString()
				}
				batch = append(batch, account)
			}
			if len(batch) > 0 {
				if err := store.SaveAccounts(ctx, batch); err != nil {
					return fmt.Errorf("failed to save accounts: %w", err)
				}
				accounts = len(batch)
			}

			for _, raw := range doc.Properties {
				property := sanitize.Property(raw)
				if property.Address == "" {
					continue
				}
				if property.ID == "" {
					property.ID = uuid.NewString()
				}
				if err := store.SaveProperty(ctx, &property); err != nil {
					return fmt.Errorf("failed to save property %s: %w", property.Address, err)
				}
				properties++
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Imported %d snapshots, %d accounts, %d properties",
				snapshots, accounts, properties)))
			return nil
		},
	}
}
