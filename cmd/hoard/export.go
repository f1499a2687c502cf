package main

import (
	"fmt"
	"log/slog"

	"github.com/joshsymonds/hoard/internal/aggregate"
	"github.com/joshsymonds/hoard/internal/cli"
	"github.com/joshsymonds/hoard/internal/sheets"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var spreadsheetID string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the portfolio to Google Sheets",
		Long: `Write the net worth history, account breakdown, and property portfolio
to a Google Sheets spreadsheet.

Authentication comes from the GOOGLE_SHEETS_* environment variables:
either GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH, or the OAuth2 trio of
CLIENT_ID, CLIENT_SECRET, and REFRESH_TOKEN.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			config := sheets.DefaultConfig()
			if err := config.LoadFromEnv(); err != nil {
				return err
			}
			if spreadsheetID != "" {
				config.SpreadsheetID = spreadsheetID
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			snapshots, err := store.ListSnapshots(ctx)
			if err != nil {
				return fmt.Errorf("failed to list snapshots: %w", err)
			}
			accounts, err := store.ListAccounts(ctx)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}
			properties, err := store.ListProperties(ctx)
			if err != nil {
				return fmt.Errorf("failed to list properties: %w", err)
			}

			report := sheets.Report{
				Series:     aggregate.ComputeNetWorthSeries(snapshots),
				Breakdown:  aggregate.Categorize(accounts),
				Properties: properties,
				Portfolio:  aggregate.ComputePortfolioMetrics(properties),
			}

			writer, err := sheets.NewWriter(ctx, config, slog.Default())
			if err != nil {
				return fmt.Errorf("failed to create sheets writer: %w", err)
			}

			if err := writer.Write(ctx, &report); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Report exported to Google Sheets."))
			return nil
		},
	}

	cmd.Flags().StringVar(&spreadsheetID, "spreadsheet-id", "", "write to an existing spreadsheet")

	return cmd
}
