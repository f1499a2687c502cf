package main

import (
	"github.com/joshsymonds/hoard/internal/tui"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long:  `Browse net worth, accounts, and properties in a full-screen terminal UI.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			return tui.Run(ctx, store)
		},
	}
}
