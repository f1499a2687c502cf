package main

import (
	"fmt"
	"os"

	"github.com/joshsymonds/hoard/internal/cli"
	"github.com/joshsymonds/hoard/internal/ofx"
	"github.com/spf13/cobra"
)

func importOFXCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Import account balances from an OFX file",
		Long: `Read the ledger balance of every statement in an OFX or QFX file and
upsert one account per statement. Banks export these files with
inconsistent SGML quirks; the parser repairs the common ones before
handing the document to the OFX library.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer file.Close()

			accounts, err := ofx.NewParser().ParseBalances(ctx, file)
			if err != nil {
				return fmt.Errorf("failed to parse OFX file: %w", err)
			}

			if len(accounts) == 0 {
				fmt.Println(cli.WarningStyle.Render("No statements found in file."))
				return nil
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SaveAccounts(ctx, accounts); err != nil {
				return fmt.Errorf("failed to save accounts: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Imported %d accounts:", len(accounts))))
			for _, a := range accounts {
				fmt.Printf("  %s  %s\n", a.Name, cli.Money(a.Amount))
			}
			return nil
		},
	}
}
