package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joshsymonds/hoard/internal/aggregate"
	"github.com/joshsymonds/hoard/internal/cli"
	"github.com/joshsymonds/hoard/internal/common"
	"github.com/joshsymonds/hoard/internal/model"
	"github.com/spf13/cobra"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage tracked accounts",
		Long:  `List, add, edit, and delete accounts, refresh balances from providers, and import OFX files.`,
	}

	cmd.AddCommand(listAccountsCmd())
	cmd.AddCommand(addAccountCmd())
	cmd.AddCommand(editAccountCmd())
	cmd.AddCommand(deleteAccountCmd())
	cmd.AddCommand(refreshAccountsCmd())
	cmd.AddCommand(importOFXCmd())

	return cmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts grouped by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			accounts, err := store.ListAccounts(ctx)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			if len(accounts) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No accounts found. Use 'hoard accounts add' to create one."))
				return nil
			}

			fmt.Print(cli.RenderBreakdown(aggregate.Categorize(accounts)))
			return nil
		},
	}
}

func addAccountCmd() *cobra.Command {
	var (
		category    string
		institution string
		amount      float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a manual account",
		Long: `Create an account tracked by hand rather than through a provider.

The category is normalized: raw labels like "checking" or "401k" map onto
canonical categories, and anything unrecognized lands in miscellaneous.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			account := model.Account{
				ID:          uuid.NewString(),
				Name:        args[0],
				RawCategory: category,
				Category:    model.NormalizeCategory(category),
				Institution: institution,
				Amount:      amount,
				Manual:      true,
				LastSynced:  time.Now().UTC(),
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SaveAccounts(ctx, []model.Account{account}); err != nil {
				return fmt.Errorf("failed to save account: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Added %s (%s) with balance %s",
				account.Name, cli.CategoryLabel(account.Category), cli.Money(account.Amount))))
			fmt.Println(cli.SubtleStyle.Render("ID: " + account.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "account category (e.g. checking, 401k, crypto)")
	cmd.Flags().StringVar(&institution, "institution", "", "institution name")
	cmd.Flags().Float64Var(&amount, "amount", 0, "current balance")

	return cmd
}

func editAccountCmd() *cobra.Command {
	var (
		name        string
		category    string
		institution string
		amount      float64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			account, err := store.GetAccount(ctx, args[0])
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return fmt.Errorf("no account with ID %q", args[0])
				}
				return fmt.Errorf("failed to load account: %w", err)
			}

			if cmd.Flags().Changed("name") {
				account.Name = name
			}
			if cmd.Flags().Changed("category") {
				account.RawCategory = category
				account.Category = model.NormalizeCategory(category)
			}
			if cmd.Flags().Changed("institution") {
				account.Institution = institution
			}
			if cmd.Flags().Changed("amount") {
				account.Amount = amount
				account.LastSynced = time.Now().UTC()
			}

			if err := store.SaveAccounts(ctx, []model.Account{*account}); err != nil {
				return fmt.Errorf("failed to save account: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Account updated."))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new account name")
	cmd.Flags().StringVar(&category, "category", "", "new account category")
	cmd.Flags().StringVar(&institution, "institution", "", "new institution name")
	cmd.Flags().Float64Var(&amount, "amount", 0, "new balance")

	return cmd
}

func deleteAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteAccount(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete account: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Account deleted."))
			return nil
		},
	}
}
