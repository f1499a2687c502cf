package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/joshsymonds/hoard/internal/aggregate"
	"github.com/joshsymonds/hoard/internal/cli"
	"github.com/joshsymonds/hoard/internal/common"
	"github.com/joshsymonds/hoard/internal/model"
	"github.com/joshsymonds/hoard/internal/service"
	"github.com/spf13/cobra"
)

func propertyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "property",
		Short: "Manage real estate holdings",
		Long:  `Track properties with their values, mortgages, rents, expenses, and units.`,
	}

	cmd.AddCommand(addPropertyCmd())
	cmd.AddCommand(listPropertiesCmd())
	cmd.AddCommand(showPropertyCmd())
	cmd.AddCommand(deletePropertyCmd())
	cmd.AddCommand(rentCmd())
	cmd.AddCommand(expenseCmd())
	cmd.AddCommand(unitCmd())

	return cmd
}

func addPropertyCmd() *cobra.Command {
	var (
		propertyType  string
		purchaseDate  string
		purchasePrice float64
		value         float64
		mortgage      float64
	)

	cmd := &cobra.Command{
		Use:   "add <address>",
		Short: "Add a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			property := model.Property{
				ID:              uuid.NewString(),
				Address:         args[0],
				Type:            model.PropertyType(propertyType),
				PurchasePrice:   purchasePrice,
				Value:           value,
				MortgageBalance: mortgage,
				Rents:           make(map[string]model.RentEntry),
			}

			if purchaseDate != "" {
				day, err := parseDay(purchaseDate)
				if err != nil {
					return err
				}
				property.PurchaseDate = day
			}

			switch property.Type {
			case model.TypeLongTermRental, model.TypeShortTermRental,
				model.TypePrimaryResidence, model.TypeVacationHome:
			default:
				return fmt.Errorf("unknown property type %q", propertyType)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SaveProperty(ctx, &property); err != nil {
				return fmt.Errorf("failed to save property: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Added %s (equity %s)",
				property.Address, cli.Money(property.Equity()))))
			fmt.Println(cli.SubtleStyle.Render("ID: " + property.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&propertyType, "type", string(model.TypeLongTermRental), "property type (longTermRental, shortTermRental, primaryResidence, vacationHome)")
	cmd.Flags().StringVar(&purchaseDate, "purchased", "", "purchase date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&purchasePrice, "purchase-price", 0, "purchase price")
	cmd.Flags().Float64Var(&value, "value", 0, "current market value")
	cmd.Flags().Float64Var(&mortgage, "mortgage", 0, "outstanding mortgage balance")

	return cmd
}

func listPropertiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List properties with portfolio totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			properties, err := store.ListProperties(ctx)
			if err != nil {
				return fmt.Errorf("failed to list properties: %w", err)
			}

			if len(properties) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No properties found. Use 'hoard property add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Address"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Value"),
				cli.BoldStyle.Render("Equity"),
				cli.BoldStyle.Render("ID"))
			for i := range properties {
				p := &properties[i]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					p.Address, p.Type, cli.Money(p.Value), cli.Money(p.Equity()), p.ID)
			}
			w.Flush()

			fmt.Println()
			fmt.Print(cli.RenderPortfolio(aggregate.ComputePortfolioMetrics(properties), len(properties)))
			return nil
		},
	}
}

func showPropertyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a property with its metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			property, err := getProperty(cmd, store, args[0])
			if err != nil {
				return err
			}

			fmt.Print(cli.RenderPropertyMetrics(property, aggregate.ComputePropertyMetrics(property)))

			if len(property.Units) > 0 {
				fmt.Println(cli.BoldStyle.Render("\nUnits"))
				for _, u := range property.Units {
					tenant := u.Tenant
					if tenant == "" {
						tenant = cli.SubtleStyle.Render("(vacant)")
					}
					fmt.Printf("  %-12s %-20s %s/mo\n", u.Name, tenant, cli.Money(u.Rent))
				}
			}

			if len(property.Rents) > 0 {
				fmt.Println(cli.BoldStyle.Render("\nRent history"))
				months := make([]string, 0, len(property.Rents))
				for month := range property.Rents {
					months = append(months, month)
				}
				sort.Strings(months)
				for _, month := range months {
					entry := property.Rents[month]
					status := cli.SuccessStyle.Render("collected")
					if !entry.Collected {
						status = cli.WarningStyle.Render("outstanding")
					}
					fmt.Printf("  %s  %12s  %s\n", month, cli.Money(entry.Amount), status)
				}
			}

			if len(property.Expenses) > 0 {
				fmt.Println(cli.BoldStyle.Render("\nExpenses"))
				for _, e := range property.Expenses {
					fmt.Printf("  %s  %12s  %s\n",
						e.Date.Format("2006-01-02"), cli.Money(e.Amount), e.Description)
				}
			}

			return nil
		},
	}
}

func deletePropertyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteProperty(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete property: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Property deleted."))
			return nil
		},
	}
}

func rentCmd() *cobra.Command {
	var uncollected bool

	cmd := &cobra.Command{
		Use:   "rent <id> <month> <amount>",
		Short: "Record rent for a month",
		Long: `Record the rent charged for a month, e.g. 'hoard property rent <id> 2025-07 2400'.

Rent counts toward income only once collected; use --uncollected to record
rent that is still owed.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			month, err := parseMonth(args[1])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[2], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			property, err := getProperty(cmd, store, args[0])
			if err != nil {
				return err
			}

			if property.Rents == nil {
				property.Rents = make(map[string]model.RentEntry)
			}
			property.Rents[month] = model.RentEntry{
				Amount:    amount,
				Collected: !uncollected,
			}

			if err := store.SaveProperty(ctx, property); err != nil {
				return fmt.Errorf("failed to save property: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded %s rent for %s",
				cli.Money(amount), month)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&uncollected, "uncollected", false, "mark the rent as not yet collected")

	return cmd
}

func expenseCmd() *cobra.Command {
	var (
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "expense <id> <amount>",
		Short: "Record a property expense",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			day, err := parseDay(date)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			property, err := getProperty(cmd, store, args[0])
			if err != nil {
				return err
			}

			property.Expenses = append(property.Expenses, model.PropertyExpense{
				Date:        day,
				Description: description,
				Amount:      amount,
			})

			if err := store.SaveProperty(ctx, property); err != nil {
				return fmt.Errorf("failed to save property: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded %s expense", cli.Money(amount))))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "expense date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "what the expense was for")

	return cmd
}

func unitCmd() *cobra.Command {
	var (
		tenant string
		rent   float64
		remove bool
	)

	cmd := &cobra.Command{
		Use:   "unit <id> <name>",
		Short: "Add, update, or remove a unit",
		Long:  `Track the units of a multi-unit property with their tenants and asking rents.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			property, err := getProperty(cmd, store, args[0])
			if err != nil {
				return err
			}

			name := args[1]
			idx := -1
			for i, u := range property.Units {
				if u.Name == name {
					idx = i
					break
				}
			}

			switch {
			case remove:
				if idx < 0 {
					return fmt.Errorf("no unit named %q", name)
				}
				property.Units = append(property.Units[:idx], property.Units[idx+1:]...)

			case idx >= 0:
				if cmd.Flags().Changed("tenant") {
					property.Units[idx].Tenant = tenant
				}
				if cmd.Flags().Changed("rent") {
					property.Units[idx].Rent = rent
				}

			default:
				property.Units = append(property.Units, model.Unit{
					Name:   name,
					Tenant: tenant,
					Rent:   rent,
				})
			}

			if err := store.SaveProperty(ctx, property); err != nil {
				return fmt.Errorf("failed to save property: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Property updated."))
			return nil
		},
	}

	cmd.Flags().StringVar(&tenant, "tenant", "", "tenant name (empty for vacant)")
	cmd.Flags().Float64Var(&rent, "rent", 0, "monthly asking rent")
	cmd.Flags().BoolVar(&remove, "remove", false, "remove the unit")

	return cmd
}

// getProperty loads a property, translating not-found into a friendly error.
func getProperty(cmd *cobra.Command, store service.Storage, id string) (*model.Property, error) {
	property, err := store.GetProperty(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("no property with ID %q", id)
		}
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	return property, nil
}
