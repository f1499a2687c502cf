package main

import (
	"errors"
	"fmt"

	"github.com/joshsymonds/hoard/internal/aggregate"
	"github.com/joshsymonds/hoard/internal/cli"
	"github.com/joshsymonds/hoard/internal/common"
	"github.com/joshsymonds/hoard/internal/model"
	"github.com/spf13/cobra"
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage the retirement allocation plan",
		Long:  `Set and display a monthly spend figure split across categories by percentage.`,
	}

	cmd.AddCommand(setPlanCmd())
	cmd.AddCommand(showPlanCmd())

	return cmd
}

func setPlanCmd() *cobra.Command {
	var (
		spend         float64
		categorySpecs []string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the allocation plan",
		Long: `Set the plan, e.g.:

  hoard plan set --spend 5000 --category Housing:40 --category Travel:25 \
    --category Food:20 --category Health:15

Percentages must be whole numbers summing to exactly 100; the plan is
rejected otherwise, never silently rescaled.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if len(categorySpecs) == 0 {
				return fmt.Errorf("at least one --category is required")
			}

			plan := model.Plan{MonthlySpend: spend}
			for _, spec := range categorySpecs {
				category, err := parsePlanSpec(spec)
				if err != nil {
					return err
				}
				plan.Categories = append(plan.Categories, category)
			}

			if err := aggregate.ValidatePercentages(&plan); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SavePlan(ctx, &plan); err != nil {
				return fmt.Errorf("failed to save plan: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Plan saved."))
			fmt.Print(cli.RenderAllocations(&plan, aggregate.AllocateDollars(&plan)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&spend, "spend", 0, "planned monthly spend")
	cmd.Flags().StringArrayVar(&categorySpecs, "category", nil, "allocation as name:percent (repeatable)")

	return cmd
}

func showPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the plan with dollar allocations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			plan, err := store.GetPlan(ctx)
			if err != nil {
				if errors.Is(err, common.ErrNotFound) {
					fmt.Println(cli.SubtleStyle.Render("No plan set. Use 'hoard plan set' to create one."))
					return nil
				}
				return fmt.Errorf("failed to load plan: %w", err)
			}

			fmt.Print(cli.RenderAllocations(plan, aggregate.AllocateDollars(plan)))
			return nil
		},
	}
}
