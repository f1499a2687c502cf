package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/joshsymonds/hoard/internal/aggregate"
	"github.com/joshsymonds/hoard/internal/cli"
	"github.com/joshsymonds/hoard/internal/model"
	"github.com/spf13/cobra"
)

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage net worth snapshots",
		Long:  `Record, list, and delete point-in-time snapshots of your balance sheet.`,
	}

	cmd.AddCommand(addSnapshotCmd())
	cmd.AddCommand(listSnapshotsCmd())
	cmd.AddCommand(deleteSnapshotCmd())
	cmd.AddCommand(trendCmd())

	return cmd
}

func addSnapshotCmd() *cobra.Command {
	var (
		date           string
		assetSpecs     []string
		liabilitySpecs []string
		snap           model.Snapshot
		netWorth       float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new snapshot",
		Long: `Record a snapshot of your balance sheet for a given day.

Net worth is derived from the asset and liability buckets unless --net-worth
is given, in which case the stated value wins.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			day, err := parseDay(date)
			if err != nil {
				return err
			}
			snap.ID = uuid.NewString()
			snap.Date = day

			for _, spec := range assetSpecs {
				field, fieldErr := parseFieldSpec(spec, model.KindAsset)
				if fieldErr != nil {
					return fieldErr
				}
				snap.CustomFields = append(snap.CustomFields, field)
			}
			for _, spec := range liabilitySpecs {
				field, fieldErr := parseFieldSpec(spec, model.KindLiability)
				if fieldErr != nil {
					return fieldErr
				}
				snap.CustomFields = append(snap.CustomFields, field)
			}

			if cmd.Flags().Changed("net-worth") {
				snap.NetWorth = netWorth
				snap.HasNetWorth = true
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SaveSnapshot(ctx, &snap); err != nil {
				return fmt.Errorf("failed to save snapshot: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded snapshot for %s: net worth %s",
				day.Format("2006-01-02"), cli.Money(snap.ComputedNetWorth()))))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "snapshot date (YYYY-MM-DD, default today)")
	cmd.Flags().Float64Var(&snap.Cash, "cash", 0, "cash and bank balances")
	cmd.Flags().Float64Var(&snap.Investments, "investments", 0, "brokerage balances")
	cmd.Flags().Float64Var(&snap.RealEstate, "real-estate", 0, "real estate value")
	cmd.Flags().Float64Var(&snap.Retirement, "retirement", 0, "retirement balances")
	cmd.Flags().Float64Var(&snap.Vehicles, "vehicles", 0, "vehicle value")
	cmd.Flags().Float64Var(&snap.PersonalProperty, "personal-property", 0, "personal property value")
	cmd.Flags().Float64Var(&snap.OtherAssets, "other-assets", 0, "other asset value")
	cmd.Flags().Float64Var(&snap.Liabilities, "liabilities", 0, "total liabilities")
	cmd.Flags().Float64Var(&netWorth, "net-worth", 0, "override the derived net worth")
	cmd.Flags().StringArrayVar(&assetSpecs, "asset", nil, "custom asset as name=amount (repeatable)")
	cmd.Flags().StringArrayVar(&liabilitySpecs, "liability", nil, "custom liability as name=amount (repeatable)")

	return cmd
}

func listSnapshotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			snapshots, err := store.ListSnapshots(ctx)
			if err != nil {
				return fmt.Errorf("failed to list snapshots: %w", err)
			}

			if len(snapshots) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No snapshots found. Use 'hoard snapshot add' to record one."))
				return nil
			}

			series := aggregate.ComputeNetWorthSeries(snapshots)
			byDate := make(map[string]model.Snapshot, len(snapshots))
			for _, s := range snapshots {
				byDate[s.Date.Format("2006-01-02")] = s
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Assets"),
				cli.BoldStyle.Render("Liabilities"),
				cli.BoldStyle.Render("Net Worth"),
				cli.BoldStyle.Render("ID"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 10),
				strings.Repeat("-", 12),
				strings.Repeat("-", 12),
				strings.Repeat("-", 12),
				strings.Repeat("-", 36))

			for _, p := range series {
				key := p.Date.Format("2006-01-02")
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					key,
					cli.Money(p.AssetTotal),
					cli.Money(p.LiabilityTotal),
					cli.Money(p.NetWorth),
					byDate[key].ID)
			}

			return nil
		},
	}
}

func deleteSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteSnapshot(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete snapshot: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Snapshot deleted."))
			return nil
		},
	}
}

func trendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Show the net worth trend",
		Long:  `Display the net worth series in date order with period-over-period growth.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			snapshots, err := store.ListSnapshots(ctx)
			if err != nil {
				return fmt.Errorf("failed to list snapshots: %w", err)
			}

			series := aggregate.ComputeNetWorthSeries(snapshots)
			fmt.Print(cli.RenderTrend(series))
			return nil
		},
	}
}
