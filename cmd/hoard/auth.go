package main

import (
	"fmt"

	"github.com/joshsymonds/hoard/internal/cli"
	"github.com/joshsymonds/hoard/internal/plaid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with balance providers",
		Long:  `Link institutions through Plaid and exchange Link tokens for access tokens.`,
	}

	cmd.AddCommand(authLinkCmd())
	cmd.AddCommand(authExchangeCmd())
	cmd.AddCommand(authInstitutionsCmd())

	return cmd
}

func plaidClientFromConfig() (*plaid.Client, error) {
	client, err := plaid.NewClient(plaid.Config{
		ClientID:    viper.GetString("plaid.client_id"),
		Secret:      viper.GetString("plaid.secret"),
		Environment: viper.GetString("plaid.environment"),
		AccessToken: viper.GetString("plaid.access_token"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Plaid client: %w", err)
	}
	return client, nil
}

func authLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link",
		Short: "Create a Plaid Link token",
		Long: `Create a Link token to start the Plaid account-linking flow.

Open Plaid Link with this token, connect an institution, and pass the
resulting public token to 'hoard auth exchange'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := plaidClientFromConfig()
			if err != nil {
				return err
			}

			token, err := client.CreateLinkToken(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(cli.BoldStyle.Render("Link token:"))
			fmt.Println(token)
			return nil
		},
	}
}

func authExchangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange <public-token>",
		Short: "Exchange a public token for an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := plaidClientFromConfig()
			if err != nil {
				return err
			}

			accessToken, itemID, err := client.ExchangePublicToken(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Exchange succeeded."))
			fmt.Printf("Item ID: %s\n", itemID)
			fmt.Println(cli.BoldStyle.Render("Access token (add to config as plaid.access_token):"))
			fmt.Println(accessToken)
			return nil
		},
	}
}

func authInstitutionsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "institutions <query>",
		Short: "Search Plaid institutions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := plaidClientFromConfig()
			if err != nil {
				return err
			}

			institutions, err := client.SearchInstitutions(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}

			if len(institutions) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No institutions matched."))
				return nil
			}

			for _, inst := range institutions {
				oauth := ""
				if inst.OAuth {
					oauth = cli.SubtleStyle.Render(" (OAuth)")
				}
				fmt.Printf("%s  %s%s\n", inst.ID, inst.Name, oauth)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum results")

	return cmd
}
