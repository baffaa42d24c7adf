package cli

import (
	"github.com/MKhiriev/asimov-account/internal/service"
	"github.com/spf13/cobra"
)

const (
	flagSponsor       = "sponsor"
	flagSponsorAmount = "sponsor-amount"
	flagBeneficiary   = "beneficiary"
)

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find NAME",
		Short: "Check whether an account exists on the network",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return a.services.Accounts.Find(cmd.Context(), args[0])
		}),
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import NAME",
		Short: "Import an existing account with credentials in the keychain",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return a.services.Accounts.Import(cmd.Context(), args[0])
		}),
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the locally known accounts",
		Args:    cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			return a.services.Accounts.List(cmd.Context())
		}),
	}
}

func newRegisterCmd(a *app) *cobra.Command {
	var req service.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register NAME",
		Short: "Create a new account on the network",
		Long: "Create a new account with a freshly generated key.\n\n" +
			"On testnet the account is funded by the faucet unless a sponsor is\n" +
			"given. On mainnet --sponsor and --sponsor-amount are required.",
		Args: cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			req.Account = args[0]
			return a.services.Accounts.Register(cmd.Context(), req)
		}),
	}

	cmd.Flags().StringVar(&req.Sponsor, flagSponsor, "", "Existing account that funds the new one")
	cmd.Flags().StringVar(&req.SponsorAmount, flagSponsorAmount, "", `Amount the sponsor transfers (e.g. "1 NEAR")`)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	var beneficiary string

	cmd := &cobra.Command{
		Use:     "delete NAME",
		Aliases: []string{"rm"},
		Short:   "Delete an account, sending its balance to a beneficiary",
		Args:    cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return a.services.Accounts.Delete(cmd.Context(), args[0], beneficiary)
		}),
	}

	cmd.Flags().StringVar(&beneficiary, flagBeneficiary, "", "Account receiving the remaining balance")
	_ = cmd.MarkFlagRequired(flagBeneficiary)
	return cmd
}
