package cli

import (
	"github.com/spf13/cobra"

	"github.com/palisade-org/palisade/internal/cli/render"
	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/usecase"
)

// NewWalletCmd creates the wallet command group.
func NewWalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet provisioning commands",
	}
	cmd.AddCommand(newWalletCreateCmd())
	return cmd
}

func newWalletCreateCmd() *cobra.Command {
	var (
		chain     string
		owners    []string
		threshold uint64
		saltNonce uint64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new multisig wallet",
		Long: `Create a new multisig wallet proxy through the proxy factory.

The wallet address is a function of the owner set, threshold and salt nonce:
repeating the same creation on another chain yields the same address.`,
		Example: `  # 2-of-3 wallet on a local node
  palisade wallet create --chain eip155:31337 \
    --owner 0xOwner1 --owner 0xOwner2 --owner 0xOwner3 --threshold 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			chainID, err := domain.ParseChainID(chain)
			if err != nil {
				return err
			}

			result, err := app.CreateWallet.Run(cmd.Context(), usecase.CreateWalletParams{
				ChainID:   chainID,
				Owners:    owners,
				Threshold: threshold,
				SaltNonce: saltNonce,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(cmd, result)
			}
			return render.NewWalletRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&chain, "chain", "", "Target chain (eip155:N)")
	cmd.Flags().StringArrayVar(&owners, "owner", nil, "Owner address (repeatable)")
	cmd.Flags().Uint64Var(&threshold, "threshold", 1, "Number of required confirmations")
	cmd.Flags().Uint64Var(&saltNonce, "salt-nonce", 0, "Salt nonce differentiating wallets with the same owners")
	_ = cmd.MarkFlagRequired("chain")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}
