package cli

import (
	"github.com/spf13/cobra"

	"github.com/palisade-org/palisade/internal/cli/render"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/usecase"
)

// NewStatusCmd creates the transaction status command. Without arguments it
// lists stored transactions; with a hash it shows one in detail.
func NewStatusCmd() *cobra.Command {
	var (
		chain  string
		wallet string
		status string
	)

	cmd := &cobra.Command{
		Use:   "status [safe-tx-hash]",
		Short: "Show wallet transactions and their confirmation progress",
		Example: `  # All stored transactions
  palisade status

  # Pending transactions for one wallet
  palisade status --wallet 0xWallet --status PROPOSED

  # One transaction in detail
  palisade status 0xhash...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			renderer := render.NewTransactionRenderer(cmd.OutOrStdout())

			if len(args) == 1 {
				result, err := app.ShowTransaction.Run(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if app.Config.JSON {
					return printJSON(cmd, result)
				}
				return renderer.RenderShow(result)
			}

			txs, err := app.ListTransactions.Run(cmd.Context(), usecase.TransactionFilter{
				ChainID: chain,
				Wallet:  wallet,
				Status:  models.TransactionStatus(status),
			})
			if err != nil {
				return err
			}
			if app.Config.JSON {
				return printJSON(cmd, txs)
			}
			return renderer.RenderList(txs)
		},
	}

	cmd.Flags().StringVar(&chain, "chain", "", "Filter by chain (eip155:N)")
	cmd.Flags().StringVar(&wallet, "wallet", "", "Filter by wallet address")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status: PROPOSED, EXECUTED or FAILED")
	return cmd
}
