package cli

import (
	"github.com/spf13/cobra"

	"github.com/palisade-org/palisade/internal/cli/render"
	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/usecase"
)

// NewProposeCmd creates the transaction proposal command.
func NewProposeCmd() *cobra.Command {
	var (
		chain     string
		wallet    string
		to        string
		value     string
		data      string
		batchPath string
		nonce     uint64

		safeTxGas      uint64
		baseGas        uint64
		gasPrice       string
		gasToken       string
		refundReceiver string
	)

	cmd := &cobra.Command{
		Use:   "propose",
		Short: "Propose a wallet transaction",
		Long: `Propose a transaction for a multisig wallet. A single call is given with
--to / --value / --data; a batch is given as a YAML file with --batch.
Batches are aggregated through the batch helper into one canonical call.

The proposal is hashed and stored locally; owners confirm it with
'palisade sign' and anyone executes it with 'palisade execute' once the
threshold is met.`,
		Example: `  # Send 1 ETH
  palisade propose --chain eip155:31337 --wallet 0xWallet \
    --to 0xRecipient --value 1000000000000000000

  # Batch from a YAML file, queued at an explicit nonce
  palisade propose --chain eip155:31337 --wallet 0xWallet \
    --batch transfers.yaml --nonce 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			chainID, err := domain.ParseChainID(chain)
			if err != nil {
				return err
			}

			var calls []models.Call
			if batchPath != "" {
				if to != "" || data != "" {
					return domain.NewError(domain.ErrValidation,
						"--batch cannot be combined with --to/--data")
				}
				_, calls, err = usecase.LoadBatchFile(batchPath)
				if err != nil {
					return err
				}
			} else {
				if to == "" {
					return domain.NewError(domain.ErrValidation,
						"either --to or --batch is required")
				}
				if value == "" {
					value = "0"
				}
				calls = []models.Call{{To: to, Value: value, Data: data}}
			}

			params := usecase.ProposeTransactionParams{
				ChainID: chainID,
				Wallet:  wallet,
				Calls:   calls,
				GasParams: models.GasParams{
					SafeTxGas:      safeTxGas,
					BaseGas:        baseGas,
					GasPrice:       gasPrice,
					GasToken:       gasToken,
					RefundReceiver: refundReceiver,
				},
			}
			if cmd.Flags().Changed("nonce") {
				params.Nonce = &nonce
			}

			result, err := app.ProposeTransaction.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(cmd, result.Transaction)
			}
			return render.NewTransactionRenderer(cmd.OutOrStdout()).RenderProposal(result)
		},
	}

	cmd.Flags().StringVar(&chain, "chain", "", "Target chain (eip155:N)")
	cmd.Flags().StringVar(&wallet, "wallet", "", "Wallet address")
	cmd.Flags().StringVar(&to, "to", "", "Call target address")
	cmd.Flags().StringVar(&value, "value", "0", "Call value in wei (decimal)")
	cmd.Flags().StringVar(&data, "data", "", "Call data (0x-prefixed hex)")
	cmd.Flags().StringVar(&batchPath, "batch", "", "YAML file describing a call batch")
	cmd.Flags().Uint64Var(&nonce, "nonce", 0, "Explicit wallet nonce (default: current on-chain nonce)")
	cmd.Flags().Uint64Var(&safeTxGas, "safe-tx-gas", 0, "Gas limit for the inner call")
	cmd.Flags().Uint64Var(&baseGas, "base-gas", 0, "Fixed wallet overhead gas")
	cmd.Flags().StringVar(&gasPrice, "gas-price", "", "Refund gas price in wei (decimal)")
	cmd.Flags().StringVar(&gasToken, "gas-token", "", "Refund token address (default: native)")
	cmd.Flags().StringVar(&refundReceiver, "refund-receiver", "", "Refund receiver address")
	_ = cmd.MarkFlagRequired("chain")
	_ = cmd.MarkFlagRequired("wallet")
	return cmd
}
