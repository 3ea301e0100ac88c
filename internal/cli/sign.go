package cli

import (
	"github.com/spf13/cobra"

	"github.com/palisade-org/palisade/internal/cli/render"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/usecase"
)

// NewSignCmd creates the transaction confirmation command.
func NewSignCmd() *cobra.Command {
	var (
		method    string
		extSigner string
		extSig    string
	)

	cmd := &cobra.Command{
		Use:   "sign <safe-tx-hash>",
		Short: "Confirm a proposed transaction",
		Long: `Confirm a proposed transaction with the operator key, or record a
signature produced out of band.

Methods:
  eip712          structured-data signature with the operator key (default)
  eth_sign        prefixed-message signature with the operator key
  approved_hash   on-chain approval from the operator account`,
		Example: `  # Structured-data signature with the operator key
  palisade sign 0xhash...

  # Record a hardware wallet signature
  palisade sign 0xhash... --signer 0xOwner --signature 0xsig...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.SignTransaction.Run(cmd.Context(), usecase.SignTransactionParams{
				SafeTxHash:        args[0],
				Method:            models.SignatureMethod(method),
				ExternalSigner:    extSigner,
				ExternalSignature: extSig,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(cmd, result.Transaction)
			}
			return render.NewTransactionRenderer(cmd.OutOrStdout()).RenderSigned(result)
		},
	}

	cmd.Flags().StringVar(&method, "method", "", "Signature method: eip712, eth_sign or approved_hash")
	cmd.Flags().StringVar(&extSigner, "signer", "", "Owner address for an externally produced signature")
	cmd.Flags().StringVar(&extSig, "signature", "", "Externally produced 65-byte signature (0x hex)")
	return cmd
}
