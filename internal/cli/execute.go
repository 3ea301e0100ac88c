package cli

import (
	"github.com/spf13/cobra"

	"github.com/palisade-org/palisade/internal/cli/render"
	"github.com/palisade-org/palisade/internal/usecase"
)

// NewExecuteCmd creates the transaction execution command.
func NewExecuteCmd() *cobra.Command {
	var confirmations uint64

	cmd := &cobra.Command{
		Use:   "execute <safe-tx-hash>",
		Short: "Execute a fully confirmed transaction",
		Long: `Execute a transaction whose confirmation count meets the wallet's
threshold. Signatures are ordered and submitted in a single execution call;
the stored record transitions to EXECUTED or FAILED exactly once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ExecuteTransaction.Run(cmd.Context(), usecase.ExecuteTransactionParams{
				SafeTxHash:    args[0],
				Confirmations: confirmations,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(cmd, result.Transaction)
			}
			return render.NewTransactionRenderer(cmd.OutOrStdout()).RenderExecution(result)
		},
	}

	cmd.Flags().Uint64Var(&confirmations, "confirmations", 0, "Confirmation depth override")
	return cmd
}
