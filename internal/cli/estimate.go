package cli

import (
	"github.com/spf13/cobra"

	"github.com/palisade-org/palisade/internal/cli/render"
	"github.com/palisade-org/palisade/internal/usecase"
)

// NewEstimateCmd creates the gas estimation command.
func NewEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate <safe-tx-hash>",
		Short: "Estimate gas parameters for a proposed transaction",
		Long: `Simulate a proposed transaction against the current chain state and report
suggested gas parameters. A revert surfaces the decoded reason.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.EstimateTransaction.Run(cmd.Context(), usecase.EstimateTransactionParams{
				SafeTxHash: args[0],
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(cmd, map[string]any{
					"safeTxGas": result.SafeTxGas,
					"baseGas":   result.BaseGas,
					"gasPrice":  result.GasPrice,
				})
			}
			return render.NewTransactionRenderer(cmd.OutOrStdout()).RenderEstimate(result)
		},
	}
	return cmd
}
