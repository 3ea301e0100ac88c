package cli

import (
	"github.com/spf13/cobra"

	"github.com/palisade-org/palisade/internal/cli/render"
	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/usecase"
)

// NewDeployCmd creates the infrastructure deployment command.
func NewDeployCmd() *cobra.Command {
	var confirmations uint64

	cmd := &cobra.Command{
		Use:   "deploy <chain-id>",
		Short: "Deploy the wallet infrastructure contracts to a chain",
		Long: `Deploy the canonical infrastructure contracts (singleton factory, wallet
singleton, proxy factory, fallback handler, batch helper) to a chain.

Deployments are deterministic and idempotent: contracts land at the same
address on every chain, and contracts already present are recorded without
being redeployed. A run interrupted halfway resumes from its partial record.`,
		Example: `  # Deploy to a local anvil node
  palisade deploy eip155:31337

  # Deploy to sepolia waiting for 3 confirmations
  palisade deploy eip155:11155111 --confirmations 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			chainID, err := domain.ParseChainID(args[0])
			if err != nil {
				return err
			}

			result, err := app.DeployInfrastructure.Run(cmd.Context(), usecase.DeployInfrastructureParams{
				ChainID:       chainID,
				Confirmations: confirmations,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(cmd, result.Record)
			}
			return render.NewDeploymentRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().Uint64Var(&confirmations, "confirmations", 0, "Confirmation depth override")
	return cmd
}
