package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/palisade-org/palisade/internal/cli/render"
	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/usecase"
)

// NewOwnersCmd creates the owner management command group. Every subcommand
// records a proposal; the change takes effect once the proposal is signed and
// executed like any other wallet transaction.
func NewOwnersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owners",
		Short: "Propose changes to a wallet's owner set",
	}
	cmd.AddCommand(
		newOwnersAddCmd(),
		newOwnersRemoveCmd(),
		newOwnersSwapCmd(),
		newOwnersThresholdCmd(),
	)
	return cmd
}

func runOwnerChange(cmd *cobra.Command, chain, wallet string, params usecase.ProposeOwnerChangeParams) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}
	chainID, err := domain.ParseChainID(chain)
	if err != nil {
		return err
	}
	params.ChainID = chainID
	params.Wallet = wallet

	result, err := app.ProposeOwnerChange.Run(cmd.Context(), params)
	if err != nil {
		return err
	}
	if app.Config.JSON {
		return printJSON(cmd, result.Transaction)
	}
	return render.NewTransactionRenderer(cmd.OutOrStdout()).RenderProposal(result)
}

func ownerFlags(cmd *cobra.Command, chain, wallet *string) {
	cmd.Flags().StringVar(chain, "chain", "", "Target chain (eip155:N)")
	cmd.Flags().StringVar(wallet, "wallet", "", "Wallet address")
	_ = cmd.MarkFlagRequired("chain")
	_ = cmd.MarkFlagRequired("wallet")
}

func newOwnersAddCmd() *cobra.Command {
	var chain, wallet string
	var threshold uint64

	cmd := &cobra.Command{
		Use:   "add <owner>",
		Short: "Propose adding an owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOwnerChange(cmd, chain, wallet, usecase.ProposeOwnerChangeParams{
				Kind:      usecase.OwnerChangeAdd,
				Owner:     args[0],
				Threshold: threshold,
			})
		},
	}
	ownerFlags(cmd, &chain, &wallet)
	cmd.Flags().Uint64Var(&threshold, "threshold", 0, "New threshold (default: keep current)")
	return cmd
}

func newOwnersRemoveCmd() *cobra.Command {
	var chain, wallet string
	var threshold uint64

	cmd := &cobra.Command{
		Use:   "remove <owner>",
		Short: "Propose removing an owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOwnerChange(cmd, chain, wallet, usecase.ProposeOwnerChangeParams{
				Kind:      usecase.OwnerChangeRemove,
				Owner:     args[0],
				Threshold: threshold,
			})
		},
	}
	ownerFlags(cmd, &chain, &wallet)
	cmd.Flags().Uint64Var(&threshold, "threshold", 0, "New threshold (default: keep current)")
	return cmd
}

func newOwnersSwapCmd() *cobra.Command {
	var chain, wallet string

	cmd := &cobra.Command{
		Use:   "swap <old-owner> <new-owner>",
		Short: "Propose replacing an owner",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOwnerChange(cmd, chain, wallet, usecase.ProposeOwnerChangeParams{
				Kind:     usecase.OwnerChangeSwap,
				Owner:    args[0],
				NewOwner: args[1],
			})
		},
	}
	ownerFlags(cmd, &chain, &wallet)
	return cmd
}

func newOwnersThresholdCmd() *cobra.Command {
	var chain, wallet string

	cmd := &cobra.Command{
		Use:   "threshold <n>",
		Short: "Propose changing the confirmation threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return domain.Errorf(domain.ErrValidation, "threshold %q is not a number", args[0])
			}
			return runOwnerChange(cmd, chain, wallet, usecase.ProposeOwnerChangeParams{
				Kind:      usecase.OwnerChangeThreshold,
				Threshold: n,
			})
		},
	}
	ownerFlags(cmd, &chain, &wallet)
	return cmd
}
