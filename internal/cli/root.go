package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/palisade-org/palisade/internal/adapters/progress"
	"github.com/palisade-org/palisade/internal/app"
	"github.com/palisade-org/palisade/internal/config"
	"github.com/palisade-org/palisade/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

// appKey is the context key for the app instance
const appKey contextKey = "app"

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "palisade",
		Short: "Multisig wallet lifecycle orchestrator",
		Long: `Palisade orchestrates the full lifecycle of multisig wallets: deterministic
infrastructure deployment, wallet provisioning, and the propose / sign /
execute flow for wallet transactions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Local overrides; missing file is fine.
			_ = godotenv.Load(".env")

			v := config.SetupViper()
			config.BindGlobalFlags(v, cmd)

			var sink usecase.ProgressSink
			if v.GetBool("json") {
				sink = usecase.NopProgress{}
			} else {
				sink = progress.NewSpinnerSink()
			}

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}
			cmd.SetContext(ctx)

			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("json", false, "Emit machine-readable JSON output")
	rootCmd.PersistentFlags().Duration("timeout", 5*time.Minute, "Overall operation timeout")
	rootCmd.PersistentFlags().Uint64("confirmations", 0, "Confirmation depth to wait for (default from config)")
	rootCmd.PersistentFlags().String("data-dir", "", "Data directory (default .palisade)")
	rootCmd.PersistentFlags().String("artifacts", "", "Path to the contract artifacts bundle")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "lifecycle",
		Title: "Lifecycle Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, cmd := range []*cobra.Command{
		NewDeployCmd(),
		NewWalletCmd(),
		NewProposeCmd(),
		NewOwnersCmd(),
		NewSignCmd(),
		NewExecuteCmd(),
		NewEstimateCmd(),
	} {
		cmd.GroupID = "lifecycle"
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{
		NewStatusCmd(),
		NewNetworksCmd(),
		NewServeCmd(),
	} {
		cmd.GroupID = "management"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context.
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}
	return a, nil
}

// printJSON writes a result as indented JSON for --json mode.
func printJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
