package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/palisade-org/palisade/internal/tools"
)

// NewServeCmd creates the tool server command.
func NewServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lifecycle operations as HTTP tools",
		Long: `Serve every lifecycle operation as an HTTP tool under POST /tools/<name>.
Requests and responses are JSON; failures use a structured error envelope
with a stable machine-readable code.`,
		Example: `  palisade serve --listen 127.0.0.1:8091

  curl -XPOST localhost:8091/tools/list_networks
  curl -XPOST localhost:8091/tools/show_transaction -d '{"safeTxHash":"0x..."}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			api := &tools.API{
				Deploy:       app.DeployInfrastructure,
				CreateWallet: app.CreateWallet,
				Propose:      app.ProposeTransaction,
				OwnerChange:  app.ProposeOwnerChange,
				Sign:         app.SignTransaction,
				Execute:      app.ExecuteTransaction,
				Estimate:     app.EstimateTransaction,
				Show:         app.ShowTransaction,
				List:         app.ListTransactions,
				Networks:     app.ListNetworks,
			}
			registry := tools.NewRegistryFor(api, app.Log)

			addr := listen
			if addr == "" {
				addr = app.Config.ListenAddr
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return tools.NewServer(addr, registry, app.Log).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default from config)")
	return cmd
}
