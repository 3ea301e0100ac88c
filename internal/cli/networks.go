package cli

import (
	"github.com/spf13/cobra"

	"github.com/palisade-org/palisade/internal/cli/render"
)

// NewNetworksCmd creates the networks command.
func NewNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List supported networks and their infrastructure state",
		Long: `List the configured networks (built-in defaults merged with networks.toml
in the data directory) and whether the wallet infrastructure is deployed on
each of them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(cmd, result.Networks)
			}
			return render.NewNetworksRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}
