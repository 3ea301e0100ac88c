package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/palisade-org/palisade/internal/usecase"
)

// NetworksRenderer renders the supported network list.
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a networks renderer.
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// Render lists each configured chain with its deployment state.
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Chain", "Name", "RPC", "Infrastructure"})

	for _, n := range result.Networks {
		rpc := n.RPCURL
		if rpc == "" {
			rpc = faintStyle.Sprint("not configured")
		}
		infra := warnStyle.Sprint("missing")
		if n.Deployed {
			infra = successStyle.Sprint("deployed")
		}
		name := n.Name
		if n.Testnet {
			name += faintStyle.Sprint(" (testnet)")
		}
		t.AppendRow(table.Row{n.ChainID.String(), name, rpc, infra})
	}
	t.Render()
	return nil
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
