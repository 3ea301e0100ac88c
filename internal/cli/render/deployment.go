package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/palisade-org/palisade/internal/usecase"
)

// DeploymentRenderer renders infrastructure deployment results.
type DeploymentRenderer struct {
	out io.Writer
}

// NewDeploymentRenderer creates a deployment renderer.
func NewDeploymentRenderer(out io.Writer) *DeploymentRenderer {
	return &DeploymentRenderer{out: out}
}

// Render shows the per-contract outcome and the gas total for a deployment
// run.
func (r *DeploymentRenderer) Render(result *usecase.DeployInfrastructureResult) error {
	record := result.Record

	headerStyle.Fprintf(r.out, "Infrastructure on %s (%s)\n", record.NetworkID, record.ChainID)
	fmt.Fprintln(r.out)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Contract", "Address", "Gas", "Status"})

	for _, dep := range record.Deployments {
		status := successStyle.Sprint("deployed")
		if dep.AlreadyDeployed {
			status = faintStyle.Sprint("already present")
		}
		t.AppendRow(table.Row{dep.Name, dep.Address, dep.GasUsed, status})
	}
	t.AppendFooter(table.Row{"", "", record.TotalGasUsed, ""})
	t.Render()

	fmt.Fprintln(r.out)
	if record.Complete() {
		successStyle.Fprintln(r.out, "✓ All infrastructure contracts are in place")
	} else {
		warnStyle.Fprintln(r.out, "! Deployment record is incomplete; rerun deploy to resume")
	}
	return nil
}

var _ Renderer[*usecase.DeployInfrastructureResult] = (*DeploymentRenderer)(nil)
