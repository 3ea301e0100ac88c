package render

import (
	"fmt"
	"io"

	"github.com/palisade-org/palisade/internal/usecase"
)

// WalletRenderer renders wallet provisioning results.
type WalletRenderer struct {
	out io.Writer
}

// NewWalletRenderer creates a wallet renderer.
func NewWalletRenderer(out io.Writer) *WalletRenderer {
	return &WalletRenderer{out: out}
}

// Render shows a freshly provisioned wallet.
func (r *WalletRenderer) Render(result *usecase.CreateWalletResult) error {
	successStyle.Fprintln(r.out, "✓ Wallet created")
	fmt.Fprintf(r.out, "  Address:   %s\n", result.Wallet)
	fmt.Fprintf(r.out, "  Threshold: %d of %d\n", result.Threshold, len(result.Owners))
	for _, owner := range result.Owners {
		fmt.Fprintf(r.out, "  Owner:     %s\n", owner)
	}
	faintStyle.Fprintf(r.out, "  Creation tx %s used %d gas\n", result.TxHash, result.GasUsed)
	return nil
}

var _ Renderer[*usecase.CreateWalletResult] = (*WalletRenderer)(nil)
