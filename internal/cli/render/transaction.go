package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/usecase"
)

// TransactionRenderer renders wallet transaction lifecycle results.
type TransactionRenderer struct {
	out io.Writer
}

// NewTransactionRenderer creates a transaction renderer.
func NewTransactionRenderer(out io.Writer) *TransactionRenderer {
	return &TransactionRenderer{out: out}
}

// RenderProposal shows a freshly recorded proposal.
func (r *TransactionRenderer) RenderProposal(result *usecase.ProposeTransactionResult) error {
	tx := result.Transaction

	headerStyle.Fprintln(r.out, "Transaction proposed")
	fmt.Fprintf(r.out, "  Hash:    %s\n", tx.SafeTxHash)
	fmt.Fprintf(r.out, "  Wallet:  %s (%s)\n", tx.Wallet, tx.ChainID)
	fmt.Fprintf(r.out, "  Nonce:   %d\n", tx.Nonce)
	fmt.Fprintf(r.out, "  Calls:   %d\n", len(tx.Calls))
	if len(tx.Calls) > 1 {
		faintStyle.Fprintf(r.out, "  Batched through %s (delegatecall)\n", tx.To)
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Collect signatures with: palisade sign", tx.SafeTxHash)
	return nil
}

// RenderSigned shows an accepted confirmation.
func (r *TransactionRenderer) RenderSigned(result *usecase.SignTransactionResult) error {
	tx := result.Transaction

	successStyle.Fprintf(r.out, "✓ Confirmation recorded (%s)\n", result.Record.Method)
	fmt.Fprintf(r.out, "  Signer:        %s\n", result.Record.Signer)
	fmt.Fprintf(r.out, "  Confirmations: %d\n", len(tx.Confirmations))
	return nil
}

// RenderExecution shows a terminal execution outcome.
func (r *TransactionRenderer) RenderExecution(result *usecase.ExecuteTransactionResult) error {
	res := result.Result
	if res.Success {
		successStyle.Fprintln(r.out, "✓ Transaction executed")
	} else {
		failStyle.Fprintln(r.out, "✗ Transaction reverted on chain")
		if res.RevertReason != "" {
			fmt.Fprintf(r.out, "  Reason:  %s\n", res.RevertReason)
		}
	}
	fmt.Fprintf(r.out, "  Tx:      %s\n", res.TxHash)
	fmt.Fprintf(r.out, "  GasUsed: %d\n", res.GasUsed)
	return nil
}

// RenderEstimate shows suggested gas parameters for a proposal.
func (r *TransactionRenderer) RenderEstimate(result *usecase.EstimateTransactionResult) error {
	headerStyle.Fprintf(r.out, "Estimate for %s\n", shortHash(result.Transaction.SafeTxHash))
	fmt.Fprintf(r.out, "  SafeTxGas: %d\n", result.SafeTxGas)
	fmt.Fprintf(r.out, "  BaseGas:   %d\n", result.BaseGas)
	fmt.Fprintf(r.out, "  GasPrice:  %s wei\n", result.GasPrice)
	return nil
}

// RenderShow shows one transaction with its confirmation progress.
func (r *TransactionRenderer) RenderShow(result *usecase.ShowTransactionResult) error {
	tx := result.Transaction

	headerStyle.Fprintf(r.out, "Transaction %s\n", tx.SafeTxHash)
	fmt.Fprintf(r.out, "  Status:  %s\n", statusLabel(tx.Status))
	fmt.Fprintf(r.out, "  Wallet:  %s (%s)\n", tx.Wallet, tx.ChainID)
	fmt.Fprintf(r.out, "  Nonce:   %d\n", tx.Nonce)
	fmt.Fprintf(r.out, "  To:      %s\n", tx.To)
	fmt.Fprintf(r.out, "  Value:   %s wei\n", tx.Value)

	if result.Threshold > 0 {
		fmt.Fprintf(r.out, "  Signed:  %d of %d\n", len(tx.Confirmations), result.Threshold)
		if result.Executable {
			successStyle.Fprintln(r.out, "  Ready to execute")
		}
		if tx.Status == models.TransactionStatusProposed && tx.Nonce < result.WalletNonce {
			warnStyle.Fprintf(r.out, "  Superseded: wallet nonce is already %d\n", result.WalletNonce)
		}
	} else {
		fmt.Fprintf(r.out, "  Signed:  %d (threshold unavailable, network unreachable)\n", len(tx.Confirmations))
	}

	if len(tx.Confirmations) > 0 {
		fmt.Fprintln(r.out)
		for _, c := range tx.Confirmations {
			fmt.Fprintf(r.out, "  • %s  %s\n", c.Signer, faintStyle.Sprint(c.Method))
		}
	}
	if tx.ExecutionResult != nil && tx.ExecutionResult.RevertReason != "" {
		failStyle.Fprintf(r.out, "  Revert:  %s\n", tx.ExecutionResult.RevertReason)
	}
	return nil
}

// RenderList shows transactions as a table.
func (r *TransactionRenderer) RenderList(txs []*models.WalletTransaction) error {
	if len(txs) == 0 {
		fmt.Fprintln(r.out, "No transactions found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Hash", "Wallet", "Nonce", "Sigs", "Status", "Proposed"})
	for _, tx := range txs {
		t.AppendRow(table.Row{
			shortHash(tx.SafeTxHash),
			shortHash(tx.Wallet),
			tx.Nonce,
			len(tx.Confirmations),
			statusLabel(tx.Status),
			tx.ProposedAt.Format("2006-01-02 15:04"),
		})
	}
	t.Render()
	return nil
}
