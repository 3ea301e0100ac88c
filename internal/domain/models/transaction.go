package models

import (
	"math/big"
	"strings"
	"time"

	"github.com/palisade-org/palisade/internal/domain"
)

// Operation is the call type of a wallet transaction entry.
type Operation uint8

const (
	OperationCall         Operation = 0
	OperationDelegateCall Operation = 1
)

// Call is a single call within a wallet transaction batch.
type Call struct {
	To        string    `json:"to"`
	Value     string    `json:"value"` // decimal wei
	Data      string    `json:"data"`  // 0x-prefixed hex
	Operation Operation `json:"operation"`
}

// ValueBig parses the call value; nil-safe, defaults to zero.
func (c Call) ValueBig() *big.Int {
	if c.Value == "" {
		return new(big.Int)
	}
	v, ok := new(big.Int).SetString(c.Value, 10)
	if !ok {
		return new(big.Int)
	}
	return v
}

// GasParams are the wallet-level gas fields committed into the transaction
// hash. All default to zero / native token, the degraded-estimate mode.
type GasParams struct {
	SafeTxGas      uint64 `json:"safeTxGas"`
	BaseGas        uint64 `json:"baseGas"`
	GasPrice       string `json:"gasPrice"` // decimal wei
	GasToken       string `json:"gasToken"`
	RefundReceiver string `json:"refundReceiver"`
}

// TransactionStatus is the lifecycle state of a wallet transaction.
type TransactionStatus string

const (
	TransactionStatusProposed TransactionStatus = "PROPOSED"
	TransactionStatusExecuted TransactionStatus = "EXECUTED"
	TransactionStatusFailed   TransactionStatus = "FAILED"
)

// SignatureMethod is how an owner signed the transaction hash.
type SignatureMethod string

const (
	SignatureMethodEthSign      SignatureMethod = "eth_sign"
	SignatureMethodEIP712       SignatureMethod = "eip712"
	SignatureMethodApprovedHash SignatureMethod = "approved_hash"
)

// SignatureRecord is one owner's signature over the transaction hash.
// Immutable once accepted.
type SignatureRecord struct {
	Signer    string          `json:"signer"`
	Signature string          `json:"signature"` // 0x-prefixed 65-byte blob
	Method    SignatureMethod `json:"method"`
	SignedAt  time.Time       `json:"signedAt"`
}

// WalletTransaction is the canonical, hash-committed form of a batch together
// with its collected signatures and lifecycle status. The (wallet, nonce)
// pair is the ordering key: two transactions for the same wallet must never
// share a nonce unless one supersedes the other.
type WalletTransaction struct {
	// Identification
	SafeTxHash string            `json:"safeTxHash"`
	Wallet     string            `json:"wallet"`
	ChainID    string            `json:"chainId"`
	Nonce      uint64            `json:"nonce"`
	Status     TransactionStatus `json:"status"`

	// Canonical payload: the aggregated call as committed into the hash.
	To        string    `json:"to"`
	Value     string    `json:"value"`
	Data      string    `json:"data"`
	Operation Operation `json:"operation"`
	GasParams GasParams `json:"gasParams"`

	// The original batch, preserved for display and estimation.
	Calls []Call `json:"calls"`

	// Signature collection
	Confirmations []SignatureRecord `json:"confirmations"`

	// Execution outcome
	ProposedAt      time.Time        `json:"proposedAt"`
	ExecutedAt      *time.Time       `json:"executedAt,omitempty"`
	ExecutionTxHash string           `json:"executionTxHash,omitempty"`
	ExecutionResult *ExecutionResult `json:"executionResult,omitempty"`
}

// HasSigner reports whether an accepted signature from signer exists.
// Comparison is case-insensitive on the hex address.
func (w *WalletTransaction) HasSigner(signer string) bool {
	for _, c := range w.Confirmations {
		if strings.EqualFold(c.Signer, signer) {
			return true
		}
	}
	return false
}

// AddConfirmation appends a signature record. The caller is responsible for
// the duplicate and ownership checks; this only guards the invariant.
func (w *WalletTransaction) AddConfirmation(rec SignatureRecord) error {
	if w.HasSigner(rec.Signer) {
		return domain.Errorf(domain.ErrDuplicateSignature,
			"signer %s has already confirmed transaction %s", rec.Signer, w.SafeTxHash)
	}
	w.Confirmations = append(w.Confirmations, rec)
	return nil
}

// ExecutionResult is the terminal outcome of a submitted transaction.
type ExecutionResult struct {
	TxHash        string `json:"txHash"`
	Success       bool   `json:"success"`
	GasUsed       uint64 `json:"gasUsed"`
	Confirmations uint64 `json:"confirmations"`
	RevertReason  string `json:"revertReason,omitempty"`
}
