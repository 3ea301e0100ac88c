package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/safe"
)

// execOverheadGas approximates the wallet's fixed execution overhead on top
// of the inner call: signature checks, nonce bump and event emission.
const execOverheadGas = 35000

// EstimateTransaction simulates a proposed transaction's inner call and
// derives suggested gas parameters without touching chain state.
type EstimateTransaction struct {
	resolver NetworkResolver
	dialer   ChainDialer
	repo     WalletRepository
	log      *slog.Logger
}

// NewEstimateTransaction creates the estimation use case.
func NewEstimateTransaction(
	resolver NetworkResolver,
	dialer ChainDialer,
	repo WalletRepository,
	log *slog.Logger,
) *EstimateTransaction {
	return &EstimateTransaction{
		resolver: resolver,
		dialer:   dialer,
		repo:     repo,
		log:      log,
	}
}

// EstimateTransactionParams identifies the proposal to estimate.
type EstimateTransactionParams struct {
	SafeTxHash string
}

// EstimateTransactionResult carries the simulation outcome.
type EstimateTransactionResult struct {
	Transaction *models.WalletTransaction

	// SafeTxGas is the estimated gas for the inner call.
	SafeTxGas uint64

	// BaseGas is the estimated fixed wallet overhead.
	BaseGas uint64

	// GasPrice is the node's current suggestion in wei.
	GasPrice string
}

// Run simulates the canonical call as issued by the wallet itself. A revert
// surfaces as SimulationFailed with the decoded reason attached.
func (e *EstimateTransaction) Run(ctx context.Context, params EstimateTransactionParams) (*EstimateTransactionResult, error) {
	tx, err := e.repo.GetWalletTransaction(ctx, params.SafeTxHash)
	if err != nil {
		return nil, err
	}
	if tx.Status == models.TransactionStatusExecuted {
		return nil, domain.Errorf(domain.ErrAlreadyExecuted,
			"transaction %s has already been executed", tx.SafeTxHash)
	}

	chainID, err := domain.ParseChainID(tx.ChainID)
	if err != nil {
		return nil, err
	}
	network, err := e.resolver.Resolve(ctx, chainID)
	if err != nil {
		return nil, err
	}
	client, err := e.dialer.Dial(ctx, network)
	if err != nil {
		return nil, err
	}

	wallet := common.HexToAddress(tx.Wallet)
	to := common.HexToAddress(tx.To)

	// Delegatecalls execute in the wallet's own context; estimating them as
	// a plain call from the wallet is the closest stateless approximation.
	msg := ethereum.CallMsg{
		From:  wallet,
		To:    &to,
		Value: valueBig(tx.Value),
		Data:  mustHexData(tx.Data),
	}
	innerGas, err := client.EstimateGas(ctx, msg)
	if err != nil {
		simErr := domain.WrapError(domain.ErrSimulationFailed, err,
			"transaction does not simulate against current state")
		if reason := safe.RevertReason(err); reason != "" {
			simErr = simErr.WithDetail("revertReason", reason)
		}
		return nil, simErr
	}

	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, err
	}

	result := &EstimateTransactionResult{
		Transaction: tx,
		SafeTxGas:   innerGas,
		BaseGas:     execOverheadGas + signatureGas(len(tx.Confirmations)),
		GasPrice:    gasPrice.String(),
	}
	e.log.Debug("transaction estimated",
		"safeTxHash", tx.SafeTxHash, "safeTxGas", result.SafeTxGas, "baseGas", result.BaseGas)
	return result, nil
}

// signatureGas approximates per-signature verification cost. Threshold-many
// ecrecover calls dominate; approved hashes are cheaper but bounding from
// above keeps executions from running out of gas.
func signatureGas(n int) uint64 {
	if n == 0 {
		n = 1
	}
	return uint64(n) * 8000
}
