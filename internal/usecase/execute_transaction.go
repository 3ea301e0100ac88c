package usecase

import (
	"context"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/palisade-org/palisade/internal/adapters/abi/bindings"
	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/config"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/safe"
)

// ExecuteTransaction submits a fully confirmed transaction through the
// wallet's execution entry point.
type ExecuteTransaction struct {
	cfg      *config.RuntimeConfig
	resolver NetworkResolver
	dialer   ChainDialer
	signer   TransactionSigner
	repo     WalletRepository
	progress ProgressSink
	log      *slog.Logger
}

// NewExecuteTransaction creates the execution use case.
func NewExecuteTransaction(
	cfg *config.RuntimeConfig,
	resolver NetworkResolver,
	dialer ChainDialer,
	signer TransactionSigner,
	repo WalletRepository,
	progress ProgressSink,
	log *slog.Logger,
) *ExecuteTransaction {
	return &ExecuteTransaction{
		cfg:      cfg,
		resolver: resolver,
		dialer:   dialer,
		signer:   signer,
		repo:     repo,
		progress: progress,
		log:      log,
	}
}

// ExecuteTransactionParams identifies the transaction to execute.
type ExecuteTransactionParams struct {
	SafeTxHash string

	// Confirmations overrides the configured confirmation depth when > 0.
	Confirmations uint64
}

// ExecuteTransactionResult carries the terminal outcome.
type ExecuteTransactionResult struct {
	Transaction *models.WalletTransaction
	Result      *models.ExecutionResult
}

// Run checks the threshold, assembles the ordered signature blob, simulates,
// submits and waits for confirmation. The stored record transitions to
// EXECUTED or FAILED exactly once.
func (e *ExecuteTransaction) Run(ctx context.Context, params ExecuteTransactionParams) (*ExecuteTransactionResult, error) {
	tx, err := e.repo.GetWalletTransaction(ctx, params.SafeTxHash)
	if err != nil {
		return nil, err
	}
	if tx.Status == models.TransactionStatusExecuted {
		return nil, domain.Errorf(domain.ErrAlreadyExecuted,
			"transaction %s has already been executed in %s", tx.SafeTxHash, tx.ExecutionTxHash)
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
	threshold, err := fetchThreshold(ctx, client, wallet)
	if err != nil {
		return nil, err
	}
	if uint64(len(tx.Confirmations)) < threshold {
		return nil, domain.Errorf(domain.ErrValidation,
			"transaction %s has %d of %d required confirmations",
			tx.SafeTxHash, len(tx.Confirmations), threshold)
	}

	blob, err := signatureBlob(tx.Confirmations)
	if err != nil {
		return nil, err
	}

	calldata := bindings.NewSafe().PackExecTransaction(
		common.HexToAddress(tx.To),
		valueBig(tx.Value),
		mustHexData(tx.Data),
		uint8(tx.Operation),
		new(big.Int).SetUint64(tx.GasParams.SafeTxGas),
		new(big.Int).SetUint64(tx.GasParams.BaseGas),
		gasPriceBig(tx.GasParams),
		common.HexToAddress(tx.GasParams.GasToken),
		common.HexToAddress(tx.GasParams.RefundReceiver),
		blob,
	)

	e.progress.OnProgress(ctx, ProgressEvent{Stage: "execute", Message: "simulating", Spinner: true})

	from := e.signer.Address()
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, err
	}
	gas, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From: from,
		To:   &wallet,
		Data: calldata,
	})
	if err != nil {
		simErr := domain.WrapError(domain.ErrSimulationFailed, err, "execution does not simulate")
		if reason := safe.RevertReason(err); reason != "" {
			simErr = simErr.WithDetail("revertReason", reason)
		}
		return nil, simErr
	}

	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, err
	}
	raw := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas * gasHeadroomBps / 10000,
		To:       &wallet,
		Data:     calldata,
	})
	signed, err := e.signer.SignTransaction(raw, new(big.Int).SetUint64(chainID.ID))
	if err != nil {
		return nil, err
	}
	if err := client.SendTransaction(ctx, signed); err != nil {
		return nil, err
	}

	depth := e.cfg.Confirmations
	if params.Confirmations > 0 {
		depth = params.Confirmations
	}
	e.progress.OnProgress(ctx, ProgressEvent{
		Stage: "execute", Message: "awaiting confirmations", Spinner: true,
	})
	receipt, err := client.WaitForConfirmations(ctx, signed.Hash(), depth)
	if err != nil {
		return nil, err
	}

	result := &models.ExecutionResult{
		TxHash:        receipt.TxHash.Hex(),
		Success:       receipt.Status == types.ReceiptStatusSuccessful,
		GasUsed:       receipt.GasUsed,
		Confirmations: depth,
	}
	now := time.Now().UTC()
	tx.ExecutedAt = &now
	tx.ExecutionTxHash = result.TxHash
	tx.ExecutionResult = result
	if result.Success {
		tx.Status = models.TransactionStatusExecuted
	} else {
		tx.Status = models.TransactionStatusFailed
		// Replay the call at the inclusion block to pull the revert reason.
		if _, callErr := client.CallContract(ctx, ethereum.CallMsg{
			From: from,
			To:   &wallet,
			Data: calldata,
		}); callErr != nil {
			result.RevertReason = safe.RevertReason(callErr)
		}
	}

	if err := e.repo.UpdateWalletTransaction(ctx, tx); err != nil {
		return nil, err
	}

	e.log.Info("transaction executed",
		"safeTxHash", tx.SafeTxHash, "txHash", result.TxHash, "success", result.Success,
		"gasUsed", result.GasUsed)
	return &ExecuteTransactionResult{Transaction: tx, Result: result}, nil
}

// signatureBlob decodes the collected confirmations into the sorted blob the
// wallet contract verifies.
func signatureBlob(confirmations []models.SignatureRecord) ([]byte, error) {
	sigs := make([]safe.Signature, 0, len(confirmations))
	for _, rec := range confirmations {
		raw, err := hexutil.Decode(rec.Signature)
		if err != nil || len(raw) != safe.SignatureLength {
			return nil, domain.Errorf(domain.ErrInvalidSignature,
				"stored signature from %s is malformed", rec.Signer)
		}
		sigs = append(sigs, safe.Signature{
			Signer: common.HexToAddress(rec.Signer),
			Bytes:  raw,
		})
	}
	return safe.ConcatSignatures(sigs), nil
}

func fetchThreshold(ctx context.Context, client ChainClient, wallet common.Address) (uint64, error) {
	binding := bindings.NewSafe()
	out, err := client.CallContract(ctx, ethereum.CallMsg{
		To:   &wallet,
		Data: binding.PackGetThreshold(),
	})
	if err != nil {
		return 0, domain.WrapError(domain.ErrNetwork, err, "failed to read wallet threshold")
	}
	threshold, err := binding.UnpackGetThreshold(out)
	if err != nil {
		return 0, domain.WrapError(domain.ErrValidation, err,
			"wallet returned an unreadable threshold; is the address a wallet?")
	}
	return threshold.Uint64(), nil
}

func valueBig(s string) *big.Int {
	if s == "" {
		return new(big.Int)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return new(big.Int)
	}
	return v
}

func mustHexData(s string) []byte {
	if s == "" || s == "0x" {
		return nil
	}
	data, err := hexutil.Decode(s)
	if err != nil {
		return nil
	}
	return data
}
