package usecase

import (
	"context"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/palisade-org/palisade/internal/adapters/abi/bindings"
	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/safe"
)

// ProposeTransaction builds the canonical form of a call batch for a wallet,
// computes its hash and records it with an empty signature set.
type ProposeTransaction struct {
	resolver NetworkResolver
	dialer   ChainDialer
	repo     WalletRepository
	log      *slog.Logger

	// walletLocks serializes nonce-read → build → persist per wallet so two
	// concurrent proposals never claim the same fetched nonce.
	walletLocks sync.Map // "<chainID>/<wallet>" -> *sync.Mutex
}

// NewProposeTransaction creates the proposal use case.
func NewProposeTransaction(
	resolver NetworkResolver,
	dialer ChainDialer,
	repo WalletRepository,
	log *slog.Logger,
) *ProposeTransaction {
	return &ProposeTransaction{
		resolver: resolver,
		dialer:   dialer,
		repo:     repo,
		log:      log,
	}
}

// ProposeTransactionParams describes the batch to propose.
type ProposeTransactionParams struct {
	ChainID domain.ChainID
	Wallet  string
	Calls   []models.Call

	// Nonce overrides the wallet's current on-chain nonce when set. Used to
	// queue ahead or to build a superseding proposal.
	Nonce *uint64

	GasParams models.GasParams
}

// ProposeTransactionResult carries the recorded proposal.
type ProposeTransactionResult struct {
	Transaction *models.WalletTransaction
}

// Run validates the batch, aggregates it into its canonical single-call form,
// hashes it and persists the proposal.
func (p *ProposeTransaction) Run(ctx context.Context, params ProposeTransactionParams) (*ProposeTransactionResult, error) {
	if err := validateBatch(params.Calls); err != nil {
		return nil, err
	}
	wallet, err := parseAddress(params.Wallet, "wallet")
	if err != nil {
		return nil, err
	}

	network, err := p.resolver.Resolve(ctx, params.ChainID)
	if err != nil {
		return nil, err
	}
	client, err := p.dialer.Dial(ctx, network)
	if err != nil {
		return nil, err
	}

	lock := p.lockFor(params.ChainID, wallet)
	lock.Lock()
	defer lock.Unlock()

	nonce, err := p.resolveNonce(ctx, client, params.ChainID, wallet, params.Nonce)
	if err != nil {
		return nil, err
	}

	to, value, data, operation, err := p.aggregate(params.ChainID, params.Calls)
	if err != nil {
		return nil, err
	}

	chainID := new(big.Int).SetUint64(params.ChainID.ID)
	hash := safe.TxHash(chainID, wallet, safe.Tx{
		To:             to,
		Value:          value,
		Data:           data,
		Operation:      uint8(operation),
		SafeTxGas:      new(big.Int).SetUint64(params.GasParams.SafeTxGas),
		BaseGas:        new(big.Int).SetUint64(params.GasParams.BaseGas),
		GasPrice:       gasPriceBig(params.GasParams),
		GasToken:       common.HexToAddress(params.GasParams.GasToken),
		RefundReceiver: common.HexToAddress(params.GasParams.RefundReceiver),
		Nonce:          new(big.Int).SetUint64(nonce),
	})

	tx := &models.WalletTransaction{
		SafeTxHash: hash.Hex(),
		Wallet:     wallet.Hex(),
		ChainID:    params.ChainID.String(),
		Nonce:      nonce,
		Status:     models.TransactionStatusProposed,
		To:         to.Hex(),
		Value:      value.String(),
		Data:       hexutil.Encode(data),
		Operation:  operation,
		GasParams:  params.GasParams,
		Calls:      params.Calls,
		ProposedAt: time.Now().UTC(),
	}
	if err := p.repo.SaveWalletTransaction(ctx, tx); err != nil {
		return nil, err
	}

	p.log.Info("transaction proposed",
		"wallet", tx.Wallet, "chain", tx.ChainID, "nonce", nonce, "safeTxHash", tx.SafeTxHash)
	return &ProposeTransactionResult{Transaction: tx}, nil
}

// aggregate reduces the batch to the single (to, value, data, operation)
// tuple that enters the hash. One call passes through untouched; several are
// packed into one delegatecall to the batch helper.
func (p *ProposeTransaction) aggregate(chainID domain.ChainID, calls []models.Call) (common.Address, *big.Int, []byte, models.Operation, error) {
	if len(calls) == 1 {
		call := calls[0]
		to, err := parseAddress(call.To, "call target")
		if err != nil {
			return common.Address{}, nil, nil, 0, err
		}
		data, err := parseHexData(call.Data)
		if err != nil {
			return common.Address{}, nil, nil, 0, err
		}
		return to, call.ValueBig(), data, call.Operation, nil
	}

	batch := make([]safe.BatchCall, 0, len(calls))
	for _, call := range calls {
		to, err := parseAddress(call.To, "call target")
		if err != nil {
			return common.Address{}, nil, nil, 0, err
		}
		data, err := parseHexData(call.Data)
		if err != nil {
			return common.Address{}, nil, nil, 0, err
		}
		batch = append(batch, safe.BatchCall{
			Operation: uint8(call.Operation),
			To:        to,
			Value:     call.ValueBig(),
			Data:      data,
		})
	}

	helper := safe.BatchHelperAddress
	if contracts, ok := p.resolver.CachedContracts(chainID); ok {
		if addr := contracts.Get(models.ContractBatchHelper); addr != "" {
			helper = common.HexToAddress(addr)
		}
	}

	calldata := bindings.NewMultiSendCallOnly().PackMultiSend(safe.EncodeBatch(batch))
	return helper, new(big.Int), calldata, models.OperationDelegateCall, nil
}

// resolveNonce picks the nonce for a new proposal unless the caller pinned
// one. The wallet's on-chain nonce only advances on execution, so pending
// proposals must be counted too: the result is the on-chain nonce or one past
// the highest PROPOSED record for this wallet, whichever is larger. Callers
// hold the wallet lock, making read-and-claim atomic against concurrent
// proposals.
func (p *ProposeTransaction) resolveNonce(ctx context.Context, client ChainClient, chainID domain.ChainID, wallet common.Address, override *uint64) (uint64, error) {
	if override != nil {
		return *override, nil
	}

	binding := bindings.NewSafe()
	out, err := client.CallContract(ctx, ethereum.CallMsg{
		To:   &wallet,
		Data: binding.PackNonce(),
	})
	if err != nil {
		return 0, domain.WrapError(domain.ErrNetwork, err, "failed to read wallet nonce")
	}
	chainNonce, err := binding.UnpackNonce(out)
	if err != nil {
		return 0, domain.WrapError(domain.ErrValidation, err,
			"wallet returned an unreadable nonce; is the address a wallet?")
	}
	nonce := chainNonce.Uint64()

	pending, err := p.repo.ListWalletTransactions(ctx, TransactionFilter{
		ChainID: chainID.String(),
		Wallet:  wallet.Hex(),
		Status:  models.TransactionStatusProposed,
	})
	if err != nil {
		return 0, err
	}
	for _, tx := range pending {
		if tx.Nonce >= nonce {
			nonce = tx.Nonce + 1
		}
	}
	return nonce, nil
}

func (p *ProposeTransaction) lockFor(chainID domain.ChainID, wallet common.Address) *sync.Mutex {
	key := chainID.String() + "/" + wallet.Hex()
	actual, _ := p.walletLocks.LoadOrStore(key, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

// validateBatch rejects empty batches and delegatecall entries. Batch entries
// run through the call-only helper, which refuses delegatecalls on chain;
// they are rejected here before a hash is ever computed.
func validateBatch(calls []models.Call) error {
	if len(calls) == 0 {
		return domain.NewError(domain.ErrValidation, "a proposal needs at least one call")
	}
	if len(calls) > 1 {
		for i, call := range calls {
			if call.Operation != models.OperationCall {
				return domain.Errorf(domain.ErrValidation,
					"batch entry %d requests a delegatecall; batches are call-only", i)
			}
		}
	}
	for i, call := range calls {
		if call.Operation != models.OperationCall && call.Operation != models.OperationDelegateCall {
			return domain.Errorf(domain.ErrValidation, "call %d has unknown operation %d", i, call.Operation)
		}
		if call.Value != "" {
			if _, ok := new(big.Int).SetString(call.Value, 10); !ok {
				return domain.Errorf(domain.ErrValidation, "call %d has a non-decimal value %q", i, call.Value)
			}
		}
	}
	return nil
}

func parseAddress(s, what string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, domain.Errorf(domain.ErrValidation, "%s %q is not a valid address", what, s)
	}
	return common.HexToAddress(s), nil
}

func parseHexData(s string) ([]byte, error) {
	if s == "" || s == "0x" {
		return nil, nil
	}
	data, err := hexutil.Decode(s)
	if err != nil {
		return nil, domain.Errorf(domain.ErrValidation, "call data %q is not valid hex", s)
	}
	return data, nil
}

func gasPriceBig(g models.GasParams) *big.Int {
	if g.GasPrice == "" {
		return new(big.Int)
	}
	v, ok := new(big.Int).SetString(g.GasPrice, 10)
	if !ok {
		return new(big.Int)
	}
	return v
}
