package usecase

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/palisade-org/palisade/internal/adapters/abi/bindings"
	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/models"
)

// ownerSentinel heads the wallet contract's linked owner list.
var ownerSentinel = common.HexToAddress("0x0000000000000000000000000000000000000001")

// OwnerChangeKind selects the management operation.
type OwnerChangeKind string

const (
	OwnerChangeAdd       OwnerChangeKind = "add"
	OwnerChangeRemove    OwnerChangeKind = "remove"
	OwnerChangeSwap      OwnerChangeKind = "swap"
	OwnerChangeThreshold OwnerChangeKind = "threshold"
)

// ProposeOwnerChange builds owner-management proposals: self-calls on the
// wallet that go through the same hash/sign/execute lifecycle as any other
// transaction.
type ProposeOwnerChange struct {
	resolver NetworkResolver
	dialer   ChainDialer
	propose  *ProposeTransaction
	log      *slog.Logger
}

// NewProposeOwnerChange creates the owner-management use case.
func NewProposeOwnerChange(
	resolver NetworkResolver,
	dialer ChainDialer,
	propose *ProposeTransaction,
	log *slog.Logger,
) *ProposeOwnerChange {
	return &ProposeOwnerChange{
		resolver: resolver,
		dialer:   dialer,
		propose:  propose,
		log:      log,
	}
}

// ProposeOwnerChangeParams describes the management operation.
type ProposeOwnerChangeParams struct {
	ChainID domain.ChainID
	Wallet  string
	Kind    OwnerChangeKind

	// Owner is the subject of add/remove, or the outgoing owner for swap.
	Owner string

	// NewOwner is the incoming owner for swap.
	NewOwner string

	// Threshold is the new threshold for add/remove/threshold. Zero means
	// keep the current threshold (resolved on chain).
	Threshold uint64
}

// Run encodes the management call and records it as a normal proposal for
// the wallet.
func (p *ProposeOwnerChange) Run(ctx context.Context, params ProposeOwnerChangeParams) (*ProposeTransactionResult, error) {
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

	calldata, err := p.encode(ctx, client, wallet, params)
	if err != nil {
		return nil, err
	}

	return p.propose.Run(ctx, ProposeTransactionParams{
		ChainID: params.ChainID,
		Wallet:  params.Wallet,
		Calls: []models.Call{{
			To:        wallet.Hex(),
			Data:      hexutil.Encode(calldata),
			Operation: models.OperationCall,
		}},
	})
}

func (p *ProposeOwnerChange) encode(ctx context.Context, client ChainClient, wallet common.Address, params ProposeOwnerChangeParams) ([]byte, error) {
	binding := bindings.NewSafe()

	threshold := params.Threshold
	if threshold == 0 && params.Kind != OwnerChangeSwap {
		current, err := fetchThreshold(ctx, client, wallet)
		if err != nil {
			return nil, err
		}
		threshold = current
	}

	switch params.Kind {
	case OwnerChangeAdd:
		owner, err := parseAddress(params.Owner, "owner")
		if err != nil {
			return nil, err
		}
		return binding.PackAddOwnerWithThreshold(owner, new(big.Int).SetUint64(threshold)), nil

	case OwnerChangeRemove:
		owner, err := parseAddress(params.Owner, "owner")
		if err != nil {
			return nil, err
		}
		prev, err := p.predecessor(ctx, client, wallet, owner)
		if err != nil {
			return nil, err
		}
		return binding.PackRemoveOwner(prev, owner, new(big.Int).SetUint64(threshold)), nil

	case OwnerChangeSwap:
		oldOwner, err := parseAddress(params.Owner, "outgoing owner")
		if err != nil {
			return nil, err
		}
		newOwner, err := parseAddress(params.NewOwner, "incoming owner")
		if err != nil {
			return nil, err
		}
		prev, err := p.predecessor(ctx, client, wallet, oldOwner)
		if err != nil {
			return nil, err
		}
		return binding.PackSwapOwner(prev, oldOwner, newOwner), nil

	case OwnerChangeThreshold:
		if params.Threshold == 0 {
			return nil, domain.NewError(domain.ErrValidation, "a threshold change needs a new threshold")
		}
		return binding.PackChangeThreshold(new(big.Int).SetUint64(params.Threshold)), nil
	}

	return nil, domain.Errorf(domain.ErrValidation, "unknown owner change kind %q", params.Kind)
}

// predecessor locates the owner preceding the target in the wallet's linked
// owner list. removeOwner and swapOwner both need it.
func (p *ProposeOwnerChange) predecessor(ctx context.Context, client ChainClient, wallet, target common.Address) (common.Address, error) {
	owners, err := fetchOwners(ctx, client, wallet)
	if err != nil {
		return common.Address{}, err
	}
	for i, owner := range owners {
		if owner != target {
			continue
		}
		if i == 0 {
			return ownerSentinel, nil
		}
		return owners[i-1], nil
	}
	return common.Address{}, domain.Errorf(domain.ErrValidation,
		"%s is not an owner of wallet %s", target.Hex(), wallet.Hex())
}
