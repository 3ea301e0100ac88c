package signer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/usecase"
)

// Unconfigured stands in when no operator key is set. Read-only operations
// keep working; anything that needs a signature fails with a clear message
// instead of a nil dereference at dial time.
type Unconfigured struct{}

func (Unconfigured) Address() common.Address {
	return common.Address{}
}

func (Unconfigured) SignTransaction(*types.Transaction, *big.Int) (*types.Transaction, error) {
	return nil, errNoKey()
}

func (Unconfigured) SignDigest(common.Hash) ([]byte, error) {
	return nil, errNoKey()
}

func (Unconfigured) SignMessage(common.Hash) ([]byte, error) {
	return nil, errNoKey()
}

func errNoKey() error {
	return domain.Errorf(domain.ErrValidation,
		"no operator key configured, set %s", KeyEnvVar)
}

var _ usecase.TransactionSigner = Unconfigured{}
