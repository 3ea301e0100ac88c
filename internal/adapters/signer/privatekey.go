package signer

import (
	"crypto/ecdsa"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/usecase"
)

// KeyEnvVar names the environment variable holding the operator key.
const KeyEnvVar = "PALISADE_PRIVATE_KEY"

// PrivateKeySigner signs with a locally held ECDSA key. Error messages and
// logs never include the key itself.
type PrivateKeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewPrivateKeySigner parses a hex-encoded private key.
func NewPrivateKeySigner(hexKey string) (*PrivateKeySigner, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if trimmed == "" {
		return nil, domain.NewError(domain.ErrValidation, "no signing key configured")
	}
	key, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		// Deliberately drop the parse error: it can echo key bytes.
		return nil, domain.NewError(domain.ErrValidation, "signing key is not a valid secp256k1 private key")
	}
	return &PrivateKeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// FromEnv loads the signer key from the environment.
func FromEnv() (*PrivateKeySigner, error) {
	return NewPrivateKeySigner(os.Getenv(KeyEnvVar))
}

// Address returns the signer's account address.
func (s *PrivateKeySigner) Address() common.Address {
	return s.address
}

// SignTransaction signs a chain transaction with the latest signer for the
// given chain.
func (s *PrivateKeySigner) SignTransaction(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return nil, domain.WrapError(domain.ErrValidation, err, "failed to sign transaction")
	}
	return signed, nil
}

// SignDigest signs a raw 32-byte digest. The final byte is the 0/1 recovery
// id as produced by the curve; callers encode it for their protocol.
func (s *PrivateKeySigner) SignDigest(digest common.Hash) ([]byte, error) {
	sig, err := crypto.Sign(digest.Bytes(), s.key)
	if err != nil {
		return nil, domain.WrapError(domain.ErrValidation, err, "failed to sign digest")
	}
	return sig, nil
}

// SignMessage signs the prefixed-message digest of hash (the eth_sign flow).
func (s *PrivateKeySigner) SignMessage(hash common.Hash) ([]byte, error) {
	return s.SignDigest(common.BytesToHash(accounts.TextHash(hash.Bytes())))
}

var _ usecase.TransactionSigner = (*PrivateKeySigner)(nil)
