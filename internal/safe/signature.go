package safe

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// SignatureLength is the size of one encoded owner signature.
const SignatureLength = 65

// Signature is one owner's 65-byte {r,s,v} signature blob together with the
// recovered or asserted signer.
type Signature struct {
	Signer common.Address
	Bytes  []byte
}

// RecoverEIP712 verifies a signature produced over the raw transaction hash
// and returns the signer. The wallet contract expects v in {27,28} for this
// method.
func RecoverEIP712(txHash common.Hash, sig []byte) (common.Address, error) {
	return recover(txHash.Bytes(), sig, 27)
}

// RecoverEthSign verifies a signature produced over the prefixed message
// digest of the transaction hash. The wallet contract marks this method by
// shifting v up by 4, so valid values are {31,32}.
func RecoverEthSign(txHash common.Hash, sig []byte) (common.Address, error) {
	return recover(accounts.TextHash(txHash.Bytes()), sig, 31)
}

// ApprovedHashSignature builds the synthetic signature marker for an owner
// that pre-approved the hash on-chain: r carries the owner address, s is
// zero, v is 1.
func ApprovedHashSignature(owner common.Address) []byte {
	sig := make([]byte, SignatureLength)
	copy(sig[12:32], owner.Bytes())
	sig[64] = 1
	return sig
}

// EthSignEncode shifts a standard 65-byte secp256k1 signature into the
// wallet's eth_sign encoding (v += 4, normalized to 31/32).
func EthSignEncode(sig []byte) ([]byte, error) {
	if len(sig) != SignatureLength {
		return nil, fmt.Errorf("signature must be %d bytes, got %d", SignatureLength, len(sig))
	}
	out := make([]byte, SignatureLength)
	copy(out, sig)
	out[64] = normalizeV(sig[64]) + 4
	return out, nil
}

// EIP712Encode normalizes a standard signature's recovery id to {27,28}.
func EIP712Encode(sig []byte) ([]byte, error) {
	if len(sig) != SignatureLength {
		return nil, fmt.Errorf("signature must be %d bytes, got %d", SignatureLength, len(sig))
	}
	out := make([]byte, SignatureLength)
	copy(out, sig)
	out[64] = normalizeV(sig[64])
	return out, nil
}

// SortSignatures orders signatures by ascending signer address. The wallet
// contract requires this order on execution; unordered blobs revert.
func SortSignatures(sigs []Signature) {
	sort.Slice(sigs, func(i, j int) bool {
		return bytes.Compare(sigs[i].Signer.Bytes(), sigs[j].Signer.Bytes()) < 0
	})
}

// ConcatSignatures sorts and concatenates signatures into the blob handed to
// the wallet's execution entry point.
func ConcatSignatures(sigs []Signature) []byte {
	sorted := make([]Signature, len(sigs))
	copy(sorted, sigs)
	SortSignatures(sorted)

	blob := make([]byte, 0, len(sorted)*SignatureLength)
	for _, sig := range sorted {
		blob = append(blob, sig.Bytes...)
	}
	return blob
}

func recover(digest, sig []byte, vBase byte) (common.Address, error) {
	if len(sig) != SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", SignatureLength, len(sig))
	}
	v := sig[64]
	if v < vBase || v > vBase+1 {
		return common.Address{}, fmt.Errorf("unexpected recovery id %d", v)
	}

	normalized := make([]byte, SignatureLength)
	copy(normalized, sig)
	normalized[64] = v - vBase

	pub, err := crypto.SigToPub(digest, normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover signer: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

func normalizeV(v byte) byte {
	if v == 0 || v == 1 {
		return v + 27
	}
	return v
}
