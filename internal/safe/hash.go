package safe

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	domainSeparatorTypehash = crypto.Keccak256Hash(
		[]byte("EIP712Domain(uint256 chainId,address verifyingContract)"))

	safeTxTypehash = crypto.Keccak256Hash(
		[]byte("SafeTx(address to,uint256 value,bytes data,uint8 operation,uint256 safeTxGas,uint256 baseGas,uint256 gasPrice,address gasToken,address refundReceiver,uint256 nonce)"))
)

// Tx is the canonical wallet transaction payload as committed into the
// structured-data hash. Every field participates in the digest; two
// identical payloads always hash identically.
type Tx struct {
	To             common.Address
	Value          *big.Int
	Data           []byte
	Operation      uint8
	SafeTxGas      *big.Int
	BaseGas        *big.Int
	GasPrice       *big.Int
	GasToken       common.Address
	RefundReceiver common.Address
	Nonce          *big.Int
}

// DomainSeparator derives the EIP-712 domain separator binding a hash to one
// wallet on one chain.
func DomainSeparator(chainID *big.Int, wallet common.Address) common.Hash {
	return crypto.Keccak256Hash(
		domainSeparatorTypehash.Bytes(),
		uint256Word(chainID),
		addressWord(wallet),
	)
}

// TxHash computes the structured-data hash every signer must sign:
// keccak256(0x19 0x01 ‖ domainSeparator ‖ structHash).
func TxHash(chainID *big.Int, wallet common.Address, tx Tx) common.Hash {
	structHash := crypto.Keccak256Hash(
		safeTxTypehash.Bytes(),
		addressWord(tx.To),
		uint256Word(tx.Value),
		crypto.Keccak256(tx.Data),
		uint256Word(big.NewInt(int64(tx.Operation))),
		uint256Word(tx.SafeTxGas),
		uint256Word(tx.BaseGas),
		uint256Word(tx.GasPrice),
		addressWord(tx.GasToken),
		addressWord(tx.RefundReceiver),
		uint256Word(tx.Nonce),
	)

	return crypto.Keccak256Hash(
		[]byte{0x19, 0x01},
		DomainSeparator(chainID, wallet).Bytes(),
		structHash.Bytes(),
	)
}

func uint256Word(n *big.Int) []byte {
	if n == nil {
		n = new(big.Int)
	}
	return common.LeftPadBytes(n.Bytes(), 32)
}

func addressWord(a common.Address) []byte {
	return common.LeftPadBytes(a.Bytes(), 32)
}
