package safe

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hashTestWallet = common.HexToAddress("0x1000000000000000000000000000000000000001")
	hashTestTarget = common.HexToAddress("0x2000000000000000000000000000000000000002")
)

func baseTx() Tx {
	return Tx{
		To:        hashTestTarget,
		Value:     big.NewInt(1),
		Data:      []byte{0xde, 0xad},
		Operation: 0,
		SafeTxGas: new(big.Int),
		BaseGas:   new(big.Int),
		GasPrice:  new(big.Int),
		Nonce:     big.NewInt(5),
	}
}

func TestTxHashDeterminism(t *testing.T) {
	chainID := big.NewInt(1)

	first := TxHash(chainID, hashTestWallet, baseTx())
	second := TxHash(chainID, hashTestWallet, baseTx())
	assert.Equal(t, first, second, "identical payloads must hash identically")
}

func TestTxHashBindsEveryField(t *testing.T) {
	chainID := big.NewInt(1)
	reference := TxHash(chainID, hashTestWallet, baseTx())

	mutations := map[string]func(*Tx){
		"to":             func(tx *Tx) { tx.To = hashTestWallet },
		"value":          func(tx *Tx) { tx.Value = big.NewInt(2) },
		"data":           func(tx *Tx) { tx.Data = []byte{0xbe, 0xef} },
		"operation":      func(tx *Tx) { tx.Operation = 1 },
		"safeTxGas":      func(tx *Tx) { tx.SafeTxGas = big.NewInt(100) },
		"baseGas":        func(tx *Tx) { tx.BaseGas = big.NewInt(100) },
		"gasPrice":       func(tx *Tx) { tx.GasPrice = big.NewInt(100) },
		"gasToken":       func(tx *Tx) { tx.GasToken = hashTestTarget },
		"refundReceiver": func(tx *Tx) { tx.RefundReceiver = hashTestTarget },
		"nonce":          func(tx *Tx) { tx.Nonce = big.NewInt(6) },
	}
	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			tx := baseTx()
			mutate(&tx)
			assert.NotEqual(t, reference, TxHash(chainID, hashTestWallet, tx),
				"changing %s must change the hash", field)
		})
	}
}

func TestTxHashBindsDomain(t *testing.T) {
	tx := baseTx()

	onMainnet := TxHash(big.NewInt(1), hashTestWallet, tx)
	onOptimism := TxHash(big.NewInt(10), hashTestWallet, tx)
	assert.NotEqual(t, onMainnet, onOptimism, "the chain id is part of the domain")

	otherWallet := TxHash(big.NewInt(1), hashTestTarget, tx)
	assert.NotEqual(t, onMainnet, otherWallet, "the wallet address is part of the domain")
}

func TestTxHashZeroValue(t *testing.T) {
	// A zero transaction still hashes; nil big.Int fields read as zero.
	hash := TxHash(big.NewInt(1), common.Address{}, Tx{})
	require.Len(t, hash, 32)
	assert.NotEqual(t, common.Hash{}, hash)

	separator := DomainSeparator(big.NewInt(1), common.Address{})
	assert.NotEqual(t, common.Hash{}, separator)
	assert.NotEqual(t, separator, DomainSeparator(big.NewInt(2), common.Address{}))
}
