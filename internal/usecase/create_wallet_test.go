package usecase_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palisade-org/palisade/internal/adapters/abi/bindings"
	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/safe"
	"github.com/palisade-org/palisade/internal/usecase"
)

var newProxyAddr = common.HexToAddress("0x3000000000000000000000000000000000000003")

func newWalletCreator(f *fixture) *usecase.CreateWallet {
	return usecase.NewCreateWallet(
		f.cfg, f.resolver, f.dialer, f.signer, f.store, usecase.NopProgress{}, f.log)
}

// emitProxyCreation makes every submitted transaction succeed with a proxy
// creation event for newProxyAddr.
func emitProxyCreation(f *fixture) {
	factory := bindings.NewSafeProxyFactory()
	f.chain.onSend = func(tx *types.Transaction, from common.Address) *types.Receipt {
		data := append(
			common.LeftPadBytes(newProxyAddr.Bytes(), 32),
			common.LeftPadBytes(safe.WalletSingletonAddress.Bytes(), 32)...)
		return &types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			TxHash:      tx.Hash(),
			GasUsed:     250_000,
			BlockNumber: big.NewInt(100),
			Logs: []*types.Log{{
				Address: safe.ProxyFactoryAddress,
				Topics:  []common.Hash{factory.ProxyCreationEventID()},
				Data:    data,
			}},
		}
	}
}

func TestCreateWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions a proxy and reads its address from the event", func(t *testing.T) {
		f := newFixture(t)
		f.chain.code[safe.ProxyFactoryAddress] = []byte{0x60, 0x01}
		emitProxyCreation(f)

		result, err := newWalletCreator(f).Run(ctx, usecase.CreateWalletParams{
			ChainID:   testChain,
			Owners:    []string{f.signer.Address().Hex(), testTargetAddr.Hex()},
			Threshold: 2,
		})
		require.NoError(t, err)

		assert.Equal(t, newProxyAddr.Hex(), result.Wallet)
		assert.Equal(t, uint64(2), result.Threshold)
		assert.Equal(t, uint64(250_000), result.GasUsed)
		assert.Len(t, f.chain.sentTxs(), 1)
	})

	t.Run("owner set and threshold invariants", func(t *testing.T) {
		f := newFixture(t)
		f.chain.code[safe.ProxyFactoryAddress] = []byte{0x60, 0x01}
		creator := newWalletCreator(f)

		cases := []struct {
			name   string
			params usecase.CreateWalletParams
		}{
			{"no owners", usecase.CreateWalletParams{
				ChainID: testChain, Threshold: 1,
			}},
			{"threshold zero", usecase.CreateWalletParams{
				ChainID: testChain, Owners: []string{testTargetAddr.Hex()},
			}},
			{"threshold above owner count", usecase.CreateWalletParams{
				ChainID: testChain, Owners: []string{testTargetAddr.Hex()}, Threshold: 2,
			}},
			{"duplicate owner", usecase.CreateWalletParams{
				ChainID:   testChain,
				Owners:    []string{testTargetAddr.Hex(), testTargetAddr.Hex()},
				Threshold: 1,
			}},
			{"zero-address owner", usecase.CreateWalletParams{
				ChainID:   testChain,
				Owners:    []string{common.Address{}.Hex()},
				Threshold: 1,
			}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := creator.Run(ctx, tc.params)
				require.Error(t, err)
				assert.True(t, domain.IsCode(err, domain.ErrValidation))
			})
		}
		assert.Empty(t, f.chain.sentTxs())
	})

	t.Run("requires deployed infrastructure", func(t *testing.T) {
		f := newFixture(t)
		// No proxy factory code anywhere.

		_, err := newWalletCreator(f).Run(ctx, usecase.CreateWalletParams{
			ChainID:   testChain,
			Owners:    []string{f.signer.Address().Hex()},
			Threshold: 1,
		})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrValidation))
	})
}
