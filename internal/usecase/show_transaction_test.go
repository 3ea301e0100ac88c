package usecase_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/usecase"
)

func TestShowTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("reports confirmation progress against the live threshold", func(t *testing.T) {
		f := newFixture(t)
		wallet := &fakeWallet{
			addr: testWalletAddr, nonce: 2, threshold: 2,
			owners: []common.Address{f.signer.Address(), testTargetAddr},
		}
		wallet.install(f.chain)
		hash := proposeOne(t, f)

		show := usecase.NewShowTransaction(f.resolver, f.dialer, f.store)

		before, err := show.Run(ctx, hash)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), before.Threshold)
		assert.False(t, before.Executable)
		assert.Equal(t, uint64(2), before.WalletNonce)

		_, err = newSignerUC(f).Run(ctx, usecase.SignTransactionParams{SafeTxHash: hash})
		require.NoError(t, err)

		after, err := show.Run(ctx, hash)
		require.NoError(t, err)
		assert.Len(t, after.Transaction.Confirmations, 1)
		assert.False(t, after.Executable) // still one short
	})

	t.Run("unknown hash reports not found", func(t *testing.T) {
		f := newFixture(t)
		show := usecase.NewShowTransaction(f.resolver, f.dialer, f.store)
		_, err := show.Run(ctx, "0x1111111111111111111111111111111111111111111111111111111111111111")
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrNotFound))
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	wallet := &fakeWallet{addr: testWalletAddr, nonce: 0, threshold: 1}
	wallet.install(f.chain)

	proposer := newProposer(f)
	for i := uint64(0); i < 3; i++ {
		nonce := i
		_, err := proposer.Run(ctx, usecase.ProposeTransactionParams{
			ChainID: testChain,
			Wallet:  testWalletAddr.Hex(),
			Calls:   []models.Call{{To: testTargetAddr.Hex(), Data: "0x01"}},
			Nonce:   &nonce,
		})
		require.NoError(t, err)
	}

	list := usecase.NewListTransactions(f.store)

	all, err := list.Run(ctx, usecase.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byWallet, err := list.Run(ctx, usecase.TransactionFilter{Wallet: testWalletAddr.Hex()})
	require.NoError(t, err)
	assert.Len(t, byWallet, 3)

	byStatus, err := list.Run(ctx, usecase.TransactionFilter{Status: models.TransactionStatusExecuted})
	require.NoError(t, err)
	assert.Empty(t, byStatus)

	otherChain, err := list.Run(ctx, usecase.TransactionFilter{ChainID: "eip155:1"})
	require.NoError(t, err)
	assert.Empty(t, otherChain)
}
