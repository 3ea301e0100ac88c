package usecase_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/usecase"
)

func newExecutor(f *fixture) *usecase.ExecuteTransaction {
	return usecase.NewExecuteTransaction(
		f.cfg, f.resolver, f.dialer, f.signer, f.store, usecase.NopProgress{}, f.log)
}

func TestExecuteTransaction(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, threshold uint64) (*fixture, *fakeWallet, string) {
		f := newFixture(t)
		wallet := &fakeWallet{
			addr: testWalletAddr, threshold: threshold,
			owners: []common.Address{f.signer.Address()},
		}
		wallet.install(f.chain)
		return f, wallet, proposeOne(t, f)
	}

	t.Run("executes once the threshold is met", func(t *testing.T) {
		f, _, hash := setup(t, 1)
		_, err := newSignerUC(f).Run(ctx, usecase.SignTransactionParams{SafeTxHash: hash})
		require.NoError(t, err)

		result, err := newExecutor(f).Run(ctx, usecase.ExecuteTransactionParams{SafeTxHash: hash})
		require.NoError(t, err)

		assert.True(t, result.Result.Success)
		assert.Equal(t, models.TransactionStatusExecuted, result.Transaction.Status)
		assert.NotEmpty(t, result.Transaction.ExecutionTxHash)
		assert.NotNil(t, result.Transaction.ExecutedAt)
		assert.Greater(t, result.Result.GasUsed, uint64(0))

		// The terminal state is persisted.
		stored, err := f.store.GetWalletTransaction(ctx, hash)
		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusExecuted, stored.Status)
	})

	t.Run("refuses to execute below the threshold", func(t *testing.T) {
		f, _, hash := setup(t, 2)
		_, err := newSignerUC(f).Run(ctx, usecase.SignTransactionParams{SafeTxHash: hash})
		require.NoError(t, err)

		_, err = newExecutor(f).Run(ctx, usecase.ExecuteTransactionParams{SafeTxHash: hash})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrValidation))
	})

	t.Run("refuses to execute twice", func(t *testing.T) {
		f, _, hash := setup(t, 1)
		_, err := newSignerUC(f).Run(ctx, usecase.SignTransactionParams{SafeTxHash: hash})
		require.NoError(t, err)

		executor := newExecutor(f)
		_, err = executor.Run(ctx, usecase.ExecuteTransactionParams{SafeTxHash: hash})
		require.NoError(t, err)

		_, err = executor.Run(ctx, usecase.ExecuteTransactionParams{SafeTxHash: hash})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrAlreadyExecuted))
	})

	t.Run("a reverting execution is recorded as failed", func(t *testing.T) {
		f, _, hash := setup(t, 1)
		_, err := newSignerUC(f).Run(ctx, usecase.SignTransactionParams{SafeTxHash: hash})
		require.NoError(t, err)

		f.chain.onSend = func(tx *types.Transaction, from common.Address) *types.Receipt {
			return &types.Receipt{
				Status:      types.ReceiptStatusFailed,
				TxHash:      tx.Hash(),
				GasUsed:     21_000,
				BlockNumber: big.NewInt(100),
			}
		}

		result, err := newExecutor(f).Run(ctx, usecase.ExecuteTransactionParams{SafeTxHash: hash})
		require.NoError(t, err)

		assert.False(t, result.Result.Success)
		assert.Equal(t, models.TransactionStatusFailed, result.Transaction.Status)

		stored, err := f.store.GetWalletTransaction(ctx, hash)
		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusFailed, stored.Status)
	})

	t.Run("a failed simulation never submits", func(t *testing.T) {
		f, _, hash := setup(t, 1)
		_, err := newSignerUC(f).Run(ctx, usecase.SignTransactionParams{SafeTxHash: hash})
		require.NoError(t, err)

		f.chain.estimateErr = assert.AnError
		sentBefore := len(f.chain.sentTxs())

		_, err = newExecutor(f).Run(ctx, usecase.ExecuteTransactionParams{SafeTxHash: hash})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrSimulationFailed))
		assert.Len(t, f.chain.sentTxs(), sentBefore)
	})
}
