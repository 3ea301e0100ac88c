package usecase_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/usecase"
)

func TestEstimateTransaction(t *testing.T) {
	ctx := context.Background()

	newEstimator := func(f *fixture) *usecase.EstimateTransaction {
		return usecase.NewEstimateTransaction(f.resolver, f.dialer, f.store, f.log)
	}

	t.Run("returns the simulated gas and current price", func(t *testing.T) {
		f := newFixture(t)
		wallet := &fakeWallet{
			addr: testWalletAddr, threshold: 1,
			owners: []common.Address{f.signer.Address()},
		}
		wallet.install(f.chain)
		hash := proposeOne(t, f)

		result, err := newEstimator(f).Run(ctx, usecase.EstimateTransactionParams{SafeTxHash: hash})
		require.NoError(t, err)

		assert.Equal(t, f.chain.gasUnits, result.SafeTxGas)
		assert.Greater(t, result.BaseGas, uint64(0))
		assert.Equal(t, f.chain.gasPrice.String(), result.GasPrice)
	})

	t.Run("a reverting call surfaces as a failed simulation", func(t *testing.T) {
		f := newFixture(t)
		wallet := &fakeWallet{addr: testWalletAddr, threshold: 1}
		wallet.install(f.chain)
		hash := proposeOne(t, f)

		f.chain.estimateErr = assert.AnError
		_, err := newEstimator(f).Run(ctx, usecase.EstimateTransactionParams{SafeTxHash: hash})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrSimulationFailed))
	})

	t.Run("executed transactions are not estimated", func(t *testing.T) {
		f := newFixture(t)
		wallet := &fakeWallet{
			addr: testWalletAddr, threshold: 1,
			owners: []common.Address{f.signer.Address()},
		}
		wallet.install(f.chain)
		hash := proposeOne(t, f)

		_, err := newSignerUC(f).Run(ctx, usecase.SignTransactionParams{SafeTxHash: hash})
		require.NoError(t, err)
		_, err = newExecutor(f).Run(ctx, usecase.ExecuteTransactionParams{SafeTxHash: hash})
		require.NoError(t, err)

		_, err = newEstimator(f).Run(ctx, usecase.EstimateTransactionParams{SafeTxHash: hash})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrAlreadyExecuted))
	})
}
