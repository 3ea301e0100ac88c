package usecase_test

import (
	"context"
	"encoding/json"
	"math/big"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palisade-org/palisade/internal/adapters/network"
	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/safe"
	"github.com/palisade-org/palisade/internal/usecase"
)

func writeArtifacts(t *testing.T, path string) {
	t.Helper()
	bundle := map[string]string{
		"singletonFactory": "0x60016000f3",
		"walletSingleton":  "0x60026000f3",
		"proxyFactory":     "0x60036000f3",
		"fallbackHandler":  "0x60046000f3",
		"batchHelper":      "0x60056000f3",
	}
	data, err := json.Marshal(bundle)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func newDeployer(f *fixture) *usecase.DeployInfrastructure {
	return usecase.NewDeployInfrastructure(
		f.cfg, f.resolver, f.dialer, f.signer, f.store, usecase.NopProgress{}, f.log)
}

func fundOperator(f *fixture) {
	f.chain.balances[f.signer.Address()] = new(big.Int).Mul(big.NewInt(1e18), big.NewInt(100))
}

func TestDeployInfrastructure(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions the full set on an empty chain", func(t *testing.T) {
		f := newFixture(t)
		writeArtifacts(t, f.cfg.ArtifactsPath)
		fundOperator(f)

		// The factory does not exist yet; it is bootstrapped with a creation
		// transaction, and everything else is placed through it.
		f.chain.deployThroughFactory()

		result, err := newDeployer(f).Run(ctx, usecase.DeployInfrastructureParams{ChainID: testChain})
		require.NoError(t, err)

		record := result.Record
		assert.True(t, record.Complete())
		assert.Len(t, record.Deployments, 5)
		assert.Equal(t, testChain.String(), record.ChainID)

		// One bootstrap plus four placements.
		assert.Len(t, f.chain.sentTxs(), 5)

		// Gas accounting holds.
		require.NoError(t, record.Validate())
		assert.Greater(t, record.TotalGasUsed, uint64(0))

		// The record survives a reload.
		stored, err := f.store.GetNetworkDeployment(ctx, testChain)
		require.NoError(t, err)
		assert.Equal(t, record.Contracts, stored.Contracts)
	})

	t.Run("second run is idempotent and submits nothing", func(t *testing.T) {
		f := newFixture(t)
		writeArtifacts(t, f.cfg.ArtifactsPath)
		fundOperator(f)
		f.chain.deployThroughFactory()

		deployer := newDeployer(f)
		first, err := deployer.Run(ctx, usecase.DeployInfrastructureParams{ChainID: testChain})
		require.NoError(t, err)
		sentAfterFirst := len(f.chain.sentTxs())

		second, err := deployer.Run(ctx, usecase.DeployInfrastructureParams{ChainID: testChain})
		require.NoError(t, err)

		assert.Equal(t, first.Record.Contracts, second.Record.Contracts)
		assert.Equal(t, first.Record.TotalGasUsed, second.Record.TotalGasUsed)
		assert.Len(t, f.chain.sentTxs(), sentAfterFirst)
	})

	t.Run("contracts already on chain are recorded with zero gas", func(t *testing.T) {
		f := newFixture(t)
		writeArtifacts(t, f.cfg.ArtifactsPath)
		fundOperator(f)

		// Canonical factory pre-deployed, as on a real public chain.
		f.chain.code[safe.SingletonFactoryAddress] = []byte{0x60, 0x01}
		f.chain.deployThroughFactory()

		result, err := newDeployer(f).Run(ctx, usecase.DeployInfrastructureParams{ChainID: testChain})
		require.NoError(t, err)

		factory, ok := result.Record.Find(models.ContractSingletonFactory)
		require.True(t, ok)
		assert.True(t, factory.AlreadyDeployed)
		assert.Zero(t, factory.GasUsed)
		assert.Equal(t, safe.SingletonFactoryAddress.Hex(), factory.Address)

		// Only the four placements were submitted.
		assert.Len(t, f.chain.sentTxs(), 4)
	})

	t.Run("insufficient balance fails before any placement", func(t *testing.T) {
		f := newFixture(t)
		writeArtifacts(t, f.cfg.ArtifactsPath)
		f.chain.code[safe.SingletonFactoryAddress] = []byte{0x60, 0x01}
		// Operator balance stays zero.

		_, err := newDeployer(f).Run(ctx, usecase.DeployInfrastructureParams{ChainID: testChain})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrInsufficientBalance))
		assert.Empty(t, f.chain.sentTxs())
	})

	t.Run("missing artifacts fail before any network traffic", func(t *testing.T) {
		f := newFixture(t)
		// No artifacts file written.

		_, err := newDeployer(f).Run(ctx, usecase.DeployInfrastructureParams{ChainID: testChain})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrArtifactsNotFound))
		assert.Empty(t, f.chain.sentTxs())
	})

	t.Run("unknown chain is rejected", func(t *testing.T) {
		f := newFixture(t)
		writeArtifacts(t, f.cfg.ArtifactsPath)

		_, err := newDeployer(f).Run(ctx, usecase.DeployInfrastructureParams{
			ChainID: domain.MustChainID("eip155:424242"),
		})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrNetworkNotSupported))
	})

	t.Run("chain id mismatch is rejected", func(t *testing.T) {
		f := newFixture(t)
		writeArtifacts(t, f.cfg.ArtifactsPath)
		other := domain.MustChainID("eip155:10")
		f.cfg.Networks[other.String()] = f.cfg.Networks[testChain.String()]
		f.resolver = network.NewResolver(f.cfg, f.log)

		_, err := newDeployer(f).Run(ctx, usecase.DeployInfrastructureParams{ChainID: other})
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrNetwork))
	})
}
