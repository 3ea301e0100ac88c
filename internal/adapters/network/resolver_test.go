package network

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/config"
	"github.com/palisade-org/palisade/internal/domain/models"
)

func newTestResolver() *Resolver {
	cfg := &config.RuntimeConfig{
		Networks: map[string]*config.Network{
			"eip155:31337": {ChainID: 31337, Name: "anvil", RPCURL: "http://localhost:8545", Testnet: true},
			"eip155:1":     {ChainID: 1, Name: "mainnet"},
		},
	}
	return NewResolver(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver()

	t.Run("configured chain resolves", func(t *testing.T) {
		network, err := r.Resolve(ctx, domain.MustChainID("eip155:31337"))
		require.NoError(t, err)
		assert.Equal(t, "anvil", network.Name)
	})

	t.Run("chain without RPC endpoint is not supported", func(t *testing.T) {
		_, err := r.Resolve(ctx, domain.MustChainID("eip155:1"))
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrNetworkNotSupported))
	})

	t.Run("unknown chain is not supported", func(t *testing.T) {
		_, err := r.Resolve(ctx, domain.MustChainID("eip155:424242"))
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrNetworkNotSupported))
	})
}

func TestContractCache(t *testing.T) {
	r := newTestResolver()
	chainID := domain.MustChainID("eip155:31337")

	_, ok := r.CachedContracts(chainID)
	assert.False(t, ok)

	contracts := models.ContractAddresses{ProxyFactory: "0xa6B71E26C5e0845f74c812102Ca7114b6a896AB2"}
	r.CacheContracts(chainID, contracts)

	cached, ok := r.CachedContracts(chainID)
	require.True(t, ok)
	assert.Equal(t, contracts, cached)

	r.ClearCache()
	_, ok = r.CachedContracts(chainID)
	assert.False(t, ok)
}

func TestGetNetworks(t *testing.T) {
	ids := newTestResolver().GetNetworks(context.Background())
	require.Len(t, ids, 2)
	assert.Equal(t, uint64(1), ids[0].ID, "ascending chain-id order")
	assert.Equal(t, uint64(31337), ids[1].ID)
}
