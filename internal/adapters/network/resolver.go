package network

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/config"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/usecase"
)

// Resolver is the network/contract registry. Network configurations are
// immutable once loaded; the contract-address cache is the only mutable
// state and is invalidated explicitly, never silently expired.
type Resolver struct {
	networks map[string]*config.Network

	mu        sync.RWMutex
	contracts map[string]models.ContractAddresses

	log *slog.Logger
}

// NewResolver creates a resolver over the loaded network set.
func NewResolver(cfg *config.RuntimeConfig, log *slog.Logger) *Resolver {
	networks := make(map[string]*config.Network, len(cfg.Networks))
	for id, network := range cfg.Networks {
		networks[id] = network
	}
	return &Resolver{
		networks:  networks,
		contracts: make(map[string]models.ContractAddresses),
		log:       log,
	}
}

// Resolve returns the configuration for a chain. A chain without an RPC
// endpoint is not usable and reports NetworkNotSupported.
func (r *Resolver) Resolve(ctx context.Context, chainID domain.ChainID) (*config.Network, error) {
	network, ok := r.networks[chainID.String()]
	if !ok || network.RPCURL == "" {
		return nil, domain.Errorf(domain.ErrNetworkNotSupported,
			"no RPC endpoint configured for chain %s", chainID)
	}
	return network, nil
}

// CacheContracts records the resolved contract addresses for a chain.
func (r *Resolver) CacheContracts(chainID domain.ChainID, contracts models.ContractAddresses) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contracts[chainID.String()] = contracts
	r.log.Debug("cached contract addresses", "chain", chainID.String())
}

// CachedContracts returns previously cached contract addresses for a chain.
func (r *Resolver) CachedContracts(chainID domain.ChainID) (models.ContractAddresses, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	contracts, ok := r.contracts[chainID.String()]
	return contracts, ok
}

// ClearCache drops all cached contract addresses.
func (r *Resolver) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contracts = make(map[string]models.ContractAddresses)
	r.log.Debug("cleared contract address cache")
}

// GetNetworks lists configured chains in stable order.
func (r *Resolver) GetNetworks(ctx context.Context) []domain.ChainID {
	ids := lo.FilterMap(lo.Keys(r.networks), func(key string, _ int) (domain.ChainID, bool) {
		id, err := domain.ParseChainID(key)
		return id, err == nil
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i].ID < ids[j].ID })
	return ids
}

var _ usecase.NetworkResolver = (*Resolver)(nil)
