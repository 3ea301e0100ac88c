package usecase

import (
	"context"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/config"
	"github.com/palisade-org/palisade/internal/domain/models"
)

// ListNetworks reports the supported chains and their deployment state.
type ListNetworks struct {
	cfg      *config.RuntimeConfig
	resolver NetworkResolver
	repo     WalletRepository
}

// NewListNetworks creates the network listing use case.
func NewListNetworks(cfg *config.RuntimeConfig, resolver NetworkResolver, repo WalletRepository) *ListNetworks {
	return &ListNetworks{cfg: cfg, resolver: resolver, repo: repo}
}

// NetworkStatus is one supported chain's configuration and deployment state.
type NetworkStatus struct {
	ChainID     domain.ChainID
	Name        string
	RPCURL      string
	ExplorerURL string
	Testnet     bool

	// Deployed reports whether a complete infrastructure record exists.
	Deployed bool

	// Contracts holds the recorded addresses when Deployed.
	Contracts models.ContractAddresses
}

// ListNetworksResult carries the status of every configured chain.
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// Run lists configured chains in ascending chain-id order.
func (l *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	result := &ListNetworksResult{}
	for _, chainID := range l.resolver.GetNetworks(ctx) {
		network, err := l.resolver.Resolve(ctx, chainID)
		if err != nil {
			continue
		}

		status := NetworkStatus{
			ChainID:     chainID,
			Name:        network.Name,
			RPCURL:      network.RPCURL,
			ExplorerURL: network.ExplorerURL,
			Testnet:     network.Testnet,
		}
		if record, err := l.repo.GetNetworkDeployment(ctx, chainID); err == nil {
			status.Deployed = record.Complete()
			status.Contracts = record.Contracts
		}
		result.Networks = append(result.Networks, status)
	}
	return result, nil
}
