package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/config"
)

// networksFile is the on-disk shape of networks.toml.
type networksFile struct {
	Networks map[string]*config.Network `toml:"networks"`
}

// defaultNetworks carries well-known chain metadata. RPC endpoints always
// come from networks.toml or the environment, never from defaults.
var defaultNetworks = map[uint64]config.Network{
	1:        {ChainID: 1, Name: "mainnet", ExplorerURL: "https://etherscan.io"},
	10:       {ChainID: 10, Name: "optimism", ExplorerURL: "https://optimistic.etherscan.io"},
	100:      {ChainID: 100, Name: "gnosis", ExplorerURL: "https://gnosisscan.io"},
	137:      {ChainID: 137, Name: "polygon", ExplorerURL: "https://polygonscan.com"},
	8453:     {ChainID: 8453, Name: "base", ExplorerURL: "https://basescan.org"},
	42161:    {ChainID: 42161, Name: "arbitrum", ExplorerURL: "https://arbiscan.io"},
	11155111: {ChainID: 11155111, Name: "sepolia", ExplorerURL: "https://sepolia.etherscan.io", Testnet: true},
	31337:    {ChainID: 31337, Name: "anvil", Testnet: true},
}

// LoadNetworks reads networks.toml and merges it over the built-in defaults.
// The result is keyed by canonical chain identifier.
func LoadNetworks(dataDir string) (map[string]*config.Network, error) {
	networks := make(map[string]*config.Network)
	for id, network := range defaultNetworks {
		n := network
		networks[chainKey(id)] = &n
	}

	path := filepath.Join(dataDir, "networks.toml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return networks, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file networksFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for name, network := range file.Networks {
		if network.ChainID == 0 {
			return nil, domain.Errorf(domain.ErrValidation,
				"network %q in %s has no chain_id", name, path)
		}
		if network.Name == "" {
			network.Name = name
		}
		key := chainKey(network.ChainID)
		if base, ok := networks[key]; ok {
			merged := *base
			merged.Name = network.Name
			merged.RPCURL = network.RPCURL
			if network.ExplorerURL != "" {
				merged.ExplorerURL = network.ExplorerURL
			}
			merged.Testnet = merged.Testnet || network.Testnet
			merged.Contracts = network.Contracts
			networks[key] = &merged
		} else {
			networks[key] = network
		}
	}

	return networks, nil
}

func chainKey(id uint64) string {
	return fmt.Sprintf("%s:%d", domain.NamespaceEIP155, id)
}
