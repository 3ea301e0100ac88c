package config

import (
	"time"
)

// RuntimeConfig is the complete resolved runtime configuration. It is
// injected into use cases; nothing below it reads the environment directly.
type RuntimeConfig struct {
	// Core settings
	DataDir       string
	ArtifactsPath string

	// Execution settings
	Debug         bool
	JSON          bool
	Timeout       time.Duration
	Confirmations uint64

	// Tool server settings
	ListenAddr string

	// Resolved network set, keyed by canonical chain identifier.
	Networks map[string]*Network
}

// Network is one supported chain's configuration. Immutable once loaded.
type Network struct {
	ChainID     uint64            `toml:"chain_id" json:"chainId"`
	Name        string            `toml:"name" json:"name"`
	RPCURL      string            `toml:"rpc_url" json:"rpcUrl"`
	ExplorerURL string            `toml:"explorer_url" json:"explorerUrl,omitempty"`
	Testnet     bool              `toml:"testnet" json:"testnet"`
	Contracts   map[string]string `toml:"contracts" json:"contracts,omitempty"`
}
