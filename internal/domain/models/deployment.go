package models

import (
	"time"

	"github.com/palisade-org/palisade/internal/domain"
)

// ContractName identifies one of the canonical infrastructure contracts.
type ContractName string

const (
	ContractSingletonFactory ContractName = "singletonFactory"
	ContractWalletSingleton  ContractName = "walletSingleton"
	ContractProxyFactory     ContractName = "proxyFactory"
	ContractFallbackHandler  ContractName = "fallbackHandler"
	ContractBatchHelper      ContractName = "batchHelper"
)

// CanonicalContracts lists the infrastructure set in deployment order. The
// singleton factory comes first; everything else is placed through it.
var CanonicalContracts = []ContractName{
	ContractSingletonFactory,
	ContractWalletSingleton,
	ContractProxyFactory,
	ContractFallbackHandler,
	ContractBatchHelper,
}

// ContractDeployment records the provisioning of a single contract.
// Immutable once created. A contract found already on-chain is recorded with
// zero gas and a synthetic transaction reference.
type ContractDeployment struct {
	Name            ContractName `json:"name"`
	Address         string       `json:"address"`
	TxHash          string       `json:"txHash"`
	GasUsed         uint64       `json:"gasUsed"`
	AlreadyDeployed bool         `json:"alreadyDeployed,omitempty"`
}

// ContractAddresses holds the five canonical addresses for a chain.
type ContractAddresses struct {
	SingletonFactory string `json:"singletonFactory"`
	WalletSingleton  string `json:"walletSingleton"`
	ProxyFactory     string `json:"proxyFactory"`
	FallbackHandler  string `json:"fallbackHandler"`
	BatchHelper      string `json:"batchHelper"`
}

// Get returns the address recorded for a canonical contract name.
func (c ContractAddresses) Get(name ContractName) string {
	switch name {
	case ContractSingletonFactory:
		return c.SingletonFactory
	case ContractWalletSingleton:
		return c.WalletSingleton
	case ContractProxyFactory:
		return c.ProxyFactory
	case ContractFallbackHandler:
		return c.FallbackHandler
	case ContractBatchHelper:
		return c.BatchHelper
	}
	return ""
}

// Set records the address for a canonical contract name.
func (c *ContractAddresses) Set(name ContractName, address string) {
	switch name {
	case ContractSingletonFactory:
		c.SingletonFactory = address
	case ContractWalletSingleton:
		c.WalletSingleton = address
	case ContractProxyFactory:
		c.ProxyFactory = address
	case ContractFallbackHandler:
		c.FallbackHandler = address
	case ContractBatchHelper:
		c.BatchHelper = address
	}
}

// NetworkDeployment aggregates the infrastructure provisioned on one chain.
// TotalGasUsed must always equal the sum of the constituent records.
type NetworkDeployment struct {
	NetworkID    string               `json:"networkId"`
	ChainID      string               `json:"chainId"`
	Contracts    ContractAddresses    `json:"contracts"`
	Deployments  []ContractDeployment `json:"deployments"`
	TotalGasUsed uint64               `json:"totalGasUsed"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// NewNetworkDeployment creates an empty deployment record for a chain.
func NewNetworkDeployment(networkID string, chainID domain.ChainID) *NetworkDeployment {
	now := time.Now().UTC()
	return &NetworkDeployment{
		NetworkID: networkID,
		ChainID:   chainID.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append records a contract deployment and keeps the gas accumulator in sync.
func (n *NetworkDeployment) Append(dep ContractDeployment) {
	n.Deployments = append(n.Deployments, dep)
	n.Contracts.Set(dep.Name, dep.Address)
	n.TotalGasUsed += dep.GasUsed
	n.UpdatedAt = time.Now().UTC()
}

// Find returns the deployment record for a contract name, if present.
func (n *NetworkDeployment) Find(name ContractName) (ContractDeployment, bool) {
	for _, dep := range n.Deployments {
		if dep.Name == name {
			return dep, true
		}
	}
	return ContractDeployment{}, false
}

// Validate checks the gas-sum invariant. Called on every load and save so a
// hand-edited or corrupted record is rejected instead of silently trusted.
func (n *NetworkDeployment) Validate() error {
	var sum uint64
	for _, dep := range n.Deployments {
		sum += dep.GasUsed
	}
	if sum != n.TotalGasUsed {
		return domain.Errorf(domain.ErrValidation,
			"deployment record for %s is inconsistent: totalGasUsed=%d, sum of deployments=%d",
			n.ChainID, n.TotalGasUsed, sum)
	}
	return nil
}

// Complete reports whether all five canonical contracts are recorded.
func (n *NetworkDeployment) Complete() bool {
	for _, name := range CanonicalContracts {
		if n.Contracts.Get(name) == "" {
			return false
		}
	}
	return true
}
