package safe

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/models"
)

// Artifacts holds the compiled init bytecode for the infrastructure set.
// It is loaded and validated once, then passed into the deployer — the core
// never touches the filesystem itself.
type Artifacts struct {
	SingletonFactory hexutil.Bytes `json:"singletonFactory"`
	WalletSingleton  hexutil.Bytes `json:"walletSingleton"`
	ProxyFactory     hexutil.Bytes `json:"proxyFactory"`
	FallbackHandler  hexutil.Bytes `json:"fallbackHandler"`
	BatchHelper      hexutil.Bytes `json:"batchHelper"`
}

// LoadArtifacts reads and validates an artifact bundle from disk.
func LoadArtifacts(path string) (*Artifacts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.WrapError(domain.ErrArtifactsNotFound, err,
			fmt.Sprintf("artifact bundle %s", path))
	}
	var artifacts Artifacts
	if err := json.Unmarshal(data, &artifacts); err != nil {
		return nil, domain.WrapError(domain.ErrArtifactsNotFound, err,
			fmt.Sprintf("artifact bundle %s is not valid JSON", path))
	}
	if err := artifacts.Validate(); err != nil {
		return nil, err
	}
	return &artifacts, nil
}

// InitCode returns the init bytecode for a canonical contract name.
func (a *Artifacts) InitCode(name models.ContractName) []byte {
	switch name {
	case models.ContractSingletonFactory:
		return a.SingletonFactory
	case models.ContractWalletSingleton:
		return a.WalletSingleton
	case models.ContractProxyFactory:
		return a.ProxyFactory
	case models.ContractFallbackHandler:
		return a.FallbackHandler
	case models.ContractBatchHelper:
		return a.BatchHelper
	}
	return nil
}

// Validate checks that every canonical contract has init code. Runs before
// any network call so a broken bundle fails fast.
func (a *Artifacts) Validate() error {
	if a == nil {
		return domain.NewError(domain.ErrArtifactsNotFound, "no artifact bundle configured")
	}
	for _, name := range models.CanonicalContracts {
		if len(a.InitCode(name)) == 0 {
			return domain.Errorf(domain.ErrArtifactsNotFound,
				"artifact bundle is missing init code for %s", name)
		}
	}
	return nil
}
