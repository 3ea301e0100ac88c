package adapters

import (
	"github.com/google/wire"

	"github.com/palisade-org/palisade/internal/adapters/chain"
	"github.com/palisade-org/palisade/internal/adapters/network"
	"github.com/palisade-org/palisade/internal/adapters/repository/wallets"
	"github.com/palisade-org/palisade/internal/adapters/signer"
	"github.com/palisade-org/palisade/internal/domain/config"
	"github.com/palisade-org/palisade/internal/usecase"
)

// AllAdapters provides every adapter behind its usecase port.
var AllAdapters = wire.NewSet(
	network.NewResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*network.Resolver)),

	chain.NewDialer,
	wire.Bind(new(usecase.ChainDialer), new(*chain.Dialer)),

	ProvideStore,
	wire.Bind(new(usecase.WalletRepository), new(*wallets.Store)),

	ProvideSigner,
)

// ProvideStore opens the wallet store under the configured data directory.
func ProvideStore(cfg *config.RuntimeConfig) (*wallets.Store, error) {
	return wallets.NewStore(cfg.DataDir)
}

// ProvideSigner loads the operator key from the environment. Without a key
// the app still starts; signing operations fail with a clear message.
func ProvideSigner() usecase.TransactionSigner {
	s, err := signer.FromEnv()
	if err != nil {
		return signer.Unconfigured{}
	}
	return s
}
