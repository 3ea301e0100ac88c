//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/palisade-org/palisade/internal/adapters"
	"github.com/palisade-org/palisade/internal/config"
	"github.com/palisade-org/palisade/internal/logging"
	"github.com/palisade-org/palisade/internal/usecase"
)

// InitApp creates a fully wired App instance.
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployInfrastructure,
		usecase.NewCreateWallet,
		usecase.NewProposeTransaction,
		usecase.NewProposeOwnerChange,
		usecase.NewSignTransaction,
		usecase.NewExecuteTransaction,
		usecase.NewEstimateTransaction,
		usecase.NewShowTransaction,
		usecase.NewListTransactions,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
