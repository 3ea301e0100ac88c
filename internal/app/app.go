package app

import (
	"log/slog"

	"github.com/palisade-org/palisade/internal/domain/config"
	"github.com/palisade-org/palisade/internal/usecase"
)

// App is the application container holding the wired use cases.
type App struct {
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployInfrastructure *usecase.DeployInfrastructure
	CreateWallet         *usecase.CreateWallet
	ProposeTransaction   *usecase.ProposeTransaction
	ProposeOwnerChange   *usecase.ProposeOwnerChange
	SignTransaction      *usecase.SignTransaction
	ExecuteTransaction   *usecase.ExecuteTransaction
	EstimateTransaction  *usecase.EstimateTransaction
	ShowTransaction      *usecase.ShowTransaction
	ListTransactions     *usecase.ListTransactions
	ListNetworks         *usecase.ListNetworks
}

// NewApp assembles the application container.
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployInfrastructure *usecase.DeployInfrastructure,
	createWallet *usecase.CreateWallet,
	proposeTransaction *usecase.ProposeTransaction,
	proposeOwnerChange *usecase.ProposeOwnerChange,
	signTransaction *usecase.SignTransaction,
	executeTransaction *usecase.ExecuteTransaction,
	estimateTransaction *usecase.EstimateTransaction,
	showTransaction *usecase.ShowTransaction,
	listTransactions *usecase.ListTransactions,
	listNetworks *usecase.ListNetworks,
) (*App, error) {
	return &App{
		Config:               cfg,
		Log:                  log,
		DeployInfrastructure: deployInfrastructure,
		CreateWallet:         createWallet,
		ProposeTransaction:   proposeTransaction,
		ProposeOwnerChange:   proposeOwnerChange,
		SignTransaction:      signTransaction,
		ExecuteTransaction:   executeTransaction,
		EstimateTransaction:  estimateTransaction,
		ShowTransaction:      showTransaction,
		ListTransactions:     listTransactions,
		ListNetworks:         listNetworks,
	}, nil
}
