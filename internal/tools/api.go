package tools

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/usecase"
)

// API exposes the wallet lifecycle operations as named tools. Input shapes
// are validated here, before any network connection is attempted.
type API struct {
	Deploy       *usecase.DeployInfrastructure
	CreateWallet *usecase.CreateWallet
	Propose      *usecase.ProposeTransaction
	OwnerChange  *usecase.ProposeOwnerChange
	Sign         *usecase.SignTransaction
	Execute      *usecase.ExecuteTransaction
	Estimate     *usecase.EstimateTransaction
	Show         *usecase.ShowTransaction
	List         *usecase.ListTransactions
	Networks     *usecase.ListNetworks
}

// NewRegistryFor builds a registry with every lifecycle tool registered.
func NewRegistryFor(api *API, log *slog.Logger) *Registry {
	r := NewRegistry(log)
	r.Register("deploy_infrastructure", api.deployInfrastructure)
	r.Register("create_wallet", api.createWallet)
	r.Register("propose_transaction", api.proposeTransaction)
	r.Register("propose_owner_change", api.proposeOwnerChange)
	r.Register("sign_transaction", api.signTransaction)
	r.Register("execute_transaction", api.executeTransaction)
	r.Register("estimate_transaction", api.estimateTransaction)
	r.Register("show_transaction", api.showTransaction)
	r.Register("list_transactions", api.listTransactions)
	r.Register("list_networks", api.listNetworks)
	return r
}

// decode parses the request body into req, treating absent or malformed
// bodies as validation failures.
func decode(input json.RawMessage, req any) error {
	if len(input) == 0 {
		return domain.NewError(domain.ErrValidation, "request body is required")
	}
	if err := json.Unmarshal(input, req); err != nil {
		return domain.WrapError(domain.ErrValidation, err, "invalid request shape")
	}
	return nil
}

type chainRequest struct {
	ChainID       string `json:"chainId"`
	Confirmations uint64 `json:"confirmations,omitempty"`
}

func (a *API) deployInfrastructure(ctx context.Context, input json.RawMessage) (any, error) {
	var req chainRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	chainID, err := domain.ParseChainID(req.ChainID)
	if err != nil {
		return nil, err
	}
	return a.Deploy.Run(ctx, usecase.DeployInfrastructureParams{
		ChainID:       chainID,
		Confirmations: req.Confirmations,
	})
}

type createWalletRequest struct {
	ChainID   string   `json:"chainId"`
	Owners    []string `json:"owners"`
	Threshold uint64   `json:"threshold"`
	SaltNonce uint64   `json:"saltNonce,omitempty"`
}

func (a *API) createWallet(ctx context.Context, input json.RawMessage) (any, error) {
	var req createWalletRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	chainID, err := domain.ParseChainID(req.ChainID)
	if err != nil {
		return nil, err
	}
	return a.CreateWallet.Run(ctx, usecase.CreateWalletParams{
		ChainID:   chainID,
		Owners:    req.Owners,
		Threshold: req.Threshold,
		SaltNonce: req.SaltNonce,
	})
}

type proposeRequest struct {
	ChainID   string           `json:"chainId"`
	Wallet    string           `json:"wallet"`
	Calls     []models.Call    `json:"calls"`
	Nonce     *uint64          `json:"nonce,omitempty"`
	GasParams models.GasParams `json:"gasParams,omitempty"`
}

func (a *API) proposeTransaction(ctx context.Context, input json.RawMessage) (any, error) {
	var req proposeRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	chainID, err := domain.ParseChainID(req.ChainID)
	if err != nil {
		return nil, err
	}
	return a.Propose.Run(ctx, usecase.ProposeTransactionParams{
		ChainID:   chainID,
		Wallet:    req.Wallet,
		Calls:     req.Calls,
		Nonce:     req.Nonce,
		GasParams: req.GasParams,
	})
}

type ownerChangeRequest struct {
	ChainID   string `json:"chainId"`
	Wallet    string `json:"wallet"`
	Kind      string `json:"kind"`
	Owner     string `json:"owner,omitempty"`
	NewOwner  string `json:"newOwner,omitempty"`
	Threshold uint64 `json:"threshold,omitempty"`
}

func (a *API) proposeOwnerChange(ctx context.Context, input json.RawMessage) (any, error) {
	var req ownerChangeRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	chainID, err := domain.ParseChainID(req.ChainID)
	if err != nil {
		return nil, err
	}
	return a.OwnerChange.Run(ctx, usecase.ProposeOwnerChangeParams{
		ChainID:   chainID,
		Wallet:    req.Wallet,
		Kind:      usecase.OwnerChangeKind(req.Kind),
		Owner:     req.Owner,
		NewOwner:  req.NewOwner,
		Threshold: req.Threshold,
	})
}

type signRequest struct {
	SafeTxHash        string `json:"safeTxHash"`
	Method            string `json:"method,omitempty"`
	ExternalSigner    string `json:"externalSigner,omitempty"`
	ExternalSignature string `json:"externalSignature,omitempty"`
}

func (a *API) signTransaction(ctx context.Context, input json.RawMessage) (any, error) {
	var req signRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	return a.Sign.Run(ctx, usecase.SignTransactionParams{
		SafeTxHash:        req.SafeTxHash,
		Method:            models.SignatureMethod(req.Method),
		ExternalSigner:    req.ExternalSigner,
		ExternalSignature: req.ExternalSignature,
	})
}

type executeRequest struct {
	SafeTxHash    string `json:"safeTxHash"`
	Confirmations uint64 `json:"confirmations,omitempty"`
}

func (a *API) executeTransaction(ctx context.Context, input json.RawMessage) (any, error) {
	var req executeRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	return a.Execute.Run(ctx, usecase.ExecuteTransactionParams{
		SafeTxHash:    req.SafeTxHash,
		Confirmations: req.Confirmations,
	})
}

type hashRequest struct {
	SafeTxHash string `json:"safeTxHash"`
}

func (a *API) estimateTransaction(ctx context.Context, input json.RawMessage) (any, error) {
	var req hashRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	return a.Estimate.Run(ctx, usecase.EstimateTransactionParams{SafeTxHash: req.SafeTxHash})
}

func (a *API) showTransaction(ctx context.Context, input json.RawMessage) (any, error) {
	var req hashRequest
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	return a.Show.Run(ctx, req.SafeTxHash)
}

type listRequest struct {
	ChainID string `json:"chainId,omitempty"`
	Wallet  string `json:"wallet,omitempty"`
	Status  string `json:"status,omitempty"`
}

func (a *API) listTransactions(ctx context.Context, input json.RawMessage) (any, error) {
	var req listRequest
	if len(input) > 0 {
		if err := decode(input, &req); err != nil {
			return nil, err
		}
	}
	txs, err := a.List.Run(ctx, usecase.TransactionFilter{
		ChainID: req.ChainID,
		Wallet:  req.Wallet,
		Status:  models.TransactionStatus(req.Status),
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"transactions": txs}, nil
}

func (a *API) listNetworks(ctx context.Context, _ json.RawMessage) (any, error) {
	return a.Networks.Run(ctx)
}
