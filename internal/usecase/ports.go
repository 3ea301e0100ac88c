package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/config"
	"github.com/palisade-org/palisade/internal/domain/models"
)

// ChainClient is the RPC provider surface the use cases consume. Read-only
// calls may be retried by the implementation with bounded attempts;
// submission calls are never retried.
type ChainClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	CodeAt(ctx context.Context, account common.Address) ([]byte, error)
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)

	// WaitForConfirmations blocks until the transaction is mined and depth
	// blocks have built on top of it, or the context is done, in which case
	// it surfaces ConfirmationTimeout without resubmitting anything.
	WaitForConfirmations(ctx context.Context, txHash common.Hash, depth uint64) (*types.Receipt, error)
}

// ChainDialer connects to a network's RPC endpoint. Implementations may pool
// connections per endpoint.
type ChainDialer interface {
	Dial(ctx context.Context, network *config.Network) (ChainClient, error)
}

// NetworkResolver resolves canonical chain identifiers to network
// configurations and maintains the per-chain contract-address cache.
type NetworkResolver interface {
	Resolve(ctx context.Context, chainID domain.ChainID) (*config.Network, error)
	CacheContracts(chainID domain.ChainID, contracts models.ContractAddresses)
	CachedContracts(chainID domain.ChainID) (models.ContractAddresses, bool)
	ClearCache()
	GetNetworks(ctx context.Context) []domain.ChainID
}

// TransactionSigner signs chain transactions and wallet digests with the
// operator key. Implementations must never expose key material in errors.
type TransactionSigner interface {
	Address() common.Address
	SignTransaction(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)

	// SignDigest signs the raw 32-byte digest; the result carries a 0/1
	// recovery id in its final byte.
	SignDigest(digest common.Hash) ([]byte, error)

	// SignMessage signs the prefixed-message digest of hash (eth_sign flow).
	SignMessage(hash common.Hash) ([]byte, error)
}

// TransactionFilter narrows wallet transaction listings.
type TransactionFilter struct {
	ChainID string
	Wallet  string
	Status  models.TransactionStatus
}

// WalletRepository persists deployment records and wallet transactions.
type WalletRepository interface {
	GetNetworkDeployment(ctx context.Context, chainID domain.ChainID) (*models.NetworkDeployment, error)
	SaveNetworkDeployment(ctx context.Context, record *models.NetworkDeployment) error
	GetWalletTransaction(ctx context.Context, safeTxHash string) (*models.WalletTransaction, error)
	SaveWalletTransaction(ctx context.Context, tx *models.WalletTransaction) error
	UpdateWalletTransaction(ctx context.Context, tx *models.WalletTransaction) error
	ListWalletTransactions(ctx context.Context, filter TransactionFilter) ([]*models.WalletTransaction, error)
}

// ProgressEvent represents a progress update.
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events.
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink.
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
