package usecase

import (
	"context"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/palisade-org/palisade/internal/adapters/abi/bindings"
	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/config"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/safe"
)

// CreateWallet provisions a new multisig wallet proxy through the proxy
// factory.
type CreateWallet struct {
	cfg      *config.RuntimeConfig
	resolver NetworkResolver
	dialer   ChainDialer
	signer   TransactionSigner
	repo     WalletRepository
	progress ProgressSink
	log      *slog.Logger
}

// NewCreateWallet creates the wallet provisioning use case.
func NewCreateWallet(
	cfg *config.RuntimeConfig,
	resolver NetworkResolver,
	dialer ChainDialer,
	signer TransactionSigner,
	repo WalletRepository,
	progress ProgressSink,
	log *slog.Logger,
) *CreateWallet {
	return &CreateWallet{
		cfg:      cfg,
		resolver: resolver,
		dialer:   dialer,
		signer:   signer,
		repo:     repo,
		progress: progress,
		log:      log,
	}
}

// CreateWalletParams configures the new wallet.
type CreateWalletParams struct {
	ChainID   domain.ChainID
	Owners    []string
	Threshold uint64

	// SaltNonce differentiates wallets with the same owner set. Zero is a
	// valid, stable choice.
	SaltNonce uint64
}

// CreateWalletResult carries the provisioned wallet.
type CreateWalletResult struct {
	Wallet    string
	TxHash    string
	GasUsed   uint64
	Owners    []string
	Threshold uint64
}

// Run validates the configuration, submits the proxy creation and extracts
// the new wallet address from the creation event.
func (c *CreateWallet) Run(ctx context.Context, params CreateWalletParams) (*CreateWalletResult, error) {
	owners, err := validateOwners(params.Owners, params.Threshold)
	if err != nil {
		return nil, err
	}

	network, err := c.resolver.Resolve(ctx, params.ChainID)
	if err != nil {
		return nil, err
	}
	client, err := c.dialer.Dial(ctx, network)
	if err != nil {
		return nil, err
	}
	if err := verifyChainID(ctx, client, params.ChainID); err != nil {
		return nil, err
	}

	contracts := c.contractsFor(ctx, params.ChainID)
	proxyFactory := contractOr(contracts, models.ContractProxyFactory, safe.ProxyFactoryAddress)
	singleton := contractOr(contracts, models.ContractWalletSingleton, safe.WalletSingletonAddress)
	fallbackHandler := contractOr(contracts, models.ContractFallbackHandler, safe.FallbackHandlerAddress)

	// The factory refuses to create proxies against a singleton with no code,
	// but checking here yields a clearer error than a raw revert.
	code, err := client.CodeAt(ctx, proxyFactory)
	if err != nil {
		return nil, err
	}
	if len(code) == 0 {
		return nil, domain.Errorf(domain.ErrValidation,
			"no proxy factory at %s on %s; deploy infrastructure first",
			proxyFactory.Hex(), params.ChainID)
	}

	initializer := bindings.NewSafe().PackSetup(
		owners,
		new(big.Int).SetUint64(params.Threshold),
		common.Address{},
		nil,
		fallbackHandler,
		common.Address{},
		new(big.Int),
		common.Address{},
	)
	factory := bindings.NewSafeProxyFactory()
	calldata := factory.PackCreateProxyWithNonce(
		singleton, initializer, new(big.Int).SetUint64(params.SaltNonce))

	c.progress.OnProgress(ctx, ProgressEvent{
		Stage: "wallet", Message: "creating wallet proxy", Spinner: true,
	})

	from := c.signer.Address()
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, err
	}
	gas, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From: from,
		To:   &proxyFactory,
		Data: calldata,
	})
	if err != nil {
		simErr := domain.WrapError(domain.ErrSimulationFailed, err, "wallet creation does not simulate")
		if reason := safe.RevertReason(err); reason != "" {
			simErr = simErr.WithDetail("revertReason", reason)
		}
		return nil, simErr
	}
	nonce, err := client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, err
	}

	raw := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas * gasHeadroomBps / 10000,
		To:       &proxyFactory,
		Data:     calldata,
	})
	signed, err := c.signer.SignTransaction(raw, new(big.Int).SetUint64(params.ChainID.ID))
	if err != nil {
		return nil, err
	}
	if err := client.SendTransaction(ctx, signed); err != nil {
		return nil, err
	}
	receipt, err := client.WaitForConfirmations(ctx, signed.Hash(), c.cfg.Confirmations)
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, domain.Errorf(domain.ErrNetwork,
			"wallet creation transaction %s reverted", receipt.TxHash)
	}

	wallet, err := walletFromLogs(factory, receipt.Logs)
	if err != nil {
		return nil, err
	}

	result := &CreateWalletResult{
		Wallet:    wallet.Hex(),
		TxHash:    receipt.TxHash.Hex(),
		GasUsed:   receipt.GasUsed,
		Owners:    params.Owners,
		Threshold: params.Threshold,
	}
	c.log.Info("wallet created",
		"wallet", result.Wallet, "chain", params.ChainID, "threshold", params.Threshold,
		"owners", len(owners))
	return result, nil
}

// contractsFor resolves the chain's contract addresses from the cache or the
// persisted deployment record, falling back to the canonical set.
func (c *CreateWallet) contractsFor(ctx context.Context, chainID domain.ChainID) models.ContractAddresses {
	if contracts, ok := c.resolver.CachedContracts(chainID); ok {
		return contracts
	}
	if record, err := c.repo.GetNetworkDeployment(ctx, chainID); err == nil {
		c.resolver.CacheContracts(chainID, record.Contracts)
		return record.Contracts
	}
	return models.ContractAddresses{}
}

func contractOr(contracts models.ContractAddresses, name models.ContractName, canonical common.Address) common.Address {
	if addr := contracts.Get(name); addr != "" {
		return common.HexToAddress(addr)
	}
	return canonical
}

// walletFromLogs pulls the proxy address out of the factory's creation event.
func walletFromLogs(factory *bindings.SafeProxyFactory, logs []*types.Log) (common.Address, error) {
	eventID := factory.ProxyCreationEventID()
	for _, entry := range logs {
		if len(entry.Topics) == 0 || entry.Topics[0] != eventID {
			continue
		}
		event, err := factory.UnpackProxyCreationEvent(entry)
		if err != nil {
			return common.Address{}, domain.WrapError(domain.ErrNetwork, err,
				"proxy creation event is unreadable")
		}
		return event.Proxy, nil
	}
	return common.Address{}, domain.NewError(domain.ErrNetwork,
		"wallet creation succeeded but emitted no creation event")
}

// validateOwners checks the owner set and threshold invariants.
func validateOwners(owners []string, threshold uint64) ([]common.Address, error) {
	if len(owners) == 0 {
		return nil, domain.NewError(domain.ErrValidation, "a wallet needs at least one owner")
	}
	if threshold == 0 || threshold > uint64(len(owners)) {
		return nil, domain.Errorf(domain.ErrValidation,
			"threshold %d must be between 1 and the number of owners (%d)", threshold, len(owners))
	}

	seen := make(map[string]bool, len(owners))
	parsed := make([]common.Address, 0, len(owners))
	for _, owner := range owners {
		addr, err := parseAddress(owner, "owner")
		if err != nil {
			return nil, err
		}
		if addr == (common.Address{}) {
			return nil, domain.NewError(domain.ErrValidation, "the zero address cannot be an owner")
		}
		key := strings.ToLower(addr.Hex())
		if seen[key] {
			return nil, domain.Errorf(domain.ErrValidation, "owner %s is listed twice", addr.Hex())
		}
		seen[key] = true
		parsed = append(parsed, addr)
	}
	return parsed, nil
}
