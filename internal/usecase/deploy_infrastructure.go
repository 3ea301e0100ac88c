package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/sync/errgroup"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/config"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/safe"
)

// gasHeadroomBps pads gas estimates so deployments survive minor state drift
// between estimation and inclusion.
const gasHeadroomBps = 12000

// DeployInfrastructure provisions the canonical contract set onto a chain.
// Runs are idempotent: contracts already present at their deterministic
// addresses are recorded with zero gas and never redeployed.
type DeployInfrastructure struct {
	cfg      *config.RuntimeConfig
	resolver NetworkResolver
	dialer   ChainDialer
	signer   TransactionSigner
	repo     WalletRepository
	progress ProgressSink
	log      *slog.Logger
}

// NewDeployInfrastructure creates the infrastructure deployment use case.
func NewDeployInfrastructure(
	cfg *config.RuntimeConfig,
	resolver NetworkResolver,
	dialer ChainDialer,
	signer TransactionSigner,
	repo WalletRepository,
	progress ProgressSink,
	log *slog.Logger,
) *DeployInfrastructure {
	return &DeployInfrastructure{
		cfg:      cfg,
		resolver: resolver,
		dialer:   dialer,
		signer:   signer,
		repo:     repo,
		progress: progress,
		log:      log,
	}
}

// DeployInfrastructureParams selects the target chain.
type DeployInfrastructureParams struct {
	ChainID domain.ChainID

	// Confirmations overrides the configured confirmation depth when > 0.
	Confirmations uint64
}

// DeployInfrastructureResult is the persisted per-chain deployment record.
type DeployInfrastructureResult struct {
	Record *models.NetworkDeployment
}

// Run deploys whatever part of the contract set is still missing on the
// target chain. The singleton factory is a barrier: nothing is placed through
// it until its code is confirmed on chain. The four factory-placed contracts
// are mutually independent and deploy concurrently.
func (d *DeployInfrastructure) Run(ctx context.Context, params DeployInfrastructureParams) (*DeployInfrastructureResult, error) {
	network, err := d.resolver.Resolve(ctx, params.ChainID)
	if err != nil {
		return nil, err
	}

	// Artifacts are validated before any network traffic.
	artifacts, err := safe.LoadArtifacts(d.cfg.ArtifactsPath)
	if err != nil {
		return nil, err
	}

	client, err := d.dialer.Dial(ctx, network)
	if err != nil {
		return nil, err
	}
	if err := verifyChainID(ctx, client, params.ChainID); err != nil {
		return nil, err
	}

	depth := d.cfg.Confirmations
	if params.Confirmations > 0 {
		depth = params.Confirmations
	}

	// Resume a partial record if one exists; otherwise start fresh.
	record, err := d.repo.GetNetworkDeployment(ctx, params.ChainID)
	if domain.IsCode(err, domain.ErrNotFound) {
		record = models.NewNetworkDeployment(network.Name, params.ChainID)
	} else if err != nil {
		return nil, err
	}

	run := &deploymentRun{
		deploy:    d,
		client:    client,
		artifacts: artifacts,
		chainID:   new(big.Int).SetUint64(params.ChainID.ID),
		depth:     depth,
		record:    record,
	}

	factory, err := run.ensureFactory(ctx)
	if err != nil {
		return nil, d.persistPartial(ctx, record, err)
	}

	pending, err := run.plan(ctx, factory)
	if err != nil {
		return nil, d.persistPartial(ctx, record, err)
	}

	if len(pending) > 0 {
		if err := run.checkBalance(ctx, pending); err != nil {
			return nil, d.persistPartial(ctx, record, err)
		}
		if err := run.deployPending(ctx, pending); err != nil {
			return nil, d.persistPartial(ctx, record, err)
		}
	}

	if err := d.repo.SaveNetworkDeployment(ctx, record); err != nil {
		return nil, err
	}
	d.resolver.CacheContracts(params.ChainID, record.Contracts)

	d.log.Info("infrastructure deployment finished",
		"chain", params.ChainID, "totalGasUsed", record.TotalGasUsed)
	return &DeployInfrastructureResult{Record: record}, nil
}

// persistPartial saves whatever was provisioned before the failure so a
// re-run resumes instead of starting over. The original error wins.
func (d *DeployInfrastructure) persistPartial(ctx context.Context, record *models.NetworkDeployment, cause error) error {
	if len(record.Deployments) > 0 {
		if saveErr := d.repo.SaveNetworkDeployment(ctx, record); saveErr != nil {
			d.log.Error("failed to persist partial deployment record", "error", saveErr)
		}
	}
	return cause
}

// deploymentRun carries the per-invocation state of one deployment pass.
type deploymentRun struct {
	deploy    *DeployInfrastructure
	client    ChainClient
	artifacts *safe.Artifacts
	chainID   *big.Int
	depth     uint64
	record    *models.NetworkDeployment

	mu        sync.Mutex
	nonce     uint64
	nonceInit bool
}

// pendingDeployment is one factory-placed contract still missing on chain.
type pendingDeployment struct {
	name     models.ContractName
	address  common.Address
	calldata []byte
	gas      uint64
}

// ensureFactory makes the singleton factory available and returns its
// address. On canonical chains it is already present; on fresh dev chains it
// is bootstrapped with a plain creation transaction from the operator key.
func (r *deploymentRun) ensureFactory(ctx context.Context) (common.Address, error) {
	factory := safe.SingletonFactoryAddress
	if recorded := r.record.Contracts.Get(models.ContractSingletonFactory); recorded != "" {
		factory = common.HexToAddress(recorded)
	}

	code, err := r.client.CodeAt(ctx, factory)
	if err != nil {
		return common.Address{}, err
	}
	if len(code) > 0 {
		if _, done := r.record.Find(models.ContractSingletonFactory); !done {
			r.record.Append(models.ContractDeployment{
				Name:            models.ContractSingletonFactory,
				Address:         factory.Hex(),
				AlreadyDeployed: true,
			})
		}
		return factory, nil
	}

	r.deploy.progress.OnProgress(ctx, ProgressEvent{
		Stage: "factory", Message: "bootstrapping singleton factory", Spinner: true,
	})

	initCode := r.artifacts.InitCode(models.ContractSingletonFactory)
	receipt, err := r.submit(ctx, nil, initCode)
	if err != nil {
		return common.Address{}, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.Address{}, domain.Errorf(domain.ErrNetwork,
			"singleton factory bootstrap transaction %s reverted", receipt.TxHash)
	}

	factory = receipt.ContractAddress
	r.record.Append(models.ContractDeployment{
		Name:    models.ContractSingletonFactory,
		Address: factory.Hex(),
		TxHash:  receipt.TxHash.Hex(),
		GasUsed: receipt.GasUsed,
	})
	return factory, nil
}

// plan predicts the deterministic address of every factory-placed contract
// and keeps only those with no code on chain yet. Contracts found present
// are recorded as already deployed with zero gas.
func (r *deploymentRun) plan(ctx context.Context, factory common.Address) ([]*pendingDeployment, error) {
	var pending []*pendingDeployment
	for _, name := range models.CanonicalContracts {
		if name == models.ContractSingletonFactory {
			continue
		}

		initCode := r.artifacts.InitCode(name)
		predicted := safe.PredictAddress(factory, safe.DeploymentSalt, initCode)

		code, err := r.client.CodeAt(ctx, predicted)
		if err != nil {
			return nil, err
		}
		if len(code) > 0 {
			if _, done := r.record.Find(name); !done {
				r.record.Append(models.ContractDeployment{
					Name:            name,
					Address:         predicted.Hex(),
					AlreadyDeployed: true,
				})
			}
			continue
		}

		calldata := safe.FactoryDeployData(safe.DeploymentSalt, initCode)
		gas, err := r.client.EstimateGas(ctx, ethereum.CallMsg{
			From: r.deploy.signer.Address(),
			To:   &factory,
			Data: calldata,
		})
		if err != nil {
			return nil, domain.WrapError(domain.ErrSimulationFailed, err,
				fmt.Sprintf("deployment of %s does not simulate", name))
		}

		pending = append(pending, &pendingDeployment{
			name:     name,
			address:  predicted,
			calldata: calldata,
			gas:      gas * gasHeadroomBps / 10000,
		})
	}
	return pending, nil
}

// checkBalance verifies the operator can fund every remaining deployment
// before the first of them is submitted.
func (r *deploymentRun) checkBalance(ctx context.Context, pending []*pendingDeployment) error {
	gasPrice, err := r.client.SuggestGasPrice(ctx)
	if err != nil {
		return err
	}
	balance, err := r.client.BalanceAt(ctx, r.deploy.signer.Address())
	if err != nil {
		return err
	}

	var totalGas uint64
	for _, p := range pending {
		totalGas += p.gas
	}
	required := new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(totalGas))
	if balance.Cmp(required) < 0 {
		return domain.NewError(domain.ErrInsufficientBalance,
			"operator balance does not cover the remaining deployments").
			WithDetail("balance", balance.String()).
			WithDetail("required", required.String()).
			WithDetail("pendingContracts", len(pending))
	}
	return nil
}

// deployPending places the remaining contracts through the factory. They are
// mutually independent, so each runs on its own goroutine; nonces are handed
// out under the run lock so concurrent submissions never collide.
func (r *deploymentRun) deployPending(ctx context.Context, pending []*pendingDeployment) error {
	g, gctx := errgroup.WithContext(ctx)
	var mu sync.Mutex

	for i, p := range pending {
		i, p := i, p
		g.Go(func() error {
			r.deploy.progress.OnProgress(gctx, ProgressEvent{
				Stage:   "deploy",
				Current: i + 1,
				Total:   len(pending),
				Message: fmt.Sprintf("deploying %s", p.name),
				Spinner: true,
			})

			receipt, err := r.submit(gctx, p.calldata, nil)
			if err != nil {
				return err
			}
			if receipt.Status != types.ReceiptStatusSuccessful {
				return domain.Errorf(domain.ErrNetwork,
					"deployment of %s reverted in transaction %s", p.name, receipt.TxHash)
			}

			// The factory must have left code at the predicted address.
			code, err := r.client.CodeAt(gctx, p.address)
			if err != nil {
				return err
			}
			if len(code) == 0 {
				return domain.Errorf(domain.ErrNetwork,
					"%s transaction succeeded but no code at predicted address %s", p.name, p.address)
			}

			mu.Lock()
			r.record.Append(models.ContractDeployment{
				Name:    p.name,
				Address: p.address.Hex(),
				TxHash:  receipt.TxHash.Hex(),
				GasUsed: receipt.GasUsed,
			})
			mu.Unlock()

			r.deploy.log.Debug("contract deployed",
				"name", p.name, "address", p.address, "gasUsed", receipt.GasUsed)
			return nil
		})
	}
	return g.Wait()
}

// submit signs and sends one transaction and waits for it to confirm. Exactly
// one of calldata (a factory placement) or initCode (a creation transaction)
// is set.
func (r *deploymentRun) submit(ctx context.Context, calldata []byte, initCode []byte) (*types.Receipt, error) {
	gasPrice, err := r.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, err
	}

	var to *common.Address
	data := initCode
	if calldata != nil {
		factory := common.HexToAddress(r.record.Contracts.Get(models.ContractSingletonFactory))
		to = &factory
		data = calldata
	}

	gas, err := r.client.EstimateGas(ctx, ethereum.CallMsg{
		From:     r.deploy.signer.Address(),
		To:       to,
		GasPrice: gasPrice,
		Data:     data,
	})
	if err != nil {
		return nil, domain.WrapError(domain.ErrSimulationFailed, err, "transaction does not simulate")
	}

	nonce, err := r.nextNonce(ctx)
	if err != nil {
		return nil, err
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas * gasHeadroomBps / 10000,
		To:       to,
		Data:     data,
	})
	signed, err := r.deploy.signer.SignTransaction(tx, r.chainID)
	if err != nil {
		return nil, err
	}
	if err := r.client.SendTransaction(ctx, signed); err != nil {
		return nil, err
	}

	return r.client.WaitForConfirmations(ctx, signed.Hash(), r.depth)
}

// nextNonce hands out sequential operator nonces. The pending nonce is
// fetched once per run; afterwards assignment is purely local.
func (r *deploymentRun) nextNonce(ctx context.Context) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.nonceInit {
		n, err := r.client.PendingNonceAt(ctx, r.deploy.signer.Address())
		if err != nil {
			return 0, err
		}
		r.nonce = n
		r.nonceInit = true
	}
	n := r.nonce
	r.nonce++
	return n, nil
}

// verifyChainID confirms the RPC endpoint serves the chain the caller named.
func verifyChainID(ctx context.Context, client ChainClient, want domain.ChainID) error {
	got, err := client.ChainID(ctx)
	if err != nil {
		return err
	}
	if got.Uint64() != want.ID {
		return domain.Errorf(domain.ErrNetwork,
			"RPC endpoint serves chain %d, expected %s", got.Uint64(), want)
	}
	return nil
}
