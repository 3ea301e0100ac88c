package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/palisade-org/palisade/internal/adapters/abi/bindings"
	"github.com/palisade-org/palisade/internal/adapters/network"
	"github.com/palisade-org/palisade/internal/adapters/repository/wallets"
	"github.com/palisade-org/palisade/internal/adapters/signer"
	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/config"
	"github.com/palisade-org/palisade/internal/safe"
	"github.com/palisade-org/palisade/internal/usecase"
)

// Deterministic test key; never used anywhere real.
const testKeyHex = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"

var testChain = domain.MustChainID("eip155:31337")

// fakeChain is an in-memory chain client. Tests seed code, balances and call
// handlers; submissions synthesize receipts through onSend.
type fakeChain struct {
	mu sync.Mutex

	chainID  *big.Int
	code     map[common.Address][]byte
	balances map[common.Address]*big.Int
	nonces   map[common.Address]uint64
	gasPrice *big.Int
	gasUnits uint64

	estimateErr error
	callFn      func(msg ethereum.CallMsg) ([]byte, error)
	onSend      func(tx *types.Transaction, from common.Address) *types.Receipt

	sent     []*types.Transaction
	receipts map[common.Hash]*types.Receipt
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		chainID:  big.NewInt(31337),
		code:     make(map[common.Address][]byte),
		balances: make(map[common.Address]*big.Int),
		nonces:   make(map[common.Address]uint64),
		gasPrice: big.NewInt(1_000_000_000),
		gasUnits: 100_000,
		receipts: make(map[common.Hash]*types.Receipt),
	}
}

func (f *fakeChain) ChainID(ctx context.Context) (*big.Int, error) { return f.chainID, nil }

func (f *fakeChain) BlockNumber(ctx context.Context) (uint64, error) { return 100, nil }

func (f *fakeChain) CodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.code[account], nil
}

func (f *fakeChain) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.balances[account]; ok {
		return b, nil
	}
	return new(big.Int), nil
}

func (f *fakeChain) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nonces[account], nil
}

func (f *fakeChain) SuggestGasPrice(ctx context.Context) (*big.Int, error) { return f.gasPrice, nil }

func (f *fakeChain) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if f.estimateErr != nil {
		return 0, f.estimateErr
	}
	return f.gasUnits, nil
}

func (f *fakeChain) CallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
	if f.callFn != nil {
		return f.callFn(msg)
	}
	return nil, nil
}

func (f *fakeChain) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	from, err := types.Sender(types.LatestSignerForChainID(f.chainID), tx)
	if err != nil {
		return err
	}
	f.sent = append(f.sent, tx)
	f.nonces[from] = tx.Nonce() + 1

	receipt := &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      tx.Hash(),
		GasUsed:     60_000,
		BlockNumber: big.NewInt(100),
	}
	if f.onSend != nil {
		receipt = f.onSend(tx, from)
	}
	f.receipts[tx.Hash()] = receipt
	return nil
}

func (f *fakeChain) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.receipts[txHash]; ok {
		return r, nil
	}
	return nil, ethereum.NotFound
}

func (f *fakeChain) WaitForConfirmations(ctx context.Context, txHash common.Hash, depth uint64) (*types.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.WrapError(domain.ErrConfirmationTimeout, err, "confirmation wait aborted")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.receipts[txHash]; ok {
		return r, nil
	}
	return nil, domain.Errorf(domain.ErrConfirmationTimeout, "transaction %s never confirmed", txHash)
}

// sentTxs snapshots the submitted transactions.
func (f *fakeChain) sentTxs() []*types.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*types.Transaction(nil), f.sent...)
}

// deployThroughFactory mimics the singleton factory: a creation transaction
// leaves code at the sender-derived address, and a salt-prefixed placement
// leaves the init code at the deterministic address.
func (f *fakeChain) deployThroughFactory() {
	f.onSend = func(tx *types.Transaction, from common.Address) *types.Receipt {
		receipt := &types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			TxHash:      tx.Hash(),
			GasUsed:     60_000,
			BlockNumber: big.NewInt(100),
		}
		switch {
		case tx.To() == nil:
			// Creation transaction: the factory bootstrap path.
			addr := crypto.CreateAddress(from, tx.Nonce())
			f.code[addr] = tx.Data()
			receipt.ContractAddress = addr
		case len(tx.Data()) > 32:
			var salt [32]byte
			copy(salt[:], tx.Data()[:32])
			initCode := tx.Data()[32:]
			f.code[safe.PredictAddress(*tx.To(), salt, initCode)] = initCode
		}
		return receipt
	}
}

// fakeWallet answers the wallet contract's view calls over the fake chain.
type fakeWallet struct {
	addr      common.Address
	nonce     uint64
	owners    []common.Address
	threshold uint64
	approved  map[common.Address]bool
}

func (w *fakeWallet) install(chain *fakeChain) {
	binding := bindings.NewSafe()
	nonceSel := [4]byte(binding.PackNonce()[:4])
	thresholdSel := [4]byte(binding.PackGetThreshold()[:4])
	ownersSel := [4]byte(binding.PackGetOwners()[:4])
	approvedSel := [4]byte(binding.PackApprovedHashes(common.Address{}, [32]byte{})[:4])

	chain.code[w.addr] = []byte{0x60, 0x80}
	chain.callFn = func(msg ethereum.CallMsg) ([]byte, error) {
		if msg.To == nil || *msg.To != w.addr || len(msg.Data) < 4 {
			return nil, nil
		}
		switch [4]byte(msg.Data[:4]) {
		case nonceSel:
			return common.LeftPadBytes(new(big.Int).SetUint64(w.nonce).Bytes(), 32), nil
		case thresholdSel:
			return common.LeftPadBytes(new(big.Int).SetUint64(w.threshold).Bytes(), 32), nil
		case ownersSel:
			out := common.LeftPadBytes(big.NewInt(32).Bytes(), 32)
			out = append(out, common.LeftPadBytes(big.NewInt(int64(len(w.owners))).Bytes(), 32)...)
			for _, owner := range w.owners {
				out = append(out, common.LeftPadBytes(owner.Bytes(), 32)...)
			}
			return out, nil
		case approvedSel:
			owner := common.BytesToAddress(msg.Data[4+12 : 4+32])
			if w.approved[owner] {
				return common.LeftPadBytes(big.NewInt(1).Bytes(), 32), nil
			}
			return make([]byte, 32), nil
		}
		return nil, nil
	}
}

type fakeDialer struct {
	client usecase.ChainClient
}

func (d *fakeDialer) Dial(ctx context.Context, network *config.Network) (usecase.ChainClient, error) {
	return d.client, nil
}

// fixture wires a full use-case environment over the fake chain with real
// resolver, store and signer adapters.
type fixture struct {
	cfg      *config.RuntimeConfig
	chain    *fakeChain
	dialer   *fakeDialer
	resolver *network.Resolver
	store    *wallets.Store
	signer   *signer.PrivateKeySigner
	log      *slog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dataDir := t.TempDir()
	cfg := &config.RuntimeConfig{
		DataDir:       dataDir,
		ArtifactsPath: dataDir + "/artifacts.json",
		Timeout:       time.Minute,
		Confirmations: 1,
		Networks: map[string]*config.Network{
			testChain.String(): {
				ChainID: testChain.ID,
				Name:    "testchain",
				RPCURL:  "http://localhost:8545",
				Testnet: true,
			},
		},
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := wallets.NewStore(dataDir)
	require.NoError(t, err)
	keySigner, err := signer.NewPrivateKeySigner(testKeyHex)
	require.NoError(t, err)

	chain := newFakeChain()
	return &fixture{
		cfg:      cfg,
		chain:    chain,
		dialer:   &fakeDialer{client: chain},
		resolver: network.NewResolver(cfg, log),
		store:    store,
		signer:   keySigner,
		log:      log,
	}
}
