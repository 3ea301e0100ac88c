package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/config"
	"github.com/palisade-org/palisade/internal/usecase"
)

const (
	readRetries  = 3
	retryBackoff = 500 * time.Millisecond
	pollInterval = 2 * time.Second
)

// Client wraps an ethclient connection and implements usecase.ChainClient.
// Read-only calls retry with bounded attempts; submissions never retry.
type Client struct {
	eth *ethclient.Client
	log *slog.Logger
}

// NewClient wraps an existing ethclient connection.
func NewClient(eth *ethclient.Client, log *slog.Logger) *Client {
	return &Client{eth: eth, log: log}
}

// Dial connects to an RPC endpoint.
func Dial(ctx context.Context, rpcURL string, log *slog.Logger) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, domain.WrapError(domain.ErrNetwork, err, "failed to connect to RPC endpoint")
	}
	return NewClient(eth, log), nil
}

func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	return withRetry(ctx, c.log, "eth_chainId", func() (*big.Int, error) {
		return c.eth.ChainID(ctx)
	})
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	return withRetry(ctx, c.log, "eth_blockNumber", func() (uint64, error) {
		return c.eth.BlockNumber(ctx)
	})
}

func (c *Client) CodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return withRetry(ctx, c.log, "eth_getCode", func() ([]byte, error) {
		return c.eth.CodeAt(ctx, account, nil)
	})
}

func (c *Client) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	return withRetry(ctx, c.log, "eth_getBalance", func() (*big.Int, error) {
		return c.eth.BalanceAt(ctx, account, nil)
	})
}

func (c *Client) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return withRetry(ctx, c.log, "eth_getTransactionCount", func() (uint64, error) {
		return c.eth.PendingNonceAt(ctx, account)
	})
}

func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return withRetry(ctx, c.log, "eth_gasPrice", func() (*big.Int, error) {
		return c.eth.SuggestGasPrice(ctx)
	})
}

// EstimateGas is not retried: estimation failures usually mean the call
// would revert, and the caller wants that error, not a retry.
func (c *Client) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	gas, err := c.eth.EstimateGas(ctx, msg)
	if err != nil {
		return 0, err
	}
	return gas, nil
}

func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
	return c.eth.CallContract(ctx, msg, nil)
}

func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.eth.SendTransaction(ctx, tx); err != nil {
		return domain.WrapError(domain.ErrNetwork, err, "failed to submit transaction")
	}
	return nil
}

func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return withRetry(ctx, c.log, "eth_getTransactionReceipt", func() (*types.Receipt, error) {
		return c.eth.TransactionReceipt(ctx, txHash)
	})
}

// WaitForConfirmations polls for the receipt, then for depth blocks built on
// top of the inclusion block. A done context surfaces ConfirmationTimeout;
// the underlying submission is never retried.
func (c *Client) WaitForConfirmations(ctx context.Context, txHash common.Hash, depth uint64) (*types.Receipt, error) {
	if depth == 0 {
		depth = 1
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var receipt *types.Receipt
	for receipt == nil {
		r, err := c.eth.TransactionReceipt(ctx, txHash)
		switch {
		case err == nil:
			receipt = r
		case errors.Is(err, ethereum.NotFound):
			// not mined yet
		default:
			c.log.Debug("receipt poll failed", "tx", txHash, "err", err)
		}

		if receipt != nil {
			break
		}
		select {
		case <-ctx.Done():
			return nil, confirmationTimeout(txHash, ctx.Err())
		case <-ticker.C:
		}
	}

	target := receipt.BlockNumber.Uint64() + depth - 1
	for {
		head, err := c.eth.BlockNumber(ctx)
		if err == nil && head >= target {
			return receipt, nil
		}
		if err != nil {
			c.log.Debug("head poll failed", "tx", txHash, "err", err)
		}
		select {
		case <-ctx.Done():
			return nil, confirmationTimeout(txHash, ctx.Err())
		case <-ticker.C:
		}
	}
}

// Close releases the underlying connection.
func (c *Client) Close() {
	c.eth.Close()
}

func confirmationTimeout(txHash common.Hash, cause error) error {
	return domain.WrapError(domain.ErrConfirmationTimeout, cause,
		fmt.Sprintf("gave up waiting for confirmations of %s", txHash)).
		WithDetail("txHash", txHash.Hex())
}

// withRetry runs a read-only RPC call with bounded attempts and linear
// backoff. Submission-class calls must not go through here.
func withRetry[T any](ctx context.Context, log *slog.Logger, method string, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 1; attempt <= readRetries; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		// Not-found is a result, not a connectivity failure.
		if errors.Is(err, ethereum.NotFound) {
			return zero, err
		}
		lastErr = err
		log.Debug("read call failed", "method", method, "attempt", attempt, "err", err)

		select {
		case <-ctx.Done():
			return zero, domain.WrapError(domain.ErrNetwork, ctx.Err(), method)
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return zero, domain.WrapError(domain.ErrNetwork, lastErr, method)
}

// Dialer pools clients per RPC endpoint and implements usecase.ChainDialer.
type Dialer struct {
	log     *slog.Logger
	mu      sync.Mutex
	clients map[string]*Client
}

// NewDialer creates a pooling dialer.
func NewDialer(log *slog.Logger) *Dialer {
	return &Dialer{
		log:     log,
		clients: make(map[string]*Client),
	}
}

// Dial returns a connected client for the network, reusing an existing
// connection to the same endpoint when available.
func (d *Dialer) Dial(ctx context.Context, network *config.Network) (usecase.ChainClient, error) {
	if network == nil || network.RPCURL == "" {
		return nil, domain.NewError(domain.ErrNetworkNotSupported, "network has no RPC endpoint configured")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if client, ok := d.clients[network.RPCURL]; ok {
		return client, nil
	}
	client, err := Dial(ctx, network.RPCURL, d.log)
	if err != nil {
		return nil, err
	}
	d.clients[network.RPCURL] = client
	return client, nil
}

var (
	_ usecase.ChainClient = (*Client)(nil)
	_ usecase.ChainDialer = (*Dialer)(nil)
)
