package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/palisade-org/palisade/internal/adapters/abi/bindings"
	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/models"
)

// ShowTransaction loads one wallet transaction together with the live
// threshold, so callers can see how many confirmations are still missing.
type ShowTransaction struct {
	resolver NetworkResolver
	dialer   ChainDialer
	repo     WalletRepository
}

// NewShowTransaction creates the transaction inspection use case.
func NewShowTransaction(resolver NetworkResolver, dialer ChainDialer, repo WalletRepository) *ShowTransaction {
	return &ShowTransaction{resolver: resolver, dialer: dialer, repo: repo}
}

// ShowTransactionResult carries a transaction and its confirmation progress.
type ShowTransactionResult struct {
	Transaction *models.WalletTransaction

	// Threshold is the wallet's current on-chain threshold; zero when the
	// chain was unreachable.
	Threshold uint64

	// Executable reports whether the confirmation set meets the threshold.
	Executable bool

	// WalletNonce is the wallet's current on-chain nonce; a proposal with a
	// lower nonce has been superseded.
	WalletNonce uint64
}

// Run loads the record and, where the network is reachable, its live state.
func (s *ShowTransaction) Run(ctx context.Context, safeTxHash string) (*ShowTransactionResult, error) {
	tx, err := s.repo.GetWalletTransaction(ctx, safeTxHash)
	if err != nil {
		return nil, err
	}
	result := &ShowTransactionResult{Transaction: tx}

	chainID, err := domain.ParseChainID(tx.ChainID)
	if err != nil {
		return result, nil
	}
	network, err := s.resolver.Resolve(ctx, chainID)
	if err != nil {
		return result, nil
	}
	client, err := s.dialer.Dial(ctx, network)
	if err != nil {
		return result, nil
	}

	wallet := common.HexToAddress(tx.Wallet)
	if threshold, err := fetchThreshold(ctx, client, wallet); err == nil {
		result.Threshold = threshold
		result.Executable = tx.Status == models.TransactionStatusProposed &&
			uint64(len(tx.Confirmations)) >= threshold
	}

	binding := bindings.NewSafe()
	if out, err := client.CallContract(ctx, ethereum.CallMsg{
		To:   &wallet,
		Data: binding.PackNonce(),
	}); err == nil {
		if nonce, err := binding.UnpackNonce(out); err == nil {
			result.WalletNonce = nonce.Uint64()
		}
	}

	return result, nil
}

// ListTransactions lists stored wallet transactions.
type ListTransactions struct {
	repo WalletRepository
}

// NewListTransactions creates the transaction listing use case.
func NewListTransactions(repo WalletRepository) *ListTransactions {
	return &ListTransactions{repo: repo}
}

// Run returns transactions matching the filter, newest first.
func (l *ListTransactions) Run(ctx context.Context, filter TransactionFilter) ([]*models.WalletTransaction, error) {
	return l.repo.ListWalletTransactions(ctx, filter)
}
