package wallets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/usecase"
)

// Store persists deployment records and wallet transactions as JSON files
// under the data directory:
//
//	<dataDir>/deployments/<namespace>-<id>.json   one NetworkDeployment per chain
//	<dataDir>/transactions.json                   all wallet transactions
//
// Files are written whole via a temp file and rename so a crash never leaves
// a half-written record behind.
type Store struct {
	dataDir string

	mu           sync.RWMutex
	transactions map[string]*models.WalletTransaction // safeTxHash -> tx
}

// NewStore opens (or initializes) the store under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dataDir, "deployments"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	s := &Store{
		dataDir:      dataDir,
		transactions: make(map[string]*models.WalletTransaction),
	}
	if err := s.loadTransactions(); err != nil {
		return nil, err
	}
	return s, nil
}

// GetNetworkDeployment loads the deployment record for a chain.
func (s *Store) GetNetworkDeployment(ctx context.Context, chainID domain.ChainID) (*models.NetworkDeployment, error) {
	data, err := os.ReadFile(s.deploymentPath(chainID))
	if os.IsNotExist(err) {
		return nil, domain.Errorf(domain.ErrNotFound, "no deployment record for chain %s", chainID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment record: %w", err)
	}

	var record models.NetworkDeployment
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse deployment record: %w", err)
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return &record, nil
}

// SaveNetworkDeployment writes the deployment record for a chain, validating
// the gas-sum invariant first.
func (s *Store) SaveNetworkDeployment(ctx context.Context, record *models.NetworkDeployment) error {
	if err := record.Validate(); err != nil {
		return err
	}
	chainID, err := domain.ParseChainID(record.ChainID)
	if err != nil {
		return err
	}
	return writeJSONFile(s.deploymentPath(chainID), record)
}

// GetWalletTransaction looks up a wallet transaction by its hash.
func (s *Store) GetWalletTransaction(ctx context.Context, safeTxHash string) (*models.WalletTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.transactions[strings.ToLower(safeTxHash)]
	if !ok {
		return nil, domain.Errorf(domain.ErrNotFound, "unknown wallet transaction %s", safeTxHash)
	}
	return cloneTransaction(tx), nil
}

// SaveWalletTransaction stores a newly proposed transaction.
func (s *Store) SaveWalletTransaction(ctx context.Context, tx *models.WalletTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions[strings.ToLower(tx.SafeTxHash)] = cloneTransaction(tx)
	return s.flushTransactionsLocked()
}

// UpdateWalletTransaction replaces an existing transaction record.
func (s *Store) UpdateWalletTransaction(ctx context.Context, tx *models.WalletTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(tx.SafeTxHash)
	if _, ok := s.transactions[key]; !ok {
		return domain.Errorf(domain.ErrNotFound, "unknown wallet transaction %s", tx.SafeTxHash)
	}
	s.transactions[key] = cloneTransaction(tx)
	return s.flushTransactionsLocked()
}

// ListWalletTransactions returns transactions matching the filter, newest
// proposal first.
func (s *Store) ListWalletTransactions(ctx context.Context, filter usecase.TransactionFilter) ([]*models.WalletTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := lo.FilterMap(lo.Values(s.transactions), func(tx *models.WalletTransaction, _ int) (*models.WalletTransaction, bool) {
		if filter.ChainID != "" && tx.ChainID != filter.ChainID {
			return nil, false
		}
		if filter.Wallet != "" && !strings.EqualFold(tx.Wallet, filter.Wallet) {
			return nil, false
		}
		if filter.Status != "" && tx.Status != filter.Status {
			return nil, false
		}
		return cloneTransaction(tx), true
	})

	// Newest first for display.
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ProposedAt.After(matches[j].ProposedAt)
	})
	return matches, nil
}

func (s *Store) deploymentPath(chainID domain.ChainID) string {
	name := fmt.Sprintf("%s-%d.json", chainID.Namespace, chainID.ID)
	return filepath.Join(s.dataDir, "deployments", name)
}

func (s *Store) transactionsPath() string {
	return filepath.Join(s.dataDir, "transactions.json")
}

func (s *Store) loadTransactions() error {
	data, err := os.ReadFile(s.transactionsPath())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read transactions: %w", err)
	}

	var txs []*models.WalletTransaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return fmt.Errorf("failed to parse transactions: %w", err)
	}
	for _, tx := range txs {
		s.transactions[strings.ToLower(tx.SafeTxHash)] = tx
	}
	return nil
}

func (s *Store) flushTransactionsLocked() error {
	txs := lo.Values(s.transactions)
	// Keep the file diff-friendly: order by hash.
	sort.Slice(txs, func(i, j int) bool { return txs[i].SafeTxHash < txs[j].SafeTxHash })
	return writeJSONFile(s.transactionsPath(), txs)
}

func writeJSONFile(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

func cloneTransaction(tx *models.WalletTransaction) *models.WalletTransaction {
	clone := *tx
	clone.Calls = append([]models.Call(nil), tx.Calls...)
	clone.Confirmations = append([]models.SignatureRecord(nil), tx.Confirmations...)
	if tx.ExecutionResult != nil {
		result := *tx.ExecutionResult
		clone.ExecutionResult = &result
	}
	if tx.ExecutedAt != nil {
		at := *tx.ExecutedAt
		clone.ExecutedAt = &at
	}
	return &clone
}

var _ usecase.WalletRepository = (*Store)(nil)
