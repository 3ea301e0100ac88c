package usecase

import (
	"context"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/palisade-org/palisade/internal/adapters/abi/bindings"
	"github.com/palisade-org/palisade/internal/domain"
	"github.com/palisade-org/palisade/internal/domain/config"
	"github.com/palisade-org/palisade/internal/domain/models"
	"github.com/palisade-org/palisade/internal/safe"
)

// SignTransaction collects one owner signature over a proposed transaction.
type SignTransaction struct {
	cfg      *config.RuntimeConfig
	resolver NetworkResolver
	dialer   ChainDialer
	signer   TransactionSigner
	repo     WalletRepository
	log      *slog.Logger
}

// NewSignTransaction creates the signing use case.
func NewSignTransaction(
	cfg *config.RuntimeConfig,
	resolver NetworkResolver,
	dialer ChainDialer,
	signer TransactionSigner,
	repo WalletRepository,
	log *slog.Logger,
) *SignTransaction {
	return &SignTransaction{
		cfg:      cfg,
		resolver: resolver,
		dialer:   dialer,
		signer:   signer,
		repo:     repo,
		log:      log,
	}
}

// SignTransactionParams identifies the transaction and the signing method.
type SignTransactionParams struct {
	SafeTxHash string
	Method     models.SignatureMethod

	// ExternalSigner and ExternalSignature carry a signature produced out of
	// band (a hardware wallet, another tool). When set, the operator key is
	// not used; the signature is verified by recovery instead.
	ExternalSigner    string
	ExternalSignature string
}

// SignTransactionResult carries the updated transaction.
type SignTransactionResult struct {
	Transaction *models.WalletTransaction
	Record      models.SignatureRecord
}

// Run verifies ownership, produces or verifies the signature for the chosen
// method and appends it to the confirmation set.
func (s *SignTransaction) Run(ctx context.Context, params SignTransactionParams) (*SignTransactionResult, error) {
	tx, err := s.repo.GetWalletTransaction(ctx, params.SafeTxHash)
	if err != nil {
		return nil, err
	}
	if tx.Status == models.TransactionStatusExecuted {
		return nil, domain.Errorf(domain.ErrAlreadyExecuted,
			"transaction %s has already been executed", tx.SafeTxHash)
	}

	chainID, err := domain.ParseChainID(tx.ChainID)
	if err != nil {
		return nil, err
	}
	network, err := s.resolver.Resolve(ctx, chainID)
	if err != nil {
		return nil, err
	}
	client, err := s.dialer.Dial(ctx, network)
	if err != nil {
		return nil, err
	}

	wallet := common.HexToAddress(tx.Wallet)
	signer := s.signer.Address()
	if params.ExternalSigner != "" {
		signer, err = parseAddress(params.ExternalSigner, "signer")
		if err != nil {
			return nil, err
		}
	}

	owners, err := fetchOwners(ctx, client, wallet)
	if err != nil {
		return nil, err
	}
	if !containsAddress(owners, signer) {
		return nil, domain.Errorf(domain.ErrUnauthorizedSigner,
			"%s is not an owner of wallet %s", signer.Hex(), tx.Wallet)
	}
	if tx.HasSigner(signer.Hex()) {
		return nil, domain.Errorf(domain.ErrDuplicateSignature,
			"signer %s has already confirmed transaction %s", signer.Hex(), tx.SafeTxHash)
	}

	hash := common.HexToHash(tx.SafeTxHash)
	var encoded []byte
	switch {
	case params.ExternalSignature != "":
		encoded, err = s.verifyExternal(hash, signer, params)
	case params.Method == models.SignatureMethodApprovedHash:
		encoded, err = s.approveOnChain(ctx, client, chainID, wallet, hash)
	case params.Method == models.SignatureMethodEthSign:
		encoded, err = s.signEthSign(hash)
	case params.Method == models.SignatureMethodEIP712, params.Method == "":
		params.Method = models.SignatureMethodEIP712
		encoded, err = s.signEIP712(hash)
	default:
		return nil, domain.Errorf(domain.ErrValidation, "unknown signature method %q", params.Method)
	}
	if err != nil {
		return nil, err
	}

	record := models.SignatureRecord{
		Signer:    signer.Hex(),
		Signature: hexutil.Encode(encoded),
		Method:    params.Method,
		SignedAt:  time.Now().UTC(),
	}
	if err := tx.AddConfirmation(record); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateWalletTransaction(ctx, tx); err != nil {
		return nil, err
	}

	s.log.Info("transaction signed",
		"safeTxHash", tx.SafeTxHash, "signer", record.Signer, "method", record.Method,
		"confirmations", len(tx.Confirmations))
	return &SignTransactionResult{Transaction: tx, Record: record}, nil
}

func (s *SignTransaction) signEIP712(hash common.Hash) ([]byte, error) {
	sig, err := s.signer.SignDigest(hash)
	if err != nil {
		return nil, err
	}
	encoded, err := safe.EIP712Encode(sig)
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidSignature, err, "malformed signature")
	}
	return encoded, nil
}

func (s *SignTransaction) signEthSign(hash common.Hash) ([]byte, error) {
	sig, err := s.signer.SignMessage(hash)
	if err != nil {
		return nil, err
	}
	encoded, err := safe.EthSignEncode(sig)
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidSignature, err, "malformed signature")
	}
	return encoded, nil
}

// verifyExternal checks an out-of-band signature by recovering its signer and
// comparing against the claimed owner.
func (s *SignTransaction) verifyExternal(hash common.Hash, claimed common.Address, params SignTransactionParams) ([]byte, error) {
	sig, err := hexutil.Decode(params.ExternalSignature)
	if err != nil || len(sig) != safe.SignatureLength {
		return nil, domain.NewError(domain.ErrInvalidSignature,
			"external signature must be a 65-byte hex blob")
	}

	var recovered common.Address
	switch params.Method {
	case models.SignatureMethodEthSign:
		recovered, err = safe.RecoverEthSign(hash, sig)
	case models.SignatureMethodEIP712, "":
		recovered, err = safe.RecoverEIP712(hash, sig)
	default:
		return nil, domain.Errorf(domain.ErrValidation,
			"external signatures are not supported for method %q", params.Method)
	}
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidSignature, err, "signature does not recover")
	}
	if recovered != claimed {
		return nil, domain.Errorf(domain.ErrInvalidSignature,
			"signature recovers to %s, not claimed signer %s", recovered.Hex(), claimed.Hex())
	}
	return sig, nil
}

// approveOnChain records the approval in the wallet contract itself and
// returns the synthetic marker signature the execution blob will carry.
func (s *SignTransaction) approveOnChain(ctx context.Context, client ChainClient, chainID domain.ChainID, wallet common.Address, hash common.Hash) ([]byte, error) {
	owner := s.signer.Address()
	binding := bindings.NewSafe()

	// Skip the transaction if the approval is already on chain.
	out, err := client.CallContract(ctx, ethereum.CallMsg{
		To:   &wallet,
		Data: binding.PackApprovedHashes(owner, [32]byte(hash)),
	})
	if err == nil {
		if approved, uerr := binding.UnpackApprovedHashes(out); uerr == nil && approved.Sign() > 0 {
			return safe.ApprovedHashSignature(owner), nil
		}
	}

	calldata := binding.PackApproveHash([32]byte(hash))
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, err
	}
	gas, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From: owner,
		To:   &wallet,
		Data: calldata,
	})
	if err != nil {
		return nil, domain.WrapError(domain.ErrSimulationFailed, err, "hash approval does not simulate")
	}
	nonce, err := client.PendingNonceAt(ctx, owner)
	if err != nil {
		return nil, err
	}

	raw := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas * gasHeadroomBps / 10000,
		To:       &wallet,
		Data:     calldata,
	})
	signed, err := s.signer.SignTransaction(raw, new(big.Int).SetUint64(chainID.ID))
	if err != nil {
		return nil, err
	}
	if err := client.SendTransaction(ctx, signed); err != nil {
		return nil, err
	}
	receipt, err := client.WaitForConfirmations(ctx, signed.Hash(), s.cfg.Confirmations)
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, domain.Errorf(domain.ErrNetwork,
			"hash approval transaction %s reverted", receipt.TxHash)
	}

	return safe.ApprovedHashSignature(owner), nil
}

// fetchOwners reads the wallet's owner set.
func fetchOwners(ctx context.Context, client ChainClient, wallet common.Address) ([]common.Address, error) {
	binding := bindings.NewSafe()
	out, err := client.CallContract(ctx, ethereum.CallMsg{
		To:   &wallet,
		Data: binding.PackGetOwners(),
	})
	if err != nil {
		return nil, domain.WrapError(domain.ErrNetwork, err, "failed to read wallet owners")
	}
	owners, err := binding.UnpackGetOwners(out)
	if err != nil {
		return nil, domain.WrapError(domain.ErrValidation, err,
			"wallet returned an unreadable owner set; is the address a wallet?")
	}
	return owners, nil
}

func containsAddress(set []common.Address, addr common.Address) bool {
	for _, a := range set {
		if a == addr {
			return true
		}
	}
	return false
}
