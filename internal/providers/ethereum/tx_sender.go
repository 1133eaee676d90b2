package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/logger"
)

const (
	defaultConfirmationTimeout = 2 * time.Minute
	defaultReceiptPollInterval = 2 * time.Second
)

// ErrTransactionReverted is returned when a mined transaction has a failed status
var ErrTransactionReverted = errors.New("transaction reverted")

// TxSender signs, sends and confirms transactions from a single wallet
//
//go:generate mockgen -source=tx_sender.go -destination=../../mocks/tx_sender.go -package=mocks -mock_names=TxSender=MockTxSender
type TxSender interface {
	// From returns the wallet address
	From() common.Address

	// Send sends a transaction calling to with data and waits for its receipt
	Send(ctx context.Context, method string, to common.Address, data []byte, value *big.Int) (*types.Receipt, error)
}

type txSender struct {
	client              adapter.EthClient
	key                 *ecdsa.PrivateKey
	from                common.Address
	chainID             *big.Int
	confirmationTimeout time.Duration
	pollInterval        time.Duration

	// mu serializes nonce allocation and submission
	mu sync.Mutex
}

// NewTxSender creates a new transaction sender for the wallet of key
func NewTxSender(client adapter.EthClient, key *ecdsa.PrivateKey, chainID *big.Int, confirmationTimeout, pollInterval time.Duration) TxSender {
	if confirmationTimeout <= 0 {
		confirmationTimeout = defaultConfirmationTimeout
	}
	if pollInterval <= 0 {
		pollInterval = defaultReceiptPollInterval
	}

	return &txSender{
		client:              client,
		key:                 key,
		from:                crypto.PubkeyToAddress(key.PublicKey),
		chainID:             chainID,
		confirmationTimeout: confirmationTimeout,
		pollInterval:        pollInterval,
	}
}

func (s *txSender) From() common.Address {
	return s.from
}

func (s *txSender) Send(ctx context.Context, method string, to common.Address, data []byte, value *big.Int) (*types.Receipt, error) {
	tx, err := s.signAndSend(ctx, to, data, value)
	if err != nil {
		return nil, &domain.TransactionError{Method: method, Err: err}
	}

	txHash := tx.Hash().Hex()
	logger.InfoCtx(ctx, "Transaction sent",
		zap.String("method", method),
		zap.String("txHash", txHash),
		zap.Uint64("nonce", tx.Nonce()))

	receipt, err := s.waitForReceipt(ctx, tx.Hash())
	if err != nil {
		return nil, &domain.TransactionError{Method: method, TxHash: txHash, Err: err}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, &domain.TransactionError{Method: method, TxHash: txHash, Err: ErrTransactionReverted}
	}

	logger.InfoCtx(ctx, "Transaction confirmed",
		zap.String("method", method),
		zap.String("txHash", txHash),
		zap.Uint64("gasUsed", receipt.GasUsed))

	return receipt, nil
}

// signAndSend builds, signs and submits a legacy transaction under the nonce lock
func (s *txSender) signAndSend(ctx context.Context, to common.Address, data []byte, value *big.Int) (*types.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value == nil {
		value = big.NewInt(0)
	}

	nonce, err := s.client.PendingNonceAt(ctx, s.from)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas price: %w", err)
	}

	gas, err := s.client.EstimateGas(ctx, ethereum.CallMsg{
		From:     s.from,
		To:       &to,
		GasPrice: gasPrice,
		Value:    value,
		Data:     data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}
	// 20% headroom over the estimate
	gas += gas / 5

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &to,
		Value:    value,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	return signed, nil
}

// waitForReceipt polls for the receipt of txHash until it is mined or the confirmation timeout elapses
func (s *txSender) waitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, s.confirmationTimeout)
	defer cancel()

	var receipt *types.Receipt
	operation := func() error {
		r, err := s.client.TransactionReceipt(waitCtx, txHash)
		if err != nil {
			if !errors.Is(err, ethereum.NotFound) {
				logger.WarnCtx(ctx, "failed to get receipt, retrying", zap.String("txHash", txHash.Hex()), zap.Error(err))
			}
			return err
		}
		receipt = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(backoff.NewConstantBackOff(s.pollInterval), waitCtx)); err != nil {
		return nil, fmt.Errorf("failed to wait for receipt: %w", err)
	}

	return receipt, nil
}
