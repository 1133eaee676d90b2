package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/logger"
)

// ChainConfig holds the endpoint and contract of one chain
type ChainConfig struct {
	RPCURL          string
	ContractAddress string
	PrivateKey      string // hex, optional; reads work without it
}

// Config holds the connector configuration
type Config struct {
	Chains              map[domain.Chain]ChainConfig
	CallTimeout         time.Duration
	ConfirmationTimeout time.Duration
	ReceiptPollInterval time.Duration
}

// Connector resolves a binding for a chain
//
//go:generate mockgen -source=connector.go -destination=../../mocks/connector.go -package=mocks -mock_names=Connector=MockConnector
type Connector interface {
	// Connect returns the binding of chain, dialing it on first use
	Connect(ctx context.Context, chain domain.Chain) (Binding, error)

	// Close closes every binding
	Close()
}

type connector struct {
	cfg      Config
	dialer   adapter.EthClientDialer
	mu       sync.Mutex
	bindings map[domain.Chain]*binding
}

// NewConnector creates a new chain connector
func NewConnector(cfg Config, dialer adapter.EthClientDialer) Connector {
	return &connector{
		cfg:      cfg,
		dialer:   dialer,
		bindings: make(map[domain.Chain]*binding),
	}
}

// Connect returns the binding of chain. Repeated calls return the same binding without re-dialing.
func (c *connector) Connect(ctx context.Context, chain domain.Chain) (Binding, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b, ok := c.bindings[chain]; ok {
		return b, nil
	}

	chainCfg, ok := c.cfg.Chains[chain]
	if !ok || chainCfg.RPCURL == "" {
		return nil, &domain.ConnectionError{Chain: chain, Err: fmt.Errorf("no endpoint configured")}
	}
	if !common.IsHexAddress(chainCfg.ContractAddress) {
		return nil, &domain.ConnectionError{Chain: chain, Err: fmt.Errorf("invalid contract address: %q", chainCfg.ContractAddress)}
	}

	expectedID, err := chain.ChainID()
	if err != nil {
		return nil, &domain.ConnectionError{Chain: chain, Err: err}
	}

	var key *ecdsa.PrivateKey
	if chainCfg.PrivateKey != "" {
		key, err = crypto.HexToECDSA(strings.TrimPrefix(chainCfg.PrivateKey, "0x"))
		if err != nil {
			return nil, &domain.ConnectionError{Chain: chain, Err: fmt.Errorf("invalid private key: %w", err)}
		}
	}

	client, err := c.dialer.Dial(ctx, chainCfg.RPCURL)
	if err != nil {
		return nil, &domain.ConnectionError{Chain: chain, Err: fmt.Errorf("failed to dial: %w", err)}
	}

	reportedID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, &domain.ConnectionError{Chain: chain, Err: fmt.Errorf("failed to get chain id: %w", err)}
	}
	if reportedID.Cmp(expectedID) != 0 {
		client.Close()
		return nil, &domain.ConnectionError{Chain: chain, Err: fmt.Errorf("chain id mismatch: expected %s, got %s", expectedID, reportedID)}
	}

	b := newBinding(chain, expectedID, client, common.HexToAddress(chainCfg.ContractAddress), key, c.cfg)
	c.bindings[chain] = b

	fields := []zap.Field{zap.String("chain", string(chain)), zap.String("contract", chainCfg.ContractAddress)}
	if b.sender != nil {
		fields = append(fields, zap.String("wallet", b.sender.From().Hex()))
	}
	logger.InfoCtx(ctx, "Connected to chain", fields...)

	return b, nil
}

// Close closes every binding
func (c *connector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for chain, b := range c.bindings {
		b.client.Close()
		delete(c.bindings, chain)
	}
}
