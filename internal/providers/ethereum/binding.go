package ethereum

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/domain"
)

// Binding is a live connection to one chain: an RPC client plus an optional wallet signer
//
//go:generate mockgen -source=binding.go -destination=../../mocks/binding.go -package=mocks -mock_names=Binding=MockBinding
type Binding interface {
	// Chain returns the chain the binding is connected to
	Chain() domain.Chain

	// Treats returns the treat contract client
	Treats() TreatContract

	// ERC20 returns the ERC-20 client
	ERC20() ERC20

	// RequireWallet returns the wallet address or a ConnectionError when no wallet is configured
	RequireWallet() (common.Address, error)
}

type binding struct {
	chain   domain.Chain
	chainID *big.Int
	client  adapter.EthClient
	sender  TxSender // nil when no wallet is configured
	treats  *treatContract
	erc20   *erc20Client
}

func newBinding(chain domain.Chain, chainID *big.Int, client adapter.EthClient, contract common.Address, key *ecdsa.PrivateKey, cfg Config) *binding {
	b := &binding{
		chain:   chain,
		chainID: chainID,
		client:  client,
	}
	if key != nil {
		b.sender = NewTxSender(client, key, chainID, cfg.ConfirmationTimeout, cfg.ReceiptPollInterval)
	}

	reader := &caller{client: client, timeout: cfg.CallTimeout}
	b.treats = &treatContract{chain: chain, address: contract, caller: reader, sender: b.sender}
	b.erc20 = &erc20Client{chain: chain, caller: reader, sender: b.sender}
	return b
}

func (b *binding) Chain() domain.Chain {
	return b.chain
}

func (b *binding) Treats() TreatContract {
	return b.treats
}

func (b *binding) ERC20() ERC20 {
	return b.erc20
}

func (b *binding) RequireWallet() (common.Address, error) {
	if b.sender == nil {
		return common.Address{}, &domain.ConnectionError{Chain: b.chain, Err: domain.ErrWalletNotConnected}
	}
	return b.sender.From(), nil
}
