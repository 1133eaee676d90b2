package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tokentreat/treat-service/internal/domain"
)

// ERC20 is the client of ERC-20 token contracts
//
//go:generate mockgen -source=erc20.go -destination=../../mocks/erc20.go -package=mocks -mock_names=ERC20=MockERC20
type ERC20 interface {
	// Decimals returns the decimals of token
	Decimals(ctx context.Context, token common.Address) (uint8, error)

	// Symbol returns the symbol of token
	Symbol(ctx context.Context, token common.Address) (string, error)

	// Allowance returns how much spender may transfer on behalf of owner
	Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error)

	// Approve allows spender to transfer amount of token and waits for one confirmation
	Approve(ctx context.Context, token, spender common.Address, amount *big.Int) (*types.Receipt, error)
}

type erc20Client struct {
	chain  domain.Chain
	caller *caller
	sender TxSender
}

func (c *erc20Client) Decimals(ctx context.Context, token common.Address) (uint8, error) {
	out, err := c.caller.call(ctx, erc20ABI, token, "decimals")
	if err != nil {
		return 0, err
	}

	return *abi.ConvertType(out[0], new(uint8)).(*uint8), nil
}

func (c *erc20Client) Symbol(ctx context.Context, token common.Address) (string, error) {
	out, err := c.caller.call(ctx, erc20ABI, token, "symbol")
	if err != nil {
		return "", err
	}

	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func (c *erc20Client) Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error) {
	out, err := c.caller.call(ctx, erc20ABI, token, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *erc20Client) Approve(ctx context.Context, token, spender common.Address, amount *big.Int) (*types.Receipt, error) {
	if c.sender == nil {
		return nil, &domain.ConnectionError{Chain: c.chain, Err: domain.ErrWalletNotConnected}
	}

	data, err := erc20ABI.Pack("approve", spender, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to pack approve: %w", err)
	}

	return c.sender.Send(ctx, "approve", token, data, nil)
}
