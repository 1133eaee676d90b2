package creation

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/providers/ethereum"
	"github.com/tokentreat/treat-service/internal/token"
	"github.com/tokentreat/treat-service/internal/types"
)

// Quoter computes the platform fee and total of a treat value
//
//go:generate mockgen -source=quote.go -destination=../mocks/quoter.go -package=mocks -mock_names=Quoter=MockQuoter
type Quoter interface {
	// Quote converts value to the token's smallest unit and adds the platform fee
	Quote(ctx context.Context, b ethereum.Binding, value, tokenAddress string) (*domain.Quote, error)
}

type quoter struct {
	tokens token.Resolver
}

// NewQuoter creates a new quoter
func NewQuoter(tokens token.Resolver) Quoter {
	return &quoter{tokens: tokens}
}

func (q *quoter) Quote(ctx context.Context, b ethereum.Binding, value, tokenAddress string) (*domain.Quote, error) {
	tokenAddress, err := NormalizeToken(tokenAddress)
	if err != nil {
		return nil, err
	}

	desc, err := q.tokens.Resolve(ctx, b, tokenAddress)
	if err != nil {
		return nil, err
	}

	amount, err := domain.ParseUnits(value, desc.Decimals)
	if err != nil {
		return nil, &domain.ValidationError{Field: "value", Message: err.Error()}
	}

	fee, err := b.Treats().CalculatePlatformFee(ctx, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate platform fee: %w", err)
	}

	total := new(big.Int).Add(amount, fee)
	return &domain.Quote{
		Value:          value,
		Token:          desc,
		Amount:         amount,
		Fee:            fee,
		Total:          total,
		FormattedFee:   domain.FormatUnits(fee, desc.Decimals),
		FormattedTotal: domain.FormatUnits(total, desc.Decimals),
	}, nil
}

// NormalizeToken maps an empty token to the native sentinel and checksums the rest
func NormalizeToken(tokenAddress string) (string, error) {
	tokenAddress = strings.TrimSpace(tokenAddress)
	if tokenAddress == "" || domain.IsZeroAddress(tokenAddress) {
		return domain.ETHEREUM_ZERO_ADDRESS, nil
	}
	if !types.IsEthereumAddress(tokenAddress) {
		return "", &domain.ValidationError{Field: "token_address", Message: "must be a hex address"}
	}
	return common.HexToAddress(tokenAddress).Hex(), nil
}

// QuoteCache holds the quote of one draft. A lookup with a different
// (value, token) pair discards the held quote and requotes.
type QuoteCache struct {
	quoter Quoter

	mu    sync.Mutex
	quote *domain.Quote
}

// NewQuoteCache creates an empty quote cache
func NewQuoteCache(quoter Quoter) *QuoteCache {
	return &QuoteCache{quoter: quoter}
}

// Get returns the held quote when it was produced for (value, token), requoting otherwise
func (c *QuoteCache) Get(ctx context.Context, b ethereum.Binding, value, tokenAddress string) (*domain.Quote, error) {
	normalized, err := NormalizeToken(tokenAddress)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.quote.Matches(value, normalized) {
		return c.quote, nil
	}
	c.quote = nil

	q, err := c.quoter.Quote(ctx, b, value, normalized)
	if err != nil {
		return nil, err
	}
	if !q.Matches(value, normalized) {
		return nil, errors.New("quote does not match the requested value and token")
	}
	c.quote = q
	return q, nil
}

// Current returns the held quote, or nil
func (c *QuoteCache) Current() *domain.Quote {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quote
}
