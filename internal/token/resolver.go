package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/providers/ethereum"
)

// MaxDecimals is the largest decimals value accepted from a token contract
const MaxDecimals = 36

// Resolver resolves the decimals and symbol of the token a treat is denominated in
//
//go:generate mockgen -source=resolver.go -destination=../mocks/token_resolver.go -package=mocks -mock_names=Resolver=MockTokenResolver
type Resolver interface {
	// Resolve returns the descriptor of address; the zero address is the native currency
	Resolve(ctx context.Context, b ethereum.Binding, address string) (domain.TokenDescriptor, error)
}

type resolver struct {
	nativeSymbol string
	cache        Cache
	group        singleflight.Group
}

// NewResolver creates a new token resolver
func NewResolver(nativeSymbol string, cache Cache) Resolver {
	if nativeSymbol == "" {
		nativeSymbol = domain.DEFAULT_NATIVE_SYMBOL
	}
	return &resolver{nativeSymbol: nativeSymbol, cache: cache}
}

func (r *resolver) Resolve(ctx context.Context, b ethereum.Binding, address string) (domain.TokenDescriptor, error) {
	if domain.IsZeroAddress(address) {
		return domain.TokenDescriptor{
			Address:  domain.ETHEREUM_ZERO_ADDRESS,
			Symbol:   r.nativeSymbol,
			Decimals: domain.NATIVE_DECIMALS,
		}, nil
	}
	if !common.IsHexAddress(address) {
		return domain.TokenDescriptor{}, &domain.TokenResolutionError{Address: address, Err: errors.New("invalid address")}
	}

	key := CacheKey(b.Chain(), address)
	if desc, ok := r.lookup(ctx, key); ok {
		return desc, nil
	}

	// Concurrent first lookups of one address share a single round-trip
	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		if desc, ok := r.lookup(ctx, key); ok {
			return desc, nil
		}

		desc, err := r.fetch(ctx, b, common.HexToAddress(address))
		if err != nil {
			return nil, err
		}

		if err := r.cache.Set(ctx, key, desc); err != nil {
			logger.WarnCtx(ctx, "failed to cache token descriptor", zap.String("key", key), zap.Error(err))
		}
		return desc, nil
	})
	if err != nil {
		return domain.TokenDescriptor{}, err
	}

	return v.(domain.TokenDescriptor), nil
}

// lookup reads the cache, treating cache failures as misses
func (r *resolver) lookup(ctx context.Context, key string) (domain.TokenDescriptor, bool) {
	desc, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		logger.WarnCtx(ctx, "failed to read token cache", zap.String("key", key), zap.Error(err))
		return domain.TokenDescriptor{}, false
	}
	return desc, ok
}

// fetch reads decimals and symbol from the token contract
func (r *resolver) fetch(ctx context.Context, b ethereum.Binding, token common.Address) (domain.TokenDescriptor, error) {
	decimals, err := b.ERC20().Decimals(ctx, token)
	if err != nil {
		return domain.TokenDescriptor{}, &domain.TokenResolutionError{Address: token.Hex(), Err: fmt.Errorf("decimals: %w", err)}
	}
	if decimals > MaxDecimals {
		return domain.TokenDescriptor{}, &domain.TokenResolutionError{Address: token.Hex(), Err: fmt.Errorf("decimals out of range: %d", decimals)}
	}

	symbol, err := b.ERC20().Symbol(ctx, token)
	if err != nil {
		return domain.TokenDescriptor{}, &domain.TokenResolutionError{Address: token.Hex(), Err: fmt.Errorf("symbol: %w", err)}
	}
	if symbol == "" {
		return domain.TokenDescriptor{}, &domain.TokenResolutionError{Address: token.Hex(), Err: errors.New("empty symbol")}
	}

	logger.DebugCtx(ctx, "Resolved token",
		zap.String("address", token.Hex()),
		zap.String("symbol", symbol),
		zap.Uint8("decimals", decimals))

	return domain.TokenDescriptor{
		Address:  token.Hex(),
		Symbol:   symbol,
		Decimals: decimals,
	}, nil
}
