package token

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/domain"
)

// Cache stores resolved token descriptors
//
//go:generate mockgen -source=cache.go -destination=../mocks/token_cache.go -package=mocks -mock_names=Cache=MockTokenCache
type Cache interface {
	// Get returns the descriptor stored under key; ok is false on a miss
	Get(ctx context.Context, key string) (desc domain.TokenDescriptor, ok bool, err error)

	// Set stores the descriptor under key
	Set(ctx context.Context, key string, desc domain.TokenDescriptor) error
}

// CacheKey returns the cache key of a token address on a chain
func CacheKey(chain domain.Chain, address string) string {
	return fmt.Sprintf("%s:%s", chain, strings.ToLower(address))
}

type memoryCache struct {
	mu    sync.RWMutex
	items map[string]domain.TokenDescriptor
}

// NewMemoryCache creates a process-lifetime in-memory cache
func NewMemoryCache() Cache {
	return &memoryCache{items: make(map[string]domain.TokenDescriptor)}
}

func (c *memoryCache) Get(_ context.Context, key string) (domain.TokenDescriptor, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	desc, ok := c.items[key]
	return desc, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, desc domain.TokenDescriptor) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = desc
	return nil
}

const redisKeyPrefix = "treat:token:"

type redisCache struct {
	client adapter.RedisClient
	json   adapter.JSON
	ttl    time.Duration
}

// NewRedisCache creates a cache shared between replicas through Redis
func NewRedisCache(client adapter.RedisClient, jsonAdapter adapter.JSON, ttl time.Duration) Cache {
	return &redisCache{client: client, json: jsonAdapter, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, key string) (domain.TokenDescriptor, bool, error) {
	raw, ok, err := c.client.Get(ctx, redisKeyPrefix+key)
	if err != nil || !ok {
		return domain.TokenDescriptor{}, false, err
	}

	var desc domain.TokenDescriptor
	if err := c.json.Unmarshal([]byte(raw), &desc); err != nil {
		return domain.TokenDescriptor{}, false, fmt.Errorf("failed to decode cached token: %w", err)
	}

	return desc, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, desc domain.TokenDescriptor) error {
	data, err := c.json.Marshal(desc)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	return c.client.Set(ctx, redisKeyPrefix+key, string(data), c.ttl)
}
