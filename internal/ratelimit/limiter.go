package ratelimit

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/logger"
)

const (
	DEFAULT_KEY_PREFIX = "treat:ratelimit:"

	// degradedPeriod is how long the local fallback is used after a Redis error
	degradedPeriod = 30 * time.Second
)

// Limiter blocks until a request may proceed
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockLimiter
type Limiter interface {
	// Wait blocks until a token is available or ctx is done
	Wait(ctx context.Context) error
}

// Config holds the limit of one named upstream
type Config struct {
	Name      string
	RPS       float64 // <= 0 disables limiting
	Burst     int
	KeyPrefix string
}

func (c Config) burst() int {
	return max(c.Burst, 1)
}

// NewLocal creates a process-local limiter
func NewLocal(rps float64, burst int) Limiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return rate.NewLimiter(limit, max(burst, 1))
}

type distributed struct {
	config        Config
	key           string
	limit         redis_rate.Limit
	redis         adapter.RedisRateLimiter
	local         *rate.Limiter
	clock         adapter.Clock
	mu            sync.Mutex
	degradedUntil time.Time
}

// NewDistributed creates a limiter shared by every replica through Redis.
// While Redis is failing, requests go through a local limiter with the same rate.
func NewDistributed(cfg Config, rl adapter.RedisRateLimiter, clock adapter.Clock) Limiter {
	if cfg.RPS <= 0 {
		return NewLocal(0, 1)
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DEFAULT_KEY_PREFIX
	}

	return &distributed{
		config: cfg,
		key:    cfg.KeyPrefix + cfg.Name,
		limit:  redisLimit(cfg.RPS, cfg.burst()),
		redis:  rl,
		local:  rate.NewLimiter(rate.Limit(cfg.RPS), cfg.burst()),
		clock:  clock,
	}
}

// redisLimit expresses rps as whole requests per period; fractional rates stretch the period
func redisLimit(rps float64, burst int) redis_rate.Limit {
	if rps >= 1 {
		return redis_rate.Limit{Rate: int(math.Floor(rps)), Burst: burst, Period: time.Second}
	}
	return redis_rate.Limit{Rate: 1, Burst: burst, Period: time.Duration(float64(time.Second) / rps)}
}

func (d *distributed) Wait(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.degraded() {
			return d.local.Wait(ctx)
		}

		res, err := d.redis.Allow(ctx, d.key, d.limit)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			d.markDegraded()
			logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local",
				zap.String("limiter", d.config.Name),
				zap.Error(err),
			)
			continue
		}

		if res.Allowed > 0 {
			return nil
		}

		// Spread retries over 50-150% of the advertised wait
		wait := time.Duration(float64(res.RetryAfter) * (0.5 + rand.Float64())) //nolint:gosec,G404
		logger.DebugCtx(ctx, "Rate limit token unavailable, waiting",
			zap.String("limiter", d.config.Name),
			zap.Duration("retry_after", res.RetryAfter),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.clock.After(wait):
		}
	}
}

func (d *distributed) degraded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clock.Now().Before(d.degradedUntil)
}

func (d *distributed) markDegraded() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.degradedUntil = d.clock.Now().Add(degradedPeriod)
}
