package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/mocks"
	"github.com/tokentreat/treat-service/internal/ratelimit"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testLimiterMocks struct {
	ctrl    *gomock.Controller
	redis   *mocks.MockRedisRateLimiter
	clock   *mocks.MockClock
	limiter ratelimit.Limiter
}

func setupTestLimiter(t *testing.T, rps float64) *testLimiterMocks {
	ctrl := gomock.NewController(t)
	tm := &testLimiterMocks{
		ctrl:  ctrl,
		redis: mocks.NewMockRedisRateLimiter(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
	tm.limiter = ratelimit.NewDistributed(ratelimit.Config{Name: "imagegen", RPS: rps, Burst: 1}, tm.redis, tm.clock)
	return tm
}

func firedChan() <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func TestDistributed_Allowed(t *testing.T) {
	tm := setupTestLimiter(t, 2)
	defer tm.ctrl.Finish()

	now := time.Unix(1_700_000_000, 0)
	tm.clock.EXPECT().Now().Return(now)
	tm.redis.EXPECT().
		Allow(gomock.Any(), ratelimit.DEFAULT_KEY_PREFIX+"imagegen", redis_rate.Limit{Rate: 2, Burst: 1, Period: time.Second}).
		Return(&redis_rate.Result{Allowed: 1}, nil)

	require.NoError(t, tm.limiter.Wait(context.Background()))
}

func TestDistributed_FractionalRate(t *testing.T) {
	tm := setupTestLimiter(t, 0.5)
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(time.Unix(0, 0))
	tm.redis.EXPECT().
		Allow(gomock.Any(), gomock.Any(), redis_rate.Limit{Rate: 1, Burst: 1, Period: 2 * time.Second}).
		Return(&redis_rate.Result{Allowed: 1}, nil)

	require.NoError(t, tm.limiter.Wait(context.Background()))
}

func TestDistributed_WaitsForRetryAfter(t *testing.T) {
	tm := setupTestLimiter(t, 1)
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(time.Unix(0, 0)).Times(2)
	gomock.InOrder(
		tm.redis.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&redis_rate.Result{Allowed: 0, RetryAfter: time.Second}, nil),
		tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
			assert.GreaterOrEqual(t, d, 500*time.Millisecond)
			assert.LessOrEqual(t, d, 1500*time.Millisecond)
			return firedChan()
		}),
		tm.redis.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&redis_rate.Result{Allowed: 1}, nil),
	)

	require.NoError(t, tm.limiter.Wait(context.Background()))
}

func TestDistributed_FallsBackOnRedisError(t *testing.T) {
	tm := setupTestLimiter(t, 100)
	defer tm.ctrl.Finish()

	now := time.Unix(1_700_000_000, 0)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.redis.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused")).Times(1)

	// Both waits are served locally; Redis is not retried inside the degraded period
	require.NoError(t, tm.limiter.Wait(context.Background()))
	require.NoError(t, tm.limiter.Wait(context.Background()))
}

func TestDistributed_ContextCancelled(t *testing.T) {
	tm := setupTestLimiter(t, 1)
	defer tm.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, tm.limiter.Wait(ctx), context.Canceled)
}

func TestNewDistributed_Unlimited(t *testing.T) {
	tm := setupTestLimiter(t, 0)
	defer tm.ctrl.Finish()

	// No Redis round trip when limiting is disabled
	for i := 0; i < 5; i++ {
		require.NoError(t, tm.limiter.Wait(context.Background()))
	}
}

func TestNewLocal(t *testing.T) {
	limiter := ratelimit.NewLocal(1000, 1)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Wait(ctx))
	}
}
