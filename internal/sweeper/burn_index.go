package sweeper

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/providers/ethereum"
	"github.com/tokentreat/treat-service/internal/store"
)

const (
	DEFAULT_SWEEP_INTERVAL   = 10 * time.Minute
	DEFAULT_SWEEP_BATCH_SIZE = 100
	DEFAULT_SWEEP_POOL_SIZE  = 8
)

// BurnIndexSweeperConfig holds configuration for the burn index sweeper
type BurnIndexSweeperConfig struct {
	Chain     domain.Chain
	Interval  time.Duration // Time to sleep between passes
	BatchSize int64         // Treat ids read per batch
	PoolSize  int           // Concurrent record reads
	RunOnce   bool          // Exit after one full pass
}

type verdict int

const (
	verdictSkip verdict = iota
	verdictEligible
	verdictIneligible
)

type sweepResult struct {
	id      *big.Int
	record  *domain.TreatRecord
	verdict verdict
}

// burnIndexSweeper walks the whole supply in batches and keeps the burn index
// in sync with on-chain state. Progress is checkpointed after every batch so a
// restarted sweeper resumes where it stopped.
type burnIndexSweeper struct {
	config    BurnIndexSweeperConfig
	connector ethereum.Connector
	store     store.Store
	clock     adapter.Clock
	pool      pond.ResultPool[sweepResult]
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewBurnIndexSweeper creates a new burn index sweeper
func NewBurnIndexSweeper(config BurnIndexSweeperConfig, connector ethereum.Connector, st store.Store, clock adapter.Clock) Sweeper {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_SWEEP_INTERVAL
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DEFAULT_SWEEP_BATCH_SIZE
	}
	if config.PoolSize <= 0 {
		config.PoolSize = DEFAULT_SWEEP_POOL_SIZE
	}

	return &burnIndexSweeper{
		config:    config,
		connector: connector,
		store:     st,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *burnIndexSweeper) Name() string {
	return "burn-index-sweeper"
}

// Start runs sweep passes until the context is canceled, Stop is called or,
// in run-once mode, the first pass ends
func (s *burnIndexSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting burn index sweeper",
		zap.String("chain", string(s.config.Chain)),
		zap.Int64("batch_size", s.config.BatchSize),
		zap.Int("pool_size", s.config.PoolSize),
		zap.Duration("interval", s.config.Interval),
		zap.Bool("run_once", s.config.RunOnce),
	)

	s.pool = pond.NewResultPool[sweepResult](s.config.PoolSize, pond.WithContext(ctx))
	defer s.pool.StopAndWait()

	for {
		err := s.runSweepCycle(ctx)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, errStopped) {
			logger.ErrorCtx(ctx, err, zap.String("chain", string(s.config.Chain)))
		}

		if s.config.RunOnce {
			if errors.Is(err, errStopped) {
				return nil
			}
			return err
		}
		if !s.sleep(ctx, s.config.Interval) {
			logger.InfoCtx(ctx, "Burn index sweeper stopping")
			return nil
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *burnIndexSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping burn index sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Burn index sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Burn index sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

var errStopped = errors.New("sweeper stopped")

// runSweepCycle sweeps ids from the saved cursor up to the current total supply
func (s *burnIndexSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	b, err := s.connector.Connect(ctx, s.config.Chain)
	if err != nil {
		return err
	}

	supply, err := b.Treats().TotalSupply(ctx)
	if err != nil {
		return fmt.Errorf("failed to read total supply: %w", err)
	}
	if !supply.IsUint64() {
		return fmt.Errorf("total supply out of range: %s", supply)
	}
	total := supply.Uint64()

	cursor, err := s.store.GetSweepCursor(ctx, s.config.Chain)
	if err != nil {
		return err
	}
	if cursor > total {
		cursor = 0
	}

	logger.InfoCtx(ctx, "Starting sweep cycle",
		zap.Uint64("cursor", cursor),
		zap.Uint64("total_supply", total))

	var eligible, removed, skipped int
	batch := uint64(s.config.BatchSize)
	for start := cursor; start <= total; start += batch {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopChan:
			return errStopped
		default:
		}

		// Ids are 0..total inclusive
		stop := min(start+batch, total+1)
		e, r, sk, err := s.sweepBatch(ctx, b, start, stop)
		if err != nil {
			return err
		}
		eligible, removed, skipped = eligible+e, removed+r, skipped+sk

		if err := s.store.SetSweepCursor(ctx, s.config.Chain, stop); err != nil {
			return err
		}
	}

	if err := s.store.PruneBurnCandidatesFrom(ctx, s.config.Chain, new(big.Int).SetUint64(total+1)); err != nil {
		return err
	}
	if err := s.store.SetSweepCursor(ctx, s.config.Chain, 0); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Uint64("total_supply", total),
		zap.Int("eligible", eligible),
		zap.Int("removed", removed),
		zap.Int("skipped", skipped),
	)

	return nil
}

// sweepBatch reads ids [start, stop) and applies the verdicts to the index.
// Ids that fail to read keep whatever the index already holds.
func (s *burnIndexSweeper) sweepBatch(ctx context.Context, b ethereum.Binding, start, stop uint64) (int, int, int, error) {
	now := s.clock.Now().Unix()
	group := s.pool.NewGroupContext(ctx)
	for id := start; id < stop; id++ {
		treatID := new(big.Int).SetUint64(id)
		group.Submit(func() sweepResult {
			return s.check(ctx, b, treatID, now)
		})
	}

	results, err := group.Wait()
	if err != nil {
		return 0, 0, 0, err
	}

	var upserts []store.BurnCandidate
	var removals []*big.Int
	skipped := 0
	for _, r := range results {
		switch r.verdict {
		case verdictEligible:
			upserts = append(upserts, store.BurnCandidate{
				Chain:      s.config.Chain,
				ID:         r.id,
				Expiry:     s.clock.Unix(r.record.Expiry, 0).UTC(),
				StatusCode: r.record.StatusCode,
			})
		case verdictIneligible:
			removals = append(removals, r.id)
		default:
			skipped++
		}
	}

	if err := s.flushWithRetry(ctx, upserts, removals); err != nil {
		return 0, 0, 0, err
	}

	return len(upserts), len(removals), skipped, nil
}

// check reads one record and decides its burn index membership
func (s *burnIndexSweeper) check(ctx context.Context, b ethereum.Binding, id *big.Int, now int64) sweepResult {
	record, err := b.Treats().GetTreatInfo(ctx, id)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return sweepResult{id: id, verdict: verdictIneligible}
		}
		logger.WarnCtx(ctx, "Failed to read treat, keeping index entry",
			zap.String("id", id.String()),
			zap.Error(err))
		return sweepResult{id: id, verdict: verdictSkip}
	}

	if domain.Derive(record.StatusCode, record.Expiry, now) == domain.DisplayStatusBurnEligible {
		return sweepResult{id: id, record: record, verdict: verdictEligible}
	}
	return sweepResult{id: id, record: record, verdict: verdictIneligible}
}

// flushWithRetry writes one batch of index changes with exponential backoff retry
func (s *burnIndexSweeper) flushWithRetry(ctx context.Context, upserts []store.BurnCandidate, removals []*big.Int) error {
	if len(upserts) == 0 && len(removals) == 0 {
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 5 * time.Minute
	b.RandomizationFactor = 0.5

	var attemptCount int
	operation := func() error {
		if len(upserts) > 0 {
			if err := s.store.UpsertBurnCandidates(ctx, upserts); err != nil {
				return err
			}
		}
		if len(removals) > 0 {
			return s.store.RemoveBurnCandidates(ctx, s.config.Chain, removals)
		}
		return nil
	}
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Burn index flush failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return fmt.Errorf("failed to flush burn index after %d attempts: %w", attemptCount, err)
	}

	return nil
}

// sleep waits for duration. It returns false when interrupted by the context or Stop.
func (s *burnIndexSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
