package treat

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/notify"
	"github.com/tokentreat/treat-service/internal/providers/ethereum"
	"github.com/tokentreat/treat-service/internal/types"
)

// Source selects how burnable treats are enumerated
type Source string

const (
	// SourceScan scans the fixed id range 0..ScanBound inclusive
	SourceScan Source = "scan"
	// SourceSupply pages through ids up to totalSupply
	SourceSupply Source = "supply"
	// SourceIndex reads candidate ids maintained by the sweeper
	SourceIndex Source = "index"
)

// Valid reports whether s is a known source
func (s Source) Valid() bool {
	switch s {
	case SourceScan, SourceSupply, SourceIndex:
		return true
	}
	return false
}

// Loading scopes reported through the notifier
const (
	ScopeIssued   = "issued"
	ScopeBurnable = "burnable"
	ScopeBurn     = "burn"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page selects a window of burnable treats; Source falls back to the configured default
type Page struct {
	Source Source
	Offset int64
	Limit  int64
}

// BurnablePage is one page of burn eligible treats
type BurnablePage struct {
	Source     Source                 `json:"source"`
	Offset     int64                  `json:"offset"`
	Limit      int64                  `json:"limit"`
	NextOffset *int64                 `json:"next_offset,omitempty"`
	Treats     []*domain.DisplayTreat `json:"treats"`
}

// Aggregator builds the treat lists
//
//go:generate mockgen -source=aggregator.go -destination=../mocks/aggregator.go -package=mocks -mock_names=Aggregator=MockAggregator
type Aggregator interface {
	// Get fetches a single treat with its owner
	Get(ctx context.Context, id *big.Int) (*domain.DisplayTreat, error)

	// IssuedBy lists every treat issued by issuer in chain order, without filtering
	IssuedBy(ctx context.Context, issuer string) ([]*domain.DisplayTreat, error)

	// Burnable lists burn eligible treats from the selected source
	Burnable(ctx context.Context, page Page) (*BurnablePage, error)

	// Close stops the worker pool
	Close()
}

// AggregatorConfig holds the aggregator configuration
type AggregatorConfig struct {
	Chain         domain.Chain
	ScanBound     int64
	DefaultSource Source
	PoolSize      int
}

type aggregator struct {
	config    AggregatorConfig
	connector ethereum.Connector
	fetcher   Fetcher
	index     CandidateIndex
	tracker   *notify.LoadingTracker
	pool      pond.ResultPool[itemResult]
}

type itemResult struct {
	treat *domain.DisplayTreat
	err   error
}

// NewAggregator creates a new aggregator. index may be nil when no store is configured.
func NewAggregator(cfg AggregatorConfig, connector ethereum.Connector, fetcher Fetcher, index CandidateIndex, tracker *notify.LoadingTracker) Aggregator {
	if cfg.ScanBound < 0 {
		cfg.ScanBound = domain.DEFAULT_BURN_SCAN_BOUND
	}
	if !cfg.DefaultSource.Valid() {
		cfg.DefaultSource = SourceScan
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 8
	}

	return &aggregator{
		config:    cfg,
		connector: connector,
		fetcher:   fetcher,
		index:     index,
		tracker:   tracker,
		pool:      pond.NewResultPool[itemResult](cfg.PoolSize),
	}
}

func (a *aggregator) Get(ctx context.Context, id *big.Int) (*domain.DisplayTreat, error) {
	b, err := a.connector.Connect(ctx, a.config.Chain)
	if err != nil {
		return nil, err
	}
	return a.fetcher.Fetch(ctx, b, id, true)
}

func (a *aggregator) IssuedBy(ctx context.Context, issuer string) ([]*domain.DisplayTreat, error) {
	if !types.IsEthereumAddress(issuer) {
		return nil, &domain.ValidationError{Field: "address", Message: "must be a hex address"}
	}

	end := a.tracker.Start(ctx, ScopeIssued)
	defer end()

	b, err := a.connector.Connect(ctx, a.config.Chain)
	if err != nil {
		return nil, err
	}

	ids, err := b.Treats().GetIssuedTreats(ctx, common.HexToAddress(issuer))
	if err != nil {
		return nil, fmt.Errorf("failed to list issued treats: %w", err)
	}

	return a.collect(ctx, b, ids, true, nil)
}

func (a *aggregator) Burnable(ctx context.Context, page Page) (*BurnablePage, error) {
	if page.Source == "" {
		page.Source = a.config.DefaultSource
	}
	if !page.Source.Valid() {
		return nil, &domain.ValidationError{Field: "source", Message: "must be one of scan, supply, index"}
	}
	if page.Offset < 0 {
		return nil, &domain.ValidationError{Field: "offset", Message: "must not be negative"}
	}
	if page.Limit <= 0 {
		page.Limit = DefaultPageLimit
	}
	if page.Limit > MaxPageLimit {
		page.Limit = MaxPageLimit
	}
	if page.Source == SourceIndex && a.index == nil {
		return nil, &domain.ValidationError{Field: "source", Message: "burn index is not configured"}
	}

	end := a.tracker.Start(ctx, ScopeBurnable)
	defer end()

	b, err := a.connector.Connect(ctx, a.config.Chain)
	if err != nil {
		return nil, err
	}

	result := &BurnablePage{Source: page.Source}
	var ids []*big.Int

	switch page.Source {
	case SourceScan:
		// The fixed range is not paginated
		result.Limit = a.config.ScanBound + 1
		ids = idRange(0, a.config.ScanBound+1)
	case SourceSupply:
		supply, err := b.Treats().TotalSupply(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read total supply: %w", err)
		}
		// Ids are probed up to totalSupply inclusive since numbering may start at 0 or 1
		last := supply.Int64()
		stop := min(page.Offset+page.Limit, last+1)
		ids = idRange(page.Offset, stop)
		result.Offset = page.Offset
		result.Limit = page.Limit
		if stop <= last {
			next := stop
			result.NextOffset = &next
		}
	case SourceIndex:
		ids, err = a.index.ListBurnCandidateIDs(ctx, a.config.Chain, int(page.Offset), int(page.Limit))
		if err != nil {
			return nil, fmt.Errorf("failed to list burn candidates: %w", err)
		}
		result.Offset = page.Offset
		result.Limit = page.Limit
		if int64(len(ids)) == page.Limit {
			next := page.Offset + page.Limit
			result.NextOffset = &next
		}
	}

	treats, err := a.collect(ctx, b, ids, false, (*domain.DisplayTreat).BurnEligible)
	if err != nil {
		return nil, err
	}
	result.Treats = treats

	return result, nil
}

// collect fetches ids concurrently and returns the kept treats in input order.
// Item failures are logged and skipped; only cancellation and connection
// failures abort the pass.
func (a *aggregator) collect(ctx context.Context, b ethereum.Binding, ids []*big.Int, withOwner bool, keep func(*domain.DisplayTreat) bool) ([]*domain.DisplayTreat, error) {
	treats := make([]*domain.DisplayTreat, 0, len(ids))
	if len(ids) == 0 {
		return treats, nil
	}

	group := a.pool.NewGroupContext(ctx)
	for _, id := range ids {
		group.Submit(func() itemResult {
			if err := ctx.Err(); err != nil {
				return itemResult{err: err}
			}
			t, err := a.fetcher.Fetch(ctx, b, id, withOwner)
			return itemResult{treat: t, err: err}
		})
	}

	results, err := group.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, fmt.Errorf("aggregation pass failed: %w", err)
	}

	for i, r := range results {
		if r.err != nil {
			var connErr *domain.ConnectionError
			if errors.As(r.err, &connErr) {
				return nil, r.err
			}
			logger.WarnCtx(ctx, "Skipping treat",
				zap.String("id", ids[i].String()),
				zap.Bool("itemScoped", domain.IsItemScoped(r.err)),
				zap.Error(r.err))
			continue
		}
		if keep != nil && !keep(r.treat) {
			continue
		}
		treats = append(treats, r.treat)
	}

	return treats, nil
}

func (a *aggregator) Close() {
	a.pool.StopAndWait()
}

// idRange returns the ids in [from, to)
func idRange(from, to int64) []*big.Int {
	if to <= from {
		return nil
	}
	ids := make([]*big.Int, 0, to-from)
	for i := from; i < to; i++ {
		ids = append(ids, big.NewInt(i))
	}
	return ids
}
