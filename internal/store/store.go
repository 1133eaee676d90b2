package store

import (
	"context"
	"math/big"
	"time"

	"github.com/tokentreat/treat-service/internal/creation"
	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/treat"
)

// BurnCandidate is one row of the burn index
type BurnCandidate struct {
	Chain      domain.Chain
	ID         *big.Int
	Expiry     time.Time
	StatusCode domain.StatusCode
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	creation.RunStore
	treat.CandidateIndex
	CursorStore

	// UpsertBurnCandidates inserts or refreshes burn index rows
	UpsertBurnCandidates(ctx context.Context, candidates []BurnCandidate) error

	// RemoveBurnCandidates deletes ids from the burn index of chain
	RemoveBurnCandidates(ctx context.Context, chain domain.Chain, ids []*big.Int) error

	// PruneBurnCandidatesFrom deletes every id >= from from the burn index of chain
	PruneBurnCandidatesFrom(ctx context.Context, chain domain.Chain, from *big.Int) error

	// CountBurnCandidates returns the size of the burn index of chain
	CountBurnCandidates(ctx context.Context, chain domain.Chain) (int64, error)
}
