package treat

import (
	"context"
	"math/big"

	"github.com/tokentreat/treat-service/internal/domain"
)

// CandidateIndex is the persisted set of treat ids that were burn eligible
// when last swept. It stores identifiers only; callers re-derive status live.
//
//go:generate mockgen -source=index.go -destination=../mocks/candidate_index.go -package=mocks -mock_names=CandidateIndex=MockCandidateIndex
type CandidateIndex interface {
	// ListBurnCandidateIDs returns candidate ids of chain ordered by id
	ListBurnCandidateIDs(ctx context.Context, chain domain.Chain, offset, limit int) ([]*big.Int, error)

	// RemoveBurnCandidate deletes id from the index of chain
	RemoveBurnCandidate(ctx context.Context, chain domain.Chain, id *big.Int) error
}
