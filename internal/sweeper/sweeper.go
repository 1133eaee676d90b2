package sweeper

import (
	"context"
)

// Sweeper is a background job that keeps a derived table in step with chain state
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs passes until ctx is canceled, or once in run-once mode
	Start(ctx context.Context) error

	// Stop waits for the current pass to finish or ctx to expire
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
