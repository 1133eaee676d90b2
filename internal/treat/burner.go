package treat

import (
	"context"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/inflight"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/notify"
	"github.com/tokentreat/treat-service/internal/providers/ethereum"
)

const (
	burnSuccessTitle = "Burned"
	burnErrorTitle   = "Error"
	burnErrorMessage = "Failed to Burn the treat"
)

// BurnResult is the outcome of a confirmed burn
type BurnResult struct {
	ID     string `json:"id"`
	TxHash string `json:"tx_hash"`
}

// Burner burns treats with the operator wallet
//
//go:generate mockgen -source=burner.go -destination=../mocks/burner.go -package=mocks -mock_names=Burner=MockBurner
type Burner interface {
	// Burn sends burnTreat(id) once and waits for one confirmation
	Burn(ctx context.Context, id *big.Int) (*BurnResult, error)
}

type burner struct {
	chain     domain.Chain
	connector ethereum.Connector
	guard     *inflight.Guard
	notifier  notify.Notifier
	tracker   *notify.LoadingTracker
	index     CandidateIndex
}

// NewBurner creates a new burner. index may be nil when no store is configured.
func NewBurner(chain domain.Chain, connector ethereum.Connector, guard *inflight.Guard, notifier notify.Notifier, tracker *notify.LoadingTracker, index CandidateIndex) Burner {
	return &burner{
		chain:     chain,
		connector: connector,
		guard:     guard,
		notifier:  notifier,
		tracker:   tracker,
		index:     index,
	}
}

func (b *burner) Burn(ctx context.Context, id *big.Int) (*BurnResult, error) {
	if id == nil || id.Sign() < 0 {
		return nil, &domain.ValidationError{Field: "id", Message: "must be a non-negative integer"}
	}

	binding, err := b.connector.Connect(ctx, b.chain)
	if err != nil {
		return nil, err
	}
	wallet, err := binding.RequireWallet()
	if err != nil {
		return nil, err
	}

	release, err := b.guard.Acquire("burn:" + id.String())
	if err != nil {
		return nil, err
	}
	defer release()

	end := b.tracker.Start(ctx, ScopeBurn)
	defer end()

	logger.InfoCtx(ctx, "Burning treat", zap.String("id", id.String()), zap.String("wallet", wallet.Hex()))

	receipt, err := binding.Treats().BurnTreat(ctx, id)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to burn treat"), zap.String("id", id.String()))
		b.notifier.Error(ctx, burnErrorTitle, burnErrorMessage)
		return nil, err
	}

	txHash := receipt.TxHash.Hex()
	b.notifier.Success(ctx, burnSuccessTitle,
		fmt.Sprintf("You have successfully Burned the Treat, Thanks for contributing, TxHash: %s", txHash))

	if b.index != nil {
		if err := b.index.RemoveBurnCandidate(ctx, b.chain, id); err != nil {
			logger.WarnCtx(ctx, "Failed to remove burned treat from index", zap.String("id", id.String()), zap.Error(err))
		}
	}

	return &BurnResult{ID: id.String(), TxHash: txHash}, nil
}
