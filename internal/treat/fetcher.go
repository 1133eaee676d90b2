package treat

import (
	"context"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/metadata"
	"github.com/tokentreat/treat-service/internal/providers/ethereum"
	"github.com/tokentreat/treat-service/internal/token"
)

// Fetcher builds the display projection of a single treat
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/treat_fetcher.go -package=mocks -mock_names=Fetcher=MockTreatFetcher
type Fetcher interface {
	// Fetch reads the record, optionally its owner, the token and the metadata
	// document of id, then derives its display status against the clock
	Fetch(ctx context.Context, b ethereum.Binding, id *big.Int, withOwner bool) (*domain.DisplayTreat, error)
}

type fetcher struct {
	tokens   token.Resolver
	metadata metadata.Fetcher
	clock    adapter.Clock
}

// NewFetcher creates a new treat fetcher
func NewFetcher(tokens token.Resolver, metadataFetcher metadata.Fetcher, clock adapter.Clock) Fetcher {
	return &fetcher{
		tokens:   tokens,
		metadata: metadataFetcher,
		clock:    clock,
	}
}

func (f *fetcher) Fetch(ctx context.Context, b ethereum.Binding, id *big.Int, withOwner bool) (*domain.DisplayTreat, error) {
	record, err := b.Treats().GetTreatInfo(ctx, id)
	if err != nil {
		return nil, err
	}

	if withOwner {
		owner, err := b.Treats().OwnerOf(ctx, id)
		if err != nil {
			return nil, err
		}
		record.Owner = owner
	}

	desc, err := f.tokens.Resolve(ctx, b, record.TokenAddress.Hex())
	if err != nil {
		return nil, err
	}

	md, err := f.metadata.Fetch(ctx, record.TokenURI)
	if err != nil {
		return nil, err
	}

	display := project(record, desc, md, f.clock.Now().Unix())
	if !withOwner {
		display.Owner = ""
		display.Destroyed = false
	}

	logger.DebugCtx(ctx, "Fetched treat",
		zap.String("id", display.ID),
		zap.String("status", string(display.Status)))

	return display, nil
}

// project assembles the display treat from its parts
func project(record *domain.TreatRecord, desc domain.TokenDescriptor, md *domain.TreatMetadata, nowUnix int64) *domain.DisplayTreat {
	return &domain.DisplayTreat{
		ID:           record.ID.String(),
		Owner:        record.Owner.Hex(),
		Destroyed:    record.IsBurned(),
		Amount:       domain.FormatUnits(record.Amount, desc.Decimals),
		RawAmount:    rawAmount(record.Amount),
		Token:        desc,
		Expiry:       time.Unix(record.Expiry, 0).UTC(),
		StatusCode:   record.StatusCode,
		Status:       domain.Derive(record.StatusCode, record.Expiry, nowUnix),
		Transferable: record.Transferable,
		BurnOnClaim:  record.BurnOnClaim,
		TreatType:    record.TreatType,
		Description:  record.Description,
		TokenURI:     record.TokenURI,
		Metadata:     md,
	}
}

func rawAmount(amount *big.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.String()
}
