package executor

import (
	"context"
	"math/big"

	"github.com/tokentreat/treat-service/internal/creation"
	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/imagegen"
	"github.com/tokentreat/treat-service/internal/providers/ethereum"
	"github.com/tokentreat/treat-service/internal/registry"
	"github.com/tokentreat/treat-service/internal/token"
	"github.com/tokentreat/treat-service/internal/treat"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetTreat fetches a single treat with its owner
	GetTreat(ctx context.Context, id *big.Int) (*domain.DisplayTreat, error)

	// ListIssuedTreats lists the treats issued by an address
	ListIssuedTreats(ctx context.Context, issuer string) ([]*domain.DisplayTreat, error)

	// ListBurnableTreats lists burn eligible treats from the selected source
	ListBurnableTreats(ctx context.Context, page treat.Page) (*treat.BurnablePage, error)

	// GetToken resolves the descriptor of a token address
	GetToken(ctx context.Context, address string) (domain.TokenDescriptor, error)

	// ListTokens resolves the descriptors of every offered payment token
	ListTokens(ctx context.Context) ([]TokenOption, error)

	// Quote computes the fee breakdown of a value in a token
	Quote(ctx context.Context, value, tokenAddress string) (*domain.Quote, error)

	// CreateTreat runs the creation state machine
	CreateTreat(ctx context.Context, req creation.Request) (*creation.Run, error)

	// GetCreationRun returns a persisted creation run
	GetCreationRun(ctx context.Context, id string) (*creation.Run, error)

	// BurnTreat burns a treat
	BurnTreat(ctx context.Context, id *big.Int) (*treat.BurnResult, error)

	// SubmitImagePrompt records the latest prompt of an image session
	SubmitImagePrompt(session, prompt string) imagegen.Result

	// GetImageSession returns the latest result of an image session
	GetImageSession(session string) (imagegen.Result, bool)
}

// TokenOption is an offered payment token with its on-chain descriptor
type TokenOption struct {
	Name string `json:"name"`
	domain.TokenDescriptor
}

// ImageSessions holds one debounced generator per session key
type ImageSessions interface {
	Submit(key, prompt string)
	Latest(key string) (imagegen.Result, bool)
}

// Deps holds the services behind the executor
type Deps struct {
	Chain        domain.Chain
	Connector    ethereum.Connector
	Aggregator   treat.Aggregator
	Burner       treat.Burner
	Orchestrator creation.Orchestrator
	Quoter       creation.Quoter
	Tokens       token.Resolver
	Registry     registry.TokenRegistry
	Images       ImageSessions
}

type executor struct {
	deps Deps
}

func NewExecutor(deps Deps) Executor {
	return &executor{deps: deps}
}

func (e *executor) GetTreat(ctx context.Context, id *big.Int) (*domain.DisplayTreat, error) {
	return e.deps.Aggregator.Get(ctx, id)
}

func (e *executor) ListIssuedTreats(ctx context.Context, issuer string) ([]*domain.DisplayTreat, error) {
	return e.deps.Aggregator.IssuedBy(ctx, issuer)
}

func (e *executor) ListBurnableTreats(ctx context.Context, page treat.Page) (*treat.BurnablePage, error) {
	return e.deps.Aggregator.Burnable(ctx, page)
}

func (e *executor) GetToken(ctx context.Context, address string) (domain.TokenDescriptor, error) {
	b, err := e.deps.Connector.Connect(ctx, e.deps.Chain)
	if err != nil {
		return domain.TokenDescriptor{}, err
	}
	return e.deps.Tokens.Resolve(ctx, b, address)
}

func (e *executor) ListTokens(ctx context.Context) ([]TokenOption, error) {
	b, err := e.deps.Connector.Connect(ctx, e.deps.Chain)
	if err != nil {
		return nil, err
	}

	entries := e.deps.Registry.Tokens(e.deps.Chain)
	options := make([]TokenOption, 0, len(entries))
	for _, entry := range entries {
		desc, err := e.deps.Tokens.Resolve(ctx, b, entry.Address)
		if err != nil {
			return nil, err
		}
		options = append(options, TokenOption{Name: entry.Name, TokenDescriptor: desc})
	}
	return options, nil
}

func (e *executor) Quote(ctx context.Context, value, tokenAddress string) (*domain.Quote, error) {
	if err := e.checkToken(tokenAddress); err != nil {
		return nil, err
	}
	b, err := e.deps.Connector.Connect(ctx, e.deps.Chain)
	if err != nil {
		return nil, err
	}
	return e.deps.Quoter.Quote(ctx, b, value, tokenAddress)
}

func (e *executor) CreateTreat(ctx context.Context, req creation.Request) (*creation.Run, error) {
	if err := e.checkToken(req.Draft.TokenAddress); err != nil {
		return nil, err
	}
	return e.deps.Orchestrator.Create(ctx, req)
}

func (e *executor) checkToken(address string) error {
	if !e.deps.Registry.IsSupported(e.deps.Chain, address) {
		return &domain.ValidationError{Field: "token_address", Message: "is not a supported payment token"}
	}
	return nil
}

func (e *executor) GetCreationRun(ctx context.Context, id string) (*creation.Run, error) {
	return e.deps.Orchestrator.Get(ctx, id)
}

func (e *executor) BurnTreat(ctx context.Context, id *big.Int) (*treat.BurnResult, error) {
	return e.deps.Burner.Burn(ctx, id)
}

func (e *executor) SubmitImagePrompt(session, prompt string) imagegen.Result {
	e.deps.Images.Submit(session, prompt)
	result, _ := e.deps.Images.Latest(session)
	return result
}

func (e *executor) GetImageSession(session string) (imagegen.Result, bool) {
	return e.deps.Images.Latest(session)
}
