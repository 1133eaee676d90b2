package creation

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/imagegen"
	"github.com/tokentreat/treat-service/internal/inflight"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/notify"
	"github.com/tokentreat/treat-service/internal/providers/ethereum"
	"github.com/tokentreat/treat-service/internal/storage"
	"github.com/tokentreat/treat-service/internal/uri"
)

const (
	// GenericErrorMessage is the only failure detail shown for chain and upload failures
	GenericErrorMessage = "Error creating treat, please try again later"

	ScopeCreate = "create"
)

// Request starts a creation run. IdempotencyKey defaults to the draft hash.
type Request struct {
	Draft          domain.CreationDraft
	IdempotencyKey string
}

// Orchestrator runs the creation state machine
//
//go:generate mockgen -source=orchestrator.go -destination=../mocks/orchestrator.go -package=mocks -mock_names=Orchestrator=MockOrchestrator
type Orchestrator interface {
	// Create runs quote, approve, upload image, upload metadata and mint in
	// order, stopping at the first failure. The returned run is always
	// persisted, in SUCCESS or FAILED state, unless the request was rejected
	// as in flight.
	Create(ctx context.Context, req Request) (*Run, error)

	// Get returns a persisted run
	Get(ctx context.Context, id string) (*Run, error)
}

// Deps holds the collaborators of the orchestrator
type Deps struct {
	Connector   ethereum.Connector
	Quoter      Quoter
	Storage     storage.Client
	ImageGen    imagegen.Client
	HTTPClient  adapter.HTTPClient
	URIResolver uri.Resolver
	Runs        RunStore
	Guard       *inflight.Guard
	Notifier    notify.Notifier
	Tracker     *notify.LoadingTracker
	Clock       adapter.Clock
	JSON        adapter.JSON
	JCS         adapter.JCS
}

type orchestrator struct {
	chain domain.Chain
	deps  Deps
}

// NewOrchestrator creates a new creation orchestrator for chain
func NewOrchestrator(chain domain.Chain, deps Deps) Orchestrator {
	return &orchestrator{chain: chain, deps: deps}
}

func (o *orchestrator) Get(ctx context.Context, id string) (*Run, error) {
	return o.deps.Runs.GetRun(ctx, id)
}

func (o *orchestrator) Create(ctx context.Context, req Request) (*Run, error) {
	key := strings.TrimSpace(req.IdempotencyKey)
	if key == "" {
		var err error
		key, err = DraftKey(req.Draft, o.deps.JSON, o.deps.JCS)
		if err != nil {
			return nil, err
		}
	}

	release, err := o.deps.Guard.Acquire("mint:" + key)
	if err != nil {
		return nil, err
	}
	defer release()

	end := o.deps.Tracker.Start(ctx, ScopeCreate)
	defer end()

	now := o.deps.Clock.Now().UTC()
	run := &Run{
		ID:             uuid.NewString(),
		IdempotencyKey: key,
		State:          StateIdle,
		Draft:          req.Draft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := o.deps.Runs.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to persist creation run: %w", err)
	}

	if err := o.execute(ctx, run); err != nil {
		o.fail(ctx, run, err)
		return run, err
	}

	o.deps.Notifier.Success(ctx, "Success", "Treat created successfully TxHash: "+run.MintTxHash)
	return run, nil
}

func (o *orchestrator) execute(ctx context.Context, run *Run) error {
	b, err := o.deps.Connector.Connect(ctx, o.chain)
	if err != nil {
		return err
	}
	wallet, err := b.RequireWallet()
	if err != nil {
		return err
	}

	valid, err := Validate(run.Draft, o.deps.Clock.Now())
	if err != nil {
		return err
	}

	// Quoting
	o.transition(ctx, run, StateQuoting)
	quotes := NewQuoteCache(o.deps.Quoter)
	quote, err := quotes.Get(ctx, b, valid.Draft.Value, valid.TokenAddress)
	if err != nil {
		return err
	}
	run.Quote = quote

	// Approving, only when the allowance does not cover the total
	if !quote.Token.IsNative() {
		token := valid.tokenAddress()
		spender := b.Treats().Address()
		allowance, err := b.ERC20().Allowance(ctx, token, wallet, spender)
		if err != nil {
			return fmt.Errorf("failed to read allowance: %w", err)
		}
		if allowance.Cmp(quote.Total) < 0 {
			o.transition(ctx, run, StateApproving)
			receipt, err := b.ERC20().Approve(ctx, token, spender, quote.Total)
			if err != nil {
				return err
			}
			run.ApprovalTxHash = receipt.TxHash.Hex()
		}
	}

	// Uploading image
	o.transition(ctx, run, StateUploadingImage)
	image, err := o.imageBytes(ctx, valid.Draft.Image)
	if err != nil {
		return err
	}
	imageUpload, err := o.deps.Storage.UploadImage(ctx, "treat-"+run.ID, image)
	if err != nil {
		return err
	}
	run.ImageURI = imageUpload.URI

	// Uploading metadata
	o.transition(ctx, run, StateUploadingMetadata)
	doc := storage.NewTreatDocument(valid.Draft.Name, valid.Draft.Description, run.ImageURI, string(valid.Draft.Type), valid.Draft.Validity)
	document, err := doc.Canonicalize(o.deps.JSON, o.deps.JCS)
	if err != nil {
		return err
	}
	metadataUpload, err := o.deps.Storage.UploadJSON(ctx, "treat-"+run.ID, document)
	if err != nil {
		return err
	}
	run.MetadataURI = metadataUpload.URI

	// Minting
	o.transition(ctx, run, StateMinting)
	quote, err = quotes.Get(ctx, b, valid.Draft.Value, valid.TokenAddress)
	if err != nil {
		return err
	}
	value := big.NewInt(0)
	if quote.Token.IsNative() {
		value = quote.Total
	}
	receipt, err := b.Treats().MintTreat(ctx, ethereum.MintArgs{
		Recipient:     valid.Recipient,
		MetadataHash:  metadataUpload.Hash,
		Expiry:        big.NewInt(valid.Expiry.Unix()),
		Amount:        quote.Amount,
		TokenAddress:  valid.tokenAddress(),
		RefundAddress: valid.RefundAddress,
		BurnOnClaim:   valid.Draft.BurnOnClaim,
		Transferable:  valid.Draft.Transferable,
		TreatType:     string(valid.Draft.Type),
	}, value)
	if err != nil {
		return err
	}
	run.MintTxHash = receipt.TxHash.Hex()

	o.transition(ctx, run, StateSuccess)
	return nil
}

// imageBytes returns the image content of the draft's single image source
func (o *orchestrator) imageBytes(ctx context.Context, src domain.ImageSource) ([]byte, error) {
	if len(src.Data) > 0 {
		return src.Data, nil
	}

	imageURL := strings.TrimSpace(src.URL)
	if imageURL == "" {
		generated, err := o.deps.ImageGen.Generate(ctx, strings.TrimSpace(src.Prompt))
		if err != nil {
			return nil, err
		}
		imageURL = generated
	}

	data, err := o.deps.HTTPClient.GetBytes(ctx, o.deps.URIResolver.Resolve(imageURL))
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	return data, nil
}

// transition moves run to state, persisting and publishing the step.
// Persistence failures are logged; they must not hide a sent transaction.
func (o *orchestrator) transition(ctx context.Context, run *Run, state State) {
	if !CanTransition(run.State, state) {
		logger.WarnCtx(ctx, "Unexpected creation transition",
			zap.String("from", string(run.State)),
			zap.String("to", string(state)))
	}
	run.State = state
	run.UpdatedAt = o.deps.Clock.Now().UTC()

	if err := o.deps.Runs.UpdateRun(ctx, run); err != nil {
		logger.WarnCtx(ctx, "Failed to persist creation run",
			zap.String("runID", run.ID),
			zap.String("state", string(state)),
			zap.Error(err))
	}
	o.deps.Notifier.Progress(ctx, ScopeCreate+":"+run.ID, string(state))
}

// fail moves run to FAILED with a user-facing message and logs the cause
func (o *orchestrator) fail(ctx context.Context, run *Run, cause error) {
	message := UserMessage(cause)
	logger.ErrorCtx(ctx, cause,
		zap.String("message", "Treat creation failed"),
		zap.String("runID", run.ID),
		zap.String("state", string(run.State)))

	run.Error = message
	o.transition(ctx, run, StateFailed)
	o.deps.Notifier.Error(ctx, "Error", message)
}

// UserMessage returns the message shown for a creation failure. Validation
// problems are reported as is; everything else gets the generic message.
func UserMessage(err error) string {
	var validationErr *domain.ValidationError
	var connErr *domain.ConnectionError
	switch {
	case errors.Is(err, domain.ErrMultiRecipientUnsupported):
		return "Not supported yet, please enter only one receipient address"
	case errors.As(err, &validationErr):
		if validationErr.Field == "recipients" || validationErr.Field == "value" {
			return validationErr.Message
		}
		return validationErr.Error()
	case errors.As(err, &connErr) && errors.Is(err, domain.ErrWalletNotConnected):
		return "Please connect your wallet"
	}
	return GenericErrorMessage
}

// DraftKey derives the idempotency key of a draft from its canonical JSON and image bytes
func DraftKey(draft domain.CreationDraft, json adapter.JSON, jcs adapter.JCS) (string, error) {
	data, err := json.Marshal(draft)
	if err != nil {
		return "", fmt.Errorf("failed to marshal draft: %w", err)
	}
	canonical, err := jcs.Transform(data)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize draft: %w", err)
	}
	return crypto.Keccak256Hash(canonical, draft.Image.Data).Hex(), nil
}
