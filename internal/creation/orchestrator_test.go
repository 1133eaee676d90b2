package creation_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/creation"
	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/inflight"
	"github.com/tokentreat/treat-service/internal/mocks"
	"github.com/tokentreat/treat-service/internal/notify"
	"github.com/tokentreat/treat-service/internal/providers/ethereum"
	"github.com/tokentreat/treat-service/internal/storage"
	"github.com/tokentreat/treat-service/internal/uri"
)

var (
	orchestratorNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	wallet          = common.HexToAddress("0x9999999999999999999999999999999999999999")
	treatAddress    = common.HexToAddress("0x7777777777777777777777777777777777777777")
	recipient       = "0x1111111111111111111111111111111111111111"
	refund          = "0x2222222222222222222222222222222222222222"
)

type testOrchestratorMocks struct {
	t            *testing.T
	ctrl         *gomock.Controller
	connector    *mocks.MockConnector
	binding      *mocks.MockBinding
	contract     *mocks.MockTreatContract
	erc20        *mocks.MockERC20
	quoter       *mocks.MockQuoter
	storage      *mocks.MockStorageClient
	imagegen     *mocks.MockImageGenClient
	httpClient   *mocks.MockHTTPClient
	notifier     *mocks.MockNotifier
	clock        *mocks.MockClock
	runs         creation.RunStore
	guard        *inflight.Guard
	steps        []string
	orchestrator creation.Orchestrator
}

func setupTestOrchestrator(t *testing.T) *testOrchestratorMocks {
	ctrl := gomock.NewController(t)
	tm := &testOrchestratorMocks{
		t:          t,
		ctrl:       ctrl,
		connector:  mocks.NewMockConnector(ctrl),
		binding:    mocks.NewMockBinding(ctrl),
		contract:   mocks.NewMockTreatContract(ctrl),
		erc20:      mocks.NewMockERC20(ctrl),
		quoter:     mocks.NewMockQuoter(ctrl),
		storage:    mocks.NewMockStorageClient(ctrl),
		imagegen:   mocks.NewMockImageGenClient(ctrl),
		httpClient: mocks.NewMockHTTPClient(ctrl),
		notifier:   mocks.NewMockNotifier(ctrl),
		clock:      mocks.NewMockClock(ctrl),
		runs:       creation.NewMemoryRunStore(),
		guard:      inflight.NewGuard(),
	}

	tm.connector.EXPECT().Connect(gomock.Any(), domain.ChainCrossFiTestnet).Return(tm.binding, nil).AnyTimes()
	tm.binding.EXPECT().Treats().Return(tm.contract).AnyTimes()
	tm.binding.EXPECT().ERC20().Return(tm.erc20).AnyTimes()
	tm.contract.EXPECT().Address().Return(treatAddress).AnyTimes()
	tm.clock.EXPECT().Now().Return(orchestratorNow).AnyTimes()
	tm.notifier.EXPECT().Loading(gomock.Any(), creation.ScopeCreate, gomock.Any()).AnyTimes()
	tm.notifier.EXPECT().Progress(gomock.Any(), gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, _ string, step string) {
			tm.steps = append(tm.steps, step)
		}).AnyTimes()

	tm.orchestrator = creation.NewOrchestrator(domain.ChainCrossFiTestnet, creation.Deps{
		Connector:   tm.connector,
		Quoter:      tm.quoter,
		Storage:     tm.storage,
		ImageGen:    tm.imagegen,
		HTTPClient:  tm.httpClient,
		URIResolver: uri.NewResolver(uri.Config{IPFSGateway: "https://gw.example.com"}),
		Runs:        tm.runs,
		Guard:       tm.guard,
		Notifier:    tm.notifier,
		Tracker:     notify.NewLoadingTracker(tm.notifier),
		Clock:       tm.clock,
		JSON:        adapter.NewJSON(),
		JCS:         adapter.NewJCS(),
	})
	return tm
}

func draft(token string) domain.CreationDraft {
	return domain.CreationDraft{
		Name:          "Coffee",
		Type:          domain.TreatTypeGift,
		Value:         "1.5",
		TokenAddress:  token,
		Validity:      "2026-12-31",
		Recipients:    recipient,
		RefundAddress: refund,
		BurnOnClaim:   true,
		Description:   "one free coffee",
		Image:         domain.ImageSource{Data: []byte("png-bytes")},
	}
}

func receipt(hash string) *types.Receipt {
	return &types.Receipt{TxHash: common.HexToHash(hash), Status: types.ReceiptStatusSuccessful}
}

func (tm *testOrchestratorMocks) expectUploads() {
	tm.storage.EXPECT().UploadImage(gomock.Any(), gomock.Any(), []byte("png-bytes")).
		Return(&storage.Upload{Hash: "bafyimage", URI: "ipfs://bafyimage"}, nil)
	tm.storage.EXPECT().UploadJSON(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, doc []byte) (*storage.Upload, error) {
			assert.Contains(tm.t, string(doc), `"image":"ipfs://bafyimage"`)
			return &storage.Upload{Hash: "bafymeta", URI: "ipfs://bafymeta"}, nil
		})
}

func TestOrchestrator_NativeSuccess(t *testing.T) {
	tm := setupTestOrchestrator(t)
	total := big.NewInt(1_515_000_000_000_000_000)
	quote := &domain.Quote{Value: "1.5", Token: xfi, Amount: big.NewInt(1_500_000_000_000_000_000), Fee: big.NewInt(15_000_000_000_000_000), Total: total}

	tm.binding.EXPECT().RequireWallet().Return(wallet, nil)
	tm.quoter.EXPECT().Quote(gomock.Any(), tm.binding, "1.5", domain.ETHEREUM_ZERO_ADDRESS).Return(quote, nil)
	tm.expectUploads()
	tm.contract.EXPECT().MintTreat(gomock.Any(), gomock.Any(), total).DoAndReturn(
		func(_ context.Context, args ethereum.MintArgs, _ *big.Int) (*types.Receipt, error) {
			assert.Equal(t, recipient, args.Recipient.Hex())
			assert.Equal(t, refund, args.RefundAddress.Hex())
			assert.Equal(t, "bafymeta", args.MetadataHash)
			assert.Equal(t, common.Address{}, args.TokenAddress)
			assert.Equal(t, quote.Amount, args.Amount)
			assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC).Unix(), args.Expiry.Int64())
			assert.True(t, args.BurnOnClaim)
			assert.False(t, args.Transferable)
			assert.Equal(t, "gift", args.TreatType)
			return receipt("0x01"), nil
		})
	tm.notifier.EXPECT().Success(gomock.Any(), "Success", gomock.Any())

	run, err := tm.orchestrator.Create(context.Background(), creation.Request{Draft: draft("")})
	require.NoError(t, err)

	assert.Equal(t, creation.StateSuccess, run.State)
	assert.Equal(t, common.HexToHash("0x01").Hex(), run.MintTxHash)
	assert.Empty(t, run.ApprovalTxHash)
	assert.Equal(t, "ipfs://bafymeta", run.MetadataURI)
	assert.Equal(t, []string{"QUOTING", "UPLOADING_IMAGE", "UPLOADING_METADATA", "MINTING", "SUCCESS"}, tm.steps)

	stored, err := tm.orchestrator.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, creation.StateSuccess, stored.State)
	assert.False(t, tm.guard.Held("mint:"+run.IdempotencyKey))
}

func TestOrchestrator_ERC20Approval(t *testing.T) {
	tests := []struct {
		name         string
		allowance    int64
		wantApproval bool
	}{
		{name: "insufficient allowance approves total", allowance: 5, wantApproval: true},
		{name: "sufficient allowance skips approval", allowance: 10_100_000, wantApproval: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestOrchestrator(t)
			total := big.NewInt(10_100_000)
			quote := &domain.Quote{Value: "1.5", Token: usdc, Amount: big.NewInt(10_000_000), Fee: big.NewInt(100_000), Total: total}
			token := common.HexToAddress(usdcAddress)

			tm.binding.EXPECT().RequireWallet().Return(wallet, nil)
			tm.quoter.EXPECT().Quote(gomock.Any(), tm.binding, "1.5", usdc.Address).Return(quote, nil)
			tm.erc20.EXPECT().Allowance(gomock.Any(), token, wallet, treatAddress).Return(big.NewInt(tt.allowance), nil)
			if tt.wantApproval {
				tm.erc20.EXPECT().Approve(gomock.Any(), token, treatAddress, total).Return(receipt("0xa1"), nil)
			}
			tm.expectUploads()
			// ERC-20 path sends no value
			tm.contract.EXPECT().MintTreat(gomock.Any(), gomock.Any(), big.NewInt(0)).DoAndReturn(
				func(_ context.Context, args ethereum.MintArgs, _ *big.Int) (*types.Receipt, error) {
					assert.Equal(t, token, args.TokenAddress)
					return receipt("0x02"), nil
				})
			tm.notifier.EXPECT().Success(gomock.Any(), gomock.Any(), gomock.Any())

			run, err := tm.orchestrator.Create(context.Background(), creation.Request{Draft: draft(usdcAddress)})
			require.NoError(t, err)

			if tt.wantApproval {
				assert.Equal(t, common.HexToHash("0xa1").Hex(), run.ApprovalTxHash)
				assert.Contains(t, tm.steps, "APPROVING")
			} else {
				assert.Empty(t, run.ApprovalTxHash)
				assert.NotContains(t, tm.steps, "APPROVING")
			}
		})
	}
}

func TestOrchestrator_GeneratedImage(t *testing.T) {
	tm := setupTestOrchestrator(t)
	quote := &domain.Quote{Value: "1.5", Token: xfi, Amount: big.NewInt(1), Fee: big.NewInt(0), Total: big.NewInt(1)}
	d := draft("")
	d.Image = domain.ImageSource{Prompt: "a coffee cup"}

	tm.binding.EXPECT().RequireWallet().Return(wallet, nil)
	tm.quoter.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(quote, nil)
	tm.imagegen.EXPECT().Generate(gomock.Any(), "a coffee cup").Return("ipfs://bafygenerated", nil)
	tm.httpClient.EXPECT().GetBytes(gomock.Any(), "https://gw.example.com/ipfs/bafygenerated").Return([]byte("png-bytes"), nil)
	tm.expectUploads()
	tm.contract.EXPECT().MintTreat(gomock.Any(), gomock.Any(), gomock.Any()).Return(receipt("0x03"), nil)
	tm.notifier.EXPECT().Success(gomock.Any(), gomock.Any(), gomock.Any())

	_, err := tm.orchestrator.Create(context.Background(), creation.Request{Draft: d})
	require.NoError(t, err)
}

func TestOrchestrator_Failures(t *testing.T) {
	quote := &domain.Quote{Value: "1.5", Token: xfi, Amount: big.NewInt(1), Fee: big.NewInt(0), Total: big.NewInt(1)}

	tests := []struct {
		name        string
		draft       func() domain.CreationDraft
		setup       func(tm *testOrchestratorMocks)
		wantMessage string
		wantState   []string
	}{
		{
			name:  "multiple recipients rejected before any write",
			draft: func() domain.CreationDraft { d := draft(""); d.Recipients = recipient + "," + refund; return d },
			setup: func(tm *testOrchestratorMocks) {
				tm.binding.EXPECT().RequireWallet().Return(wallet, nil)
			},
			wantMessage: "Not supported yet, please enter only one receipient address",
			wantState:   []string{"FAILED"},
		},
		{
			name:  "no wallet",
			draft: func() domain.CreationDraft { return draft("") },
			setup: func(tm *testOrchestratorMocks) {
				tm.binding.EXPECT().RequireWallet().Return(common.Address{},
					&domain.ConnectionError{Chain: domain.ChainCrossFiTestnet, Err: domain.ErrWalletNotConnected})
			},
			wantMessage: "Please connect your wallet",
			wantState:   []string{"FAILED"},
		},
		{
			name:  "image upload fails",
			draft: func() domain.CreationDraft { return draft("") },
			setup: func(tm *testOrchestratorMocks) {
				tm.binding.EXPECT().RequireWallet().Return(wallet, nil)
				tm.quoter.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(quote, nil)
				tm.storage.EXPECT().UploadImage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("502 bad gateway"))
			},
			wantMessage: creation.GenericErrorMessage,
			wantState:   []string{"QUOTING", "UPLOADING_IMAGE", "FAILED"},
		},
		{
			name:  "mint reverts",
			draft: func() domain.CreationDraft { return draft("") },
			setup: func(tm *testOrchestratorMocks) {
				tm.binding.EXPECT().RequireWallet().Return(wallet, nil)
				tm.quoter.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(quote, nil)
				tm.expectUploads()
				tm.contract.EXPECT().MintTreat(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &domain.TransactionError{Method: "mintTreat", TxHash: "0xdead", Err: errors.New("transaction reverted")})
			},
			wantMessage: creation.GenericErrorMessage,
			wantState:   []string{"QUOTING", "UPLOADING_IMAGE", "UPLOADING_METADATA", "MINTING", "FAILED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestOrchestrator(t)
			tt.setup(tm)
			tm.notifier.EXPECT().Error(gomock.Any(), "Error", tt.wantMessage)

			run, err := tm.orchestrator.Create(context.Background(), creation.Request{Draft: tt.draft()})
			require.Error(t, err)
			require.NotNil(t, run)
			assert.Equal(t, creation.StateFailed, run.State)
			assert.Equal(t, tt.wantMessage, run.Error)
			assert.Equal(t, tt.wantState, tm.steps)
			assert.False(t, tm.guard.Held("mint:"+run.IdempotencyKey))

			stored, err := tm.orchestrator.Get(context.Background(), run.ID)
			require.NoError(t, err)
			assert.Equal(t, creation.StateFailed, stored.State)
		})
	}
}

func TestOrchestrator_InFlight(t *testing.T) {
	tm := setupTestOrchestrator(t)

	release, err := tm.guard.Acquire("mint:draft-1")
	require.NoError(t, err)
	defer release()

	run, err := tm.orchestrator.Create(context.Background(), creation.Request{Draft: draft(""), IdempotencyKey: "draft-1"})
	var inFlight *domain.InFlightError
	assert.True(t, errors.As(err, &inFlight))
	assert.Nil(t, run)
}

func TestDraftKey(t *testing.T) {
	a, err := creation.DraftKey(draft(""), adapter.NewJSON(), adapter.NewJCS())
	require.NoError(t, err)
	b, err := creation.DraftKey(draft(""), adapter.NewJSON(), adapter.NewJCS())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other := draft("")
	other.Image.Data = []byte("other-bytes")
	c, err := creation.DraftKey(other, adapter.NewJSON(), adapter.NewJCS())
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
