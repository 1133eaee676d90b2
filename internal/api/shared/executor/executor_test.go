package executor_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentreat/treat-service/internal/api/shared/executor"
	"github.com/tokentreat/treat-service/internal/creation"
	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/imagegen"
	"github.com/tokentreat/treat-service/internal/mocks"
	"github.com/tokentreat/treat-service/internal/registry"
	"github.com/tokentreat/treat-service/internal/treat"
)

const testChain = domain.Chain("eip155:4157")

type fakeSessions struct {
	prompts map[string]string
}

func (f *fakeSessions) Submit(key, prompt string) {
	f.prompts[key] = prompt
}

func (f *fakeSessions) Latest(key string) (imagegen.Result, bool) {
	prompt, ok := f.prompts[key]
	if !ok {
		return imagegen.Result{}, false
	}
	return imagegen.Result{Prompt: prompt, Pending: true}, true
}

type testExecutorMocks struct {
	ctrl         *gomock.Controller
	connector    *mocks.MockConnector
	binding      *mocks.MockBinding
	aggregator   *mocks.MockAggregator
	burner       *mocks.MockBurner
	orchestrator *mocks.MockOrchestrator
	quoter       *mocks.MockQuoter
	tokens       *mocks.MockTokenResolver
	registry     *mocks.MockTokenRegistry
	images       *fakeSessions
	executor     executor.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)
	tm := &testExecutorMocks{
		ctrl:         ctrl,
		connector:    mocks.NewMockConnector(ctrl),
		binding:      mocks.NewMockBinding(ctrl),
		aggregator:   mocks.NewMockAggregator(ctrl),
		burner:       mocks.NewMockBurner(ctrl),
		orchestrator: mocks.NewMockOrchestrator(ctrl),
		quoter:       mocks.NewMockQuoter(ctrl),
		tokens:       mocks.NewMockTokenResolver(ctrl),
		registry:     mocks.NewMockTokenRegistry(ctrl),
		images:       &fakeSessions{prompts: map[string]string{}},
	}
	tm.executor = executor.NewExecutor(executor.Deps{
		Chain:        testChain,
		Connector:    tm.connector,
		Aggregator:   tm.aggregator,
		Burner:       tm.burner,
		Orchestrator: tm.orchestrator,
		Quoter:       tm.quoter,
		Tokens:       tm.tokens,
		Registry:     tm.registry,
		Images:       tm.images,
	})
	return tm
}

func TestExecutor_Reads(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	treatOne := &domain.DisplayTreat{ID: "1"}
	tm.aggregator.EXPECT().Get(ctx, big.NewInt(1)).Return(treatOne, nil)
	got, err := tm.executor.GetTreat(ctx, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, treatOne, got)

	tm.aggregator.EXPECT().IssuedBy(ctx, "0xabc").Return([]*domain.DisplayTreat{treatOne}, nil)
	issued, err := tm.executor.ListIssuedTreats(ctx, "0xabc")
	require.NoError(t, err)
	assert.Len(t, issued, 1)

	page := treat.Page{Source: treat.SourceIndex, Offset: 0, Limit: 20}
	tm.aggregator.EXPECT().Burnable(ctx, page).Return(&treat.BurnablePage{}, nil)
	_, err = tm.executor.ListBurnableTreats(ctx, page)
	require.NoError(t, err)
}

func TestExecutor_ChainBound(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	tm.connector.EXPECT().Connect(ctx, testChain).Return(tm.binding, nil).Times(2)
	desc := domain.TokenDescriptor{Address: "0x1", Symbol: "USDC", Decimals: 6}
	tm.tokens.EXPECT().Resolve(ctx, tm.binding, "0x1").Return(desc, nil)
	gotDesc, err := tm.executor.GetToken(ctx, "0x1")
	require.NoError(t, err)
	assert.Equal(t, desc, gotDesc)

	quote := &domain.Quote{Token: desc}
	tm.registry.EXPECT().IsSupported(testChain, "0x1").Return(true)
	tm.quoter.EXPECT().Quote(ctx, tm.binding, "10", "0x1").Return(quote, nil)
	gotQuote, err := tm.executor.Quote(ctx, "10", "0x1")
	require.NoError(t, err)
	assert.Equal(t, quote, gotQuote)
}

func TestExecutor_ConnectFailure(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	connErr := &domain.ConnectionError{Chain: testChain, Err: errors.New("dial")}
	tm.connector.EXPECT().Connect(ctx, testChain).Return(nil, connErr).Times(2)

	_, err := tm.executor.GetToken(ctx, "0x1")
	assert.ErrorIs(t, err, connErr)
	tm.registry.EXPECT().IsSupported(testChain, "").Return(true)
	_, err = tm.executor.Quote(ctx, "1", "")
	assert.ErrorIs(t, err, connErr)
}

func TestExecutor_Writes(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	req := creation.Request{IdempotencyKey: "k"}
	tm.registry.EXPECT().IsSupported(testChain, "").Return(true)
	run := &creation.Run{ID: "run-1", State: creation.StateSuccess}
	tm.orchestrator.EXPECT().Create(ctx, req).Return(run, nil)
	got, err := tm.executor.CreateTreat(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, run, got)

	tm.orchestrator.EXPECT().Get(ctx, "run-1").Return(run, nil)
	got, err = tm.executor.GetCreationRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, run, got)

	tm.burner.EXPECT().Burn(ctx, big.NewInt(3)).Return(&treat.BurnResult{ID: big.NewInt(3), TxHash: "0x03"}, nil)
	burned, err := tm.executor.BurnTreat(ctx, big.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, "0x03", burned.TxHash)
}

func TestExecutor_UnsupportedToken(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	tm.registry.EXPECT().IsSupported(testChain, "0xdead").Return(false).Times(2)

	var validationErr *domain.ValidationError
	_, err := tm.executor.Quote(ctx, "1", "0xdead")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "token_address", validationErr.Field)

	run, err := tm.executor.CreateTreat(ctx, creation.Request{Draft: domain.CreationDraft{TokenAddress: "0xdead"}})
	assert.Nil(t, run)
	require.ErrorAs(t, err, &validationErr)
}

func TestExecutor_ListTokens(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()
	ctx := context.Background()

	native := domain.TokenDescriptor{Address: domain.ETHEREUM_ZERO_ADDRESS, Symbol: "XFI", Decimals: 18}
	usdt := domain.TokenDescriptor{Address: "0x83E9a41c38D71f7A06632de275877FCa48827870", Symbol: "USDT", Decimals: 6}

	tm.connector.EXPECT().Connect(ctx, testChain).Return(tm.binding, nil)
	tm.registry.EXPECT().Tokens(testChain).Return([]registry.TokenEntry{
		{Name: "XFI", Address: native.Address},
		{Name: "USDT", Address: usdt.Address},
	})
	tm.tokens.EXPECT().Resolve(ctx, tm.binding, native.Address).Return(native, nil)
	tm.tokens.EXPECT().Resolve(ctx, tm.binding, usdt.Address).Return(usdt, nil)

	options, err := tm.executor.ListTokens(ctx)
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "USDT", options[1].Name)
	assert.Equal(t, uint8(6), options[1].Decimals)
}

func TestExecutor_ImageSessions(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	_, ok := tm.executor.GetImageSession("s1")
	assert.False(t, ok)

	result := tm.executor.SubmitImagePrompt("s1", "a cat")
	assert.Equal(t, "a cat", result.Prompt)
	assert.True(t, result.Pending)

	latest, ok := tm.executor.GetImageSession("s1")
	assert.True(t, ok)
	assert.Equal(t, "a cat", latest.Prompt)
}
