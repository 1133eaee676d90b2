package sweeper_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/mocks"
	"github.com/tokentreat/treat-service/internal/store"
	"github.com/tokentreat/treat-service/internal/sweeper"
)

const chain = domain.ChainCrossFiTestnet

var sweepNow = time.Unix(1_800_000_000, 0)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// testSweeperMocks contains all the mocks needed for testing the sweeper
type testSweeperMocks struct {
	ctrl      *gomock.Controller
	connector *mocks.MockConnector
	binding   *mocks.MockBinding
	contract  *mocks.MockTreatContract
	store     *mocks.MockStore
	clock     *mocks.MockClock
	sweeper   sweeper.Sweeper
}

func setupTestSweeper(t *testing.T, runOnce bool) *testSweeperMocks {
	ctrl := gomock.NewController(t)
	tm := &testSweeperMocks{
		ctrl:      ctrl,
		connector: mocks.NewMockConnector(ctrl),
		binding:   mocks.NewMockBinding(ctrl),
		contract:  mocks.NewMockTreatContract(ctrl),
		store:     mocks.NewMockStore(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}

	tm.connector.EXPECT().Connect(gomock.Any(), chain).Return(tm.binding, nil).AnyTimes()
	tm.binding.EXPECT().Treats().Return(tm.contract).AnyTimes()
	tm.clock.EXPECT().Now().Return(sweepNow).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	tm.clock.EXPECT().Unix(gomock.Any(), gomock.Any()).DoAndReturn(time.Unix).AnyTimes()

	tm.sweeper = sweeper.NewBurnIndexSweeper(sweeper.BurnIndexSweeperConfig{
		Chain:     chain,
		Interval:  time.Minute,
		BatchSize: 2,
		PoolSize:  2,
		RunOnce:   runOnce,
	}, tm.connector, tm.store, tm.clock)
	return tm
}

func record(id int64, status domain.StatusCode, expiry int64) *domain.TreatRecord {
	return &domain.TreatRecord{ID: big.NewInt(id), StatusCode: status, Expiry: expiry}
}

func ids(values ...int64) []*big.Int {
	out := make([]*big.Int, 0, len(values))
	for _, v := range values {
		out = append(out, big.NewInt(v))
	}
	return out
}

func candidateIDs(candidates []store.BurnCandidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.ID.String())
	}
	return out
}

func TestBurnIndexSweeper_Name(t *testing.T) {
	tm := setupTestSweeper(t, true)
	assert.Equal(t, "burn-index-sweeper", tm.sweeper.Name())
}

func TestBurnIndexSweeper_FullPass(t *testing.T) {
	tm := setupTestSweeper(t, true)
	past := sweepNow.Unix() - 10
	future := sweepNow.Unix() + 10

	// ids 0..4 inclusive with a batch size of 2: [0,2) [2,4) [4,5)
	tm.contract.EXPECT().TotalSupply(gomock.Any()).Return(big.NewInt(4), nil)
	tm.store.EXPECT().GetSweepCursor(gomock.Any(), chain).Return(uint64(0), nil)

	tm.contract.EXPECT().GetTreatInfo(gomock.Any(), big.NewInt(0)).
		Return(nil, &domain.NotFoundError{ID: big.NewInt(0)})
	tm.contract.EXPECT().GetTreatInfo(gomock.Any(), big.NewInt(1)).
		Return(record(1, domain.StatusCodeActive, past), nil)
	tm.contract.EXPECT().GetTreatInfo(gomock.Any(), big.NewInt(2)).
		Return(record(2, domain.StatusCodeActive, future), nil)
	tm.contract.EXPECT().GetTreatInfo(gomock.Any(), big.NewInt(3)).
		Return(nil, errors.New("rpc timeout"))
	tm.contract.EXPECT().GetTreatInfo(gomock.Any(), big.NewInt(4)).
		Return(record(4, domain.StatusCodeClaimed, past), nil)

	var upserted []store.BurnCandidate
	var removed []*big.Int
	tm.store.EXPECT().UpsertBurnCandidates(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c []store.BurnCandidate) error {
			upserted = append(upserted, c...)
			return nil
		}).AnyTimes()
	tm.store.EXPECT().RemoveBurnCandidates(gomock.Any(), chain, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.Chain, r []*big.Int) error {
			removed = append(removed, r...)
			return nil
		}).AnyTimes()

	gomock.InOrder(
		tm.store.EXPECT().SetSweepCursor(gomock.Any(), chain, uint64(2)).Return(nil),
		tm.store.EXPECT().SetSweepCursor(gomock.Any(), chain, uint64(4)).Return(nil),
		tm.store.EXPECT().SetSweepCursor(gomock.Any(), chain, uint64(5)).Return(nil),
		tm.store.EXPECT().PruneBurnCandidatesFrom(gomock.Any(), chain, big.NewInt(5)).Return(nil),
		tm.store.EXPECT().SetSweepCursor(gomock.Any(), chain, uint64(0)).Return(nil),
	)

	require.NoError(t, tm.sweeper.Start(context.Background()))

	assert.Equal(t, []string{"1"}, candidateIDs(upserted))
	assert.Equal(t, chain, upserted[0].Chain)
	assert.Equal(t, past, upserted[0].Expiry.Unix())
	assert.Equal(t, domain.StatusCodeActive, upserted[0].StatusCode)
	// id 3 failed to read and keeps its index entry
	assert.Equal(t, ids(0, 2, 4), removed)
}

func TestBurnIndexSweeper_ResumesFromCursor(t *testing.T) {
	tm := setupTestSweeper(t, true)
	past := sweepNow.Unix() - 10

	tm.contract.EXPECT().TotalSupply(gomock.Any()).Return(big.NewInt(3), nil)
	tm.store.EXPECT().GetSweepCursor(gomock.Any(), chain).Return(uint64(2), nil)
	tm.contract.EXPECT().GetTreatInfo(gomock.Any(), big.NewInt(2)).Return(record(2, domain.StatusCodeActive, past), nil)
	tm.contract.EXPECT().GetTreatInfo(gomock.Any(), big.NewInt(3)).Return(record(3, domain.StatusCodeActive, past), nil)
	tm.store.EXPECT().UpsertBurnCandidates(gomock.Any(), gomock.Len(2)).Return(nil)

	gomock.InOrder(
		tm.store.EXPECT().SetSweepCursor(gomock.Any(), chain, uint64(4)).Return(nil),
		tm.store.EXPECT().PruneBurnCandidatesFrom(gomock.Any(), chain, big.NewInt(4)).Return(nil),
		tm.store.EXPECT().SetSweepCursor(gomock.Any(), chain, uint64(0)).Return(nil),
	)

	require.NoError(t, tm.sweeper.Start(context.Background()))
}

func TestBurnIndexSweeper_CursorPastSupplyRestarts(t *testing.T) {
	tm := setupTestSweeper(t, true)

	tm.contract.EXPECT().TotalSupply(gomock.Any()).Return(big.NewInt(0), nil)
	tm.store.EXPECT().GetSweepCursor(gomock.Any(), chain).Return(uint64(50), nil)
	tm.contract.EXPECT().GetTreatInfo(gomock.Any(), big.NewInt(0)).Return(nil, &domain.NotFoundError{ID: big.NewInt(0)})
	tm.store.EXPECT().RemoveBurnCandidates(gomock.Any(), chain, ids(0)).Return(nil)

	gomock.InOrder(
		tm.store.EXPECT().SetSweepCursor(gomock.Any(), chain, uint64(1)).Return(nil),
		tm.store.EXPECT().PruneBurnCandidatesFrom(gomock.Any(), chain, big.NewInt(1)).Return(nil),
		tm.store.EXPECT().SetSweepCursor(gomock.Any(), chain, uint64(0)).Return(nil),
	)

	require.NoError(t, tm.sweeper.Start(context.Background()))
}

func TestBurnIndexSweeper_ConnectionErrorFailsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	connector := mocks.NewMockConnector(ctrl)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(sweepNow).AnyTimes()

	connErr := &domain.ConnectionError{Chain: chain, Err: errors.New("dial failed")}
	connector.EXPECT().Connect(gomock.Any(), chain).Return(nil, connErr)

	s := sweeper.NewBurnIndexSweeper(sweeper.BurnIndexSweeperConfig{Chain: chain, RunOnce: true}, connector, st, clock)
	err := s.Start(context.Background())

	var target *domain.ConnectionError
	assert.True(t, errors.As(err, &target))
}

func TestBurnIndexSweeper_StartStop(t *testing.T) {
	tm := setupTestSweeper(t, false)

	tm.contract.EXPECT().TotalSupply(gomock.Any()).Return(nil, errors.New("rpc down")).AnyTimes()
	tm.clock.EXPECT().After(gomock.Any()).Return(make(chan time.Time)).AnyTimes()

	done := make(chan error, 1)
	go func() {
		done <- tm.sweeper.Start(context.Background())
	}()

	// Stop only succeeds once Start marked the sweeper running
	require.Eventually(t, func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return tm.sweeper.Stop(ctx) == nil && len(done) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.NoError(t, <-done)
}
