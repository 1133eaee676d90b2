package treat_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/mocks"
	"github.com/tokentreat/treat-service/internal/treat"
)

var (
	now    = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer = common.HexToAddress("0x1111111111111111111111111111111111111111")
	holder = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testFetcherMocks struct {
	ctrl     *gomock.Controller
	binding  *mocks.MockBinding
	contract *mocks.MockTreatContract
	tokens   *mocks.MockTokenResolver
	metadata *mocks.MockMetadataFetcher
	clock    *mocks.MockClock
	fetcher  treat.Fetcher
}

func setupTestFetcher(t *testing.T) *testFetcherMocks {
	ctrl := gomock.NewController(t)
	tm := &testFetcherMocks{
		ctrl:     ctrl,
		binding:  mocks.NewMockBinding(ctrl),
		contract: mocks.NewMockTreatContract(ctrl),
		tokens:   mocks.NewMockTokenResolver(ctrl),
		metadata: mocks.NewMockMetadataFetcher(ctrl),
		clock:    mocks.NewMockClock(ctrl),
	}
	tm.binding.EXPECT().Treats().Return(tm.contract).AnyTimes()
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.fetcher = treat.NewFetcher(tm.tokens, tm.metadata, tm.clock)
	return tm
}

func record(id int64, status domain.StatusCode, expiry time.Time) *domain.TreatRecord {
	return &domain.TreatRecord{
		ID:           big.NewInt(id),
		Amount:       big.NewInt(1_500_000_000_000_000_000),
		TokenAddress: common.Address{},
		Expiry:       expiry.Unix(),
		StatusCode:   status,
		TreatType:    "gift",
		Issuer:       issuer,
		Description:  "free coffee",
		TokenURI:     "ipfs://bafymeta",
	}
}

var xfi = domain.TokenDescriptor{Address: domain.ETHEREUM_ZERO_ADDRESS, Symbol: "XFI", Decimals: 18}

func TestFetcher_Fetch(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.StatusCode
		expiry     time.Time
		owner      common.Address
		withOwner  bool
		wantStatus domain.DisplayStatus
		destroyed  bool
	}{
		{
			name:       "active and not expired",
			status:     domain.StatusCodeActive,
			expiry:     now.Add(time.Hour),
			owner:      holder,
			withOwner:  true,
			wantStatus: domain.DisplayStatusActive,
		},
		{
			name:       "active and expired is burn eligible",
			status:     domain.StatusCodeActive,
			expiry:     now.Add(-time.Second),
			withOwner:  false,
			wantStatus: domain.DisplayStatusBurnEligible,
		},
		{
			name:       "expiry equal to now is still active",
			status:     domain.StatusCodeActive,
			expiry:     now,
			withOwner:  false,
			wantStatus: domain.DisplayStatusActive,
		},
		{
			name:       "claimed stays claimed after expiry",
			status:     domain.StatusCodeClaimed,
			expiry:     now.Add(-time.Hour),
			owner:      holder,
			withOwner:  true,
			wantStatus: domain.DisplayStatusClaimed,
		},
		{
			name:       "burned owner is the zero address",
			status:     domain.StatusCodeExpiredAndRefunded,
			expiry:     now.Add(-time.Hour),
			owner:      common.Address{},
			withOwner:  true,
			wantStatus: domain.DisplayStatusExpiredAndRefunded,
			destroyed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestFetcher(t)
			id := big.NewInt(3)
			md := &domain.TreatMetadata{Name: "Coffee", Image: "https://gw/ipfs/img"}

			tm.contract.EXPECT().GetTreatInfo(gomock.Any(), id).Return(record(3, tt.status, tt.expiry), nil)
			if tt.withOwner {
				tm.contract.EXPECT().OwnerOf(gomock.Any(), id).Return(tt.owner, nil)
			}
			tm.tokens.EXPECT().Resolve(gomock.Any(), tm.binding, domain.ETHEREUM_ZERO_ADDRESS).Return(xfi, nil)
			tm.metadata.EXPECT().Fetch(gomock.Any(), "ipfs://bafymeta").Return(md, nil)

			got, err := tm.fetcher.Fetch(context.Background(), tm.binding, id, tt.withOwner)
			require.NoError(t, err)

			assert.Equal(t, "3", got.ID)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.status, got.StatusCode)
			assert.Equal(t, "1.5", got.Amount)
			assert.Equal(t, "1500000000000000000", got.RawAmount)
			assert.Equal(t, "XFI", got.Token.Symbol)
			assert.Equal(t, tt.destroyed, got.Destroyed)
			assert.Equal(t, tt.expiry.Unix(), got.Expiry.Unix())
			assert.Equal(t, md, got.Metadata)
			if tt.withOwner {
				assert.Equal(t, tt.owner.Hex(), got.Owner)
			} else {
				assert.Empty(t, got.Owner)
			}
		})
	}
}

func TestFetcher_Errors(t *testing.T) {
	id := big.NewInt(9)
	rpcErr := errors.New("connection reset")

	tests := []struct {
		name  string
		setup func(tm *testFetcherMocks)
		check func(t *testing.T, err error)
	}{
		{
			name: "record not found",
			setup: func(tm *testFetcherMocks) {
				tm.contract.EXPECT().GetTreatInfo(gomock.Any(), id).Return(nil, &domain.NotFoundError{ID: id})
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrTreatNotFound)
			},
		},
		{
			name: "owner lookup fails",
			setup: func(tm *testFetcherMocks) {
				tm.contract.EXPECT().GetTreatInfo(gomock.Any(), id).Return(record(9, domain.StatusCodeActive, now), nil)
				tm.contract.EXPECT().OwnerOf(gomock.Any(), id).Return(common.Address{}, rpcErr)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, rpcErr)
			},
		},
		{
			name: "token resolution fails",
			setup: func(tm *testFetcherMocks) {
				tm.contract.EXPECT().GetTreatInfo(gomock.Any(), id).Return(record(9, domain.StatusCodeActive, now), nil)
				tm.contract.EXPECT().OwnerOf(gomock.Any(), id).Return(holder, nil)
				tm.tokens.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.TokenDescriptor{}, &domain.TokenResolutionError{Address: "0x0", Err: rpcErr})
			},
			check: func(t *testing.T, err error) {
				var tokenErr *domain.TokenResolutionError
				assert.True(t, errors.As(err, &tokenErr))
			},
		},
		{
			name: "metadata fetch fails",
			setup: func(tm *testFetcherMocks) {
				tm.contract.EXPECT().GetTreatInfo(gomock.Any(), id).Return(record(9, domain.StatusCodeActive, now), nil)
				tm.contract.EXPECT().OwnerOf(gomock.Any(), id).Return(holder, nil)
				tm.tokens.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(xfi, nil)
				tm.metadata.EXPECT().Fetch(gomock.Any(), gomock.Any()).
					Return(nil, &domain.MetadataFetchError{URL: "https://gw/ipfs/bafymeta", Err: rpcErr})
			},
			check: func(t *testing.T, err error) {
				var metaErr *domain.MetadataFetchError
				assert.True(t, errors.As(err, &metaErr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestFetcher(t)
			tt.setup(tm)

			got, err := tm.fetcher.Fetch(context.Background(), tm.binding, id, true)
			assert.Nil(t, got)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}
