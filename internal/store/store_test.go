package store

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentreat/treat-service/internal/creation"
	"github.com/tokentreat/treat-service/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestRun() *creation.Run {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &creation.Run{
		ID:             uuid.NewString(),
		IdempotencyKey: "0xdraft",
		State:          creation.StateIdle,
		Draft: domain.CreationDraft{
			Name:          "Coffee",
			Type:          domain.TreatTypeGift,
			Value:         "1.5",
			Validity:      "2026-12-31",
			Recipients:    "0x1111111111111111111111111111111111111111",
			RefundAddress: "0x2222222222222222222222222222222222222222",
			Image:         domain.ImageSource{URL: "https://example.com/coffee.png"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func candidate(chain domain.Chain, id int64) BurnCandidate {
	return BurnCandidate{
		Chain:      chain,
		ID:         big.NewInt(id),
		Expiry:     time.Unix(1_700_000_000+id, 0).UTC(),
		StatusCode: domain.StatusCodeActive,
	}
}

func idStrings(ids []*big.Int) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

// RunStoreTests runs every store test against the implementation returned by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreationRuns", testCreationRuns},
		{"UpdateMissingRun", testUpdateMissingRun},
		{"BurnCandidates", testBurnCandidates},
		{"PruneBurnCandidates", testPruneBurnCandidates},
		{"SweepCursor", testSweepCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

func testCreationRuns(t *testing.T, store Store) {
	ctx := context.Background()
	run := buildTestRun()

	require.NoError(t, store.CreateRun(ctx, run))

	got, err := store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, creation.StateIdle, got.State)
	assert.Equal(t, run.Draft.Name, got.Draft.Name)
	assert.Equal(t, run.Draft.Image.URL, got.Draft.Image.URL)
	assert.Nil(t, got.Quote)
	assert.Empty(t, got.MintTxHash)

	run.State = creation.StateSuccess
	run.Quote = &domain.Quote{
		Value:  "1.5",
		Token:  domain.TokenDescriptor{Address: domain.ETHEREUM_ZERO_ADDRESS, Symbol: "XFI", Decimals: 18},
		Amount: big.NewInt(1_500_000_000_000_000_000),
		Fee:    big.NewInt(15_000_000_000_000_000),
		Total:  big.NewInt(1_515_000_000_000_000_000),
	}
	run.ImageURI = "ipfs://bafyimage"
	run.MetadataURI = "ipfs://bafymeta"
	run.MintTxHash = "0xmint"
	run.UpdatedAt = run.UpdatedAt.Add(time.Minute)
	require.NoError(t, store.UpdateRun(ctx, run))

	got, err = store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, creation.StateSuccess, got.State)
	require.NotNil(t, got.Quote)
	assert.Equal(t, "1515000000000000000", got.Quote.Total.String())
	assert.Equal(t, "XFI", got.Quote.Token.Symbol)
	assert.Equal(t, "ipfs://bafymeta", got.MetadataURI)
	assert.Equal(t, "0xmint", got.MintTxHash)
	assert.Empty(t, got.ApprovalTxHash)
	assert.True(t, run.UpdatedAt.Equal(got.UpdatedAt))

	_, err = store.GetRun(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrCreationRunNotFound)
}

func testUpdateMissingRun(t *testing.T, store Store) {
	err := store.UpdateRun(context.Background(), buildTestRun())
	assert.ErrorIs(t, err, domain.ErrCreationRunNotFound)
}

func testBurnCandidates(t *testing.T, store Store) {
	ctx := context.Background()
	chain := domain.ChainCrossFiTestnet
	other := domain.ChainBaseSepolia

	require.NoError(t, store.UpsertBurnCandidates(ctx, []BurnCandidate{
		candidate(chain, 12), candidate(chain, 3), candidate(chain, 100), candidate(other, 5),
	}))

	t.Run("ordered by numeric id", func(t *testing.T) {
		ids, err := store.ListBurnCandidateIDs(ctx, chain, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "12", "100"}, idStrings(ids))
	})

	t.Run("offset and limit", func(t *testing.T) {
		ids, err := store.ListBurnCandidateIDs(ctx, chain, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"12"}, idStrings(ids))
	})

	t.Run("upsert is idempotent", func(t *testing.T) {
		require.NoError(t, store.UpsertBurnCandidates(ctx, []BurnCandidate{candidate(chain, 3)}))
		count, err := store.CountBurnCandidates(ctx, chain)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("remove scoped to chain", func(t *testing.T) {
		require.NoError(t, store.RemoveBurnCandidate(ctx, chain, big.NewInt(12)))
		require.NoError(t, store.RemoveBurnCandidates(ctx, chain, []*big.Int{big.NewInt(5)}))

		ids, err := store.ListBurnCandidateIDs(ctx, chain, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "100"}, idStrings(ids))

		ids, err = store.ListBurnCandidateIDs(ctx, other, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"5"}, idStrings(ids))
	})

	t.Run("empty batches are no-ops", func(t *testing.T) {
		assert.NoError(t, store.UpsertBurnCandidates(ctx, nil))
		assert.NoError(t, store.RemoveBurnCandidates(ctx, chain, nil))
	})
}

func testPruneBurnCandidates(t *testing.T, store Store) {
	ctx := context.Background()
	chain := domain.ChainCrossFiTestnet

	require.NoError(t, store.UpsertBurnCandidates(ctx, []BurnCandidate{
		candidate(chain, 1), candidate(chain, 9), candidate(chain, 10), candidate(chain, 11),
	}))
	require.NoError(t, store.PruneBurnCandidatesFrom(ctx, chain, big.NewInt(10)))

	ids, err := store.ListBurnCandidateIDs(ctx, chain, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "9"}, idStrings(ids))
}

func testSweepCursor(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get non-existent cursor returns 0", func(t *testing.T) {
		cursor, err := store.GetSweepCursor(ctx, "eip155:999999")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cursor)
	})

	t.Run("update existing cursor", func(t *testing.T) {
		chain := domain.ChainCrossFiTestnet

		require.NoError(t, store.SetSweepCursor(ctx, chain, 100))
		require.NoError(t, store.SetSweepCursor(ctx, chain, 200))

		cursor, err := store.GetSweepCursor(ctx, chain)
		require.NoError(t, err)
		assert.Equal(t, uint64(200), cursor)
	})
}
