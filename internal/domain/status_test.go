package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	const now = int64(1_700_000_000)

	tests := []struct {
		name       string
		statusCode StatusCode
		expiry     int64
		expected   DisplayStatus
	}{
		{"active and expired", StatusCodeActive, now - 1, DisplayStatusBurnEligible},
		{"active expiring exactly now", StatusCodeActive, now, DisplayStatusActive},
		{"active in the future", StatusCodeActive, now + 3600, DisplayStatusActive},
		{"claimed and expired", StatusCodeClaimed, now - 1, DisplayStatusClaimed},
		{"claimed in the future", StatusCodeClaimed, now + 1, DisplayStatusClaimed},
		{"refunded and expired", StatusCodeExpiredAndRefunded, now - 100, DisplayStatusExpiredAndRefunded},
		{"unknown code", StatusCode(9), now - 1, DisplayStatusUnknown},
		{"zero code", StatusCode(0), now + 1, DisplayStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Derive(tt.statusCode, tt.expiry, now))
		})
	}
}

func TestDerive_ClockAdvances(t *testing.T) {
	expiry := int64(1000)
	assert.Equal(t, DisplayStatusActive, Derive(StatusCodeActive, expiry, 999))
	assert.Equal(t, DisplayStatusActive, Derive(StatusCodeActive, expiry, 1000))
	assert.Equal(t, DisplayStatusBurnEligible, Derive(StatusCodeActive, expiry, 1001))
}

func TestChain_ChainID(t *testing.T) {
	id, err := ChainCrossFiTestnet.ChainID()
	assert.NoError(t, err)
	assert.Equal(t, int64(4157), id.Int64())

	_, err = Chain("tezos:mainnet").ChainID()
	assert.Error(t, err)
	_, err = Chain("eip155:abc").ChainID()
	assert.Error(t, err)
	assert.False(t, Chain("eip155").Valid())
}

func TestIsZeroAddress(t *testing.T) {
	assert.True(t, IsZeroAddress("0x0000000000000000000000000000000000000000"))
	assert.False(t, IsZeroAddress("0x0000000000000000000000000000000000000001"))
	assert.True(t, TokenDescriptor{Address: ETHEREUM_ZERO_ADDRESS}.IsNative())
	assert.True(t, TreatType("gift").Valid())
	assert.False(t, TreatType("coupon").Valid())
}
