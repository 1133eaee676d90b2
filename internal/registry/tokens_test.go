package registry_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/mocks"
	"github.com/tokentreat/treat-service/internal/registry"
)

const usdt = "0x83e9a41c38d71f7a06632de275877fca48827870"

func TestTokenRegistryLoader_Load(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*mocks.MockFileSystem, *mocks.MockJSON)
		expectedErr  string
		validateFunc func(t *testing.T, reg registry.TokenRegistry)
	}{
		{
			name: "successful load",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("tokens.json").
					Return([]byte(`{
					"eip155:4157": [
						{"name": "XFI", "address": "0x0000000000000000000000000000000000000000"},
						{"name": "USDT", "address": "`+usdt+`"}
					]
				}`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			validateFunc: func(t *testing.T, reg registry.TokenRegistry) {
				tokens := reg.Tokens(domain.ChainCrossFiTestnet)
				require.Len(t, tokens, 2)
				assert.Equal(t, "XFI", tokens[0].Name)
				assert.Equal(t, domain.ETHEREUM_ZERO_ADDRESS, tokens[0].Address)
				assert.Equal(t, "USDT", tokens[1].Name)

				assert.True(t, reg.IsSupported(domain.ChainCrossFiTestnet, ""))
				assert.True(t, reg.IsSupported(domain.ChainCrossFiTestnet, domain.ETHEREUM_ZERO_ADDRESS))
				assert.True(t, reg.IsSupported(domain.ChainCrossFiTestnet, usdt))
				assert.True(t, reg.IsSupported(domain.ChainCrossFiTestnet, "0x83E9A41C38D71F7A06632DE275877FCA48827870"))
				assert.False(t, reg.IsSupported(domain.ChainCrossFiTestnet, "0x00000000000000000000000000000000000000E2"))
				assert.False(t, reg.IsSupported(domain.ChainCrossFiTestnet, "not-an-address"))
				assert.False(t, reg.IsSupported(domain.Chain("eip155:1"), usdt))
			},
		},
		{
			name: "native is added when omitted",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("tokens.json").Return([]byte(`{"eip155:4157": [{"name": "USDT", "address": "`+usdt+`"}]}`), nil)
				mockJSON.EXPECT().Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			validateFunc: func(t *testing.T, reg registry.TokenRegistry) {
				tokens := reg.Tokens(domain.ChainCrossFiTestnet)
				require.Len(t, tokens, 2)
				assert.Equal(t, domain.ETHEREUM_ZERO_ADDRESS, tokens[0].Address)
			},
		},
		{
			name: "file read error",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("tokens.json").Return(nil, errors.New("no such file"))
			},
			expectedErr: "failed to read token registry file",
		},
		{
			name: "invalid JSON",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("tokens.json").Return([]byte(`{`), nil)
				mockJSON.EXPECT().Unmarshal(gomock.Any(), gomock.Any()).Return(errors.New("unexpected end of JSON input"))
			},
			expectedErr: "failed to parse token registry JSON",
		},
		{
			name: "invalid address",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("tokens.json").Return([]byte(`{"eip155:4157": [{"name": "BAD", "address": "0x123"}]}`), nil)
				mockJSON.EXPECT().Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			expectedErr: "invalid token address",
		},
		{
			name: "invalid chain",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("tokens.json").Return([]byte(`{"tezos:mainnet": []}`), nil)
				mockJSON.EXPECT().Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			expectedErr: "invalid chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFileSystem(ctrl)
			mockJSON := mocks.NewMockJSON(ctrl)
			tt.setupMocks(mockFS, mockJSON)

			reg, err := registry.NewTokenRegistryLoader(mockFS, mockJSON).Load("tokens.json")
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			require.NoError(t, err)
			tt.validateFunc(t, reg)
		})
	}
}

func TestOpenTokenRegistry(t *testing.T) {
	reg := registry.NewOpenTokenRegistry()

	assert.True(t, reg.IsSupported(domain.ChainCrossFiTestnet, usdt))
	tokens := reg.Tokens(domain.ChainCrossFiTestnet)
	require.Len(t, tokens, 1)
	assert.Equal(t, domain.ETHEREUM_ZERO_ADDRESS, tokens[0].Address)
}
