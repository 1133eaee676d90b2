package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"strings"
	"testing"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/mocks"
	"github.com/tokentreat/treat-service/internal/providers/ethereum"
)

const (
	testRPCURL   = "http://localhost:8545"
	testContract = "0x00000000000000000000000000000000000000c0"
	testToken    = "0x00000000000000000000000000000000000000e2"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// revertError mimics the JSON-RPC error returned for reverted calls
type revertError struct{}

func (revertError) Error() string          { return "execution reverted" }
func (revertError) ErrorData() interface{} { return "0x" }

// treatTuple mirrors the treatData tuple for packing test outputs
type treatTuple struct {
	Amount        *big.Int
	TokenAddress  common.Address
	Expiry        *big.Int
	Status        uint8
	Transferable  bool
	BurnOnClaim   bool
	Issuer        common.Address
	RefundAddress common.Address
	TreatType     string
	TreatMetadata string
}

func loadABI(t *testing.T, path string) abi.ABI {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	parsed, err := abi.JSON(strings.NewReader(string(data)))
	require.NoError(t, err)
	return parsed
}

func packOutput(t *testing.T, contractABI abi.ABI, method string, values ...interface{}) []byte {
	t.Helper()
	out, err := contractABI.Methods[method].Outputs.Pack(values...)
	require.NoError(t, err)
	return out
}

// selectorOf returns the method selector of call data
func selectorOf(msg goethereum.CallMsg) string {
	return common.Bytes2Hex(msg.Data[:4])
}

type testEnv struct {
	ctrl      *gomock.Controller
	client    *mocks.MockEthClient
	dialer    *mocks.MockEthClientDialer
	connector ethereum.Connector
}

func setupTestEnv(t *testing.T, privateKey string) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		ctrl:   ctrl,
		client: mocks.NewMockEthClient(ctrl),
		dialer: mocks.NewMockEthClientDialer(ctrl),
	}
	env.connector = ethereum.NewConnector(ethereum.Config{
		Chains: map[domain.Chain]ethereum.ChainConfig{
			domain.ChainCrossFiTestnet: {
				RPCURL:          testRPCURL,
				ContractAddress: testContract,
				PrivateKey:      privateKey,
			},
		},
		CallTimeout:         time.Second,
		ConfirmationTimeout: time.Second,
		ReceiptPollInterval: 10 * time.Millisecond,
	}, env.dialer)
	return env
}

func (env *testEnv) connect(t *testing.T) ethereum.Binding {
	env.dialer.EXPECT().Dial(gomock.Any(), testRPCURL).Return(env.client, nil)
	env.client.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(4157), nil)
	b, err := env.connector.Connect(context.Background(), domain.ChainCrossFiTestnet)
	require.NoError(t, err)
	return b
}

func TestConnector_ConnectIsIdempotent(t *testing.T) {
	env := setupTestEnv(t, "")
	first := env.connect(t)

	second, err := env.connector.Connect(context.Background(), domain.ChainCrossFiTestnet)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, domain.ChainCrossFiTestnet, second.Chain())

	env.client.EXPECT().Close()
	env.connector.Close()
}

func TestConnector_ConnectErrors(t *testing.T) {
	t.Run("unknown chain", func(t *testing.T) {
		env := setupTestEnv(t, "")
		_, err := env.connector.Connect(context.Background(), domain.ChainBaseSepolia)
		var connErr *domain.ConnectionError
		require.ErrorAs(t, err, &connErr)
		assert.Equal(t, domain.ChainBaseSepolia, connErr.Chain)
	})

	t.Run("dial failure", func(t *testing.T) {
		env := setupTestEnv(t, "")
		env.dialer.EXPECT().Dial(gomock.Any(), testRPCURL).Return(nil, errors.New("connection refused"))
		_, err := env.connector.Connect(context.Background(), domain.ChainCrossFiTestnet)
		var connErr *domain.ConnectionError
		require.ErrorAs(t, err, &connErr)
	})

	t.Run("chain id mismatch", func(t *testing.T) {
		env := setupTestEnv(t, "")
		env.dialer.EXPECT().Dial(gomock.Any(), testRPCURL).Return(env.client, nil)
		env.client.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
		env.client.EXPECT().Close()
		_, err := env.connector.Connect(context.Background(), domain.ChainCrossFiTestnet)
		var connErr *domain.ConnectionError
		require.ErrorAs(t, err, &connErr)
		assert.Contains(t, err.Error(), "chain id mismatch")
	})

	t.Run("invalid private key", func(t *testing.T) {
		env := setupTestEnv(t, "not-a-key")
		_, err := env.connector.Connect(context.Background(), domain.ChainCrossFiTestnet)
		var connErr *domain.ConnectionError
		require.ErrorAs(t, err, &connErr)
	})
}

func TestBinding_RequireWallet(t *testing.T) {
	t.Run("read-only binding", func(t *testing.T) {
		b := setupTestEnv(t, "").connect(t)
		_, err := b.RequireWallet()
		var connErr *domain.ConnectionError
		require.ErrorAs(t, err, &connErr)
		assert.ErrorIs(t, err, domain.ErrWalletNotConnected)

		_, err = b.Treats().BurnTreat(context.Background(), big.NewInt(1))
		assert.ErrorIs(t, err, domain.ErrWalletNotConnected)
	})

	t.Run("wallet binding", func(t *testing.T) {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)
		b := setupTestEnv(t, common.Bytes2Hex(crypto.FromECDSA(key))).connect(t)
		addr, err := b.RequireWallet()
		require.NoError(t, err)
		assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), addr)
	})
}

func TestTreatContract_GetTreatInfo(t *testing.T) {
	treatABI := loadABI(t, "abi/treat.json")
	issuer := common.HexToAddress("0x00000000000000000000000000000000000000a1")

	t.Run("record", func(t *testing.T) {
		env := setupTestEnv(t, "")
		b := env.connect(t)

		tuple := treatTuple{
			Amount:        big.NewInt(5_000_000),
			TokenAddress:  common.HexToAddress(testToken),
			Expiry:        big.NewInt(1_700_000_000),
			Status:        1,
			Transferable:  true,
			Issuer:        issuer,
			RefundAddress: issuer,
			TreatType:     "gift",
			TreatMetadata: "A coffee on me",
		}
		env.client.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, msg goethereum.CallMsg, _ *big.Int) ([]byte, error) {
				assert.Equal(t, common.HexToAddress(testContract), *msg.To)
				assert.Equal(t, common.Bytes2Hex(treatABI.Methods["getTreatInfo"].ID), selectorOf(msg))
				return packOutput(t, treatABI, "getTreatInfo", tuple, "ipfs://QmMeta"), nil
			})

		record, err := b.Treats().GetTreatInfo(context.Background(), big.NewInt(3))
		require.NoError(t, err)
		assert.Equal(t, "3", record.ID.String())
		assert.Equal(t, "5000000", record.Amount.String())
		assert.Equal(t, common.HexToAddress(testToken), record.TokenAddress)
		assert.Equal(t, int64(1_700_000_000), record.Expiry)
		assert.Equal(t, domain.StatusCodeActive, record.StatusCode)
		assert.True(t, record.Transferable)
		assert.False(t, record.BurnOnClaim)
		assert.Equal(t, issuer, record.Issuer)
		assert.Equal(t, "gift", record.TreatType)
		assert.Equal(t, "A coffee on me", record.Description)
		assert.Equal(t, "ipfs://QmMeta", record.TokenURI)
	})

	t.Run("revert is not found", func(t *testing.T) {
		env := setupTestEnv(t, "")
		b := env.connect(t)
		env.client.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil, revertError{})

		_, err := b.Treats().GetTreatInfo(context.Background(), big.NewInt(99))
		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.ErrorIs(t, err, domain.ErrTreatNotFound)
	})

	t.Run("empty result is not found", func(t *testing.T) {
		env := setupTestEnv(t, "")
		b := env.connect(t)
		env.client.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return([]byte{}, nil)

		_, err := b.Treats().GetTreatInfo(context.Background(), big.NewInt(99))
		assert.ErrorIs(t, err, domain.ErrTreatNotFound)
	})

	t.Run("rpc failure is not a not found", func(t *testing.T) {
		env := setupTestEnv(t, "")
		b := env.connect(t)
		env.client.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil, errors.New("502 bad gateway"))

		_, err := b.Treats().GetTreatInfo(context.Background(), big.NewInt(1))
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrTreatNotFound)
	})
}

func TestTreatContract_Reads(t *testing.T) {
	treatABI := loadABI(t, "abi/treat.json")
	env := setupTestEnv(t, "")
	b := env.connect(t)
	owner := common.HexToAddress("0x00000000000000000000000000000000000000b0")

	env.client.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, msg goethereum.CallMsg, _ *big.Int) ([]byte, error) {
			switch selectorOf(msg) {
			case common.Bytes2Hex(treatABI.Methods["getIssuedTreats"].ID):
				return packOutput(t, treatABI, "getIssuedTreats", []*big.Int{big.NewInt(4), big.NewInt(2)}), nil
			case common.Bytes2Hex(treatABI.Methods["ownerOf"].ID):
				return packOutput(t, treatABI, "ownerOf", owner), nil
			case common.Bytes2Hex(treatABI.Methods["totalSupply"].ID):
				return packOutput(t, treatABI, "totalSupply", big.NewInt(12)), nil
			case common.Bytes2Hex(treatABI.Methods["calculatePlatformFee"].ID):
				return packOutput(t, treatABI, "calculatePlatformFee", big.NewInt(25)), nil
			}
			return nil, errors.New("unexpected call")
		}).
		Times(4)

	ids, err := b.Treats().GetIssuedTreats(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, int64(4), ids[0].Int64())
	assert.Equal(t, int64(2), ids[1].Int64())

	gotOwner, err := b.Treats().OwnerOf(context.Background(), big.NewInt(4))
	require.NoError(t, err)
	assert.Equal(t, owner, gotOwner)

	supply, err := b.Treats().TotalSupply(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), supply.Int64())

	fee, err := b.Treats().CalculatePlatformFee(context.Background(), big.NewInt(1000))
	require.NoError(t, err)
	assert.Equal(t, int64(25), fee.Int64())
}

func TestTreatContract_OwnerOfBurned(t *testing.T) {
	env := setupTestEnv(t, "")
	b := env.connect(t)
	env.client.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil, revertError{})

	owner, err := b.Treats().OwnerOf(context.Background(), big.NewInt(7))
	require.NoError(t, err)
	assert.True(t, domain.IsZeroAddress(owner.Hex()))
}

func TestERC20_DecimalsAndSymbol(t *testing.T) {
	erc20ABI := loadABI(t, "abi/erc20.json")
	env := setupTestEnv(t, "")
	b := env.connect(t)

	env.client.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, msg goethereum.CallMsg, _ *big.Int) ([]byte, error) {
			assert.Equal(t, common.HexToAddress(testToken), *msg.To)
			if selectorOf(msg) == common.Bytes2Hex(erc20ABI.Methods["decimals"].ID) {
				return packOutput(t, erc20ABI, "decimals", uint8(6)), nil
			}
			return packOutput(t, erc20ABI, "symbol", "USDC"), nil
		}).
		Times(2)

	decimals, err := b.ERC20().Decimals(context.Background(), common.HexToAddress(testToken))
	require.NoError(t, err)
	assert.Equal(t, uint8(6), decimals)

	symbol, err := b.ERC20().Symbol(context.Background(), common.HexToAddress(testToken))
	require.NoError(t, err)
	assert.Equal(t, "USDC", symbol)
}

func TestTxSender_Send(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)
	to := common.HexToAddress(testContract)

	tests := []struct {
		name       string
		status     uint64
		expectErr  error
		expectHash bool
	}{
		{name: "confirmed", status: types.ReceiptStatusSuccessful},
		{name: "reverted", status: types.ReceiptStatusFailed, expectErr: ethereum.ErrTransactionReverted, expectHash: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockEthClient(ctrl)
			sender := ethereum.NewTxSender(client, key, big.NewInt(4157), time.Second, 10*time.Millisecond)
			assert.Equal(t, from, sender.From())

			var sent *types.Transaction
			gomock.InOrder(
				client.EXPECT().PendingNonceAt(gomock.Any(), from).Return(uint64(7), nil),
				client.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil),
				client.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(100_000), nil),
				client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
					sent = tx
					return nil
				}),
				client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(nil, goethereum.NotFound),
				client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(&types.Receipt{Status: tt.status}, nil),
			)

			receipt, err := sender.Send(context.Background(), "burnTreat", to, []byte{0x01}, big.NewInt(5))
			require.NotNil(t, sent)
			assert.Equal(t, uint64(7), sent.Nonce())
			assert.Equal(t, uint64(120_000), sent.Gas())
			assert.Equal(t, int64(5), sent.Value().Int64())
			signer, err2 := types.Sender(types.LatestSignerForChainID(big.NewInt(4157)), sent)
			require.NoError(t, err2)
			assert.Equal(t, from, signer)

			if tt.expectErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.status, receipt.Status)
				return
			}
			var txErr *domain.TransactionError
			require.ErrorAs(t, err, &txErr)
			assert.ErrorIs(t, err, tt.expectErr)
			assert.Equal(t, "burnTreat", txErr.Method)
			assert.Equal(t, sent.Hash().Hex(), txErr.TxHash)
		})
	}
}

func TestTxSender_EstimateFailureHasNoHash(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	sender := ethereum.NewTxSender(client, key, big.NewInt(4157), time.Second, 10*time.Millisecond)

	client.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(0), nil)
	client.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1), nil)
	client.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(0), revertError{})

	_, err = sender.Send(context.Background(), "mintTreat", common.HexToAddress(testContract), nil, nil)
	var txErr *domain.TransactionError
	require.ErrorAs(t, err, &txErr)
	assert.Empty(t, txErr.TxHash)
	assert.True(t, ethereum.IsRevert(err))
}
