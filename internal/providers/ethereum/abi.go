package ethereum

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/tokentreat/treat-service/internal/adapter"
)

//go:embed abi/treat.json
var treatABIJSON []byte

//go:embed abi/erc20.json
var erc20ABIJSON []byte

var (
	treatABI = mustParseABI(treatABIJSON)
	erc20ABI = mustParseABI(erc20ABIJSON)
)

// errEmptyResult is returned when a call returns no data, e.g. the target has no code
var errEmptyResult = errors.New("empty call result")

func mustParseABI(data []byte) abi.ABI {
	parsed, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("failed to parse ABI: %v", err))
	}
	return parsed
}

// caller performs read-only contract calls bounded by a per-call timeout
type caller struct {
	client  adapter.EthClient
	timeout time.Duration
}

// call packs the method arguments, performs eth_call and unpacks the outputs
func (c *caller) call(ctx context.Context, contractABI abi.ABI, to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &to,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("failed to call %s: %w", method, errEmptyResult)
	}

	out, err := contractABI.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}

	return out, nil
}

// IsRevert reports whether err is an execution revert returned by the node
func IsRevert(err error) bool {
	if err == nil {
		return false
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "execution reverted")
}
