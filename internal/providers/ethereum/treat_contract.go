package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tokentreat/treat-service/internal/domain"
)

// MintArgs holds the arguments of mintTreat
type MintArgs struct {
	Recipient     common.Address
	MetadataHash  string
	Expiry        *big.Int
	Amount        *big.Int
	TokenAddress  common.Address
	RefundAddress common.Address
	BurnOnClaim   bool
	Transferable  bool
	TreatType     string
}

// TreatContract is the client of the treat NFT contract
//
//go:generate mockgen -source=treat_contract.go -destination=../../mocks/treat_contract.go -package=mocks -mock_names=TreatContract=MockTreatContract
type TreatContract interface {
	// Address returns the contract address
	Address() common.Address

	// GetIssuedTreats returns the ids of treats issued by issuer, in chain order
	GetIssuedTreats(ctx context.Context, issuer common.Address) ([]*big.Int, error)

	// GetTreatInfo returns the on-chain record of a treat without its owner
	GetTreatInfo(ctx context.Context, id *big.Int) (*domain.TreatRecord, error)

	// OwnerOf returns the owner of a treat; burned treats yield the zero address
	OwnerOf(ctx context.Context, id *big.Int) (common.Address, error)

	// TotalSupply returns the number of minted treats
	TotalSupply(ctx context.Context) (*big.Int, error)

	// CalculatePlatformFee returns the platform fee for amount
	CalculatePlatformFee(ctx context.Context, amount *big.Int) (*big.Int, error)

	// MintTreat mints a treat and waits for one confirmation
	MintTreat(ctx context.Context, args MintArgs, value *big.Int) (*types.Receipt, error)

	// BurnTreat burns a treat and waits for one confirmation
	BurnTreat(ctx context.Context, id *big.Int) (*types.Receipt, error)
}

// treatData mirrors the treatData tuple returned by getTreatInfo
type treatData struct {
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

type treatContract struct {
	chain   domain.Chain
	address common.Address
	caller  *caller
	sender  TxSender
}

func (c *treatContract) Address() common.Address {
	return c.address
}

func (c *treatContract) GetIssuedTreats(ctx context.Context, issuer common.Address) ([]*big.Int, error) {
	out, err := c.caller.call(ctx, treatABI, c.address, "getIssuedTreats", issuer)
	if err != nil {
		return nil, err
	}

	ids := *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int)
	return ids, nil
}

func (c *treatContract) GetTreatInfo(ctx context.Context, id *big.Int) (*domain.TreatRecord, error) {
	out, err := c.caller.call(ctx, treatABI, c.address, "getTreatInfo", id)
	if err != nil {
		if IsRevert(err) || errors.Is(err, errEmptyResult) {
			return nil, &domain.NotFoundError{ID: id, Err: err}
		}
		return nil, err
	}
	if len(out) != 2 {
		return nil, fmt.Errorf("unexpected getTreatInfo output length: %d", len(out))
	}

	data := abi.ConvertType(out[0], new(treatData)).(*treatData)
	tokenURI := *abi.ConvertType(out[1], new(string)).(*string)

	// Unknown ids read back as the zero tuple on contracts that do not revert
	if data.Issuer == (common.Address{}) && (data.Amount == nil || data.Amount.Sign() == 0) && tokenURI == "" {
		return nil, &domain.NotFoundError{ID: id}
	}

	return &domain.TreatRecord{
		ID:            new(big.Int).Set(id),
		Amount:        data.Amount,
		TokenAddress:  data.TokenAddress,
		Expiry:        data.Expiry.Int64(),
		StatusCode:    domain.StatusCode(data.Status),
		Transferable:  data.Transferable,
		BurnOnClaim:   data.BurnOnClaim,
		TreatType:     data.TreatType,
		Issuer:        data.Issuer,
		RefundAddress: data.RefundAddress,
		Description:   data.TreatMetadata,
		TokenURI:      tokenURI,
	}, nil
}

func (c *treatContract) OwnerOf(ctx context.Context, id *big.Int) (common.Address, error) {
	out, err := c.caller.call(ctx, treatABI, c.address, "ownerOf", id)
	if err != nil {
		if IsRevert(err) {
			// ownerOf reverts for burned tokens
			return common.Address{}, nil
		}
		return common.Address{}, err
	}

	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (c *treatContract) TotalSupply(ctx context.Context) (*big.Int, error) {
	out, err := c.caller.call(ctx, treatABI, c.address, "totalSupply")
	if err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *treatContract) CalculatePlatformFee(ctx context.Context, amount *big.Int) (*big.Int, error) {
	out, err := c.caller.call(ctx, treatABI, c.address, "calculatePlatformFee", amount)
	if err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *treatContract) MintTreat(ctx context.Context, args MintArgs, value *big.Int) (*types.Receipt, error) {
	if c.sender == nil {
		return nil, &domain.ConnectionError{Chain: c.chain, Err: domain.ErrWalletNotConnected}
	}

	data, err := treatABI.Pack("mintTreat",
		args.Recipient,
		args.MetadataHash,
		args.Expiry,
		args.Amount,
		args.TokenAddress,
		args.RefundAddress,
		args.BurnOnClaim,
		args.Transferable,
		args.TreatType,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to pack mintTreat: %w", err)
	}

	return c.sender.Send(ctx, "mintTreat", c.address, data, value)
}

func (c *treatContract) BurnTreat(ctx context.Context, id *big.Int) (*types.Receipt, error) {
	if c.sender == nil {
		return nil, &domain.ConnectionError{Chain: c.chain, Err: domain.ErrWalletNotConnected}
	}

	data, err := treatABI.Pack("burnTreat", id)
	if err != nil {
		return nil, fmt.Errorf("failed to pack burnTreat: %w", err)
	}

	return c.sender.Send(ctx, "burnTreat", c.address, data, nil)
}
