package domain

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrNonPositiveAmount  = errors.New("amount must be greater than zero")
	ErrTooManyFractionals = errors.New("amount has more fractional digits than the token supports")
)

// ParseUnits converts a human decimal string into the token's smallest unit
func ParseUnits(value string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, value)
	}
	if !d.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if -d.Exponent() > int32(decimals) && !d.Equal(d.Truncate(int32(decimals))) {
		return nil, ErrTooManyFractionals
	}

	return d.Shift(int32(decimals)).BigInt(), nil
}

// FormatUnits renders a smallest-unit amount as a decimal string without trailing zeros
func FormatUnits(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}
