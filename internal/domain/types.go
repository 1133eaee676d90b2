package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainCrossFiTestnet Chain = "eip155:4157"
	ChainBaseSepolia    Chain = "eip155:84532"
)

// ChainID returns the numeric EVM chain id of a CAIP-2 identifier
func (c Chain) ChainID() (*big.Int, error) {
	namespace, reference, ok := strings.Cut(string(c), ":")
	if !ok || namespace != "eip155" {
		return nil, fmt.Errorf("unsupported chain: %s", c)
	}
	id, ok := new(big.Int).SetString(reference, 10)
	if !ok || id.Sign() <= 0 {
		return nil, fmt.Errorf("invalid chain reference: %s", c)
	}
	return id, nil
}

// Valid checks if the chain is a well formed eip155 identifier
func (c Chain) Valid() bool {
	_, err := c.ChainID()
	return err == nil
}

// StatusCode is the raw on-chain treat state
type StatusCode uint8

const (
	StatusCodeActive             StatusCode = 1
	StatusCodeClaimed            StatusCode = 2
	StatusCodeExpiredAndRefunded StatusCode = 3
)

// DisplayStatus is the status shown to users, including the derived burn affordance
type DisplayStatus string

const (
	DisplayStatusActive             DisplayStatus = "ACTIVE"
	DisplayStatusClaimed            DisplayStatus = "CLAIMED"
	DisplayStatusExpiredAndRefunded DisplayStatus = "EXPIRED_AND_REFUNDED"
	DisplayStatusBurnEligible       DisplayStatus = "BURN_ELIGIBLE"
	DisplayStatusUnknown            DisplayStatus = "UNKNOWN"
)

// TreatType is the kind of treat chosen at creation
type TreatType string

const (
	TreatTypeDiscount TreatType = "discount"
	TreatTypeGiveaway TreatType = "giveaway"
	TreatTypeGift     TreatType = "gift"
	TreatTypePrize    TreatType = "prize"
)

// Valid checks if the treat type is one of the supported kinds
func (t TreatType) Valid() bool {
	switch t {
	case TreatTypeDiscount, TreatTypeGiveaway, TreatTypeGift, TreatTypePrize:
		return true
	}
	return false
}

// TreatRecord is the on-chain treat as returned by getTreatInfo
type TreatRecord struct {
	ID            *big.Int
	Owner         common.Address
	Amount        *big.Int
	TokenAddress  common.Address
	Expiry        int64
	StatusCode    StatusCode
	Transferable  bool
	BurnOnClaim   bool
	TreatType     string
	Issuer        common.Address
	RefundAddress common.Address
	Description   string
	TokenURI      string
}

// IsBurned reports whether the record's owner is the zero address sentinel
func (r *TreatRecord) IsBurned() bool {
	return IsZeroAddress(r.Owner.Hex())
}

// TokenDescriptor describes the token a treat is denominated in
type TokenDescriptor struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// IsNative reports whether the descriptor is the native currency sentinel
func (t TokenDescriptor) IsNative() bool {
	return IsZeroAddress(t.Address)
}

// TreatMetadata is the off-chain JSON document referenced by a treat's token URI
type TreatMetadata struct {
	Name        string                 `json:"name"`
	Image       string                 `json:"image"`
	Description string                 `json:"description"`
	Raw         map[string]interface{} `json:"raw,omitempty"`
}

// DisplayTreat is the read-only projection rebuilt on every aggregation pass
type DisplayTreat struct {
	ID           string          `json:"id"`
	Owner        string          `json:"owner,omitempty"`
	Destroyed    bool            `json:"destroyed"`
	Amount       string          `json:"amount"`
	RawAmount    string          `json:"raw_amount"`
	Token        TokenDescriptor `json:"token"`
	Expiry       time.Time       `json:"expiry"`
	StatusCode   StatusCode      `json:"status_code"`
	Status       DisplayStatus   `json:"status"`
	Transferable bool            `json:"transferable"`
	BurnOnClaim  bool            `json:"burn_on_claim"`
	TreatType    string          `json:"treat_type,omitempty"`
	Description  string          `json:"description"`
	TokenURI     string          `json:"token_uri"`
	Metadata     *TreatMetadata  `json:"metadata"`
}

// BurnEligible reports whether the burn action should be offered
func (d *DisplayTreat) BurnEligible() bool {
	return d.Status == DisplayStatusBurnEligible
}

// IsZeroAddress checks the zero address sentinel case-insensitively
func IsZeroAddress(address string) bool {
	return strings.EqualFold(address, ETHEREUM_ZERO_ADDRESS)
}

// Quote is the fee breakdown for a treat value, bound to the (value, token) pair that produced it
type Quote struct {
	Value          string          `json:"value"`
	Token          TokenDescriptor `json:"token"`
	Amount         *big.Int        `json:"amount"`
	Fee            *big.Int        `json:"fee"`
	Total          *big.Int        `json:"total"`
	FormattedFee   string          `json:"formatted_fee"`
	FormattedTotal string          `json:"formatted_total"`
}

// Matches reports whether the quote was produced for the given value and token
func (q *Quote) Matches(value string, tokenAddress string) bool {
	return q != nil && q.Value == value && strings.EqualFold(q.Token.Address, tokenAddress)
}

// ImageSource describes where the treat image comes from; exactly one field is set
type ImageSource struct {
	Data   []byte `json:"-"`
	URL    string `json:"url,omitempty"`
	Prompt string `json:"prompt,omitempty"`
}

// CreationDraft holds the user-entered fields of a treat to mint
type CreationDraft struct {
	Name          string      `json:"name"`
	Type          TreatType   `json:"type"`
	Value         string      `json:"value"`
	TokenAddress  string      `json:"token_address"`
	Validity      string      `json:"validity"`
	Recipients    string      `json:"recipients"`
	RefundAddress string      `json:"refund_address"`
	BurnOnClaim   bool        `json:"burn_on_claim"`
	Transferable  bool        `json:"transferable"`
	Description   string      `json:"description"`
	Image         ImageSource `json:"image"`
}
