package domain

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrMultiRecipientUnsupported is returned when a treat is submitted with more than one recipient
	ErrMultiRecipientUnsupported = errors.New("multiple recipients are not supported, please enter only one recipient address")

	// ErrWalletNotConnected is returned when a write is attempted without a configured wallet
	ErrWalletNotConnected = errors.New("no wallet connected")

	// ErrTreatNotFound is returned when a treat identifier does not exist on-chain
	ErrTreatNotFound = errors.New("treat not found")

	// ErrCreationRunNotFound is returned when a persisted creation run does not exist
	ErrCreationRunNotFound = errors.New("creation run not found")
)

// ConnectionError is returned when no chain binding can be produced
type ConnectionError struct {
	Chain Chain
	Err   error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error on chain %s: %v", e.Chain, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// TokenResolutionError is returned when the decimals or symbol of a token cannot be read
type TokenResolutionError struct {
	Address string
	Err     error
}

func (e *TokenResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve token %s: %v", e.Address, e.Err)
}

func (e *TokenResolutionError) Unwrap() error {
	return e.Err
}

// MetadataFetchError is returned when the off-chain metadata document cannot be fetched or parsed
type MetadataFetchError struct {
	URL string
	Err error
}

func (e *MetadataFetchError) Error() string {
	return fmt.Sprintf("failed to fetch metadata from %s: %v", e.URL, e.Err)
}

func (e *MetadataFetchError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when a treat identifier does not exist
type NotFoundError struct {
	ID  *big.Int
	Err error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("treat %s not found: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("treat %s not found", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrTreatNotFound
}

// ValidationError is returned when a creation draft is rejected before any transaction is sent
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// InFlightError is returned when an operation on the same key is already pending
type InFlightError struct {
	Key string
}

func (e *InFlightError) Error() string {
	return fmt.Sprintf("operation already in flight for %s", e.Key)
}

// TransactionError is returned when an on-chain write fails or reverts
type TransactionError struct {
	Method string
	TxHash string
	Err    error
}

func (e *TransactionError) Error() string {
	if e.TxHash != "" {
		return fmt.Sprintf("transaction %s (%s) failed: %v", e.Method, e.TxHash, e.Err)
	}
	return fmt.Sprintf("transaction %s failed: %v", e.Method, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// IsItemScoped reports whether err only affects a single list item and
// must not abort an aggregation pass
func IsItemScoped(err error) bool {
	var tokenErr *TokenResolutionError
	var metaErr *MetadataFetchError
	var notFound *NotFoundError
	return errors.As(err, &tokenErr) || errors.As(err, &metaErr) || errors.As(err, &notFound)
}
