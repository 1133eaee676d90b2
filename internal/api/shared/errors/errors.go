package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/tokentreat/treat-service/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeConflict         ErrorCode = "conflict"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeServiceError  ErrorCode = "service_error"
	ErrCodeUpstreamError ErrorCode = "upstream_error"
	ErrCodeUnavailable   ErrorCode = "unavailable"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewConflictError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewUpstreamError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUpstreamError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewUnavailableError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnavailable,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromDomain maps a domain error to an HTTP status and API error.
// Chain and upstream causes never reach the response; callers log them.
func FromDomain(err error, fallback string) (int, *APIError) {
	var (
		apiErr        *APIError
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		inFlightErr   *domain.InFlightError
		connErr       *domain.ConnectionError
		txErr         *domain.TransactionError
		tokenErr      *domain.TokenResolutionError
		metadataErr   *domain.MetadataFetchError
	)

	switch {
	case stderrors.As(err, &apiErr):
		return statusOf(apiErr.Code), apiErr
	case stderrors.Is(err, domain.ErrMultiRecipientUnsupported):
		return http.StatusUnprocessableEntity, NewValidationError("Not supported yet, please enter only one receipient address")
	case stderrors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, NewValidationError(validationErr.Error())
	case stderrors.As(err, &notFoundErr),
		stderrors.Is(err, domain.ErrTreatNotFound):
		return http.StatusNotFound, NewNotFoundError("Treat not found")
	case stderrors.Is(err, domain.ErrCreationRunNotFound):
		return http.StatusNotFound, NewNotFoundError("Creation run not found")
	case stderrors.As(err, &inFlightErr):
		return http.StatusConflict, NewConflictError("Operation already in progress")
	case stderrors.Is(err, domain.ErrWalletNotConnected):
		return http.StatusServiceUnavailable, NewUnavailableError("Please connect your wallet")
	case stderrors.As(err, &connErr):
		return http.StatusServiceUnavailable, NewUnavailableError("Chain unavailable")
	case stderrors.As(err, &txErr),
		stderrors.As(err, &tokenErr),
		stderrors.As(err, &metadataErr):
		return http.StatusBadGateway, NewUpstreamError(fallback)
	}

	return http.StatusInternalServerError, NewInternalError(fallback)
}

func statusOf(code ErrorCode) int {
	switch code {
	case ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeUpstreamError:
		return http.StatusBadGateway
	case ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
