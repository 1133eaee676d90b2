package dto

import (
	apierrors "github.com/tokentreat/treat-service/internal/api/shared/errors"
	"github.com/tokentreat/treat-service/internal/creation"
	"github.com/tokentreat/treat-service/internal/domain"
)

// ErrorResponse wraps every error body
type ErrorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// CreationErrorResponse is returned when a creation run failed; the run is persisted in FAILED state
type CreationErrorResponse struct {
	Error *apierrors.APIError `json:"error"`
	Run   *creation.Run       `json:"run,omitempty"`
}

// TreatListResponse is a full, unpaginated treat list
type TreatListResponse struct {
	Treats []*domain.DisplayTreat `json:"treats"`
	Count  int                    `json:"count"`
}

// BurnResponse is returned after a confirmed burn
type BurnResponse struct {
	ID     string `json:"id"`
	TxHash string `json:"tx_hash"`
}

// ImageSessionResponse is the latest state of an image generation session
type ImageSessionResponse struct {
	Session   string `json:"session"`
	Prompt    string `json:"prompt,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Error     string `json:"error,omitempty"`
	Sequence  uint64 `json:"sequence"`
	Pending   bool   `json:"pending"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
