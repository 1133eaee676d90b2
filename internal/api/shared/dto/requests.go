package dto

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/tokentreat/treat-service/internal/domain"
)

// QuoteRequest is the body of POST /quotes
type QuoteRequest struct {
	Value        string `json:"value" binding:"required"`
	TokenAddress string `json:"token_address"`
}

// CreateTreatRequest is the body of POST /treats. Exactly one of
// ImageBase64, ImageURL and ImagePrompt is set.
type CreateTreatRequest struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	Value          string `json:"value"`
	TokenAddress   string `json:"token_address"`
	Validity       string `json:"validity"`
	Recipients     string `json:"recipients"`
	RefundAddress  string `json:"refund_address"`
	BurnOnClaim    bool   `json:"burn_on_claim"`
	Transferable   bool   `json:"transferable"`
	Description    string `json:"description"`
	ImageBase64    string `json:"image_base64,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	ImagePrompt    string `json:"image_prompt,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// ToDraft converts the request into a creation draft
func (r *CreateTreatRequest) ToDraft() (domain.CreationDraft, error) {
	draft := domain.CreationDraft{
		Name:          r.Name,
		Type:          domain.TreatType(strings.ToLower(strings.TrimSpace(r.Type))),
		Value:         r.Value,
		TokenAddress:  r.TokenAddress,
		Validity:      r.Validity,
		Recipients:    r.Recipients,
		RefundAddress: r.RefundAddress,
		BurnOnClaim:   r.BurnOnClaim,
		Transferable:  r.Transferable,
		Description:   r.Description,
		Image: domain.ImageSource{
			URL:    r.ImageURL,
			Prompt: r.ImagePrompt,
		},
	}

	if r.ImageBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(r.ImageBase64)
		if err != nil {
			return draft, fmt.Errorf("invalid image_base64: %w", err)
		}
		draft.Image.Data = data
	}

	return draft, nil
}

// ImagePromptRequest is the body of PUT /images/sessions/:session
type ImagePromptRequest struct {
	Prompt string `json:"prompt"`
}
