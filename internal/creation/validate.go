package creation

import (
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tokentreat/treat-service/internal/domain"
	"github.com/tokentreat/treat-service/internal/types"
)

// validityLayouts are the accepted textual expiry formats
var validityLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ValidDraft is a draft whose fields passed validation
type ValidDraft struct {
	Draft         domain.CreationDraft
	Recipient     common.Address
	RefundAddress common.Address
	TokenAddress  string
	Expiry        time.Time
}

// Validate checks a draft before any transaction is sent
func Validate(draft domain.CreationDraft, now time.Time) (*ValidDraft, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "is required"}
	}
	if !draft.Type.Valid() {
		return nil, &domain.ValidationError{Field: "type", Message: "must be one of discount, giveaway, gift, prize"}
	}
	if strings.TrimSpace(draft.Value) == "" {
		return nil, &domain.ValidationError{Field: "value", Message: "is required"}
	}

	recipient, err := ParseRecipient(draft.Recipients)
	if err != nil {
		return nil, err
	}

	if !types.IsEthereumAddress(strings.TrimSpace(draft.RefundAddress)) {
		return nil, &domain.ValidationError{Field: "refund_address", Message: "must be a hex address"}
	}

	tokenAddress, err := NormalizeToken(draft.TokenAddress)
	if err != nil {
		return nil, err
	}

	expiry, err := ParseValidity(draft.Validity)
	if err != nil {
		return nil, err
	}
	if !expiry.After(now) {
		return nil, &domain.ValidationError{Field: "validity", Message: "must be in the future"}
	}

	if countImageSources(draft.Image) != 1 {
		return nil, &domain.ValidationError{Field: "image", Message: "exactly one of data, url or prompt is required"}
	}

	return &ValidDraft{
		Draft:         draft,
		Recipient:     recipient,
		RefundAddress: common.HexToAddress(strings.TrimSpace(draft.RefundAddress)),
		TokenAddress:  tokenAddress,
		Expiry:        expiry,
	}, nil
}

func (v *ValidDraft) tokenAddress() common.Address {
	return common.HexToAddress(v.TokenAddress)
}

// ParseRecipient parses the comma separated recipient list, which must hold
// exactly one address
func ParseRecipient(recipients string) (common.Address, error) {
	var addresses []string
	for _, r := range strings.Split(recipients, ",") {
		if r = strings.TrimSpace(r); r != "" {
			addresses = append(addresses, r)
		}
	}

	switch {
	case len(addresses) == 0:
		return common.Address{}, &domain.ValidationError{Field: "recipients", Message: "Please enter a receipient address"}
	case len(addresses) > 1:
		return common.Address{}, domain.ErrMultiRecipientUnsupported
	}

	if !types.IsEthereumAddress(addresses[0]) {
		return common.Address{}, &domain.ValidationError{Field: "recipients", Message: "must be a hex address"}
	}
	return common.HexToAddress(addresses[0]), nil
}

// ParseValidity parses an expiry given as RFC3339, a date, or Unix seconds
func ParseValidity(validity string) (time.Time, error) {
	validity = strings.TrimSpace(validity)
	if validity == "" {
		return time.Time{}, &domain.ValidationError{Field: "validity", Message: "is required"}
	}

	if types.IsNumericID(validity) {
		seconds, err := strconv.ParseInt(validity, 10, 64)
		if err != nil {
			return time.Time{}, &domain.ValidationError{Field: "validity", Message: "is out of range"}
		}
		return time.Unix(seconds, 0).UTC(), nil
	}

	for _, layout := range validityLayouts {
		if t, err := time.Parse(layout, validity); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, &domain.ValidationError{Field: "validity", Message: "must be RFC3339, YYYY-MM-DD or Unix seconds"}
}

func countImageSources(img domain.ImageSource) int {
	n := 0
	if len(img.Data) > 0 {
		n++
	}
	if strings.TrimSpace(img.URL) != "" {
		n++
	}
	if strings.TrimSpace(img.Prompt) != "" {
		n++
	}
	return n
}
