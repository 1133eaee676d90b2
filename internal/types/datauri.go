package types

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DataURI is a parsed RFC 2397 data URI
type DataURI struct {
	MimeType    string
	Base64      bool
	DecodedData []byte
}

// IsDataURI reports whether s uses the data: scheme
func IsDataURI(s string) bool {
	return strings.HasPrefix(strings.ToLower(s), "data:")
}

// ParseDataURI parses a data URI of the form data:[<mediatype>][;base64],<data>
func ParseDataURI(s string) (*DataURI, error) {
	if !IsDataURI(s) {
		return nil, errors.New("invalid data URI: missing data: scheme")
	}

	header, payload, ok := strings.Cut(s[len("data:"):], ",")
	if !ok {
		return nil, errors.New("invalid data URI: missing comma")
	}

	parsed := &DataURI{MimeType: "text/plain"}
	params := strings.Split(header, ";")
	if params[0] != "" {
		parsed.MimeType = strings.ToLower(strings.TrimSpace(params[0]))
	}
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			parsed.Base64 = true
		}
	}

	if parsed.Base64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("invalid data URI: %w", err)
		}
		parsed.DecodedData = data
		return parsed, nil
	}

	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid data URI: %w", err)
	}
	parsed.DecodedData = []byte(decoded)

	return parsed, nil
}
