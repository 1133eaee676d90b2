package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

const (
	SIGNATURE_HEADER = "X-Webhook-Signature"
	TIMESTAMP_HEADER = "X-Webhook-Timestamp"
	EVENT_ID_HEADER  = "X-Webhook-Event-ID"

	signaturePrefix = "sha256="
)

// Sign returns the HMAC-SHA256 signature of {timestamp}.{event_id}.{payload}
// formatted as "sha256=<hex>"
func Sign(secret string, timestamp int64, eventID string, payload []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	_, _ = fmt.Fprintf(h, "%d.%s.", timestamp, eventID)
	_, _ = h.Write(payload)
	return signaturePrefix + hex.EncodeToString(h.Sum(nil))
}

// Verify checks signature in constant time
func Verify(secret, signature string, timestamp int64, eventID string, payload []byte) bool {
	expected := Sign(secret, timestamp, eventID, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Headers returns the delivery headers of a signed payload
func Headers(secret string, timestamp int64, eventID string, payload []byte) map[string]string {
	return map[string]string{
		SIGNATURE_HEADER: Sign(secret, timestamp, eventID, payload),
		TIMESTAMP_HEADER: strconv.FormatInt(timestamp, 10),
		EVENT_ID_HEADER:  eventID,
	}
}
