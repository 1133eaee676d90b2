package webhook_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tokentreat/treat-service/internal/webhook"
)

func TestSign(t *testing.T) {
	payload := []byte(`{"id":"01JG8XAMPLE1234567890123456","kind":"success"}`)

	signature := webhook.Sign("secret", 1705312800, "01JG8XAMPLE1234567890123456", payload)

	h := hmac.New(sha256.New, []byte("secret"))
	h.Write([]byte("1705312800.01JG8XAMPLE1234567890123456." + string(payload)))
	assert.Equal(t, "sha256="+hex.EncodeToString(h.Sum(nil)), signature)
}

func TestVerify(t *testing.T) {
	payload := []byte(`{"kind":"error"}`)
	signature := webhook.Sign("secret", 100, "evt", payload)

	tests := []struct {
		name      string
		secret    string
		signature string
		timestamp int64
		eventID   string
		payload   []byte
		want      bool
	}{
		{name: "valid", secret: "secret", signature: signature, timestamp: 100, eventID: "evt", payload: payload, want: true},
		{name: "wrong secret", secret: "other", signature: signature, timestamp: 100, eventID: "evt", payload: payload},
		{name: "replayed timestamp", secret: "secret", signature: signature, timestamp: 101, eventID: "evt", payload: payload},
		{name: "different event", secret: "secret", signature: signature, timestamp: 100, eventID: "evt2", payload: payload},
		{name: "tampered body", secret: "secret", signature: signature, timestamp: 100, eventID: "evt", payload: []byte(`{"kind":"success"}`)},
		{name: "missing prefix", secret: "secret", signature: signature[len("sha256="):], timestamp: 100, eventID: "evt", payload: payload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, webhook.Verify(tt.secret, tt.signature, tt.timestamp, tt.eventID, tt.payload))
		})
	}
}

func TestHeaders(t *testing.T) {
	payload := []byte(`{}`)
	headers := webhook.Headers("secret", 42, "evt", payload)

	assert.Equal(t, "42", headers[webhook.TIMESTAMP_HEADER])
	assert.Equal(t, "evt", headers[webhook.EVENT_ID_HEADER])
	assert.True(t, webhook.Verify("secret", headers[webhook.SIGNATURE_HEADER], 42, "evt", payload))
}
