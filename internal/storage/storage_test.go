package storage_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/storage"
	"github.com/tokentreat/treat-service/internal/uri"
)

// 1x1 transparent PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newClient(serverURL string) storage.Client {
	return storage.NewClient(
		storage.Config{APIURL: serverURL + "/", APIKey: "secret"},
		adapter.NewSingleShotHTTPClient(5*time.Second),
		adapter.NewJSON(),
		uri.NewResolver(uri.Config{}),
	)
}

func TestUploadImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v0/add", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, pngPixel, data)
		assert.Equal(t, "treat.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		_, _ = w.Write([]byte(`{"Name":"treat.png","Hash":"bafyimage","Size":"67"}`))
	}))
	defer server.Close()

	upload, err := newClient(server.URL).UploadImage(context.Background(), "treat", pngPixel)
	require.NoError(t, err)
	assert.Equal(t, "bafyimage", upload.Hash)
	assert.Equal(t, "ipfs://bafyimage", upload.URI)
	assert.Equal(t, "image/png", upload.MimeType)
}

func TestUploadImage_Rejected(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()
	client := newClient(server.URL)

	_, err := client.UploadImage(context.Background(), "treat", []byte("%PDF-1.4 not an image"))
	assert.ErrorIs(t, err, storage.ErrUnsupportedImage)

	_, err = client.UploadImage(context.Background(), "treat", nil)
	assert.ErrorIs(t, err, storage.ErrEmptyContent)

	assert.Zero(t, calls.Load())
}

func TestUpload_NoRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newClient(server.URL).UploadJSON(context.Background(), "metadata", []byte(`{"name":"x"}`))
	require.Error(t, err)

	var statusErr *adapter.HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestUpload_MissingAPIKey(t *testing.T) {
	client := storage.NewClient(storage.Config{}, adapter.NewSingleShotHTTPClient(time.Second), adapter.NewJSON(), uri.NewResolver(uri.Config{}))
	_, err := client.UploadJSON(context.Background(), "metadata", []byte(`{}`))
	assert.ErrorIs(t, err, storage.ErrMissingAPIKey)
}

func TestTreatDocument_Canonicalize(t *testing.T) {
	doc := storage.NewTreatDocument("Coffee", "one free coffee", "ipfs://bafyimage", "gift", "2026-12-31")

	canonical, err := doc.Canonicalize(adapter.NewJSON(), adapter.NewJCS())
	require.NoError(t, err)

	// Keys sorted, no insignificant whitespace
	assert.Equal(t,
		`{"attributes":[{"trait_type":"type","value":"gift"},{"trait_type":"validity","value":"2026-12-31"}],"description":"one free coffee","image":"ipfs://bafyimage","name":"Coffee"}`,
		string(canonical))
}
