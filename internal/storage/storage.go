package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/uri"
)

const (
	DefaultAPIURL = "https://node.lighthouse.storage"
	addPath       = "/api/v0/add"
)

var (
	ErrEmptyContent     = errors.New("empty content")
	ErrUnsupportedImage = errors.New("unsupported image content")
	ErrMissingAPIKey    = errors.New("storage api key is not configured")
)

// Config holds the content-addressed storage configuration
type Config struct {
	APIURL string
	APIKey string
}

// Upload is a stored object
type Upload struct {
	Name     string `json:"name"`
	Hash     string `json:"hash"`
	Size     string `json:"size"`
	MimeType string `json:"mime_type"`
	URI      string `json:"uri"`
}

// addResponse is the response of the add endpoint
type addResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

// Client uploads treat images and metadata documents. Uploads are never retried.
//
//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks -mock_names=Client=MockStorageClient
type Client interface {
	// UploadImage sniffs data and uploads it when it is an image
	UploadImage(ctx context.Context, name string, data []byte) (*Upload, error)

	// UploadJSON uploads a canonical JSON document
	UploadJSON(ctx context.Context, name string, document []byte) (*Upload, error)
}

type client struct {
	config      Config
	httpClient  adapter.HTTPClient
	json        adapter.JSON
	uriResolver uri.Resolver
}

// NewClient creates a new storage client. httpClient must not retry.
func NewClient(cfg Config, httpClient adapter.HTTPClient, json adapter.JSON, uriResolver uri.Resolver) Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return &client{
		config:      cfg,
		httpClient:  httpClient,
		json:        json,
		uriResolver: uriResolver,
	}
}

func (c *client) UploadImage(ctx context.Context, name string, data []byte) (*Upload, error) {
	if len(data) == 0 {
		return nil, ErrEmptyContent
	}

	detected := mimetype.Detect(data)
	if !isImageMimeType(detected.String()) {
		return nil, fmt.Errorf("%w: detected %s", ErrUnsupportedImage, detected.String())
	}
	if !strings.HasSuffix(name, detected.Extension()) {
		name += detected.Extension()
	}

	return c.upload(ctx, name, detected.String(), data)
}

func (c *client) UploadJSON(ctx context.Context, name string, document []byte) (*Upload, error) {
	if len(document) == 0 {
		return nil, ErrEmptyContent
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return c.upload(ctx, name, "application/json", document)
}

func (c *client) upload(ctx context.Context, name, mimeType string, data []byte) (*Upload, error) {
	if c.config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	body, contentType, err := multipartBody(name, mimeType, data)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Uploading to storage",
		zap.String("name", name),
		zap.String("mimeType", mimeType),
		zap.Int("size", len(data)))

	respBody, err := c.httpClient.Post(ctx, c.config.APIURL+addPath, contentType, body, map[string]string{
		"Authorization": "Bearer " + c.config.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", name, err)
	}

	var resp addResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if resp.Hash == "" {
		return nil, fmt.Errorf("upload response for %s has no hash", name)
	}

	return &Upload{
		Name:     resp.Name,
		Hash:     resp.Hash,
		Size:     resp.Size,
		MimeType: mimeType,
		URI:      c.uriResolver.IPFS(resp.Hash),
	}, nil
}

// multipartBody builds a multipart/form-data body with a single file part
func multipartBody(name, mimeType string, data []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	header.Set("Content-Type", mimeType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("failed to write multipart part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

// isImageMimeType checks if a mime type is image/*
func isImageMimeType(mimeType string) bool {
	base, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(mimeType)), ";")
	return strings.HasPrefix(strings.TrimSpace(base), "image/")
}
