package imagegen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/ratelimit"
)

var (
	ErrEmptyPrompt   = errors.New("empty prompt")
	ErrNoImage       = errors.New("image generation returned no image")
	ErrNotConfigured = errors.New("image generation is not configured")
)

// Config holds the image generation backend configuration
type Config struct {
	URL         string
	AuthToken   string
	QuietPeriod time.Duration
}

// Client generates an image for a prompt and returns its URL
//
//go:generate mockgen -source=client.go -destination=../mocks/imagegen_client.go -package=mocks -mock_names=Client=MockImageGenClient
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type generateRequest struct {
	// The backend expects this exact key
	ImagePrompt string `json:"imagePromt"`
}

type generateResponse struct {
	ImageURL string `json:"image_url"`
}

type client struct {
	config     Config
	httpClient adapter.HTTPClient
	json       adapter.JSON
	limiter    ratelimit.Limiter
}

// NewClient creates a rate limited image generation client; a nil limiter means no limit
func NewClient(cfg Config, httpClient adapter.HTTPClient, json adapter.JSON, limiter ratelimit.Limiter) Client {
	if limiter == nil {
		limiter = ratelimit.NewLocal(0, 1)
	}
	return &client{
		config:     cfg,
		httpClient: httpClient,
		json:       json,
		limiter:    limiter,
	}
}

func (c *client) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	if c.config.URL == "" {
		return "", ErrNotConfigured
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	body, err := c.json.Marshal(generateRequest{ImagePrompt: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	var headers map[string]string
	if c.config.AuthToken != "" {
		headers = map[string]string{"Authorization": c.config.AuthToken}
	}

	respBody, err := c.httpClient.Post(ctx, c.config.URL, "application/json", body, headers)
	if err != nil {
		return "", fmt.Errorf("failed to generate image: %w", err)
	}

	var resp []generateResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(resp) == 0 || resp[0].ImageURL == "" {
		return "", ErrNoImage
	}

	logger.DebugCtx(ctx, "Generated image", zap.String("url", resp[0].ImageURL))

	return resp[0].ImageURL, nil
}
