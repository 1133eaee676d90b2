package notify

import (
	"context"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/logger"
	"github.com/tokentreat/treat-service/internal/webhook"
)

const (
	DEFAULT_WEBHOOK_WORKERS    = 4
	DEFAULT_WEBHOOK_QUEUE_SIZE = 256
	DEFAULT_WEBHOOK_TIMEOUT    = 10 * time.Second
)

// WebhookConfig holds the webhook delivery configuration
type WebhookConfig struct {
	URL     string
	Secret  string
	Workers int
	Timeout time.Duration
}

// WebhookNotifier POSTs signed success and error events to a client endpoint.
// Loading and progress events are not delivered.
type WebhookNotifier struct {
	config WebhookConfig
	http   adapter.HTTPClient
	json   adapter.JSON
	clock  adapter.Clock
	pool   pond.Pool
}

// NewWebhookNotifier creates a webhook notifier delivering from a bounded worker pool
func NewWebhookNotifier(cfg WebhookConfig, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, clock adapter.Clock) *WebhookNotifier {
	if cfg.Workers <= 0 {
		cfg.Workers = DEFAULT_WEBHOOK_WORKERS
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DEFAULT_WEBHOOK_TIMEOUT
	}

	return &WebhookNotifier{
		config: cfg,
		http:   httpClient,
		json:   jsonAdapter,
		clock:  clock,
		pool:   pond.NewPool(cfg.Workers, pond.WithQueueSize(DEFAULT_WEBHOOK_QUEUE_SIZE)),
	}
}

func (w *WebhookNotifier) Success(ctx context.Context, title, message string) {
	e := newEvent(w.clock, KindSuccess)
	e.Title = title
	e.Message = message
	w.deliver(ctx, e)
}

func (w *WebhookNotifier) Error(ctx context.Context, title, message string) {
	e := newEvent(w.clock, KindError)
	e.Title = title
	e.Message = message
	w.deliver(ctx, e)
}

func (w *WebhookNotifier) Loading(context.Context, string, bool) {}

func (w *WebhookNotifier) Progress(context.Context, string, string) {}

// deliver queues the event; a full queue blocks the caller until a worker frees up
func (w *WebhookNotifier) deliver(ctx context.Context, e Event) {
	payload, err := w.json.Marshal(e)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to marshal webhook event", zap.Error(err))
		return
	}
	headers := webhook.Headers(w.config.Secret, e.Timestamp.Unix(), e.ID, payload)

	// The caller's context may be done before the delivery runs
	deliveryCtx := context.WithoutCancel(ctx)
	w.pool.Submit(func() {
		postCtx, cancel := context.WithTimeout(deliveryCtx, w.config.Timeout)
		defer cancel()

		if _, err := w.http.Post(postCtx, w.config.URL, "application/json", payload, headers); err != nil {
			logger.WarnCtx(deliveryCtx, "Failed to deliver webhook",
				zap.String("id", e.ID),
				zap.String("kind", string(e.Kind)),
				zap.Error(err))
		}
	})
}

// Close waits for queued deliveries
func (w *WebhookNotifier) Close() {
	w.pool.StopAndWait()
}
