package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/logger"
)

const subjectPrefix = "treats.notifications"

// NATSConfig holds the configuration for the JetStream notifier
type NATSConfig struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	PublishTimeout time.Duration
}

// NATSNotifier publishes notification events to NATS JetStream
type NATSNotifier struct {
	nc             adapter.NatsConn
	js             adapter.JetStream
	json           adapter.JSON
	clock          adapter.Clock
	publishTimeout time.Duration
}

// NewNATSNotifier connects to NATS and makes sure the notification stream exists
func NewNATSNotifier(ctx context.Context, cfg NATSConfig, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON, clock adapter.Clock) (*NATSNotifier, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{subjectPrefix + ".>"},
		MaxAge:   24 * time.Hour,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create notification stream: %w", err)
	}

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &NATSNotifier{
		nc:             nc,
		js:             js,
		json:           jsonAdapter,
		clock:          clock,
		publishTimeout: timeout,
	}, nil
}

func (n *NATSNotifier) Success(ctx context.Context, title, message string) {
	e := newEvent(n.clock, KindSuccess)
	e.Title = title
	e.Message = message
	n.publish(ctx, e)
}

func (n *NATSNotifier) Error(ctx context.Context, title, message string) {
	e := newEvent(n.clock, KindError)
	e.Title = title
	e.Message = message
	n.publish(ctx, e)
}

func (n *NATSNotifier) Loading(ctx context.Context, scope string, loading bool) {
	e := newEvent(n.clock, KindLoading)
	e.Scope = scope
	e.Loading = loading
	n.publish(ctx, e)
}

func (n *NATSNotifier) Progress(ctx context.Context, scope, step string) {
	e := newEvent(n.clock, KindProgress)
	e.Scope = scope
	e.Step = step
	n.publish(ctx, e)
}

// publish sends the event, logging failures instead of returning them
func (n *NATSNotifier) publish(ctx context.Context, e Event) {
	data, err := n.json.Marshal(e)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to marshal notification", zap.Error(err))
		return
	}

	// The caller's context may already be done when a failure is reported
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.publishTimeout)
	defer cancel()

	subject := fmt.Sprintf("%s.%s", subjectPrefix, e.Kind)
	if _, err := n.js.Publish(pubCtx, subject, data); err != nil {
		logger.WarnCtx(ctx, "Failed to publish notification",
			zap.String("subject", subject),
			zap.String("id", e.ID),
			zap.Error(err))
	}
}

// Close closes the NATS connection
func (n *NATSNotifier) Close() {
	if n.nc == nil {
		return
	}
	n.nc.Close()
}
