package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/tokentreat/treat-service/internal/adapter"
	"github.com/tokentreat/treat-service/internal/logger"
)

type logNotifier struct {
	clock adapter.Clock
}

// NewLogNotifier creates a notifier that writes every event to the service log
func NewLogNotifier(clock adapter.Clock) Notifier {
	return &logNotifier{clock: clock}
}

func (l *logNotifier) Success(ctx context.Context, title, message string) {
	e := newEvent(l.clock, KindSuccess)
	logger.InfoCtx(ctx, "Notification",
		zap.String("id", e.ID),
		zap.String("kind", string(e.Kind)),
		zap.String("title", title),
		zap.String("message", message))
}

func (l *logNotifier) Error(ctx context.Context, title, message string) {
	e := newEvent(l.clock, KindError)
	logger.WarnCtx(ctx, "Notification",
		zap.String("id", e.ID),
		zap.String("kind", string(e.Kind)),
		zap.String("title", title),
		zap.String("message", message))
}

func (l *logNotifier) Loading(ctx context.Context, scope string, loading bool) {
	logger.DebugCtx(ctx, "Loading", zap.String("scope", scope), zap.Bool("loading", loading))
}

func (l *logNotifier) Progress(ctx context.Context, scope, step string) {
	logger.InfoCtx(ctx, "Progress", zap.String("scope", scope), zap.String("step", step))
}
