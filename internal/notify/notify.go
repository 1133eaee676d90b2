package notify

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tokentreat/treat-service/internal/adapter"
)

// Kind is the kind of a notification event
type Kind string

const (
	KindSuccess  Kind = "success"
	KindError    Kind = "error"
	KindLoading  Kind = "loading"
	KindProgress Kind = "progress"
)

// Event is a user-facing notification
type Event struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title,omitempty"`
	Message   string    `json:"message,omitempty"`
	Scope     string    `json:"scope,omitempty"`
	Step      string    `json:"step,omitempty"`
	Loading   bool      `json:"loading"`
	Timestamp time.Time `json:"timestamp"`
}

// Notifier is the success/error/loading side channel of long running operations.
// Delivery is best effort: a notifier never fails the operation it reports on.
//
//go:generate mockgen -source=notify.go -destination=../mocks/notifier.go -package=mocks -mock_names=Notifier=MockNotifier
type Notifier interface {
	// Success reports a completed operation
	Success(ctx context.Context, title, message string)

	// Error reports a failed operation with a user-facing message
	Error(ctx context.Context, title, message string)

	// Loading reports that scope started (true) or finished (false) loading
	Loading(ctx context.Context, scope string, loading bool)

	// Progress reports that scope entered step
	Progress(ctx context.Context, scope, step string)
}

// newEvent stamps an event with a ULID ordered by the clock
func newEvent(clock adapter.Clock, kind Kind) Event {
	now := clock.Now()
	return Event{
		ID:        ulid.MustNewDefault(now).String(),
		Kind:      kind,
		Timestamp: now.UTC(),
	}
}

type multi struct {
	notifiers []Notifier
}

// Multi fans every notification out to all notifiers, skipping nil ones
func Multi(notifiers ...Notifier) Notifier {
	m := &multi{}
	for _, n := range notifiers {
		if n != nil {
			m.notifiers = append(m.notifiers, n)
		}
	}
	return m
}

func (m *multi) Success(ctx context.Context, title, message string) {
	for _, n := range m.notifiers {
		n.Success(ctx, title, message)
	}
}

func (m *multi) Error(ctx context.Context, title, message string) {
	for _, n := range m.notifiers {
		n.Error(ctx, title, message)
	}
}

func (m *multi) Loading(ctx context.Context, scope string, loading bool) {
	for _, n := range m.notifiers {
		n.Loading(ctx, scope, loading)
	}
}

func (m *multi) Progress(ctx context.Context, scope, step string) {
	for _, n := range m.notifiers {
		n.Progress(ctx, scope, step)
	}
}
