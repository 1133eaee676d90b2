package notify

import (
	"context"
	"sync"
)

// LoadingTracker counts nested loading scopes. The underlying notifier sees
// loading=true when a scope goes from idle to busy and loading=false only
// once every Start of that scope has been ended.
type LoadingTracker struct {
	mu       sync.Mutex
	counts   map[string]int
	notifier Notifier
}

// NewLoadingTracker creates a tracker reporting to notifier
func NewLoadingTracker(notifier Notifier) *LoadingTracker {
	return &LoadingTracker{
		counts:   make(map[string]int),
		notifier: notifier,
	}
}

// Start marks scope as loading and returns the function that ends it.
// The returned function is safe to call more than once.
func (t *LoadingTracker) Start(ctx context.Context, scope string) func() {
	t.mu.Lock()
	t.counts[scope]++
	first := t.counts[scope] == 1
	t.mu.Unlock()

	if first {
		t.notifier.Loading(ctx, scope, true)
	}

	var once sync.Once
	return func() {
		once.Do(func() { t.end(ctx, scope) })
	}
}

func (t *LoadingTracker) end(ctx context.Context, scope string) {
	t.mu.Lock()
	t.counts[scope]--
	last := t.counts[scope] <= 0
	if last {
		delete(t.counts, scope)
	}
	t.mu.Unlock()

	if last {
		t.notifier.Loading(ctx, scope, false)
	}
}

// Loading reports whether scope has any unfinished Start
func (t *LoadingTracker) Loading(scope string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[scope] > 0
}

// Idle reports whether no scope is loading
func (t *LoadingTracker) Idle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.counts) == 0
}
