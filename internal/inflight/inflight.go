package inflight

import (
	"sync"

	"github.com/tokentreat/treat-service/internal/domain"
)

// Guard holds one flag per key so the same operation never runs twice at once
type Guard struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// NewGuard creates an empty guard
func NewGuard() *Guard {
	return &Guard{keys: make(map[string]struct{})}
}

// Acquire sets the flag for key and returns its release function.
// It fails with an InFlightError while the key is held.
func (g *Guard) Acquire(key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, held := g.keys[key]; held {
		return nil, &domain.InFlightError{Key: key}
	}
	g.keys[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.keys, key)
			g.mu.Unlock()
		})
	}, nil
}

// Held reports whether key is currently in flight
func (g *Guard) Held(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, held := g.keys[key]
	return held
}
