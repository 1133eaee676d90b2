package imagegen

import (
	"context"
	"sync"
	"time"

	"github.com/tokentreat/treat-service/internal/adapter"
)

const DefaultMaxSessions = 1024

type session struct {
	debouncer *Debouncer
	lastUsed  time.Time
}

// Sessions keeps one debouncer per session key, evicting the least recently
// used session once the limit is reached
type Sessions struct {
	ctx         context.Context
	client      Client
	clock       adapter.Clock
	quiet       time.Duration
	maxSessions int

	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessions creates a session registry
func NewSessions(ctx context.Context, client Client, clock adapter.Clock, quiet time.Duration, maxSessions int) *Sessions {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &Sessions{
		ctx:         ctx,
		client:      client,
		clock:       clock,
		quiet:       quiet,
		maxSessions: maxSessions,
		sessions:    make(map[string]*session),
	}
}

// Submit forwards prompt to the debouncer of key, creating it on first use
func (s *Sessions) Submit(key, prompt string) {
	s.mu.Lock()
	sess, ok := s.sessions[key]
	if !ok {
		s.evictLocked()
		sess = &session{debouncer: NewDebouncer(s.ctx, s.client, s.quiet)}
		s.sessions[key] = sess
	}
	sess.lastUsed = s.clock.Now()
	s.mu.Unlock()

	sess.debouncer.Submit(prompt)
}

// Latest returns the latest result of key
func (s *Sessions) Latest(key string) (Result, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[key]
	s.mu.Unlock()
	if !ok {
		return Result{}, false
	}
	return sess.debouncer.Latest(), true
}

// Len returns the number of live sessions
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// evictLocked drops the least recently used session when the registry is full
func (s *Sessions) evictLocked() {
	if len(s.sessions) < s.maxSessions {
		return
	}
	var oldestKey string
	var oldest time.Time
	for k, sess := range s.sessions {
		if oldestKey == "" || sess.lastUsed.Before(oldest) {
			oldestKey = k
			oldest = sess.lastUsed
		}
	}
	if sess, ok := s.sessions[oldestKey]; ok {
		sess.debouncer.Close()
		delete(s.sessions, oldestKey)
	}
}

// Close closes every debouncer
func (s *Sessions) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, sess := range s.sessions {
		sess.debouncer.Close()
		delete(s.sessions, k)
	}
}
