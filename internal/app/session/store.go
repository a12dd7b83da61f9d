package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/skysearch/internal/domain"
	"github.com/jsamuelsen11/skysearch/internal/platform/clock"
)

// Store is the process-wide registry of live sessions. It is constructed
// once at startup, evicts sessions idle for longer than its TTL, and must
// be shut down to stop the janitor and every pending lookup.
type Store struct {
	clock  clock.Clock
	ttl    time.Duration
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
	sweeps   []func()

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// NewStore creates an empty Store. A non-positive ttl disables eviction.
func NewStore(clk clock.Clock, ttl time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		clock:    clk,
		ttl:      ttl,
		logger:   logger,
		sessions: make(map[string]*Session),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Add registers a session. Returns domain.ErrConflict if the ID is taken.
func (s *Store) Add(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.ID()]; ok {
		return fmt.Errorf("session %s: %w", sess.ID(), domain.ErrConflict)
	}
	s.sessions[sess.ID()] = sess
	return nil
}

// Get returns the session with the given ID and marks it as active.
// Returns domain.ErrNotFound for unknown or evicted sessions.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	sess.Touch(s.clock.Now())
	return sess, nil
}

// Delete removes a session and stops its pending lookup.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	sess.Close()
	return nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Evict removes every session idle for at least the TTL and returns their
// IDs.
func (s *Store) Evict() []string {
	if s.ttl <= 0 {
		return nil
	}
	cutoff := s.clock.Now().Add(-s.ttl)

	var evicted []*Session
	s.mu.Lock()
	for id, sess := range s.sessions {
		if !sess.IdleSince().After(cutoff) {
			evicted = append(evicted, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	ids := make([]string, 0, len(evicted))
	for _, sess := range evicted {
		sess.Close()
		ids = append(ids, sess.ID())
	}
	return ids
}

// OnSweep registers fn to run on every janitor tick after idle sessions are
// evicted. It must be called before StartJanitor.
func (s *Store) OnSweep(fn func()) {
	s.sweeps = append(s.sweeps, fn)
}

// StartJanitor evicts idle sessions every interval until Shutdown is
// called. It returns immediately. Only the first call has an effect.
func (s *Store) StartJanitor(interval time.Duration) {
	s.startOnce.Do(func() { s.runJanitor(interval) })
}

func (s *Store) runJanitor(interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		close(s.done)
		return
	}

	ticker := s.clock.NewTicker(interval)
	go func() {
		defer close(s.done)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				if ids := s.Evict(); len(ids) > 0 {
					s.logger.Info("evicted idle sessions", slog.Int("count", len(ids)))
				}
				for _, fn := range s.sweeps {
					fn()
				}
			}
		}
	}()
}

// Shutdown stops the janitor and closes every session. It waits for the
// janitor to exit or for ctx to be done, whichever comes first.
func (s *Store) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })
	// A janitor that was never started has nothing to wait for.
	s.startOnce.Do(func() { close(s.done) })

	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for session janitor: %w", ctx.Err())
	}
}
