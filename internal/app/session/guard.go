package session

import "sync"

// guard serializes access to a session's mutable state. Reads take a shared
// lock; writes are exclusive so debounce callbacks, fetch goroutines and
// request handlers never interleave a mutation.
type guard[T any] struct {
	mu  sync.RWMutex
	val T
}

func newGuard[T any](val T) *guard[T] {
	return &guard[T]{val: val}
}

// read calls fn with the value under a read lock. fn must not retain the
// pointer or mutate through it.
func (g *guard[T]) read(fn func(*T)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(&g.val)
}

// write applies fn under the write lock and returns its error.
func (g *guard[T]) write(fn func(*T) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(&g.val)
}
