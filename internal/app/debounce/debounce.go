// Package debounce delays a call until its caller has been quiet for a fixed
// window, so that a burst of keystrokes results in a single airport lookup.
package debounce

import (
	"sync"
	"time"

	"github.com/jsamuelsen11/skysearch/internal/platform/clock"
)

// Debouncer runs fn with the most recent argument passed to Schedule once
// delay has elapsed without another Schedule call. It owns at most one
// pending timer at a time and is safe for concurrent use.
type Debouncer[T any] struct {
	clock clock.Clock
	delay time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   *clock.Timer
	gen     uint64
	fired   uint64
	stopped bool
}

// New creates a Debouncer that calls fn after delay of inactivity.
func New[T any](clk clock.Clock, delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		clock: clk,
		delay: delay,
		fn:    fn,
	}
}

// Schedule cancels any pending call and arms a new one with arg. It reports
// whether a pending call was superseded. After Stop, Schedule does nothing.
func (d *Debouncer[T]) Schedule(arg T) bool {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return false
	}
	superseded := d.timer != nil && d.timer.Stop()
	d.timer = nil
	d.gen++
	gen := d.gen
	d.mu.Unlock()

	// AfterFunc may invoke the callback synchronously, so it is called
	// without holding mu.
	t := d.clock.AfterFunc(d.delay, func() { d.fire(gen, arg) })

	// A timer that already fired, or was superseded meanwhile, is not kept.
	d.mu.Lock()
	if d.gen == gen && d.fired != gen && !d.stopped {
		d.timer = t
	} else {
		t.Stop()
	}
	d.mu.Unlock()

	return superseded
}

// Pending reports whether a call is armed and has not fired yet.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels the pending call, if any, and disables the Debouncer.
// Stop is idempotent.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer[T]) fire(gen uint64, arg T) {
	d.mu.Lock()
	if gen != d.gen || d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.fired = gen
	d.mu.Unlock()

	d.fn(arg)
}
