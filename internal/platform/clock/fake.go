package clock

import (
	"slices"
	"sync"
	"time"
)

// FakeClock is a Clock whose time only moves when Advance is called.
// It is safe for concurrent use.
//
// AfterFunc callbacks run synchronously inside Advance in deadline order.
// Callbacks may schedule new timers but must not call Advance.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	waiters []*waiter
}

type waiter struct {
	deadline time.Time
	fn       func()
	ch       chan time.Time
	interval time.Duration
	done     bool
}

// NewFake returns a FakeClock set to start.
func NewFake(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the fake current time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc registers f to run once the clock has advanced by d. A
// non-positive d runs f before AfterFunc returns.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) *Timer {
	if d <= 0 {
		f()
		return &Timer{stop: func() bool { return false }}
	}

	c.mu.Lock()
	w := &waiter{deadline: c.now.Add(d), fn: f}
	c.waiters = append(c.waiters, w)
	c.mu.Unlock()

	return &Timer{stop: func() bool { return c.cancel(w) }}
}

// NewTicker returns a Ticker that fires every d of advanced fake time.
func (c *FakeClock) NewTicker(d time.Duration) *Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}

	ch := make(chan time.Time, 1)

	c.mu.Lock()
	w := &waiter{deadline: c.now.Add(d), ch: ch, interval: d}
	c.waiters = append(c.waiters, w)
	c.mu.Unlock()

	return &Ticker{C: ch, stop: func() { c.cancel(w) }}
}

// Advance moves the clock forward by d, firing every timer and ticker whose
// deadline is reached. Each one fires with the clock set to its own
// deadline, so timers registered by callbacks are anchored there and fire
// within the same call if they also fall inside the advanced window.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		w, at, ok := c.nextExpired(target)
		if !ok {
			break
		}
		if w.fn != nil {
			w.fn()
			continue
		}
		select {
		case w.ch <- at:
		default:
		}
	}

	c.mu.Lock()
	if c.now.Before(target) {
		c.now = target
	}
	c.mu.Unlock()
}

// PendingCount returns the number of timers and tickers still scheduled.
func (c *FakeClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}

// nextExpired pops the earliest waiter due at or before target and moves
// the clock to its deadline, which it returns. Tickers are rescheduled for
// their next interval instead of being removed.
func (c *FakeClock) nextExpired(target time.Time) (*waiter, time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, w := range c.waiters {
		if w.deadline.After(target) {
			continue
		}
		if idx < 0 || w.deadline.Before(c.waiters[idx].deadline) {
			idx = i
		}
	}
	if idx < 0 {
		return nil, time.Time{}, false
	}

	w := c.waiters[idx]
	at := w.deadline
	if at.After(c.now) {
		c.now = at
	}
	if w.interval > 0 {
		w.deadline = w.deadline.Add(w.interval)
		return w, at, true
	}
	w.done = true
	c.waiters = slices.Delete(c.waiters, idx, idx+1)
	return w, at, true
}

func (c *FakeClock) cancel(w *waiter) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if w.done {
		return false
	}
	w.done = true
	c.waiters = slices.DeleteFunc(c.waiters, func(o *waiter) bool { return o == w })
	return true
}
