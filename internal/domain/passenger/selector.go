package passenger

import (
	"fmt"

	"github.com/jsamuelsen11/skysearch/internal/domain"
)

// Listener receives the full updated counts after every change.
type Listener func(Counts)

// Selector owns a Counts value and reports the aggregate to its owner on
// every increment or decrement. The owner never holds a reference to the
// selector's state; it only receives copies.
type Selector struct {
	counts   Counts
	floors   Counts
	listener Listener
}

// Option configures a Selector.
type Option func(*Selector)

// WithMinimum sets a lower bound for a category. The default floor for
// every category is zero.
func WithMinimum(cat Category, n int) Option {
	return func(s *Selector) {
		if n > 0 {
			s.floors = s.floors.With(cat, n)
		}
	}
}

// NewSelector creates a Selector starting from initial. The listener may
// be nil.
func NewSelector(initial Counts, listener Listener, opts ...Option) *Selector {
	s := &Selector{counts: initial, listener: listener}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Increment adds one passenger of the given category. There is no upper bound.
func (s *Selector) Increment(cat Category) (Counts, error) {
	if err := validateCategory(cat); err != nil {
		return s.counts, err
	}
	s.counts = s.counts.With(cat, s.counts.Get(cat)+1)
	s.publish()
	return s.counts, nil
}

// Decrement removes one passenger of the given category, never going below
// the category floor and never raising a count that already sits under it.
// The listener is notified even when the count did not change.
func (s *Selector) Decrement(cat Category) (Counts, error) {
	if err := validateCategory(cat); err != nil {
		return s.counts, err
	}
	cur := s.counts.Get(cat)
	s.counts = s.counts.With(cat, min(cur, max(s.floors.Get(cat), cur-1)))
	s.publish()
	return s.counts, nil
}

// Counts returns a copy of the current counts.
func (s *Selector) Counts() Counts {
	return s.counts
}

// Total returns the number of passengers across all categories.
func (s *Selector) Total() int {
	return s.counts.Total()
}

func (s *Selector) publish() {
	if s.listener != nil {
		s.listener(s.counts)
	}
}

func validateCategory(cat Category) error {
	if !cat.IsValid() {
		return domain.NewFieldError("category", fmt.Sprintf("invalid: %q", cat))
	}
	return nil
}
