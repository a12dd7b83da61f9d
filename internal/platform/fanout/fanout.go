// Package fanout runs a function over a slice with bounded concurrency and
// returns the outcomes in input order.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one item. Err is set when fn failed or the item
// never ran because ctx was done first.
type Result[R any] struct {
	Value R
	Err   error
}

// Map calls fn for every item using at most limit concurrent calls. A limit
// of zero or less, or one above len(items), runs every item at once.
//
// An item still waiting for a slot when ctx is done records ctx.Err() and
// fn is not called for it. Map blocks until every call has returned.
func Map[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}

	slots := make(chan struct{}, limit)
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Go(func() {
			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}
			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
		})
	}
	wg.Wait()
	return results
}
