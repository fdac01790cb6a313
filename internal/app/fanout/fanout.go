// Package fanout runs a function over a slice with a fixed number of
// goroutines and returns the outcomes in input order. Field resolution uses
// it to resolve every book or person of a list response without exceeding
// the configured worker bound.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most workers calls in flight and
// returns one Result per item, index-aligned with items.
//
// Items still waiting for a slot when ctx is done get ctx.Err() and fn is
// not called for them; calls already running finish on their own terms.
// A workers value below 1 is treated as 1. Empty input yields an empty,
// non-nil slice.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	slots := make(chan struct{}, max(workers, 1))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Go(func() {
			select {
			case slots <- struct{}{}:
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}
			defer func() { <-slots }()

			results[i].Value, results[i].Err = fn(ctx, item)
		})
	}
	wg.Wait()

	return results
}

// Collect returns the values in order, or the first error in input order.
func Collect[R any](results []Result[R]) ([]R, error) {
	values := make([]R, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			return nil, r.Err
		}
		values = append(values, r.Value)
	}
	return values, nil
}
