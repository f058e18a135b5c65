// Package fanout runs a function across a slice of items with bounded
// concurrency, preserving input order in results. The ingestion batch uses it
// to fetch languages of one resource and the preloader to download assets.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// With maxWorkers <= 1 items are processed one after another on the calling
// goroutine, in input order. Once ctx is done the remaining items record
// ctx.Err() without calling fn.
//
// With more workers, a goroutine still waiting for a slot when ctx is
// canceled records ctx.Err() and does not call fn. Goroutines that already
// hold a slot run to completion; fn is expected to observe ctx itself.
//
// Run blocks until every item has a result. An empty items slice yields an
// empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	if maxWorkers <= 1 {
		return runSequential(ctx, items, fn)
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}

func runSequential[T, R any](ctx context.Context, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	for i, it := range items {
		if err := ctx.Err(); err != nil {
			results[i] = Result[R]{Err: err}
			continue
		}
		val, err := fn(ctx, it)
		results[i] = Result[R]{Value: val, Err: err}
	}
	return results
}
