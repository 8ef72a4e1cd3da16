// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Result is the outcome of one item, kept at the item's index.
type Result[R any] struct {
	Value R
	Err   error
}

// Map runs fn over items with at most workerCount concurrent calls and
// returns one Result per item in input order. A failing item does not stop
// the others; items not yet started when ctx ends get ctx.Err().
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(ctx context.Context, index int, item T) (R, error),
) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	if workerCount <= 0 || workerCount > len(items) {
		workerCount = len(items)
	}

	tasks := make(chan int)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				if err := ctx.Err(); err != nil {
					results[idx].Err = err
					continue
				}
				v, err := fn(ctx, idx, items[idx])
				results[idx] = Result[R]{Value: v, Err: err}
			}
		}()
	}

	for idx := range items {
		tasks <- idx
	}
	close(tasks)
	wg.Wait()

	return results
}

// Errors returns the non-nil errors of results, in order.
func Errors[R any](results []Result[R]) []error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}
