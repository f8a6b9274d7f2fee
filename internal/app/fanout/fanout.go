// Package fanout applies one function to many inputs concurrently under a
// fixed worker bound. The webhook notifier uses it to deliver an event to
// every endpoint at once.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/jsamuelsen11/project-tracker/internal/domain/result"
)

// Run calls fn for every item with at most maxWorkers calls in flight and
// returns one result per item, in input order. It blocks until every call
// has returned.
//
// An item still waiting for a worker when ctx ends is never passed to fn;
// its result carries ctx.Err(). Calls already running are not interrupted.
// A panic in fn becomes that item's failure. maxWorkers below 1 means 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []result.Result[R] {
	results := make([]result.Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := semaphore.NewWeighted(int64(max(maxWorkers, 1)))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Go(func() {
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i] = result.Fail[R](err)
				return
			}
			defer sem.Release(1)
			results[i] = call(ctx, item, fn)
		})
	}
	wg.Wait()

	return results
}

// Errors joins every failure in results. It is nil when all succeeded.
func Errors[R any](results []result.Result[R]) error {
	errs := make([]error, 0, len(results))
	for _, r := range results {
		errs = append(errs, r.Err())
	}
	return errors.Join(errs...)
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res result.Result[R]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = result.Fail[R](fmt.Errorf("fanout: panic: %v", rec))
		}
	}()
	return result.From(fn(ctx, item))
}
