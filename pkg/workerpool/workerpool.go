// Package workerpool provides bounded concurrent processing over a slice.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

// Process runs process for every item on at most workerCount goroutines. The
// first error cancels the shared context, stops handing out work and is
// returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	run(ctx, workerCount, items, func(ctx context.Context, item T) {
		if err := process(ctx, item); err != nil {
			once.Do(func() {
				firstErr = err
				cancel()
			})
		}
	})

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// Each runs process for every item on at most workerCount goroutines. Items
// fail independently: an error never stops the others. All errors are joined
// into the result.
func Each[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) error {
	var (
		mu   sync.Mutex
		errs []error
	)
	run(ctx, workerCount, items, func(ctx context.Context, item T) {
		if err := process(ctx, item); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}
	})
	return errors.Join(errs...)
}

func run[T any](ctx context.Context, workerCount int, items []T, fn func(context.Context, T)) {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	tasks := make(chan T)
	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				fn(ctx, item)
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()
}
