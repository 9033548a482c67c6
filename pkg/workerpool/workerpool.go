// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Process runs process for every item on workerCount goroutines. The first
// error cancels the context handed to the remaining calls and is returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) error {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	tasks := make(chan T)
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if ctx.Err() != nil {
					continue
				}
				if err := process(ctx, item); err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})
				}
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

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// Map applies fn to every item concurrently and returns the results in input
// order.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	type indexed struct {
		i    int
		item T
	}
	jobs := make([]indexed, len(items))
	for i, item := range items {
		jobs[i] = indexed{i: i, item: item}
	}

	results := make([]R, len(items))
	err := Process(ctx, workerCount, jobs, func(ctx context.Context, job indexed) error {
		r, err := fn(ctx, job.item)
		if err != nil {
			return err
		}
		results[job.i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
