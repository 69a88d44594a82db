package parallel

import (
	"context"
	"runtime"
	"sync"
)

// Parallelize divides the specified total number (items) across workers,
// and executes the specified function (fn) in parallel for each range (start, end).
func Parallelize(items int, fn func(start, end int)) {
	ParallelizeWorkers(items, runtime.NumCPU(), fn)
}

// ParallelizeWorkers is like Parallelize but with an explicit worker count.
// A worker count below 1 falls back to the number of CPU cores.
func ParallelizeWorkers(items, numWorkers int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	if numWorkers < 1 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > items {
		numWorkers = items // No need for more workers than items
	}

	// Calculate the number of items each worker handles (ceiling division)
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}

		// Skip if there's no range to handle
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold performs parallelization only when the number of
// items exceeds the threshold. If below threshold, normal sequential
// processing is performed.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}

// ParallelizeContext is like ParallelizeWorkers but stops handing out work
// once ctx is cancelled. Each worker receives the context and is expected to
// check it between items; ranges already started run to completion.
// Returns ctx.Err() if the context was cancelled, nil otherwise.
func ParallelizeContext(ctx context.Context, items, numWorkers int, fn func(ctx context.Context, start, end int)) error {
	if items == 0 {
		return ctx.Err()
	}

	if numWorkers < 1 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > items {
		numWorkers = items
	}

	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}

		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(ctx, s, e)
		}(start, end)
	}

	wg.Wait()
	return ctx.Err()
}
