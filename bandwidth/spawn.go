package bandwidth

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// workerFunc processes one owned item.
type workerFunc func(ctx context.Context, item WorkItem) (WorkerResult, error)

// handOver moves items into a closed, buffered channel and clears the
// caller's slice, so the only remaining references are the ones workers
// receive.
func handOver(items []WorkItem) <-chan WorkItem {
	handoff := make(chan WorkItem, len(items))
	for i := range items {
		handoff <- items[i]
		items[i] = WorkItem{}
	}
	close(handoff)
	return handoff
}

// spawnOwned starts exactly n goroutines; each takes one item from handoff
// and runs fn on it. It returns after every goroutine has exited. If any
// worker fails or panics, the shared context is cancelled and the first
// error is returned.
func spawnOwned(
	ctx context.Context,
	handoff <-chan WorkItem,
	n int,
	fn workerFunc,
) ([]WorkerResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]WorkerResult, n)

	for slot := range n {
		g.Go(func() error {
			item, ok := <-handoff
			if !ok {
				return fmt.Errorf("worker slot %d: no work item to take", slot)
			}

			res, err := runWithRecovery(ctx, item, fn)
			if err != nil {
				return err
			}
			results[slot] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runWithRecovery runs fn and converts a panic into an ErrWorkerPanic error
// carrying the stack trace.
func runWithRecovery(ctx context.Context, item WorkItem, fn workerFunc) (res WorkerResult, err error) {
	id := item.ID
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("%w: worker %d: %v\nstack trace:\n%s", ErrWorkerPanic, id, r, buf[:n])
		}
	}()

	return fn(ctx, item)
}
