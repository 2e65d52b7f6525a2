package bandwidth

import (
	"context"
	"fmt"
	"time"

	"github.com/utkarsh5026/membw/internal/algorithms"
	"github.com/utkarsh5026/membw/internal/cpu"
)

// measure is the worker routine. It owns item for its whole lifetime: it
// sweeps the buffer cfg.Iterations times, reports the dummy sum, and frees
// the buffer before returning.
func measure(
	ctx context.Context,
	cfg *Config,
	summer algorithms.SumStrategy,
	item WorkItem,
) (res WorkerResult, err error) {
	res = WorkerResult{ID: item.ID, Core: -1}

	defer func() {
		if relErr := item.Release(); relErr != nil && err == nil {
			err = fmt.Errorf("worker %d: releasing buffer: %w", item.ID, relErr)
		}
	}()

	var unlock func()
	if cfg.PinThreads {
		core, release, pinErr := cpu.PinWorker(item.ID)
		if pinErr == nil {
			res.Core = core
		}
		unlock = release
	} else {
		unlock = cpu.LockWorker()
	}
	defer unlock()

	obs := cfg.observer()
	start := time.Now()

	res.Dummy, err = algorithms.SumPasses(summer, item.Buffer, cfg.Iterations, func(pass int) error {
		obs.PassCompleted(item.ID, pass)
		return ctx.Err()
	})
	res.Duration = time.Since(start)
	if err != nil {
		return res, fmt.Errorf("worker %d: %w", item.ID, err)
	}

	obs.WorkerFinished(res)
	return res, nil
}
