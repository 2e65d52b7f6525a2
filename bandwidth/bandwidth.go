package bandwidth

import (
	"context"
	"fmt"
	"slices"
	"time"
)

// Benchmark is a configured memory bandwidth measurement.
type Benchmark struct {
	cfg Config
}

// NewBenchmark creates a benchmark from DefaultConfig and opts.
// The configuration is validated when the benchmark runs.
func NewBenchmark(opts ...Option) *Benchmark {
	return &Benchmark{cfg: NewConfig(opts...)}
}

// NewBenchmarkFromConfig creates a benchmark from an explicit configuration.
func NewBenchmarkFromConfig(cfg Config) *Benchmark {
	return &Benchmark{cfg: cfg}
}

// Config returns the benchmark's configuration.
func (b *Benchmark) Config() Config {
	return b.cfg
}

// Run is shorthand for NewBenchmark(opts...).Run(ctx).
func Run(ctx context.Context, opts ...Option) (Result, error) {
	return NewBenchmark(opts...).Run(ctx)
}

// Run generates the data, measures it, and returns the result.
//
// The timer starts immediately before the workers are spawned and stops once
// the last of them has been joined. Generation and validation are outside the
// timed interval. ctx only aborts a run that is already failing; a successful
// run always completes every pass.
func (b *Benchmark) Run(ctx context.Context) (Result, error) {
	cfg := b.cfg
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	summer := cfg.sumStrategy()
	obs := cfg.observer()

	items, err := Generate(cfg)
	if err != nil {
		return Result{}, err
	}

	handoff := handOver(items)
	work := func(ctx context.Context, item WorkItem) (WorkerResult, error) {
		return measure(ctx, &cfg, summer, item)
	}

	start := time.Now()
	workers, err := spawnOwned(ctx, handoff, cfg.Threads, work)
	elapsed := time.Since(start)

	if err != nil {
		return Result{}, fmt.Errorf("measuring bandwidth: %w", err)
	}

	// Coarse clocks can report zero for tiny runs.
	elapsed = max(elapsed, time.Nanosecond)

	slices.SortFunc(workers, func(a, b WorkerResult) int {
		return a.ID - b.ID
	})

	res := Result{
		Threads:        cfg.Threads,
		BufferElems:    cfg.BufferElems,
		Iterations:     cfg.Iterations,
		Seed:           cfg.Seed,
		Strategy:       summer.Name(),
		Allocator:      cfg.Allocator.String(),
		Pinned:         cfg.PinThreads,
		GeneratedBytes: GeneratedBytes(cfg),
		BytesRead:      BytesRead(cfg.Threads, cfg.BufferElems, cfg.Iterations),
		Elapsed:        elapsed,
		Bandwidth:      Bandwidth(cfg.Threads, cfg.BufferElems, cfg.Iterations, elapsed),
		Workers:        workers,
	}

	obs.RunFinished(res)
	return res, nil
}
