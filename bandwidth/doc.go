// Package bandwidth measures achievable memory read bandwidth by having
// several workers concurrently sum large private buffers.
//
// A run has three phases:
//
//   - Generate: a seeded PRNG fills one float64 buffer per worker with values
//     in [0, 1). Generation is not timed.
//   - Measure: one goroutine per buffer, each locked to its own OS thread,
//     sweeps its buffer Iterations times and keeps a throwaway sum so the
//     reads cannot be optimized away.
//   - Report: once every worker has been joined, bandwidth is computed as
//     Threads × BufferElems × Iterations × 8 bytes / elapsed seconds.
//
// # Basic Usage
//
//	res, err := bandwidth.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.2f GB/s\n", res.GBPerSecond())
//
// With no options the run uses 8 workers, 32 MiB buffers, 1000 passes and
// seed 42, and prints progress lines to stdout.
//
// # Configuration Options
//
//   - WithThreads(n): number of workers and buffers
//   - WithBufferBytes(b) / WithBufferElems(n): size of each buffer
//   - WithIterations(n): full passes each worker makes over its buffer
//   - WithSeed(s): PRNG seed for data generation
//   - WithStrategy(s): scalar, paired, or auto summation
//   - WithAllocator(k): heap or anonymous mmap buffers
//   - WithThreadPinning(true): pin workers round robin onto allowed cores
//   - WithObserver(o) / WithOutput(w): where progress and results go
//
// # Ownership
//
// Buffers are handed to workers through a channel and the orchestrator drops
// its references before the timer starts. Each buffer has exactly one reader
// for the whole timed interval and is released by that reader when it exits.
//
// # Error Handling
//
// Invalid configuration returns ErrInvalidConfig, failed mmap allocation
// returns ErrAllocation, and a panicking worker is recovered and reported as
// ErrWorkerPanic with its stack trace. There are no retries: a failed run
// produces no partial result.
package bandwidth
