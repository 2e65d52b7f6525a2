package bandwidth

import (
	"time"

	"github.com/utkarsh5026/membw/internal/membuf"
)

// WorkItem is one worker's private buffer.
//
// After handoff the receiving worker is its only reader, and it releases the
// backing memory when it exits.
type WorkItem struct {
	Buffer []float64
	ID     int

	mem *membuf.Buffer
}

// Release frees the item's backing memory. Buffer must not be used afterwards.
func (w *WorkItem) Release() error {
	if w.mem == nil {
		return nil
	}
	err := w.mem.Release()
	w.mem = nil
	w.Buffer = nil
	return err
}

// WorkerResult is what a single worker reports on completion.
type WorkerResult struct {
	ID       int           `json:"id"`
	Dummy    float64       `json:"dummy"`
	Duration time.Duration `json:"duration_ns"`
	Core     int           `json:"core"` // -1 when not pinned
}

// Result is the outcome of one benchmark run.
type Result struct {
	Threads        int            `json:"threads"`
	BufferElems    int            `json:"buffer_elems"`
	Iterations     int            `json:"iterations"`
	Seed           uint64         `json:"seed"`
	Strategy       string         `json:"strategy"`
	Allocator      string         `json:"allocator"`
	Pinned         bool           `json:"pinned"`
	GeneratedBytes int64          `json:"generated_bytes"`
	BytesRead      float64        `json:"bytes_read"`
	Elapsed        time.Duration  `json:"elapsed_ns"`
	Bandwidth      float64        `json:"bandwidth_bytes_per_sec"`
	Workers        []WorkerResult `json:"workers"`
}

// ElapsedSeconds returns the timed interval in seconds.
func (r Result) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}

// GeneratedGB returns the generated data size in decimal gigabytes.
func (r Result) GeneratedGB() float64 {
	return float64(r.GeneratedBytes) / 1e9
}

// GBPerSecond returns the bandwidth in decimal gigabytes per second.
func (r Result) GBPerSecond() float64 {
	return r.Bandwidth / 1e9
}

// GeneratedBytes returns the total size of all buffers for cfg.
func GeneratedBytes(cfg Config) int64 {
	return int64(cfg.Threads) * int64(cfg.BufferElems) * int64(membuf.Float64Size)
}

// BytesRead returns the bytes every worker reads across all passes. It is a
// float64 because large configurations overflow int64.
func BytesRead(threads, bufferElems, iterations int) float64 {
	return float64(threads) * float64(bufferElems) * float64(iterations) * float64(membuf.Float64Size)
}

// Bandwidth returns bytes per second for a run that took elapsed.
func Bandwidth(threads, bufferElems, iterations int, elapsed time.Duration) float64 {
	return BytesRead(threads, bufferElems, iterations) / elapsed.Seconds()
}
