package bandwidth

import (
	"fmt"
	"io"
	"strconv"
	"sync"
)

// Observer receives progress and results during a run.
//
// PassCompleted and WorkerFinished are called concurrently from worker
// goroutines, inside the timed interval; implementations must be safe for
// concurrent use and should return quickly.
type Observer interface {
	GenerationStarted(cfg Config)
	GenerationFinished(bytes int64)
	PassCompleted(workerID, pass int)
	WorkerFinished(r WorkerResult)
	RunFinished(r Result)
}

type nopObserver struct{}

func (nopObserver) GenerationStarted(Config) {}
func (nopObserver) GenerationFinished(int64) {}
func (nopObserver) PassCompleted(int, int) {}
func (nopObserver) WorkerFinished(WorkerResult) {}
func (nopObserver) RunFinished(Result) {}

// TextObserver prints the plain text report:
//
//	Generating random data...
//	Generated 0.27 GB of random data.
//	• Thread 3 dummy: 2097152000.123
//	Elapsed time: 4.2 seconds
//	Memory bandwidth: 63.9 GB/s
type TextObserver struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTextObserver returns a TextObserver writing to w.
func NewTextObserver(w io.Writer) *TextObserver {
	return &TextObserver{w: w}
}

func (t *TextObserver) printf(format string, a ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintf(t.w, format, a...)
}

func (t *TextObserver) GenerationStarted(Config) {
	t.printf("Generating random data...\n")
}

func (t *TextObserver) GenerationFinished(bytes int64) {
	t.printf("Generated %.2f GB of random data.\n", float64(bytes)/1e9)
}

func (t *TextObserver) PassCompleted(int, int) {}

func (t *TextObserver) WorkerFinished(r WorkerResult) {
	t.printf("• Thread %d dummy: %s\n", r.ID, FormatFloat(r.Dummy))
}

func (t *TextObserver) RunFinished(r Result) {
	t.printf("Elapsed time: %s seconds\nMemory bandwidth: %s GB/s\n",
		FormatFloat(r.ElapsedSeconds()), FormatFloat(r.GBPerSecond()))
}

// FormatFloat renders v in plain decimal with the fewest digits that round-trip.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
