package runner

import (
	"io"
	"sync"

	"github.com/utkarsh5026/membw/bandwidth"
)

// Console is a bandwidth.Observer that prints the run report in color and,
// optionally, a progress bar over all worker passes.
type Console struct {
	mu       sync.Mutex
	w        io.Writer
	barW     io.Writer
	progress *passProgress
}

// NewConsole prints the report to w. When barW is non-nil a progress bar is
// drawn there while workers run.
func NewConsole(w io.Writer, barW io.Writer) *Console {
	return &Console{w: w, barW: barW}
}

func (c *Console) GenerationStarted(cfg bandwidth.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()

	colorFprintln(c.w, Bold, "Generating random data...")

	c.progress = nil
	if total := int64(cfg.Threads) * int64(cfg.Iterations); c.barW != nil && total > 0 {
		c.progress = newPassProgress(c.barW, total, "Scanning buffers")
	}
}

func (c *Console) GenerationFinished(bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	colorFprintf(c.w, Bold, "Generated %.2f GB of random data.\n", float64(bytes)/1e9)
}

// PassCompleted runs on worker goroutines. progress is only replaced before
// workers are spawned and after they are joined, so it is read without c.mu.
func (c *Console) PassCompleted(int, int) {
	if p := c.progress; p != nil {
		p.pass()
	}
}

func (c *Console) WorkerFinished(r bandwidth.WorkerResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.progress != nil {
		c.progress.clear()
	}
	colorFprintf(c.w, Cyan, "• Thread %d", r.ID)
	colorFprintf(c.w, Bold, " dummy: ")
	_, _ = io.WriteString(c.w, bandwidth.FormatFloat(r.Dummy)+"\n")
}

func (c *Console) RunFinished(r bandwidth.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.progress != nil {
		c.progress.finish()
		c.progress = nil
	}
	colorFprintf(c.w, Yellow, "Elapsed time: %s seconds\n", bandwidth.FormatFloat(r.ElapsedSeconds()))
	colorFprintf(c.w, Green, "Memory bandwidth: %s GB/s\n", bandwidth.FormatFloat(r.GBPerSecond()))
}
