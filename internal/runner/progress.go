package runner

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/time/rate"
)

// passProgress tracks completed passes across all workers. Workers bump an
// atomic counter on every pass; the bar itself is redrawn at most every
// refreshInterval so rendering stays out of the hot loop.
type passProgress struct {
	bar     *progressbar.ProgressBar
	total   int64
	done    atomic.Int64
	refresh rate.Sometimes
}

const refreshInterval = 100 * time.Millisecond

func newPassProgress(w io.Writer, total int64, description string) *passProgress {
	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
	)

	return &passProgress{
		bar:     bar,
		total:   total,
		refresh: rate.Sometimes{First: 1, Interval: refreshInterval},
	}
}

// pass records one completed pass.
func (p *passProgress) pass() {
	p.done.Add(1)
	p.refresh.Do(func() {
		_ = p.bar.Set64(p.done.Load())
	})
}

// clear wipes the bar so a regular line can be printed; it is redrawn on the
// next refresh.
func (p *passProgress) clear() {
	_ = p.bar.Clear()
}

func (p *passProgress) finish() {
	_ = p.bar.Set64(p.total)
	_ = p.bar.Finish()
}

// completed returns the number of passes recorded so far.
func (p *passProgress) completed() int64 {
	return p.done.Load()
}
