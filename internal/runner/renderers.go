package runner

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/utkarsh5026/membw/bandwidth"
	"github.com/utkarsh5026/membw/internal/cpu"
	"github.com/utkarsh5026/membw/internal/hostinfo"
	"github.com/utkarsh5026/membw/internal/membuf"
)

// PrintHeader prints the boxed benchmark title.
func PrintHeader(w io.Writer, title string) {
	colorFprintln(w, Bold, "╔════════════════════════════════════════════════════════════╗")
	colorFprintf(w, Bold, "║       %-52s ║\n", title)
	colorFprintln(w, Bold, "╚════════════════════════════════════════════════════════════╝")
	_, _ = fmt.Fprintln(w)
}

// PrintConfiguration prints the host and the run parameters.
func PrintConfiguration(w io.Writer, cfg bandwidth.Config, info hostinfo.Info, features cpu.Features, runs int) {
	colorFprintln(w, Bold, "🖥️  Host:")
	if info.CPUModel != "" {
		_, _ = fmt.Fprintf(w, "  CPU:        %s\n", info.CPUModel)
	}
	_, _ = fmt.Fprintf(w, "  Cores:      %d logical, %d physical\n", info.LogicalCores, info.PhysicalCores)
	_, _ = fmt.Fprintf(w, "  Vector:     %s\n", features)
	if info.TotalMemory > 0 {
		_, _ = fmt.Fprintf(w, "  Memory:     %s total, %s available\n",
			FormatBytes(int64(info.TotalMemory)), FormatBytes(int64(info.AvailableMemory)))
	}
	_, _ = fmt.Fprintf(w, "  Platform:   %s/%s, %s\n", info.GOOS, info.GOARCH, runtime.Version())
	_, _ = fmt.Fprintln(w)

	bufBytes := int64(cfg.BufferElems) * int64(membuf.Float64Size)
	colorFprintln(w, Bold, "⚙️  Configuration:")
	_, _ = fmt.Fprintf(w, "  Threads:    %d\n", cfg.Threads)
	_, _ = fmt.Fprintf(w, "  Buffer:     %s per thread (%s values)\n", FormatBytes(bufBytes), FormatNumber(cfg.BufferElems))
	_, _ = fmt.Fprintf(w, "  Iterations: %s passes per thread\n", FormatNumber(cfg.Iterations))
	_, _ = fmt.Fprintf(w, "  Seed:       %d\n", cfg.Seed)
	_, _ = fmt.Fprintf(w, "  Strategy:   %s\n", cfg.Strategy)
	_, _ = fmt.Fprintf(w, "  Allocator:  %s\n", cfg.Allocator)
	_, _ = fmt.Fprintf(w, "  Pinning:    %t\n", cfg.PinThreads)
	_, _ = fmt.Fprintf(w, "  Runs:       %d\n", runs)
	_, _ = fmt.Fprintln(w)
}

func printSectionHeader(w io.Writer, title string, description ...string) {
	_, _ = fmt.Fprintln(w)
	colorFprintln(w, Bold, "═══════════════════════════════════════════════════════════")
	colorFprintln(w, Bold, title)
	for _, d := range description {
		_, _ = fmt.Fprintln(w, d)
	}
	colorFprintln(w, Bold, "═══════════════════════════════════════════════════════════")
}

// RenderWorkers prints one row per worker of a single run.
func RenderWorkers(w io.Writer, res bandwidth.Result) error {
	printSectionHeader(w, "🧵 PER-THREAD RESULTS",
		"Throughput is each thread's own bytes over its own scan time")

	table := tablewriter.NewWriter(w)
	table.Header("Thread", "Core", "Dummy", "Scan Time", "Throughput")

	perThread := bandwidth.BytesRead(1, res.BufferElems, res.Iterations)
	for _, wr := range res.Workers {
		core := "-"
		if wr.Core >= 0 {
			core = strconv.Itoa(wr.Core)
		}

		throughput := "-"
		if wr.Duration > 0 {
			throughput = FormatGBps(perThread / wr.Duration.Seconds())
		}

		_ = table.Append(
			strconv.Itoa(wr.ID),
			core,
			bandwidth.FormatFloat(wr.Dummy),
			FormatDuration(wr.Duration),
			throughput,
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering per-thread table: %w", err)
	}
	return nil
}

// RenderRuns prints one row per run plus the summary statistics.
func RenderRuns(w io.Writer, results []bandwidth.Result) error {
	if len(results) == 0 {
		return nil
	}

	printSectionHeader(w, "📊 BANDWIDTH ACROSS RUNS",
		"Aggregate read bandwidth of every measured run (higher is better)")

	best := Best(results)
	table := tablewriter.NewWriter(w)
	table.Header("Run", "Elapsed", "Bandwidth", "vs Best")

	for i, r := range results {
		_ = table.Append(
			strconv.Itoa(i+1),
			r.Elapsed.Round(time.Microsecond).String(),
			FormatGBps(r.Bandwidth),
			vsBest(r.Bandwidth, results[best].Bandwidth, i == best),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering runs table: %w", err)
	}

	s := CalculateStats(results)
	_, _ = fmt.Fprintf(w, "    Min: %.2f | Median: %.2f | Mean: %.2f | Max: %.2f | StdDev: %.2f GB/s\n",
		s.Min, s.Median, s.Mean, s.Max, s.StdDev)
	return nil
}

func vsBest(v, best float64, isBest bool) string {
	if isBest || best == 0 {
		return "best"
	}
	return fmt.Sprintf("-%.1f%%", (1-v/best)*100)
}
