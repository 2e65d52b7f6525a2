package runner

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/utkarsh5026/membw/bandwidth"
	"github.com/utkarsh5026/membw/internal/cpu"
	"github.com/utkarsh5026/membw/internal/hostinfo"
)

// Suite runs a benchmark configuration several times with optional warmups.
type Suite struct {
	Config bandwidth.Config
	Runs   int
	Warmup int
	Pause  time.Duration

	// OnRunStart, if set, is called before each measured run (1-indexed).
	OnRunStart func(run, total int)
}

// Run executes the warmups, then the measured runs, and returns the measured
// results in order. Warmup runs are silent. The heap is collected between
// runs so one run's garbage does not land in the next run's timing.
func (s Suite) Run(ctx context.Context) ([]bandwidth.Result, error) {
	silent := s.Config
	silent.Observer = nil
	warmup := bandwidth.NewBenchmarkFromConfig(silent)
	for w := range s.Warmup {
		if _, err := warmup.Run(ctx); err != nil {
			return nil, fmt.Errorf("warmup run %d: %w", w+1, err)
		}
		s.settle()
	}

	bench := bandwidth.NewBenchmarkFromConfig(s.Config)
	runs := max(s.Runs, 1)
	results := make([]bandwidth.Result, 0, runs)
	for i := range runs {
		if s.OnRunStart != nil {
			s.OnRunStart(i+1, runs)
		}

		res, err := bench.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}
		results = append(results, res)

		if i < runs-1 {
			s.settle()
		}
	}

	return results, nil
}

func (s Suite) settle() {
	runtime.GC()
	if s.Pause > 0 {
		time.Sleep(s.Pause)
	}
}

// Execute is the body of the membw command: it validates flags, checks that
// the buffers fit in memory, runs the suite and renders the chosen format.
func Execute(ctx context.Context, f *Flags, stdout, stderr io.Writer) error {
	if err := f.Validate(); err != nil {
		return err
	}

	opts, err := f.Options()
	if err != nil {
		return err
	}

	cfg := bandwidth.NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !f.SkipMemCheck {
		if err := hostinfo.CheckFits(ctx, bandwidth.GeneratedBytes(cfg)); err != nil {
			return fmt.Errorf("%w (use -skip-mem-check to run anyway)", err)
		}
	}

	cleanup, err := SetupProfiling(stderr, f.CPUProfile, f.MemProfile)
	defer cleanup()
	if err != nil {
		return err
	}

	suite := Suite{Runs: f.Runs, Warmup: f.Warmup, Pause: 100 * time.Millisecond}

	var observer bandwidth.Observer
	switch f.OutputFormat {
	case FormatJSON:
		observer = nil
	case FormatTable:
		PrintHeader(stdout, "Memory Read Bandwidth Benchmark")
		PrintConfiguration(stdout, cfg, hostinfo.Collect(ctx), cpu.DetectFeatures(), f.Runs)

		var barW io.Writer
		if f.Progress {
			barW = stderr
		}
		observer = NewConsole(stdout, barW)

		if f.Runs > 1 {
			suite.OnRunStart = func(run, total int) {
				colorFprintf(stdout, Cyan, "\n[%d/%d] ", run, total)
				colorFprintln(stdout, Yellow, "Measuring...")
			}
		}
	default:
		observer = bandwidth.NewTextObserver(stdout)
	}
	cfg.Observer = observer
	suite.Config = cfg

	results, err := suite.Run(ctx)
	if err != nil {
		return err
	}

	switch f.OutputFormat {
	case FormatJSON:
		return OutputJSON(stdout, hostinfo.Collect(ctx), cpu.DetectFeatures().String(), results)
	case FormatTable:
		if err := RenderWorkers(stdout, results[len(results)-1]); err != nil {
			return err
		}
		if len(results) > 1 {
			return RenderRuns(stdout, results)
		}
	}
	return nil
}
