package runner

import (
	"flag"
	"fmt"
	"math"

	"github.com/utkarsh5026/membw/bandwidth"
)

// Output formats accepted by -output-format.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Flags holds the command-line flags of the membw command.
type Flags struct {
	Threads      int
	BufferMiB    int
	BufferElems  int
	Iterations   int
	Seed         uint64
	Strategy     string
	Alloc        string
	Pin          bool
	Runs         int
	Warmup       int
	OutputFormat string
	Progress     bool
	SkipMemCheck bool
	CPUProfile   string
	MemProfile   string
}

// DefineFlags defines the flags on fs (but doesn't parse yet).
func DefineFlags(fs *flag.FlagSet) *Flags {
	flags := &Flags{}

	fs.IntVar(&flags.Threads, "threads", bandwidth.DefaultThreads, "Number of worker threads, one buffer each")
	fs.IntVar(&flags.BufferMiB, "buffer-mib", bandwidth.DefaultBufferBytes>>20, "Buffer size per thread in MiB")
	fs.IntVar(&flags.BufferElems, "buffer-elems", 0, "Buffer size per thread in float64 values (overrides -buffer-mib)")
	fs.IntVar(&flags.Iterations, "iterations", bandwidth.DefaultIterations, "Full passes each thread makes over its buffer")
	fs.Uint64Var(&flags.Seed, "seed", bandwidth.DefaultSeed, "Seed for the data generator")
	fs.StringVar(&flags.Strategy, "strategy", "auto", "Summation strategy: auto, scalar or paired")
	fs.StringVar(&flags.Alloc, "alloc", "heap", "Buffer allocator: heap or mmap")
	fs.BoolVar(&flags.Pin, "pin", false, "Pin workers round robin onto the cores the process may use")
	fs.IntVar(&flags.Runs, "runs", 1, "Number of measured runs")
	fs.IntVar(&flags.Warmup, "warmup", 0, "Number of unreported warmup runs")
	fs.StringVar(&flags.OutputFormat, "output-format", FormatText, "Output format: 'text', 'table' or 'json'")
	fs.BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr (table format only)")
	fs.BoolVar(&flags.SkipMemCheck, "skip-mem-check", false, "Skip the available-memory check before allocating")
	fs.StringVar(&flags.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	fs.StringVar(&flags.MemProfile, "memprofile", "", "Write memory profile to file")

	return flags
}

// Validate checks flags that do not map onto bandwidth.Config.
func (f *Flags) Validate() error {
	switch {
	case f.Runs < 1:
		return fmt.Errorf("-runs must be at least 1, got %d", f.Runs)
	case f.Warmup < 0:
		return fmt.Errorf("-warmup must not be negative, got %d", f.Warmup)
	case f.BufferMiB > math.MaxInt>>20:
		return fmt.Errorf("-buffer-mib %d overflows the addressable size", f.BufferMiB)
	}

	switch f.OutputFormat {
	case FormatText, FormatTable, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown -output-format %q (want text, table or json)", f.OutputFormat)
	}
}

// Options converts the flags into benchmark options.
func (f *Flags) Options() ([]bandwidth.Option, error) {
	strategy, err := bandwidth.ParseStrategy(f.Strategy)
	if err != nil {
		return nil, err
	}

	alloc, err := bandwidth.ParseAllocator(f.Alloc)
	if err != nil {
		return nil, err
	}

	size := bandwidth.WithBufferBytes(f.BufferMiB << 20)
	if f.BufferElems > 0 {
		size = bandwidth.WithBufferElems(f.BufferElems)
	}

	return []bandwidth.Option{
		bandwidth.WithThreads(f.Threads),
		size,
		bandwidth.WithIterations(f.Iterations),
		bandwidth.WithSeed(f.Seed),
		bandwidth.WithStrategy(strategy),
		bandwidth.WithAllocator(alloc),
		bandwidth.WithThreadPinning(f.Pin),
	}, nil
}
