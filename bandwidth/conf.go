package bandwidth

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/utkarsh5026/membw/internal/algorithms"
	"github.com/utkarsh5026/membw/internal/cpu"
	"github.com/utkarsh5026/membw/internal/membuf"
)

const (
	// DefaultThreads is the number of workers, one buffer each.
	DefaultThreads = 8
	// DefaultBufferBytes is the size of each worker's buffer.
	DefaultBufferBytes = 32 * 1024 * 1024
	// DefaultBufferElems is DefaultBufferBytes expressed in float64 values.
	DefaultBufferElems = DefaultBufferBytes / membuf.Float64Size
	// DefaultIterations is the number of full passes per worker.
	DefaultIterations = 1000
	// DefaultSeed seeds the data generator.
	DefaultSeed = 42
)

var (
	// ErrInvalidConfig is returned by Validate for unusable settings.
	ErrInvalidConfig = errors.New("invalid benchmark configuration")
	// ErrAllocation is returned when a worker buffer cannot be allocated.
	ErrAllocation = errors.New("buffer allocation failed")
	// ErrWorkerPanic is returned when a worker panics during measurement.
	ErrWorkerPanic = errors.New("worker panic")
)

// Strategy selects how workers sum their buffers.
type Strategy = algorithms.StrategyType

const (
	StrategyAuto   = algorithms.StrategyAuto
	StrategyScalar = algorithms.StrategyScalar
	StrategyPaired = algorithms.StrategyPaired
)

// ParseStrategy maps "auto", "scalar" or "paired" onto a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	return algorithms.ParseStrategyType(s)
}

// Allocator selects the backing memory of worker buffers.
type Allocator = membuf.Kind

const (
	HeapAllocator = membuf.Heap
	MmapAllocator = membuf.Mmap
)

// ParseAllocator maps "heap" or "mmap" onto an Allocator.
func ParseAllocator(s string) (Allocator, error) {
	return membuf.ParseKind(s)
}

// Option is a functional option for configuring a benchmark run.
type Option func(*Config)

// Config holds every knob of a benchmark run.
type Config struct {
	Threads     int
	BufferElems int
	Iterations  int
	Seed        uint64
	Strategy    Strategy
	Allocator   Allocator
	PinThreads  bool
	Observer    Observer

	// summer overrides Strategy; only set from tests.
	summer algorithms.SumStrategy
}

// DefaultConfig returns the stock configuration: 8 workers, 32 MiB buffers,
// 1000 passes, seed 42, automatic strategy, heap buffers, text output to stdout.
func DefaultConfig() Config {
	return Config{
		Threads:     DefaultThreads,
		BufferElems: DefaultBufferElems,
		Iterations:  DefaultIterations,
		Seed:        DefaultSeed,
		Strategy:    StrategyAuto,
		Allocator:   HeapAllocator,
		Observer:    NewTextObserver(os.Stdout),
	}
}

// NewConfig applies opts on top of DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithThreads sets the number of workers, and therefore buffers.
func WithThreads(n int) Option {
	return func(cfg *Config) {
		cfg.Threads = n
	}
}

// WithBufferElems sets the number of float64 values in each buffer.
func WithBufferElems(n int) Option {
	return func(cfg *Config) {
		cfg.BufferElems = n
	}
}

// WithBufferBytes sets the size of each buffer in bytes, rounded down to a
// whole number of float64 values.
func WithBufferBytes(n int) Option {
	return func(cfg *Config) {
		cfg.BufferElems = n / membuf.Float64Size
	}
}

// WithIterations sets how many full passes each worker makes. Zero is valid
// and yields a dummy sum of 0.
func WithIterations(n int) Option {
	return func(cfg *Config) {
		cfg.Iterations = n
	}
}

// WithSeed sets the data generator seed.
func WithSeed(seed uint64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// WithStrategy sets the summation strategy.
func WithStrategy(s Strategy) Option {
	return func(cfg *Config) {
		cfg.Strategy = s
	}
}

// WithAllocator sets the buffer backing.
func WithAllocator(a Allocator) Option {
	return func(cfg *Config) {
		cfg.Allocator = a
	}
}

// WithThreadPinning pins workers round robin onto the cores the process may use.
// Workers are always locked to a dedicated OS thread either way.
func WithThreadPinning(enabled bool) Option {
	return func(cfg *Config) {
		cfg.PinThreads = enabled
	}
}

// WithObserver routes progress and results to o. A nil observer silences
// the run.
func WithObserver(o Observer) Option {
	return func(cfg *Config) {
		cfg.Observer = o
	}
}

// WithOutput prints the plain text report to w.
func WithOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.Observer = NewTextObserver(w)
	}
}

// Validate reports whether the configuration can be run.
func (c Config) Validate() error {
	switch {
	case c.Threads <= 0:
		return fmt.Errorf("%w: threads must be positive, got %d", ErrInvalidConfig, c.Threads)
	case c.BufferElems <= 0:
		return fmt.Errorf("%w: buffer must hold at least one value, got %d", ErrInvalidConfig, c.BufferElems)
	case c.Iterations < 0:
		return fmt.Errorf("%w: iterations must not be negative, got %d", ErrInvalidConfig, c.Iterations)
	case c.BufferElems > math.MaxInt/membuf.Float64Size/c.Threads:
		return fmt.Errorf("%w: %d buffers of %d values overflow the address space",
			ErrInvalidConfig, c.Threads, c.BufferElems)
	}
	return nil
}

func (c Config) observer() Observer {
	if c.Observer == nil {
		return nopObserver{}
	}
	return c.Observer
}

func (c Config) sumStrategy() algorithms.SumStrategy {
	if c.summer != nil {
		return c.summer
	}
	return algorithms.NewSumStrategy(c.Strategy, cpu.HasPairedFloatAdd)
}
