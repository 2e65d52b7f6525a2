package bandwidth

import (
	"fmt"
	"math/rand/v2"

	"github.com/utkarsh5026/membw/internal/membuf"
)

// pcgStream is the fixed PCG increment; together with the seed it pins the
// generated sequence.
const pcgStream = 0xda3e39cb94b95bdb

// Generate allocates cfg.Threads buffers and fills them, in id order, from a
// single PRNG stream seeded with cfg.Seed. Every value is in [0, 1).
//
// The same seed and sizes produce bit-identical buffers on every run.
func Generate(cfg Config) ([]WorkItem, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	obs := cfg.observer()
	obs.GenerationStarted(cfg)

	rng := rand.New(rand.NewPCG(cfg.Seed, pcgStream))

	items := make([]WorkItem, 0, cfg.Threads)
	for id := range cfg.Threads {
		mem, err := membuf.Alloc(cfg.Allocator, cfg.BufferElems)
		if err != nil {
			releaseAll(items)
			return nil, fmt.Errorf("%w: buffer %d: %w", ErrAllocation, id, err)
		}

		fill(rng, mem.Floats)
		items = append(items, WorkItem{
			Buffer: mem.Floats,
			ID:     id,
			mem:    mem,
		})
	}

	obs.GenerationFinished(GeneratedBytes(cfg))
	return items, nil
}

func fill(rng *rand.Rand, buf []float64) {
	for i := range buf {
		buf[i] = rng.Float64()
	}
}

func releaseAll(items []WorkItem) {
	for i := range items {
		_ = items[i].Release()
	}
}
