// Package membuf allocates the float64 buffers that benchmark workers scan.
//
// Two backings are available: the Go heap, and an anonymous private mapping
// that lives outside the Go heap and is returned to the OS as soon as its
// owner releases it.
package membuf

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// Float64Size is the width in bytes of one buffer element.
const Float64Size = int(unsafe.Sizeof(float64(0)))

// Kind selects the backing memory of a buffer.
type Kind int

const (
	// Heap allocates with make; memory is reclaimed by the garbage collector.
	Heap Kind = iota
	// Mmap allocates an anonymous private mapping outside the Go heap.
	Mmap
)

func (k Kind) String() string {
	if k == Mmap {
		return "mmap"
	}
	return "heap"
}

// ParseKind maps a flag value onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "heap":
		return Heap, nil
	case "mmap":
		return Mmap, nil
	default:
		return Heap, fmt.Errorf("unknown allocator %q (want heap or mmap)", s)
	}
}

var ErrEmptyBuffer = errors.New("membuf: buffer length must be positive")

// Buffer is a slice of float64 plus the hook that frees its backing memory.
type Buffer struct {
	Floats  []float64
	release func() error
}

// Release frees the backing memory. Floats must not be used afterwards.
// Calling Release more than once is a no-op.
func (b *Buffer) Release() error {
	if b.release == nil {
		return nil
	}
	release := b.release
	b.release = nil
	b.Floats = nil
	return release()
}

// Alloc returns a zeroed buffer of n float64 values.
func Alloc(kind Kind, n int) (*Buffer, error) {
	if n <= 0 {
		return nil, ErrEmptyBuffer
	}

	switch kind {
	case Mmap:
		return allocMapped(n)
	default:
		return &Buffer{Floats: make([]float64, n)}, nil
	}
}

func allocMapped(n int) (*Buffer, error) {
	// COPY gives a writable private mapping; RDWR would map it shared.
	region, err := mmap.MapRegion(nil, n*Float64Size, mmap.COPY, mmap.ANON, 0)
	if err != nil {
		return nil, fmt.Errorf("membuf: mapping %d bytes: %w", n*Float64Size, err)
	}

	// Mappings are page aligned, so the float64 view is always aligned.
	floats := unsafe.Slice((*float64)(unsafe.Pointer(&region[0])), n)

	return &Buffer{
		Floats:  floats,
		release: region.Unmap,
	}, nil
}
