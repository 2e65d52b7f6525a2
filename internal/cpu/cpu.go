// Package cpu handles OS-thread placement for benchmark workers and reports
// which vector capabilities the host CPU advertises.
package cpu

import (
	"errors"
	"runtime"

	syscpu "golang.org/x/sys/cpu"
)

// ErrPinningUnsupported is returned by PinWorker on platforms without a
// thread affinity API. The goroutine is still locked to its OS thread.
var ErrPinningUnsupported = errors.New("cpu: thread pinning is not supported on " + runtime.GOOS)

// NumCPU returns the number of logical CPUs usable by the process.
func NumCPU() int {
	return runtime.NumCPU()
}

// CoreFor maps a worker id onto a core index in [0, NumCPU).
func CoreFor(workerID int) int {
	n := NumCPU()
	core := workerID % n
	if core < 0 {
		core += n
	}
	return core
}

// LockWorker locks the calling goroutine to its current OS thread without
// pinning, so each worker runs on a dedicated thread for its whole lifetime.
func LockWorker() (release func()) {
	runtime.LockOSThread()
	return runtime.UnlockOSThread
}

// HasPairedFloatAdd reports whether the CPU has a two-wide float64 vector add
// that the original per-architecture code path targeted (NEON on arm64).
func HasPairedFloatAdd() bool {
	return runtime.GOARCH == "arm64" && syscpu.ARM64.HasASIMD
}

// Features lists the vector extensions relevant to summation throughput.
type Features struct {
	Arch   string
	ASIMD  bool
	SSE2   bool
	AVX    bool
	AVX2   bool
	AVX512 bool
}

// DetectFeatures reads the host's vector capabilities.
func DetectFeatures() Features {
	return Features{
		Arch:   runtime.GOARCH,
		ASIMD:  syscpu.ARM64.HasASIMD,
		SSE2:   syscpu.X86.HasSSE2,
		AVX:    syscpu.X86.HasAVX,
		AVX2:   syscpu.X86.HasAVX2,
		AVX512: syscpu.X86.HasAVX512F,
	}
}

// String renders the advertised extensions, e.g. "amd64 (sse2 avx avx2)".
func (f Features) String() string {
	exts := make([]byte, 0, 32)
	add := func(ok bool, name string) {
		if !ok {
			return
		}
		if len(exts) > 0 {
			exts = append(exts, ' ')
		}
		exts = append(exts, name...)
	}
	add(f.ASIMD, "asimd")
	add(f.SSE2, "sse2")
	add(f.AVX, "avx")
	add(f.AVX2, "avx2")
	add(f.AVX512, "avx512f")

	if len(exts) == 0 {
		return f.Arch
	}
	return f.Arch + " (" + string(exts) + ")"
}
