package runner

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
)

// SetupProfiling starts CPU profiling and arranges a heap profile, writing
// notices to w. The returned cleanup stops profiling and writes the heap
// profile; it must be called even when err is nil.
func SetupProfiling(w io.Writer, cpuProfile, memProfile string) (cleanup func(), err error) {
	cleanups := make([]func(), 0, 2)
	cleanup = func() {
		for _, c := range cleanups {
			c()
		}
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return cleanup, fmt.Errorf("creating CPU profile: %w", err)
		}

		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return cleanup, fmt.Errorf("starting CPU profile: %w", err)
		}

		_, _ = fmt.Fprintf(w, "CPU profiling enabled, writing to: %s\n", cpuProfile)

		cleanups = append(cleanups, func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}

	if memProfile != "" {
		cleanups = append(cleanups, func() {
			f, err := os.Create(memProfile)
			if err != nil {
				colorFprintf(w, Red, "Error creating memory profile: %v\n", err)
				return
			}
			defer func(f *os.File) {
				if err := f.Close(); err != nil {
					colorFprintf(w, Red, "Error closing memory profile file: %v\n", err)
				}
			}(f)

			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				colorFprintf(w, Red, "Error writing memory profile: %v\n", err)
				return
			}
			_, _ = fmt.Fprintf(w, "Memory profile written to: %s\n", memProfile)
		})
	}

	return cleanup, nil
}
