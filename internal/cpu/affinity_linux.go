//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// processMask is the affinity the process started with. Captured during
// package init, before any worker thread has been pinned.
var processMask, processMaskErr = loadProcessMask()

func loadProcessMask() (unix.CPUSet, error) {
	var mask unix.CPUSet
	err := unix.SchedGetaffinity(0, &mask)
	return mask, err
}

// allowedCores lists the cores set in mask, in ascending order.
func allowedCores(mask *unix.CPUSet) []int {
	var cores []int
	for i := range len(mask) * 64 {
		if mask.IsSet(i) {
			cores = append(cores, i)
		}
	}
	return cores
}

// coreAt maps a worker id onto one of the allowed cores, round robin.
func coreAt(allowed []int, workerID int) int {
	if len(allowed) == 0 {
		return CoreFor(workerID)
	}
	i := workerID % len(allowed)
	if i < 0 {
		i += len(allowed)
	}
	return allowed[i]
}

// pinToCore restricts the calling OS thread to a single core.
// Must be called after runtime.LockOSThread().
func pinToCore(core int) error {
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(core)

	return unix.SchedSetaffinity(0, &mask) // 0 = current thread
}

// PinWorker locks the calling goroutine to its OS thread and pins that thread
// to one of the cores the process may run on, chosen round robin by
// workerID. It returns the chosen core. The returned release func restores
// the process affinity on the thread and unlocks it. The thread stays locked
// even when pinning fails.
func PinWorker(workerID int) (core int, release func(), err error) {
	runtime.LockOSThread()

	var allowed []int
	if processMaskErr == nil {
		allowed = allowedCores(&processMask)
	}
	core = coreAt(allowed, workerID)

	if err := pinToCore(core); err != nil {
		return -1, runtime.UnlockOSThread, err
	}

	release = func() {
		if processMaskErr == nil {
			mask := processMask
			_ = unix.SchedSetaffinity(0, &mask)
		}
		runtime.UnlockOSThread()
	}
	return core, release, nil
}
