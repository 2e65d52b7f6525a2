//go:build windows

package cpu

import (
	"runtime"

	"golang.org/x/sys/windows"
)

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
)

// pinToCore restricts the calling OS thread to a single core.
// Must be called after runtime.LockOSThread().
func pinToCore(core int) error {
	// Bit N = CPU N. Only the first processor group is addressable here.
	mask := uintptr(1) << uint(core%64)

	prev, _, err := setThreadAffinityMask.Call(uintptr(windows.CurrentThread()), mask)
	if prev == 0 {
		return err
	}
	return nil
}

// PinWorker locks the calling goroutine to its OS thread and pins that thread
// to core workerID mod NumCPU, which it returns. The returned release func
// unlocks the thread.
func PinWorker(workerID int) (core int, release func(), err error) {
	runtime.LockOSThread()
	core = CoreFor(workerID)
	if err := pinToCore(core); err != nil {
		return -1, runtime.UnlockOSThread, err
	}
	return core, runtime.UnlockOSThread, nil
}
