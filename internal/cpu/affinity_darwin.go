//go:build darwin

package cpu

import (
	"runtime"
)

// PinWorker locks the calling goroutine to an OS thread.
// macOS exposes no hard affinity API, so the thread is never pinned.
func PinWorker(_ int) (core int, release func(), err error) {
	runtime.LockOSThread()
	return -1, runtime.UnlockOSThread, ErrPinningUnsupported
}
