//go:build !linux && !darwin && !windows

package cpu

import "runtime"

// PinWorker locks the calling goroutine to an OS thread. Pinning is not
// implemented on this platform.
func PinWorker(_ int) (core int, release func(), err error) {
	runtime.LockOSThread()
	return -1, runtime.UnlockOSThread, ErrPinningUnsupported
}
