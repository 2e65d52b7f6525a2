// Package hostinfo collects the host facts printed alongside benchmark
// results and checks that a run's buffers fit in available memory.
package hostinfo

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

var ErrInsufficientMemory = errors.New("not enough available memory for benchmark buffers")

// Info describes the machine a benchmark runs on.
type Info struct {
	CPUModel        string `json:"cpu_model"`
	LogicalCores    int    `json:"logical_cores"`
	PhysicalCores   int    `json:"physical_cores"`
	TotalMemory     uint64 `json:"total_memory"`
	AvailableMemory uint64 `json:"available_memory"`
	GOOS            string `json:"goos"`
	GOARCH          string `json:"goarch"`
}

// Collect queries CPU and memory details. Missing pieces are left zero rather
// than failing, since some platforms (containers, BSDs) report partial data.
func Collect(ctx context.Context) Info {
	info := Info{
		LogicalCores: runtime.NumCPU(),
		GOOS:         runtime.GOOS,
		GOARCH:       runtime.GOARCH,
	}

	if stats, err := cpu.InfoWithContext(ctx); err == nil && len(stats) > 0 {
		info.CPUModel = stats[0].ModelName
	}
	if n, err := cpu.CountsWithContext(ctx, false); err == nil {
		info.PhysicalCores = n
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.TotalMemory = vm.Total
		info.AvailableMemory = vm.Available
	}

	return info
}

// CheckFits returns ErrInsufficientMemory when need bytes exceed the host's
// available memory. It returns nil when available memory cannot be read.
func CheckFits(ctx context.Context, need int64) error {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil
	}
	return checkAvailable(need, vm.Available)
}

func checkAvailable(need int64, available uint64) error {
	if available == 0 || need <= 0 {
		return nil
	}
	if uint64(need) > available {
		return fmt.Errorf("%w: need %.2f GB, %.2f GB available",
			ErrInsufficientMemory, float64(need)/1e9, float64(available)/1e9)
	}
	return nil
}
