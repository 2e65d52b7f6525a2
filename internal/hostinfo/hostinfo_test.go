package hostinfo

import (
	"context"
	"errors"
	"runtime"
	"testing"
)

func TestCheckAvailable(t *testing.T) {
	tests := []struct {
		name      string
		need      int64
		available uint64
		wantErr   bool
	}{
		{name: "fits", need: 1 << 20, available: 1 << 30},
		{name: "exact fit", need: 1 << 30, available: 1 << 30},
		{name: "too large", need: 1 << 31, available: 1 << 30, wantErr: true},
		{name: "unknown availability", need: 1 << 40, available: 0},
		{name: "nothing requested", need: 0, available: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkAvailable(tt.need, tt.available)
			if tt.wantErr {
				if !errors.Is(err, ErrInsufficientMemory) {
					t.Errorf("expected ErrInsufficientMemory, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCollect_Basics(t *testing.T) {
	info := Collect(context.Background())

	if info.LogicalCores != runtime.NumCPU() {
		t.Errorf("expected %d logical cores, got %d", runtime.NumCPU(), info.LogicalCores)
	}
	if info.GOOS != runtime.GOOS || info.GOARCH != runtime.GOARCH {
		t.Errorf("unexpected platform %s/%s", info.GOOS, info.GOARCH)
	}
	if info.AvailableMemory > info.TotalMemory {
		t.Errorf("available memory %d exceeds total %d", info.AvailableMemory, info.TotalMemory)
	}
}

func TestCheckFits_SmallRequest(t *testing.T) {
	if err := CheckFits(context.Background(), 4096); err != nil {
		t.Errorf("unexpected error for a 4 KiB request: %v", err)
	}
}
