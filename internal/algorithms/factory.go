package algorithms

import (
	"fmt"
	"strings"
)

// StrategyType selects the summation algorithm a worker runs.
type StrategyType int

const (
	// StrategyAuto picks paired when the CPU has two-wide float64 vector adds, scalar otherwise.
	StrategyAuto StrategyType = iota
	// StrategyScalar uses a single accumulator.
	StrategyScalar
	// StrategyPaired uses two accumulator lanes, two elements per step.
	StrategyPaired
)

func (t StrategyType) String() string {
	switch t {
	case StrategyScalar:
		return "scalar"
	case StrategyPaired:
		return "paired"
	default:
		return "auto"
	}
}

// ParseStrategyType maps a flag value onto a StrategyType.
func ParseStrategyType(s string) (StrategyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return StrategyAuto, nil
	case "scalar":
		return StrategyScalar, nil
	case "paired", "simd", "vector":
		return StrategyPaired, nil
	default:
		return StrategyAuto, fmt.Errorf("unknown summation strategy %q (want auto, scalar or paired)", s)
	}
}

// NewSumStrategy creates a summation strategy. For StrategyAuto, hasPaired
// reports whether the host supports two-wide float64 vector adds.
func NewSumStrategy(strategyType StrategyType, hasPaired func() bool) SumStrategy {
	switch strategyType {
	case StrategyScalar:
		return newScalarSum()

	case StrategyPaired:
		return newPairedSum()

	default:
		if hasPaired != nil && hasPaired() {
			return newPairedSum()
		}
		return newScalarSum()
	}
}
