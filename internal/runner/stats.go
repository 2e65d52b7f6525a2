package runner

import (
	"math"
	"slices"

	"github.com/utkarsh5026/membw/bandwidth"
)

// Stats summarizes bandwidth across repeated runs, in GB/s.
type Stats struct {
	Runs   int     `json:"runs"`
	Min    float64 `json:"min_gbps"`
	Median float64 `json:"median_gbps"`
	Mean   float64 `json:"mean_gbps"`
	Max    float64 `json:"max_gbps"`
	StdDev float64 `json:"stddev_gbps"`
}

// CalculateStats computes min/median/mean/max and population standard
// deviation of the runs' bandwidth. For an even number of runs the median is
// the mean of the two middle values.
func CalculateStats(results []bandwidth.Result) Stats {
	if len(results) == 0 {
		return Stats{}
	}

	rates := make([]float64, len(results))
	for i, r := range results {
		rates[i] = r.GBPerSecond()
	}
	slices.Sort(rates)

	n := len(rates)
	var median float64
	if n%2 == 1 {
		median = rates[n/2]
	} else {
		median = (rates[n/2-1] + rates[n/2]) / 2
	}

	var sum float64
	for _, r := range rates {
		sum += r
	}
	mean := sum / float64(n)

	var variance float64
	for _, r := range rates {
		diff := r - mean
		variance += diff * diff
	}

	return Stats{
		Runs:   n,
		Min:    rates[0],
		Median: median,
		Mean:   mean,
		Max:    rates[n-1],
		StdDev: math.Sqrt(variance / float64(n)),
	}
}

// Best returns the index of the run with the highest bandwidth, or -1.
func Best(results []bandwidth.Result) int {
	best := -1
	for i, r := range results {
		if best < 0 || r.Bandwidth > results[best].Bandwidth {
			best = i
		}
	}
	return best
}
