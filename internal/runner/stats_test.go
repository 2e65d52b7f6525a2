package runner

import (
	"math"
	"testing"

	"github.com/utkarsh5026/membw/bandwidth"
)

func resultsAt(gbps ...float64) []bandwidth.Result {
	out := make([]bandwidth.Result, len(gbps))
	for i, g := range gbps {
		out[i] = bandwidth.Result{Bandwidth: g * 1e9}
	}
	return out
}

func TestCalculateStats(t *testing.T) {
	tests := []struct {
		name   string
		gbps   []float64
		median float64
		mean   float64
		stddev float64
	}{
		{name: "single run", gbps: []float64{10}, median: 10, mean: 10, stddev: 0},
		{name: "odd count", gbps: []float64{30, 10, 20}, median: 20, mean: 20, stddev: math.Sqrt(200.0 / 3)},
		{name: "even count", gbps: []float64{40, 10, 20, 30}, median: 25, mean: 25, stddev: math.Sqrt(125)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := CalculateStats(resultsAt(tt.gbps...))

			if s.Runs != len(tt.gbps) {
				t.Errorf("expected %d runs, got %d", len(tt.gbps), s.Runs)
			}
			if math.Abs(s.Median-tt.median) > 1e-9 {
				t.Errorf("median: expected %v, got %v", tt.median, s.Median)
			}
			if math.Abs(s.Mean-tt.mean) > 1e-9 {
				t.Errorf("mean: expected %v, got %v", tt.mean, s.Mean)
			}
			if math.Abs(s.StdDev-tt.stddev) > 1e-9 {
				t.Errorf("stddev: expected %v, got %v", tt.stddev, s.StdDev)
			}
			if s.Min > s.Median || s.Median > s.Max {
				t.Errorf("expected min <= median <= max, got %v %v %v", s.Min, s.Median, s.Max)
			}
		})
	}
}

func TestCalculateStats_Empty(t *testing.T) {
	if s := CalculateStats(nil); s != (Stats{}) {
		t.Errorf("expected zero stats, got %+v", s)
	}
}

func TestBest(t *testing.T) {
	if got := Best(nil); got != -1 {
		t.Errorf("expected -1 for no results, got %d", got)
	}
	if got := Best(resultsAt(5, 12, 7)); got != 1 {
		t.Errorf("expected index 1, got %d", got)
	}
}
