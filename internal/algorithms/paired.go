package algorithms

// pairedSum processes two elements per step into two independent lanes.
//
// The two lanes break the loop-carried dependency on a single accumulator,
// which is what a two-wide float64 vector add (NEON f64x2, SSE2 addpd) does in
// hardware. Even indices land in lane 0, odd indices in lane 1. A trailing odd
// element goes to lane 0.
type pairedSum struct{}

func newPairedSum() *pairedSum {
	return &pairedSum{}
}

func (p *pairedSum) Name() string {
	return StrategyPaired.String()
}

func (p *pairedSum) Accumulate(acc Accumulator, buf []float64) Accumulator {
	lo, hi := acc[0], acc[1]

	n := len(buf) &^ 1
	for i := 0; i < n; i += 2 {
		pair := buf[i : i+2 : i+2]
		lo += pair[0]
		hi += pair[1]
	}
	if n < len(buf) {
		lo += buf[n]
	}

	acc[0], acc[1] = lo, hi
	return acc
}
