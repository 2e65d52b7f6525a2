package algorithms

// Accumulator holds the running lanes of a summation. Scalar strategies use
// only lane 0; paired strategies spread elements across both lanes.
type Accumulator [2]float64

// Value folds the lanes into a single sum.
func (a Accumulator) Value() float64 {
	return a[0] + a[1]
}

// SumStrategy defines how a single pass over a buffer is accumulated.
//
// Every implementation must read every element of buf exactly once per call.
// Implementations are stateless and safe to share between workers.
type SumStrategy interface {
	// Name returns the strategy identifier used in reports ("scalar", "paired").
	Name() string

	// Accumulate adds every element of buf into acc and returns the updated lanes.
	Accumulate(acc Accumulator, buf []float64) Accumulator
}

// SumPasses runs passes full sweeps over buf with s and returns the folded sum.
// onPass, if non-nil, is invoked after each completed pass with the 0-indexed
// pass number; a non-nil error from onPass ends the loop early and is returned.
func SumPasses(s SumStrategy, buf []float64, passes int, onPass func(pass int) error) (float64, error) {
	var acc Accumulator
	for pass := range passes {
		acc = s.Accumulate(acc, buf)
		if onPass != nil {
			if err := onPass(pass); err != nil {
				return acc.Value(), err
			}
		}
	}
	return acc.Value(), nil
}
