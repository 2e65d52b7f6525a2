package algorithms

// scalarSum adds elements one at a time in index order.
type scalarSum struct{}

func newScalarSum() *scalarSum {
	return &scalarSum{}
}

func (s *scalarSum) Name() string {
	return StrategyScalar.String()
}

func (s *scalarSum) Accumulate(acc Accumulator, buf []float64) Accumulator {
	sum := acc[0]
	for _, v := range buf {
		sum += v
	}
	acc[0] = sum
	return acc
}
