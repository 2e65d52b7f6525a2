package algorithms

import (
	"errors"
	"math"
	"testing"
)

func sequence(n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = float64(i%7) * 0.125
	}
	return buf
}

func TestScalarSum_Accumulate(t *testing.T) {
	s := newScalarSum()
	acc := s.Accumulate(Accumulator{}, []float64{0.5, 0.25, 0.125})

	if acc[0] != 0.875 {
		t.Errorf("lane 0: expected 0.875, got %v", acc[0])
	}
	if acc[1] != 0 {
		t.Errorf("lane 1: expected 0, got %v", acc[1])
	}
}

func TestPairedSum_Lanes(t *testing.T) {
	tests := []struct {
		name   string
		buf    []float64
		wantLo float64
		wantHi float64
	}{
		{name: "empty", buf: nil, wantLo: 0, wantHi: 0},
		{name: "single element goes to lane 0", buf: []float64{1}, wantLo: 1, wantHi: 0},
		{name: "even length", buf: []float64{1, 2, 3, 4}, wantLo: 4, wantHi: 6},
		{name: "odd tail goes to lane 0", buf: []float64{1, 2, 3, 4, 5}, wantLo: 9, wantHi: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := newPairedSum().Accumulate(Accumulator{}, tt.buf)
			if acc[0] != tt.wantLo || acc[1] != tt.wantHi {
				t.Errorf("expected lanes (%v, %v), got (%v, %v)", tt.wantLo, tt.wantHi, acc[0], acc[1])
			}
		})
	}
}

func TestStrategies_AgreeWithinTolerance(t *testing.T) {
	for _, n := range []int{1, 2, 3, 1023, 4096} {
		buf := sequence(n)

		scalar, err := SumPasses(newScalarSum(), buf, 3, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		paired, err := SumPasses(newPairedSum(), buf, 3, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if diff := math.Abs(scalar - paired); diff > 1e-9*math.Max(1, math.Abs(scalar)) {
			t.Errorf("n=%d: scalar %v and paired %v differ by %v", n, scalar, paired, diff)
		}
	}
}

func TestSumPasses_ReadsEveryElementEveryPass(t *testing.T) {
	buf := []float64{1, 1, 1, 1, 1}

	for _, s := range []SumStrategy{newScalarSum(), newPairedSum()} {
		t.Run(s.Name(), func(t *testing.T) {
			got, err := SumPasses(s, buf, 4, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != 20 {
				t.Errorf("expected 20, got %v", got)
			}
		})
	}
}

func TestSumPasses_ZeroPasses(t *testing.T) {
	calls := 0
	got, err := SumPasses(newPairedSum(), sequence(16), 0, func(int) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if calls != 0 {
		t.Errorf("expected no pass callbacks, got %d", calls)
	}
}

func TestSumPasses_StopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	var seen []int

	_, err := SumPasses(newScalarSum(), sequence(8), 10, func(pass int) error {
		seen = append(seen, pass)
		if pass == 2 {
			return stop
		}
		return nil
	})

	if !errors.Is(err, stop) {
		t.Fatalf("expected stop error, got %v", err)
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 passes before stop, got %d", len(seen))
	}
}

func TestNewSumStrategy(t *testing.T) {
	tests := []struct {
		name      string
		typ       StrategyType
		hasPaired func() bool
		want      string
	}{
		{name: "scalar", typ: StrategyScalar, want: "scalar"},
		{name: "paired", typ: StrategyPaired, want: "paired"},
		{name: "auto without capability", typ: StrategyAuto, hasPaired: func() bool { return false }, want: "scalar"},
		{name: "auto with capability", typ: StrategyAuto, hasPaired: func() bool { return true }, want: "paired"},
		{name: "auto with nil probe", typ: StrategyAuto, want: "scalar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSumStrategy(tt.typ, tt.hasPaired).Name()
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseStrategyType(t *testing.T) {
	tests := []struct {
		in      string
		want    StrategyType
		wantErr bool
	}{
		{in: "", want: StrategyAuto},
		{in: "auto", want: StrategyAuto},
		{in: "Scalar", want: StrategyScalar},
		{in: "paired", want: StrategyPaired},
		{in: "simd", want: StrategyPaired},
		{in: "avx512", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseStrategyType(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error, got nil", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
